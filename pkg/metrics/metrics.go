package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// APIMetrics regista contadores operacionais do ledger e dos relatórios.
type APIMetrics struct {
	movimentos *prometheus.CounterVec
	relatorios *prometheus.CounterVec
}

// NewAPIMetrics regista as métricas no registerer fornecido.
// Com reg nil devolve uma instância inerte (útil em testes).
func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	if reg == nil {
		return &APIMetrics{}
	}
	movimentos := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "movimentos_registados_total",
		Help: "Movimentos registados no ledger, por tipo de movimento.",
	}, []string{"tipo_movimento"})
	relatorios := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "relatorios_gerados_total",
		Help: "Relatórios gerados com sucesso, por tipo de relatório.",
	}, []string{"relatorio"})
	reg.MustRegister(movimentos, relatorios)
	return &APIMetrics{
		movimentos: movimentos,
		relatorios: relatorios,
	}
}

// IncMovimento incrementa o contador de movimentos registados.
func (m *APIMetrics) IncMovimento(tipoMovimento string) {
	if m == nil || m.movimentos == nil {
		return
	}
	m.movimentos.WithLabelValues(tipoMovimento).Inc()
}

// IncRelatorio incrementa o contador de relatórios gerados.
func (m *APIMetrics) IncRelatorio(relatorio string) {
	if m == nil || m.relatorios == nil {
		return
	}
	m.relatorios.WithLabelValues(relatorio).Inc()
}
