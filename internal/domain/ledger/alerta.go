package ledger

import "time"

// Valores por omissão para os alertas de documentos a expirar.
const (
	DiasAntecedenciaPadrao = 30 // janela máxima de antecedência
	LimiarUrgentePadrao    = 7  // até este número de dias restantes o alerta é urgente
)

// Tipos de alerta de documento.
const (
	TipoAlertaCertificado = "certificado"
	TipoAlertaInspecao    = "inspecao"
	TipoAlertaSeguro      = "seguro"
)

// DiasRestantes devolve o número de dias inteiros entre hoje e a data de
// validade, ignorando a componente horária. Negativo se já expirou.
func DiasRestantes(hoje, validade time.Time) int {
	h := time.Date(hoje.Year(), hoje.Month(), hoje.Day(), 0, 0, 0, 0, time.UTC)
	v := time.Date(validade.Year(), validade.Month(), validade.Day(), 0, 0, 0, 0, time.UTC)
	return int(v.Sub(h).Hours() / 24)
}

// ClassificarAlerta devolve os flags do alerta. Mutuamente exclusivos:
// expirado quando diasRestantes < 0, urgente quando 0 ≤ diasRestantes ≤ limiar;
// ambos falsos significa que o alerta cai no balde "próximos".
func ClassificarAlerta(diasRestantes, limiarUrgente int) (expirado, urgente bool) {
	if diasRestantes < 0 {
		return true, false
	}
	if diasRestantes <= limiarUrgente {
		return false, true
	}
	return false, false
}
