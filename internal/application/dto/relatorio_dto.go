package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FiltrosRelatorio filtros de query comuns aos relatórios. Todos opcionais;
// mes requer ano; datas em formato YYYY-MM-DD.
type FiltrosRelatorio struct {
	Ano              int    `query:"ano"`
	Mes              int    `query:"mes" validate:"omitempty,min=1,max=12"`
	ObraID           string `query:"obra_id"`
	TipoRecurso      string `query:"tipo_recurso" validate:"omitempty,oneof=equipamento viatura material"`
	Estado           string `query:"estado" validate:"omitempty,oneof=disponivel em_obra manutencao"`
	DiasAntecedencia int    `query:"dias_antecedencia" validate:"omitempty,min=1"`
	DataInicio       string `query:"data_inicio"`
	DataFim          string `query:"data_fim"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Relatório de movimentos
// ──────────────────────────────────────────────────────────────────────────────

// RelatorioMovimentoDTO movimento enriquecido com os dados de apresentação do
// recurso e da obra (código pode vir vazio se o recurso já não existir).
type RelatorioMovimentoDTO struct {
	MovimentoResponse
	RecursoCodigo    string `json:"recurso_codigo"`
	RecursoDescricao string `json:"recurso_descricao"`
	ObraNome         string `json:"obra_nome,omitempty"`
}

// EstatisticasMovimentos estatísticas do relatório de movimentos de ativos.
type EstatisticasMovimentos struct {
	TotalMovimentos     int `json:"total_movimentos"`
	TotalSaidas         int `json:"total_saidas"`
	TotalDevolucoes     int `json:"total_devolucoes"`
	EquipamentosMovidos int `json:"equipamentos_movidos"`
	ViaturasMovidas     int `json:"viaturas_movidas"`
}

// RelatorioMovimentosResponse relatório de movimentos de ativos.
type RelatorioMovimentosResponse struct {
	Movimentos   []RelatorioMovimentoDTO `json:"movimentos"`
	Estatisticas EstatisticasMovimentos  `json:"estatisticas"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Relatório de stock
// ──────────────────────────────────────────────────────────────────────────────

// MaterialResumoDTO resumo por material dentro da janela filtrada.
// ConsumoLiquido segue a convenção entradas − saídas.
type MaterialResumoDTO struct {
	MaterialID     string          `json:"material_id"`
	Codigo         string          `json:"codigo"`
	Descricao      string          `json:"descricao"`
	Unidade        string          `json:"unidade"`
	Entradas       decimal.Decimal `json:"entradas"`
	Saidas         decimal.Decimal `json:"saidas"`
	ConsumoLiquido decimal.Decimal `json:"consumo_liquido"`
	StockAtual     decimal.Decimal `json:"stock_atual"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
	AbaixoMinimo   bool            `json:"abaixo_minimo"`
}

// EstatisticasStock estatísticas do relatório de stock.
type EstatisticasStock struct {
	TotalMovimentos     int             `json:"total_movimentos"`
	TotalEntradas       decimal.Decimal `json:"total_entradas"`
	TotalSaidas         decimal.Decimal `json:"total_saidas"`
	ConsumoLiquido      decimal.Decimal `json:"consumo_liquido"`
	MateriaisDiferentes int             `json:"materiais_diferentes"`
}

// RelatorioStockResponse relatório de movimentos de stock de materiais.
type RelatorioStockResponse struct {
	Movimentos      []RelatorioMovimentoDTO `json:"movimentos"`
	MateriaisResumo []MaterialResumoDTO     `json:"materiais_resumo"`
	Estatisticas    EstatisticasStock       `json:"estatisticas"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Relatório de obra
// ──────────────────────────────────────────────────────────────────────────────

// RecursoAtualDTO recurso com afetação aberta a uma obra.
type RecursoAtualDTO struct {
	ID        string `json:"id"`
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
}

// RecursosAtuaisDTO recursos presentemente afetos à obra.
type RecursosAtuaisDTO struct {
	Equipamentos []RecursoAtualDTO `json:"equipamentos"`
	Viaturas     []RecursoAtualDTO `json:"viaturas"`
}

// MaterialConsumoDTO consumo de um material imputado à obra.
type MaterialConsumoDTO struct {
	MaterialID string          `json:"material_id"`
	Codigo     string          `json:"codigo"`
	Descricao  string          `json:"descricao"`
	Unidade    string          `json:"unidade"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// EstatisticasObra estatísticas do relatório de obra.
type EstatisticasObra struct {
	EquipamentosAtuais int `json:"equipamentos_atuais"`
	ViaturasAtuais     int `json:"viaturas_atuais"`
	MovimentosAtivos   int `json:"movimentos_ativos"`
	MovimentosStock    int `json:"movimentos_stock"`
	TotalSaidasAtivos  int `json:"total_saidas_ativos"`
	TotalDevolucoes    int `json:"total_devolucoes"`
}

// RelatorioObraResponse relatório detalhado de uma obra.
type RelatorioObraResponse struct {
	Obra             ObraResponse         `json:"obra"`
	Estatisticas     EstatisticasObra     `json:"estatisticas"`
	RecursosAtuais   RecursosAtuaisDTO    `json:"recursos_atuais"`
	ConsumoMateriais []MaterialConsumoDTO `json:"consumo_materiais"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Relatório de manutenções
// ──────────────────────────────────────────────────────────────────────────────

// EstatisticasManutencoes invariante: TotalGeral == TotalEquipamentos + TotalViaturas.
type EstatisticasManutencoes struct {
	TotalEquipamentos int `json:"total_equipamentos"`
	TotalViaturas     int `json:"total_viaturas"`
	TotalGeral        int `json:"total_geral"`
}

// RelatorioManutencoesResponse recursos em manutenção. Quando o filtro de tipo
// exclui uma categoria, a lista respetiva vem vazia, não omitida.
type RelatorioManutencoesResponse struct {
	Equipamentos []EquipamentoResponse   `json:"equipamentos"`
	Viaturas     []ViaturaResponse       `json:"viaturas"`
	Estatisticas EstatisticasManutencoes `json:"estatisticas"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Relatório de utilização
// ──────────────────────────────────────────────────────────────────────────────

// UtilizacaoRecursoDTO recurso ativo anotado com o estado resolvido e os
// totais de movimentos da janela filtrada.
type UtilizacaoRecursoDTO struct {
	ID              string  `json:"id"`
	Codigo          string  `json:"codigo"`
	Descricao       string  `json:"descricao"`
	EstadoAtual     string  `json:"estado_atual"`
	ObraAtualID     *string `json:"obra_atual_id,omitempty"`
	TotalMovimentos int     `json:"total_movimentos"`
	TotalSaidas     int     `json:"total_saidas"`
	TotalDevolucoes int     `json:"total_devolucoes"`
}

// ContagemEstados contagem de recursos por estado resolvido.
type ContagemEstados struct {
	Total      int `json:"total"`
	Disponivel int `json:"disponivel"`
	EmObra     int `json:"em_obra"`
	Manutencao int `json:"manutencao"`
}

// EstatisticasUtilizacao repartição por tipo de recurso.
type EstatisticasUtilizacao struct {
	Equipamentos ContagemEstados `json:"equipamentos"`
	Viaturas     ContagemEstados `json:"viaturas"`
}

// RelatorioUtilizacaoResponse relatório de utilização de ativos.
type RelatorioUtilizacaoResponse struct {
	Equipamentos []UtilizacaoRecursoDTO `json:"equipamentos"`
	Viaturas     []UtilizacaoRecursoDTO `json:"viaturas"`
	Estatisticas EstatisticasUtilizacao `json:"estatisticas"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Relatório de alertas
// ──────────────────────────────────────────────────────────────────────────────

// AlertaDTO alerta de documento a expirar. Expirado e Urgente são mutuamente
// exclusivos; ambos falsos coloca o alerta no balde "próximos".
type AlertaDTO struct {
	TipoRecurso   string    `json:"tipo_recurso"`
	RecursoID     string    `json:"recurso_id"`
	Identificador string    `json:"identificador"`
	TipoAlerta    string    `json:"tipo_alerta"`
	DataExpiracao time.Time `json:"data_expiracao"`
	DiasRestantes int       `json:"dias_restantes"`
	Urgente       bool      `json:"urgente"`
	Expirado      bool      `json:"expirado"`
}

// EstatisticasAlertas contagens por balde.
type EstatisticasAlertas struct {
	TotalAlertas int `json:"total_alertas"`
	Expirados    int `json:"expirados"`
	Urgentes     int `json:"urgentes"`
	Proximos     int `json:"proximos"`
}

// RelatorioAlertasResponse alertas de documentos a expirar.
type RelatorioAlertasResponse struct {
	Alertas      []AlertaDTO         `json:"alertas"`
	Estatisticas EstatisticasAlertas `json:"estatisticas"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumo do dashboard
// ──────────────────────────────────────────────────────────────────────────────

// ResumoEquipamentosDTO contagens de equipamentos por estado derivado.
// Ativos conta os disponíveis (sem afetação aberta nem manutenção).
type ResumoEquipamentosDTO struct {
	Total      int `json:"total"`
	Ativos     int `json:"ativos"`
	EmObra     int `json:"em_obra"`
	Manutencao int `json:"manutencao"`
}

// ResumoViaturasDTO contagens de viaturas por estado derivado.
type ResumoViaturasDTO struct {
	Total      int `json:"total"`
	Ativas     int `json:"ativas"`
	EmObra     int `json:"em_obra"`
	Manutencao int `json:"manutencao"`
}

// ResumoMateriaisDTO contagem de materiais e soma dos stocks derivados.
type ResumoMateriaisDTO struct {
	Total      int             `json:"total"`
	StockTotal decimal.Decimal `json:"stock_total"`
}

// ResumoObrasDTO contagem de obras registadas e das que estão em curso.
type ResumoObrasDTO struct {
	Total  int `json:"total"`
	Ativas int `json:"ativas"`
}

// ResumoAlertaDTO alerta compacto para o dashboard. Urgent cobre também os
// documentos já expirados.
type ResumoAlertaDTO struct {
	Item    string `json:"item"`
	Message string `json:"message"`
	Urgent  bool   `json:"urgent"`
}

// ResumoDashboardResponse visão geral do armazém.
type ResumoDashboardResponse struct {
	Equipamentos ResumoEquipamentosDTO `json:"equipamentos"`
	Viaturas     ResumoViaturasDTO     `json:"viaturas"`
	Materiais    ResumoMateriaisDTO    `json:"materiais"`
	Obras        ResumoObrasDTO        `json:"obras"`
	Alerts       []ResumoAlertaDTO     `json:"alerts"`
}

// VerificacaoAlertasResponse resultado da verificação rápida de alertas.
type VerificacaoAlertasResponse struct {
	Alerts []ResumoAlertaDTO `json:"alerts"`
	Total  int               `json:"total"`
}
