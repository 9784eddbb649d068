package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/application/relatorios"
	"github.com/jfirmino/armazem-api/pkg/metrics"
)

// RelatorioHandler expõe os relatórios derivados do ledger.
type RelatorioHandler struct {
	uc      *relatorios.RelatoriosUseCase
	metrics *metrics.APIMetrics
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorios.RelatoriosUseCase, m *metrics.APIMetrics) *RelatorioHandler {
	return &RelatorioHandler{uc: uc, metrics: m}
}

// Movimentos godoc
// @Summary      Relatório de movimentos de ativos
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        ano           query  int     false  "Ano"
// @Param        mes           query  int     false  "Mês (exige ano)"
// @Param        obra_id       query  string  false  "ID da obra"
// @Param        tipo_recurso  query  string  false  "equipamento ou viatura"
// @Param        data_inicio   query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        data_fim      query  string  false  "Data final (YYYY-MM-DD)"
// @Success      200  {object}  dto.RelatorioMovimentosResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/movimentos [get]
func (h *RelatorioHandler) Movimentos(c *fiber.Ctx) error {
	var f dto.FiltrosRelatorio
	if !bindQuery(c, &f) {
		return nil
	}
	out, err := h.uc.RelatorioMovimentos(c.UserContext(), f)
	if err != nil {
		return respostaErro(c, err)
	}
	h.metrics.IncRelatorio("movimentos")
	return c.JSON(out)
}

// Stock godoc
// @Summary      Relatório de stock de materiais
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        ano          query  int     false  "Ano"
// @Param        mes          query  int     false  "Mês (exige ano)"
// @Param        data_inicio  query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        data_fim     query  string  false  "Data final (YYYY-MM-DD)"
// @Success      200  {object}  dto.RelatorioStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/stock [get]
func (h *RelatorioHandler) Stock(c *fiber.Ctx) error {
	var f dto.FiltrosRelatorio
	if !bindQuery(c, &f) {
		return nil
	}
	out, err := h.uc.RelatorioStock(c.UserContext(), f)
	if err != nil {
		return respostaErro(c, err)
	}
	h.metrics.IncRelatorio("stock")
	return c.JSON(out)
}

// Obra godoc
// @Summary      Relatório de uma obra
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        id           path   string  true   "ID da obra"
// @Param        ano          query  int     false  "Ano"
// @Param        mes          query  int     false  "Mês (exige ano)"
// @Param        data_inicio  query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        data_fim     query  string  false  "Data final (YYYY-MM-DD)"
// @Success      200  {object}  dto.RelatorioObraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/relatorios/obra/{id} [get]
func (h *RelatorioHandler) Obra(c *fiber.Ctx) error {
	var f dto.FiltrosRelatorio
	if !bindQuery(c, &f) {
		return nil
	}
	out, err := h.uc.RelatorioObra(c.UserContext(), c.Params("id"), f)
	if err != nil {
		return respostaErro(c, err)
	}
	h.metrics.IncRelatorio("obra")
	return c.JSON(out)
}

// Manutencoes godoc
// @Summary      Relatório de recursos em manutenção
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        tipo_recurso  query  string  false  "equipamento ou viatura"
// @Success      200  {object}  dto.RelatorioManutencoesResponse
// @Router       /api/relatorios/manutencoes [get]
func (h *RelatorioHandler) Manutencoes(c *fiber.Ctx) error {
	var f dto.FiltrosRelatorio
	if !bindQuery(c, &f) {
		return nil
	}
	out, err := h.uc.RelatorioManutencoes(c.UserContext(), f)
	if err != nil {
		return respostaErro(c, err)
	}
	h.metrics.IncRelatorio("manutencoes")
	return c.JSON(out)
}

// Utilizacao godoc
// @Summary      Relatório de utilização de equipamentos e viaturas
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        ano          query  int     false  "Ano"
// @Param        mes          query  int     false  "Mês (exige ano)"
// @Param        estado       query  string  false  "disponivel, em_obra ou manutencao"
// @Param        data_inicio  query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        data_fim     query  string  false  "Data final (YYYY-MM-DD)"
// @Success      200  {object}  dto.RelatorioUtilizacaoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/utilizacao [get]
func (h *RelatorioHandler) Utilizacao(c *fiber.Ctx) error {
	var f dto.FiltrosRelatorio
	if !bindQuery(c, &f) {
		return nil
	}
	out, err := h.uc.RelatorioUtilizacao(c.UserContext(), f)
	if err != nil {
		return respostaErro(c, err)
	}
	h.metrics.IncRelatorio("utilizacao")
	return c.JSON(out)
}

// Resumo godoc
// @Summary      Resumo do dashboard
// @Description  Contagens por categoria com estado derivado, stock total e alertas correntes.
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResumoDashboardResponse
// @Router       /api/summary [get]
func (h *RelatorioHandler) Resumo(c *fiber.Ctx) error {
	out, err := h.uc.ResumoDashboard(c.UserContext())
	if err != nil {
		return respostaErro(c, err)
	}
	h.metrics.IncRelatorio("summary")
	return c.JSON(out)
}

// VerificarAlertas godoc
// @Summary      Verificar alertas correntes
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VerificacaoAlertasResponse
// @Router       /api/alerts/check [get]
func (h *RelatorioHandler) VerificarAlertas(c *fiber.Ctx) error {
	out, err := h.uc.VerificarAlertas(c.UserContext())
	if err != nil {
		return respostaErro(c, err)
	}
	h.metrics.IncRelatorio("alerts_check")
	return c.JSON(out)
}

// Alertas godoc
// @Summary      Relatório de alertas de validade
// @Description  Certificados, inspeções e seguros a expirar dentro da janela de antecedência.
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        dias_antecedencia  query  int  false  "Janela em dias"  default(30)
// @Success      200  {object}  dto.RelatorioAlertasResponse
// @Router       /api/relatorios/alertas [get]
func (h *RelatorioHandler) Alertas(c *fiber.Ctx) error {
	var f dto.FiltrosRelatorio
	if !bindQuery(c, &f) {
		return nil
	}
	out, err := h.uc.RelatorioAlertas(c.UserContext(), f)
	if err != nil {
		return respostaErro(c, err)
	}
	h.metrics.IncRelatorio("alertas")
	return c.JSON(out)
}
