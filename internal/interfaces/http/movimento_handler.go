package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/application/movimentos"
	"github.com/jfirmino/armazem-api/pkg/metrics"
)

// MovimentoHandler trata o registo e a consulta de movimentos.
// O ledger é append-only: não existem rotas de alteração nem remoção.
type MovimentoHandler struct {
	uc      *movimentos.RegistarMovimentoUseCase
	metrics *metrics.APIMetrics
}

// NewMovimentoHandler constrói o handler.
func NewMovimentoHandler(uc *movimentos.RegistarMovimentoUseCase, m *metrics.APIMetrics) *MovimentoHandler {
	return &MovimentoHandler{uc: uc, metrics: m}
}

// Registar godoc
// @Summary      Registar movimento
// @Description  Acrescenta um movimento ao ledger (saida, devolucao, entrada, saida_stock ou leitura_km).
// @Tags         movimentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistarMovimentoRequest  true  "Movimento a registar"
// @Success      201   {object}  dto.MovimentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentos [post]
func (h *MovimentoHandler) Registar(c *fiber.Ctx) error {
	var in dto.RegistarMovimentoRequest
	if !bindBody(c, &in) {
		return nil
	}
	out, err := h.uc.Registar(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respostaErro(c, err)
	}
	h.metrics.IncMovimento(in.TipoMovimento)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar movimentos
// @Tags         movimentos
// @Security     Bearer
// @Produce      json
// @Param        tipo_recurso    query  string  false  "equipamento, viatura ou material"
// @Param        recurso_id      query  string  false  "ID do recurso"
// @Param        tipo_movimento  query  string  false  "Tipo de movimento"
// @Param        obra_id         query  string  false  "ID da obra"
// @Param        ano             query  int     false  "Ano"
// @Param        mes             query  int     false  "Mês (exige ano)"
// @Param        data_inicio     query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        data_fim        query  string  false  "Data final (YYYY-MM-DD)"
// @Success      200   {array}   dto.MovimentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimentos [get]
func (h *MovimentoHandler) Listar(c *fiber.Ctx) error {
	var in dto.FiltroMovimentosRequest
	if !bindQuery(c, &in) {
		return nil
	}
	out, err := h.uc.Listar(c.UserContext(), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}
