package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/application/usecase"
)

// EquipamentoHandler trata os pedidos HTTP de equipamentos (protegido).
type EquipamentoHandler struct {
	uc *usecase.EquipamentoUseCase
}

// NewEquipamentoHandler constrói o handler.
func NewEquipamentoHandler(uc *usecase.EquipamentoUseCase) *EquipamentoHandler {
	return &EquipamentoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar equipamento
// @Tags         equipamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEquipamentoRequest  true  "Dados do equipamento"
// @Success      201   {object}  dto.EquipamentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/equipamentos [post]
func (h *EquipamentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEquipamentoRequest
	if !bindBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter equipamento por ID
// @Tags         equipamentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do equipamento"
// @Success      200  {object}  dto.EquipamentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipamentos/{id} [get]
func (h *EquipamentoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar equipamentos
// @Tags         equipamentos
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Pesquisa (insensível a diacríticos)"
// @Param        limit   query  int     false  "Limite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.EquipamentoResponse
// @Router       /api/equipamentos [get]
func (h *EquipamentoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if !bindQuery(c, &page) {
		return nil
	}
	out, err := h.uc.List(c.UserContext(), c.Query("q"), page)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar equipamento (parcial)
// @Tags         equipamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do equipamento"
// @Param        body  body  dto.UpdateEquipamentoRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.EquipamentoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/equipamentos/{id} [put]
func (h *EquipamentoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEquipamentoRequest
	if !bindBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Manutencao godoc
// @Summary      Alterar estado de manutenção
// @Description  Atualização parcial: só em_manutencao e descricao_avaria são tocados.
// @Tags         equipamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do equipamento"
// @Param        body  body  dto.ManutencaoRequest  true  "Estado de manutenção"
// @Success      200   {object}  dto.EquipamentoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/equipamentos/{id}/manutencao [patch]
func (h *EquipamentoHandler) Manutencao(c *fiber.Ctx) error {
	var in dto.ManutencaoRequest
	if !bindBody(c, &in) {
		return nil
	}
	out, err := h.uc.Manutencao(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desativar equipamento
// @Tags         equipamentos
// @Security     Bearer
// @Param        id  path  string  true  "ID do equipamento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipamentos/{id} [delete]
func (h *EquipamentoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
