package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/application/usecase"
)

// ViaturaHandler trata os pedidos HTTP de viaturas (protegido).
type ViaturaHandler struct {
	uc *usecase.ViaturaUseCase
}

// NewViaturaHandler constrói o handler.
func NewViaturaHandler(uc *usecase.ViaturaUseCase) *ViaturaHandler {
	return &ViaturaHandler{uc: uc}
}

// Create godoc
// @Summary      Criar viatura
// @Tags         viaturas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateViaturaRequest  true  "Dados da viatura"
// @Success      201   {object}  dto.ViaturaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/viaturas [post]
func (h *ViaturaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateViaturaRequest
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
// @Summary      Obter viatura por ID
// @Tags         viaturas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da viatura"
// @Success      200  {object}  dto.ViaturaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/viaturas/{id} [get]
func (h *ViaturaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar viaturas
// @Tags         viaturas
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Pesquisa"
// @Param        limit   query  int     false  "Limite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.ViaturaResponse
// @Router       /api/viaturas [get]
func (h *ViaturaHandler) List(c *fiber.Ctx) error {
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
// @Summary      Atualizar viatura (parcial)
// @Tags         viaturas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da viatura"
// @Param        body  body  dto.UpdateViaturaRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.ViaturaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/viaturas/{id} [put]
func (h *ViaturaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateViaturaRequest
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
// @Tags         viaturas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da viatura"
// @Param        body  body  dto.ManutencaoRequest  true  "Estado de manutenção"
// @Success      200   {object}  dto.ViaturaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/viaturas/{id}/manutencao [patch]
func (h *ViaturaHandler) Manutencao(c *fiber.Ctx) error {
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
// @Summary      Desativar viatura
// @Tags         viaturas
// @Security     Bearer
// @Param        id  path  string  true  "ID da viatura"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/viaturas/{id} [delete]
func (h *ViaturaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
