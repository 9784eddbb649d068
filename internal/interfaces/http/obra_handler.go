package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/application/usecase"
)

// ObraHandler trata os pedidos HTTP de obras (protegido).
type ObraHandler struct {
	uc *usecase.ObraUseCase
}

// NewObraHandler constrói o handler.
func NewObraHandler(uc *usecase.ObraUseCase) *ObraHandler {
	return &ObraHandler{uc: uc}
}

// Create godoc
// @Summary      Criar obra
// @Tags         obras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateObraRequest  true  "Dados da obra"
// @Success      201   {object}  dto.ObraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/obras [post]
func (h *ObraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateObraRequest
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
// @Summary      Obter obra por ID
// @Tags         obras
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da obra"
// @Success      200  {object}  dto.ObraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obras/{id} [get]
func (h *ObraHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar obras
// @Tags         obras
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Pesquisa"
// @Param        limit   query  int     false  "Limite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.ObraResponse
// @Router       /api/obras [get]
func (h *ObraHandler) List(c *fiber.Ctx) error {
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
// @Summary      Atualizar obra (parcial)
// @Tags         obras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da obra"
// @Param        body  body  dto.UpdateObraRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.ObraResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/obras/{id} [put]
func (h *ObraHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateObraRequest
	if !bindBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desativar obra
// @Tags         obras
// @Security     Bearer
// @Param        id  path  string  true  "ID da obra"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obras/{id} [delete]
func (h *ObraHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
