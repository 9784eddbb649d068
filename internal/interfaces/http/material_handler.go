package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/application/usecase"
)

// MaterialHandler trata os pedidos HTTP de materiais (protegido).
// As respostas trazem o stock atual derivado do ledger.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler constrói o handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Criar material
// @Tags         materiais
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "Dados do material"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materiais [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
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
// @Summary      Obter material por ID
// @Tags         materiais
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do material"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiais/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar materiais
// @Tags         materiais
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Pesquisa"
// @Param        limit   query  int     false  "Limite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.MaterialResponse
// @Router       /api/materiais [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
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
// @Summary      Atualizar material (parcial)
// @Tags         materiais
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do material"
// @Param        body  body  dto.UpdateMaterialRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materiais/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMaterialRequest
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
// @Summary      Desativar material
// @Tags         materiais
// @Security     Bearer
// @Param        id  path  string  true  "ID do material"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiais/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
