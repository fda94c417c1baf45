package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jprezende/AgroGestor-api/internal/application/dto"
	"github.com/jprezende/AgroGestor-api/internal/application/usecase"
)

// FieldHandler trata as requisições HTTP para talhões (protegido).
type FieldHandler struct {
	uc *usecase.FieldUseCase
}

// NewFieldHandler constrói o handler.
func NewFieldHandler(uc *usecase.FieldUseCase) *FieldHandler {
	return &FieldHandler{uc: uc}
}

// Create godoc
// @Summary      Criar talhão
// @Tags         fields
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFieldRequest  true  "name, area_ha"
// @Success      201   {object}  dto.FieldResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fields [post]
func (h *FieldHandler) Create(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "farm_id requerido"})
	}
	var in dto.CreateFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.Create(farmID, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter talhão por ID
// @Tags         fields
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do talhão"
// @Success      200  {object}  dto.FieldResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fields/{id} [get]
func (h *FieldHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "talhão não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar talhões
// @Tags         fields
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.FieldListResponse
// @Router       /api/fields [get]
func (h *FieldHandler) List(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "farm_id requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(farmID, limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar talhão
// @Tags         fields
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do talhão"
// @Param        body  body  dto.UpdateFieldRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.FieldResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fields/{id} [put]
func (h *FieldHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "talhão não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir talhão
// @Tags         fields
// @Security     Bearer
// @Param        id  path  string  true  "ID do talhão"
// @Success      204
// @Router       /api/fields/{id} [delete]
func (h *FieldHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
