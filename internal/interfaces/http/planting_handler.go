package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jprezende/AgroGestor-api/internal/application/dto"
	"github.com/jprezende/AgroGestor-api/internal/application/usecase"
)

// PlantingHandler trata as requisições HTTP para plantios (protegido).
type PlantingHandler struct {
	uc *usecase.PlantingUseCase
}

// NewPlantingHandler constrói o handler.
func NewPlantingHandler(uc *usecase.PlantingUseCase) *PlantingHandler {
	return &PlantingHandler{uc: uc}
}

// Create godoc
// @Summary      Criar plantio
// @Tags         plantings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlantingRequest  true  "field_id, crop, planting_date, area_ha"
// @Success      201   {object}  dto.PlantingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/plantings [post]
func (h *PlantingHandler) Create(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "farm_id requerido"})
	}
	var in dto.CreatePlantingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(farmID, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter plantio por ID
// @Tags         plantings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do plantio"
// @Success      200  {object}  dto.PlantingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plantings/{id} [get]
func (h *PlantingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plantio não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar plantios
// @Tags         plantings
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "EM_ANDAMENTO | CONCLUIDO | CANCELADO"
// @Param        limit   query  int     false  "Limite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.PlantingListResponse
// @Router       /api/plantings [get]
func (h *PlantingHandler) List(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "farm_id requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(farmID, c.Query("status"), limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar plantio
// @Tags         plantings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do plantio"
// @Param        body  body  dto.UpdatePlantingRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.PlantingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/plantings/{id} [put]
func (h *PlantingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePlantingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plantio não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir plantio
// @Description  Cargas de colheita vinculadas permanecem, com o vínculo nulo.
// @Tags         plantings
// @Security     Bearer
// @Param        id  path  string  true  "ID do plantio"
// @Success      204
// @Router       /api/plantings/{id} [delete]
func (h *PlantingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
