package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jprezende/AgroGestor-api/internal/application/dto"
	"github.com/jprezende/AgroGestor-api/internal/application/usecase"
)

// FarmHandler trata as requisições HTTP para Farm.
type FarmHandler struct {
	uc *usecase.FarmUseCase
}

// NewFarmHandler constrói o handler.
func NewFarmHandler(uc *usecase.FarmUseCase) *FarmHandler {
	return &FarmHandler{uc: uc}
}

// Create godoc
// @Summary      Criar fazenda
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFarmRequest  true  "Dados da fazenda"
// @Success      201   {object}  dto.FarmResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/farms [post]
func (h *FarmHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFarmRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter fazenda por ID
// @Tags         farms
// @Produce      json
// @Param        id   path  string  true  "ID da fazenda"
// @Success      200  {object}  dto.FarmResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/farms/{id} [get]
func (h *FarmHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fazenda não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar fazendas
// @Tags         farms
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.FarmListResponse
// @Router       /api/farms [get]
func (h *FarmHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
