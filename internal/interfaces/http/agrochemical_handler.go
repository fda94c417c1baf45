package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jprezende/AgroGestor-api/internal/application/dto"
	"github.com/jprezende/AgroGestor-api/internal/application/usecase"
	"github.com/jprezende/AgroGestor-api/internal/domain"
)

// AgrochemicalHandler trata as requisições HTTP para defensivos (protegido).
type AgrochemicalHandler struct {
	uc *usecase.AgrochemicalUseCase
}

// NewAgrochemicalHandler constrói o handler.
func NewAgrochemicalHandler(uc *usecase.AgrochemicalUseCase) *AgrochemicalHandler {
	return &AgrochemicalHandler{uc: uc}
}

// Create godoc
// @Summary      Criar defensivo
// @Description  Categoria vazia é inferida pela tabela NCM/palavra-chave.
// @Tags         agrochemicals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAgrochemicalRequest  true  "Dados do defensivo"
// @Success      201   {object}  dto.AgrochemicalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/agrochemicals [post]
func (h *AgrochemicalHandler) Create(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "farm_id requerido"})
	}
	var in dto.CreateAgrochemicalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.Create(farmID, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "defensivo já cadastrado nesta fazenda"})
		}
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter defensivo por ID
// @Tags         agrochemicals
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do defensivo"
// @Success      200  {object}  dto.AgrochemicalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agrochemicals/{id} [get]
func (h *AgrochemicalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "defensivo não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar defensivos
// @Tags         agrochemicals
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.AgrochemicalListResponse
// @Router       /api/agrochemicals [get]
func (h *AgrochemicalHandler) List(c *fiber.Ctx) error {
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
// @Summary      Atualizar defensivo
// @Description  NCM alterado sem categoria explícita reinfere a categoria.
// @Tags         agrochemicals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do defensivo"
// @Param        body  body  dto.UpdateAgrochemicalRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.AgrochemicalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/agrochemicals/{id} [put]
func (h *AgrochemicalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAgrochemicalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "defensivo não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir defensivo
// @Tags         agrochemicals
// @Security     Bearer
// @Param        id  path  string  true  "ID do defensivo"
// @Success      204
// @Router       /api/agrochemicals/{id} [delete]
func (h *AgrochemicalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
