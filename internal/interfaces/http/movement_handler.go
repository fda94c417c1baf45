package http

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jprezende/AgroGestor-api/internal/application/dto"
	"github.com/jprezende/AgroGestor-api/internal/application/inventory"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

// MovementHandler trata as requisições HTTP de movimentações de estoque (protegido).
type MovementHandler struct {
	recorder *inventory.RecorderUseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(recorder *inventory.RecorderUseCase) *MovementHandler {
	return &MovementHandler{recorder: recorder}
}

// movementFilterFromQuery monta o filtro de listagem a partir da query string.
// Datas no formato 2006-01-02; "to" é inclusivo até o fim do dia.
func movementFilterFromQuery(c *fiber.Ctx, farmID string) repository.MovementFilter {
	limit, offset := pageParams(c)
	filter := repository.MovementFilter{
		FarmID:   farmID,
		ItemKind: c.Query("item_kind"),
		ItemID:   c.Query("item_id"),
		Type:     c.Query("type"),
		Limit:    limit,
		Offset:   offset,
	}
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.From = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			filter.To = &end
		}
	}
	return filter
}

// Record godoc
// @Summary      Registrar movimentação de estoque
// @Description  ENTRADA soma e SAIDA subtrai do razão; saída maior que o saldo é rejeitada.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "item_kind, item_id, type, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	userID := GetUserID(c)
	if farmID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.recorder.RecordMovement(c.Context(), inventory.RecordMovementInput{
		FarmID:     farmID,
		UserID:     userID,
		ItemKind:   in.ItemKind,
		ItemID:     in.ItemID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		EmployeeID: in.EmployeeID,
		MachineID:  in.MachineID,
		Activity:   in.Activity,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(out))
}

// Delete godoc
// @Summary      Excluir movimentação (estorno)
// @Description  Excluir aplica o delta inverso no razão; se o estorno deixaria o saldo negativo, a exclusão é rejeitada.
// @Tags         movements
// @Security     Bearer
// @Param        id  path  string  true  "ID da movimentação"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.recorder.DeleteMovement(c.Context(), farmID, c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar movimentações
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        item_kind  query  string  false  "PRODUTO | DEFENSIVO"
// @Param        item_id    query  string  false  "Filtrar por item"
// @Param        type       query  string  false  "ENTRADA | SAIDA"
// @Param        from       query  string  false  "Data inicial (2006-01-02)"
// @Param        to         query  string  false  "Data final inclusiva (2006-01-02)"
// @Param        limit      query  int     false  "Limite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	filter := movementFilterFromQuery(c, farmID)
	list, total, err := h.recorder.ListMovements(filter)
	if err != nil {
		return writeDomainError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset, Total: total},
	})
}

// ExportCSV godoc
// @Summary      Exportar movimentações em CSV
// @Tags         movements
// @Security     Bearer
// @Produce      text/csv
// @Param        item_kind  query  string  false  "PRODUTO | DEFENSIVO"
// @Param        from       query  string  false  "Data inicial (2006-01-02)"
// @Param        to         query  string  false  "Data final inclusiva (2006-01-02)"
// @Success      200  {string}  string  "arquivo CSV"
// @Router       /api/movements/export.csv [get]
func (h *MovementHandler) ExportCSV(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	filter := movementFilterFromQuery(c, farmID)
	// export ignora a paginação da query
	filter.Limit = 10000
	filter.Offset = 0
	list, _, err := h.recorder.ListMovements(filter)
	if err != nil {
		return writeDomainError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"data", "tipo_item", "item", "tipo", "quantidade", "funcionario", "maquina", "atividade"})
	for _, m := range list {
		_ = w.Write([]string{
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.ItemKind,
			m.ItemName,
			m.Type,
			m.Quantity.String(),
			m.EmployeeName,
			m.MachineName,
			m.Activity,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return writeDomainError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimentacoes.csv"`)
	return c.Send(buf.Bytes())
}

func toMovementResponse(m *entity.MovementWithRefs) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		ItemKind:     m.ItemKind,
		ItemID:       m.ItemID,
		ItemName:     m.ItemName,
		Type:         m.Type,
		Quantity:     m.Quantity,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		MachineID:    m.MachineID,
		MachineName:  m.MachineName,
		Activity:     m.Activity,
		CreatedAt:    m.CreatedAt,
	}
}
