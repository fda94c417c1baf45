package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jprezende/AgroGestor-api/internal/application/dto"
	"github.com/jprezende/AgroGestor-api/internal/application/inventory"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
)

// StockHandler trata consulta de saldo e acerto de inventário (protegido).
type StockHandler struct {
	ledger    *inventory.LedgerQuery
	reconcile *inventory.ReconcileUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(ledger *inventory.LedgerQuery, reconcile *inventory.ReconcileUseCase) *StockHandler {
	return &StockHandler{ledger: ledger, reconcile: reconcile}
}

// GetQuantity godoc
// @Summary      Consultar saldo de um item
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "produto | defensivo"
// @Param        id    path  string  true  "ID do item"
// @Success      200   {object}  dto.StockQuantityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{kind}/{id} [get]
func (h *StockHandler) GetQuantity(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	ref := entity.ItemRef{
		Kind: strings.ToUpper(c.Params("kind")),
		ID:   c.Params("id"),
	}
	qty, err := h.ledger.GetQuantity(farmID, ref)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.StockQuantityResponse{
		ItemKind: ref.Kind,
		ItemID:   ref.ID,
		Quantity: qty,
	})
}

// Reconcile godoc
// @Summary      Acerto de inventário por contagem física
// @Description  Para cada item divergente registra uma movimentação de ajuste.
//
//	Itens que falham não abortam os demais; o resultado traz as falhas.
//	HTTP 200 quando tudo aplica, 207 quando houve falha parcial.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileRequest  true  "Linhas de contagem"
// @Success      200   {object}  inventory.BatchResult
// @Success      207   {object}  inventory.BatchResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/reconcile [post]
func (h *StockHandler) Reconcile(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	userID := GetUserID(c)
	if farmID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ReconcileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if len(in.Lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lines não pode ser vazio"})
	}
	lines := make([]inventory.CountLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, inventory.CountLine{
			ItemKind: l.ItemKind,
			ItemID:   l.ItemID,
			Counted:  l.Counted,
		})
	}
	result, err := h.reconcile.Apply(c.Context(), farmID, userID, lines)
	if err != nil {
		return writeDomainError(c, err)
	}
	status := fiber.StatusOK
	if result.PartialFailure() {
		status = fiber.StatusMultiStatus
	}
	return c.Status(status).JSON(result)
}
