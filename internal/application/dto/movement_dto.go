package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para POST /api/movements.
type RecordMovementRequest struct {
	ItemKind   string          `json:"item_kind"` // PRODUTO ou DEFENSIVO
	ItemID     string          `json:"item_id"`
	Type       string          `json:"type"` // ENTRADA ou SAIDA
	Quantity   decimal.Decimal `json:"quantity"`
	EmployeeID *string         `json:"employee_id,omitempty"`
	MachineID  *string         `json:"machine_id,omitempty"`
	Activity   string          `json:"activity,omitempty"`
}

// MovementResponse movimentação com campos de exibição resolvidos.
type MovementResponse struct {
	ID           string          `json:"id"`
	ItemKind     string          `json:"item_kind"`
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	EmployeeID   *string         `json:"employee_id,omitempty"`
	EmployeeName string          `json:"employee_name,omitempty"`
	MachineID    *string         `json:"machine_id,omitempty"`
	MachineName  string          `json:"machine_name,omitempty"`
	Activity     string          `json:"activity,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// MovementListResponse listagem paginada.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockQuantityResponse resposta de GET /api/stock/:kind/:id.
type StockQuantityResponse struct {
	ItemKind string          `json:"item_kind"`
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ReconcileLineRequest uma contagem física de um item.
type ReconcileLineRequest struct {
	ItemKind string          `json:"item_kind"`
	ItemID   string          `json:"item_id"`
	Counted  decimal.Decimal `json:"counted"`
}

// ReconcileRequest body para POST /api/inventory/reconcile.
type ReconcileRequest struct {
	Lines []ReconcileLineRequest `json:"lines"`
}
