package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterHarvestLoadRequest body para POST /api/harvest-loads.
type RegisterHarvestLoadRequest struct {
	Date         string          `json:"date"` // 2006-01-02
	Crop         string          `json:"crop"`
	FieldName    string          `json:"field_name"`
	PlantingID   *string         `json:"planting_id,omitempty"`
	Plate        string          `json:"plate"`
	Driver       string          `json:"driver"`
	Destination  string          `json:"destination"`
	TicketNumber string          `json:"ticket_number"`
	GrossKg      decimal.Decimal `json:"gross_kg"`
	TareKg       decimal.Decimal `json:"tare_kg"`
	Notes        string          `json:"notes"`
}

// HarvestLoadResponse representação de HarvestLoad nas respostas.
type HarvestLoadResponse struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	Crop         string          `json:"crop"`
	FieldName    string          `json:"field_name,omitempty"`
	PlantingID   *string         `json:"planting_id,omitempty"`
	Plate        string          `json:"plate,omitempty"`
	Driver       string          `json:"driver,omitempty"`
	Destination  string          `json:"destination,omitempty"`
	TicketNumber string          `json:"ticket_number,omitempty"`
	GrossKg      decimal.Decimal `json:"gross_kg"`
	TareKg       decimal.Decimal `json:"tare_kg"`
	NetKg        decimal.Decimal `json:"net_kg"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// HarvestLoadListResponse listagem paginada.
type HarvestLoadListResponse struct {
	Items []HarvestLoadResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ---- Plantios ----

// CreatePlantingRequest body para POST /api/plantings.
type CreatePlantingRequest struct {
	FieldID       string `json:"field_id"`
	Crop          string `json:"crop"`
	Variety       string `json:"variety"`
	PlantingDate  string `json:"planting_date"` // 2006-01-02
	AreaHa        string `json:"area_ha"`       // decimal como string
	YieldTargetKg string `json:"yield_target_kg"`
}

// UpdatePlantingRequest body para PUT /api/plantings/:id.
type UpdatePlantingRequest struct {
	Crop          *string `json:"crop"`
	Variety       *string `json:"variety"`
	AreaHa        *string `json:"area_ha"`
	YieldTargetKg *string `json:"yield_target_kg"`
	Status        *string `json:"status"`
}

// PlantingResponse representação de Planting nas respostas.
type PlantingResponse struct {
	ID            string          `json:"id"`
	FarmID        string          `json:"farm_id"`
	FieldID       string          `json:"field_id"`
	Crop          string          `json:"crop"`
	Variety       string          `json:"variety,omitempty"`
	PlantingDate  time.Time       `json:"planting_date"`
	AreaHa        decimal.Decimal `json:"area_ha"`
	YieldTargetKg decimal.Decimal `json:"yield_target_kg"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PlantingListResponse listagem paginada.
type PlantingListResponse struct {
	Items []PlantingResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
