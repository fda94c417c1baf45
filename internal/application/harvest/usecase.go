package harvest

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

// Config parâmetros de agregação de colheita.
type Config struct {
	SackWeightKg decimal.Decimal // peso da saca padrão (60 kg para soja/milho)
}

// UseCase registra cargas de colheita (romaneios) e produz os agregados por
// janela de filtro. Somente leitura em relação ao razão de estoque.
type UseCase struct {
	loads     repository.HarvestLoadRepository
	plantings repository.PlantingRepository
	cfg       Config
}

// NewUseCase constrói o caso de uso.
func NewUseCase(loads repository.HarvestLoadRepository, plantings repository.PlantingRepository, cfg Config) *UseCase {
	if cfg.SackWeightKg.IsZero() {
		cfg.SackWeightKg = decimal.NewFromInt(60)
	}
	return &UseCase{loads: loads, plantings: plantings, cfg: cfg}
}

// RegisterLoadInput entrada para registrar uma carga.
type RegisterLoadInput struct {
	FarmID       string
	Date         time.Time
	Crop         string
	FieldName    string
	PlantingID   *string
	Plate        string
	Driver       string
	Destination  string
	TicketNumber string
	GrossKg      decimal.Decimal
	TareKg       decimal.Decimal
	Notes        string
}

// RegisterLoad valida e persiste uma carga. Política estrita na entrada: o peso
// bruto deve exceder a tara (bruto == tara é rejeitado), nunca um clamp na
// exibição. O líquido é derivado e gravado junto.
func (uc *UseCase) RegisterLoad(input RegisterLoadInput) (*entity.HarvestLoad, error) {
	if input.Crop == "" || input.Date.IsZero() {
		return nil, fmt.Errorf("cultura e data são obrigatórias: %w", domain.ErrInvalidInput)
	}
	if !input.GrossKg.IsPositive() || input.TareKg.IsNegative() {
		return nil, fmt.Errorf("pesos bruto %s / tara %s: %w",
			input.GrossKg.String(), input.TareKg.String(), domain.ErrInvalidQuantity)
	}
	if input.GrossKg.LessThanOrEqual(input.TareKg) {
		return nil, fmt.Errorf("peso bruto %s não excede a tara %s: %w",
			input.GrossKg.String(), input.TareKg.String(), domain.ErrInvalidQuantity)
	}

	if input.PlantingID != nil && *input.PlantingID != "" {
		p, err := uc.plantings.GetByID(*input.PlantingID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.FarmID != input.FarmID {
			return nil, fmt.Errorf("plantio %s: %w", *input.PlantingID, domain.ErrNotFound)
		}
	} else {
		input.PlantingID = nil
	}

	load := &entity.HarvestLoad{
		ID:           uuid.New().String(),
		FarmID:       input.FarmID,
		Date:         input.Date,
		Crop:         input.Crop,
		FieldName:    input.FieldName,
		PlantingID:   input.PlantingID,
		Plate:        input.Plate,
		Driver:       input.Driver,
		Destination:  input.Destination,
		TicketNumber: input.TicketNumber,
		GrossKg:      input.GrossKg,
		TareKg:       input.TareKg,
		NetKg:        input.GrossKg.Sub(input.TareKg),
		Notes:        input.Notes,
		CreatedAt:    time.Now(),
	}
	if err := uc.loads.Create(load); err != nil {
		return nil, err
	}
	return load, nil
}

// ListLoads lista cargas com total para paginação.
func (uc *UseCase) ListLoads(filter repository.HarvestLoadFilter) ([]*entity.HarvestLoad, int, error) {
	return uc.loads.List(filter)
}

// ListAllLoads lista todas as cargas do filtro sem paginação, em ordem
// cronológica, para exportação e relatório.
func (uc *UseCase) ListAllLoads(filter repository.HarvestLoadFilter) ([]*entity.HarvestLoad, error) {
	return uc.loads.ListAll(filter)
}

// DeleteLoad exclui uma carga. Sem efeito no razão de estoque.
func (uc *UseCase) DeleteLoad(farmID, id string) error {
	load, err := uc.loads.GetByID(id)
	if err != nil {
		return err
	}
	if load == nil {
		return fmt.Errorf("carga %s: %w", id, domain.ErrNotFound)
	}
	if load.FarmID != farmID {
		return domain.ErrForbidden
	}
	return uc.loads.Delete(id)
}

// Summary agregados da janela de filtro.
type Summary struct {
	Loads           int             `json:"loads"`
	TotalGrossKg    decimal.Decimal `json:"total_gross_kg"`
	TotalTareKg     decimal.Decimal `json:"total_tare_kg"`
	TotalNetKg      decimal.Decimal `json:"total_net_kg"`
	ReferenceAreaHa decimal.Decimal `json:"reference_area_ha"`
	YieldKgPerHa    decimal.Decimal `json:"yield_kg_per_ha"`
	YieldSacksPerHa decimal.Decimal `json:"yield_sacks_per_ha"`
}

// Aggregate computa totais e produtividade das cargas visíveis no filtro.
// Área de referência: plantio filtrado > maior área entre os plantios
// vinculados às cargas visíveis > fallbackAreaHa informado pelo chamador.
// Sem área de referência a produtividade fica zerada.
func (uc *UseCase) Aggregate(filter repository.HarvestLoadFilter, fallbackAreaHa decimal.Decimal) (*Summary, error) {
	loads, err := uc.loads.ListAll(filter)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Loads:        len(loads),
		TotalGrossKg: decimal.Zero,
		TotalTareKg:  decimal.Zero,
		TotalNetKg:   decimal.Zero,
	}
	plantingIDs := map[string]struct{}{}
	for _, l := range loads {
		s.TotalGrossKg = s.TotalGrossKg.Add(l.GrossKg)
		s.TotalTareKg = s.TotalTareKg.Add(l.TareKg)
		s.TotalNetKg = s.TotalNetKg.Add(l.NetKg)
		if l.PlantingID != nil {
			plantingIDs[*l.PlantingID] = struct{}{}
		}
	}

	area, err := uc.referenceArea(filter, plantingIDs, fallbackAreaHa)
	if err != nil {
		return nil, err
	}
	s.ReferenceAreaHa = area
	if area.IsPositive() {
		s.YieldKgPerHa = s.TotalNetKg.DivRound(area, 2)
		s.YieldSacksPerHa = s.TotalNetKg.DivRound(area.Mul(uc.cfg.SackWeightKg), 2)
	} else {
		s.YieldKgPerHa = decimal.Zero
		s.YieldSacksPerHa = decimal.Zero
	}
	return s, nil
}

func (uc *UseCase) referenceArea(filter repository.HarvestLoadFilter, plantingIDs map[string]struct{}, fallback decimal.Decimal) (decimal.Decimal, error) {
	if filter.PlantingID != "" {
		p, err := uc.plantings.GetByID(filter.PlantingID)
		if err != nil {
			return decimal.Zero, err
		}
		if p == nil {
			return decimal.Zero, fmt.Errorf("plantio %s: %w", filter.PlantingID, domain.ErrNotFound)
		}
		return p.AreaHa, nil
	}
	maxArea := decimal.Zero
	for id := range plantingIDs {
		p, err := uc.plantings.GetByID(id)
		if err != nil {
			return decimal.Zero, err
		}
		// Vínculo pendurado (plantio excluído) é tolerado: só ignora.
		if p != nil && p.AreaHa.GreaterThan(maxArea) {
			maxArea = p.AreaHa
		}
	}
	if maxArea.IsPositive() {
		return maxArea, nil
	}
	return fallback, nil
}
