package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

var _ repository.PlantingRepository = (*PlantingRepo)(nil)

// PlantingRepo implementação de PlantingRepository sobre PostgreSQL.
type PlantingRepo struct {
	q Querier
}

// NewPlantingRepository constrói o adaptador de persistência para plantios.
func NewPlantingRepository(q Querier) *PlantingRepo {
	return &PlantingRepo{q: q}
}

const plantingColumns = `id, farm_id, field_id, crop, variety, planting_date, area_ha, yield_target_kg, status, created_at, updated_at`

// Create persiste um plantio.
func (r *PlantingRepo) Create(planting *entity.Planting) error {
	query := `
		INSERT INTO plantings (` + plantingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		planting.ID, planting.FarmID, planting.FieldID, planting.Crop, planting.Variety,
		planting.PlantingDate, planting.AreaHa, planting.YieldTargetKg, planting.Status,
		planting.CreatedAt, planting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert planting: %w", err)
	}
	return nil
}

// GetByID obtém um plantio por ID.
func (r *PlantingRepo) GetByID(id string) (*entity.Planting, error) {
	query := `SELECT ` + plantingColumns + ` FROM plantings WHERE id = $1`
	var p entity.Planting
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.FarmID, &p.FieldID, &p.Crop, &p.Variety,
		&p.PlantingDate, &p.AreaHa, &p.YieldTargetKg, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get planting: %w", err)
	}
	return &p, nil
}

// Update atualiza um plantio.
func (r *PlantingRepo) Update(planting *entity.Planting) error {
	query := `
		UPDATE plantings
		SET crop = $2, variety = $3, area_ha = $4, yield_target_kg = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		planting.ID, planting.Crop, planting.Variety, planting.AreaHa,
		planting.YieldTargetKg, planting.Status, planting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update planting: %w", err)
	}
	return nil
}

// ListByFarm lista plantios, opcionalmente filtrando por status.
func (r *PlantingRepo) ListByFarm(farmID string, status string, limit, offset int) ([]*entity.Planting, int, error) {
	where := ` WHERE farm_id = $1`
	args := []any{farmID}
	pos := 2
	if status != "" {
		where += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM plantings`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count plantings: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM plantings%s ORDER BY planting_date DESC, id LIMIT $%d OFFSET $%d`,
		plantingColumns, where, pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list plantings: %w", err)
	}
	defer rows.Close()

	var list []*entity.Planting
	for rows.Next() {
		var p entity.Planting
		if err := rows.Scan(&p.ID, &p.FarmID, &p.FieldID, &p.Crop, &p.Variety,
			&p.PlantingDate, &p.AreaHa, &p.YieldTargetKg, &p.Status,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan planting: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// Delete remove um plantio. O FK de harvest_loads é ON DELETE SET NULL:
// as cargas vinculadas sobrevivem com o vínculo nulo.
func (r *PlantingRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM plantings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete planting: %w", err)
	}
	return nil
}
