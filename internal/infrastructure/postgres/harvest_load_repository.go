package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

var _ repository.HarvestLoadRepository = (*HarvestLoadRepo)(nil)

// HarvestLoadRepo implementação de HarvestLoadRepository sobre PostgreSQL.
type HarvestLoadRepo struct {
	q Querier
}

// NewHarvestLoadRepository constrói o adaptador de persistência para cargas.
func NewHarvestLoadRepository(q Querier) *HarvestLoadRepo {
	return &HarvestLoadRepo{q: q}
}

const harvestLoadColumns = `id, farm_id, date, crop, field_name, planting_id, plate, driver, destination, ticket_number, gross_kg, tare_kg, net_kg, notes, created_at`

// Create persiste uma carga de colheita.
func (r *HarvestLoadRepo) Create(load *entity.HarvestLoad) error {
	query := `
		INSERT INTO harvest_loads (` + harvestLoadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		load.ID, load.FarmID, load.Date, load.Crop, load.FieldName, load.PlantingID,
		load.Plate, load.Driver, load.Destination, load.TicketNumber,
		load.GrossKg, load.TareKg, load.NetKg, load.Notes, load.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert harvest load: %w", err)
	}
	return nil
}

// GetByID obtém uma carga por ID.
func (r *HarvestLoadRepo) GetByID(id string) (*entity.HarvestLoad, error) {
	query := `SELECT ` + harvestLoadColumns + ` FROM harvest_loads WHERE id = $1`
	var l entity.HarvestLoad
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.FarmID, &l.Date, &l.Crop, &l.FieldName, &l.PlantingID,
		&l.Plate, &l.Driver, &l.Destination, &l.TicketNumber,
		&l.GrossKg, &l.TareKg, &l.NetKg, &l.Notes, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get harvest load: %w", err)
	}
	return &l, nil
}

// whereClause monta o WHERE compartilhado por List, ListAll e COUNT.
// Crop e FieldName filtram por substring ignorando caixa e acentos (unaccent).
func (r *HarvestLoadRepo) whereClause(filter repository.HarvestLoadFilter) (string, []any) {
	where := " WHERE farm_id = $1"
	args := []any{filter.FarmID}
	pos := 2
	if filter.From != nil {
		where += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	if filter.Crop != "" {
		where += fmt.Sprintf(" AND unaccent(crop) ILIKE unaccent('%%' || $%d || '%%')", pos)
		args = append(args, filter.Crop)
		pos++
	}
	if filter.FieldName != "" {
		where += fmt.Sprintf(" AND unaccent(field_name) ILIKE unaccent('%%' || $%d || '%%')", pos)
		args = append(args, filter.FieldName)
		pos++
	}
	if filter.PlantingID != "" {
		where += fmt.Sprintf(" AND planting_id = $%d", pos)
		args = append(args, filter.PlantingID)
		pos++
	}
	return where, args
}

// List lista cargas com total para paginação.
func (r *HarvestLoadRepo) List(filter repository.HarvestLoadFilter) ([]*entity.HarvestLoad, int, error) {
	where, args := r.whereClause(filter)

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM harvest_loads`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count harvest loads: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM harvest_loads%s ORDER BY date DESC, created_at DESC, id LIMIT $%d OFFSET $%d`,
		harvestLoadColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	list, err := r.queryLoads(query, args)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListAll devolve todas as cargas do filtro, sem paginação (agregação e export).
func (r *HarvestLoadRepo) ListAll(filter repository.HarvestLoadFilter) ([]*entity.HarvestLoad, error) {
	where, args := r.whereClause(filter)
	query := `SELECT ` + harvestLoadColumns + ` FROM harvest_loads` + where + ` ORDER BY date, created_at, id`
	return r.queryLoads(query, args)
}

// Delete remove uma carga.
func (r *HarvestLoadRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM harvest_loads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete harvest load: %w", err)
	}
	return nil
}

func (r *HarvestLoadRepo) queryLoads(query string, args []any) ([]*entity.HarvestLoad, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list harvest loads: %w", err)
	}
	defer rows.Close()

	var list []*entity.HarvestLoad
	for rows.Next() {
		var l entity.HarvestLoad
		if err := rows.Scan(
			&l.ID, &l.FarmID, &l.Date, &l.Crop, &l.FieldName, &l.PlantingID,
			&l.Plate, &l.Driver, &l.Destination, &l.TicketNumber,
			&l.GrossKg, &l.TareKg, &l.NetKg, &l.Notes, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan harvest load: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
