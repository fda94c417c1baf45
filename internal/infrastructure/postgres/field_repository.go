package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

var _ repository.FieldRepository = (*FieldRepo)(nil)

// FieldRepo implementação de FieldRepository sobre PostgreSQL.
type FieldRepo struct {
	q Querier
}

// NewFieldRepository constrói o adaptador de persistência para talhões.
func NewFieldRepository(q Querier) *FieldRepo {
	return &FieldRepo{q: q}
}

// Create persiste um talhão.
func (r *FieldRepo) Create(field *entity.Field) error {
	query := `
		INSERT INTO fields (id, farm_id, name, area_ha, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		field.ID, field.FarmID, field.Name, field.AreaHa, field.Notes,
		field.CreatedAt, field.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert field: %w", err)
	}
	return nil
}

// GetByID obtém um talhão por ID.
func (r *FieldRepo) GetByID(id string) (*entity.Field, error) {
	query := `
		SELECT id, farm_id, name, area_ha, notes, created_at, updated_at
		FROM fields WHERE id = $1`
	var f entity.Field
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.FarmID, &f.Name, &f.AreaHa, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get field: %w", err)
	}
	return &f, nil
}

// Update atualiza um talhão.
func (r *FieldRepo) Update(field *entity.Field) error {
	query := `
		UPDATE fields SET name = $2, area_ha = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		field.ID, field.Name, field.AreaHa, field.Notes, field.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update field: %w", err)
	}
	return nil
}

// ListByFarm lista talhões da fazenda com total para paginação.
func (r *FieldRepo) ListByFarm(farmID string, limit, offset int) ([]*entity.Field, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM fields WHERE farm_id = $1`, farmID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count fields: %w", err)
	}

	query := `
		SELECT id, farm_id, name, area_ha, notes, created_at, updated_at
		FROM fields WHERE farm_id = $1
		ORDER BY name, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, farmID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list fields: %w", err)
	}
	defer rows.Close()

	var list []*entity.Field
	for rows.Next() {
		var f entity.Field
		if err := rows.Scan(&f.ID, &f.FarmID, &f.Name, &f.AreaHa, &f.Notes,
			&f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan field: %w", err)
		}
		list = append(list, &f)
	}
	return list, total, rows.Err()
}

// Delete remove um talhão.
func (r *FieldRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fields WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete field: %w", err)
	}
	return nil
}
