package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

var _ repository.FarmRepository = (*FarmRepo)(nil)

// FarmRepo implementação de FarmRepository sobre PostgreSQL.
type FarmRepo struct {
	q Querier
}

// NewFarmRepository constrói o adaptador de persistência para fazendas.
func NewFarmRepository(q Querier) *FarmRepo {
	return &FarmRepo{q: q}
}

// Create persiste uma fazenda.
func (r *FarmRepo) Create(farm *entity.Farm) error {
	query := `
		INSERT INTO farms (id, name, owner, city, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		farm.ID, farm.Name, farm.Owner, farm.City, farm.State,
		farm.CreatedAt, farm.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert farm: %w", err)
	}
	return nil
}

// GetByID obtém uma fazenda por ID.
func (r *FarmRepo) GetByID(id string) (*entity.Farm, error) {
	query := `
		SELECT id, name, owner, city, state, created_at, updated_at
		FROM farms WHERE id = $1`
	var f entity.Farm
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Name, &f.Owner, &f.City, &f.State, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get farm: %w", err)
	}
	return &f, nil
}

// Update atualiza uma fazenda.
func (r *FarmRepo) Update(farm *entity.Farm) error {
	query := `
		UPDATE farms SET name = $2, owner = $3, city = $4, state = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		farm.ID, farm.Name, farm.Owner, farm.City, farm.State, farm.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update farm: %w", err)
	}
	return nil
}

// List lista fazendas com total para paginação.
func (r *FarmRepo) List(limit, offset int) ([]*entity.Farm, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM farms`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count farms: %w", err)
	}

	query := `
		SELECT id, name, owner, city, state, created_at, updated_at
		FROM farms ORDER BY name, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list farms: %w", err)
	}
	defer rows.Close()

	var list []*entity.Farm
	for rows.Next() {
		var f entity.Farm
		if err := rows.Scan(&f.ID, &f.Name, &f.Owner, &f.City, &f.State,
			&f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan farm: %w", err)
		}
		list = append(list, &f)
	}
	return list, total, rows.Err()
}
