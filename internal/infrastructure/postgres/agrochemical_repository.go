package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

var _ repository.AgrochemicalRepository = (*AgrochemicalRepo)(nil)

// AgrochemicalRepo implementação de AgrochemicalRepository sobre PostgreSQL
// (usável com pool ou tx).
type AgrochemicalRepo struct {
	q Querier
}

// NewAgrochemicalRepository constrói o adaptador de persistência para defensivos.
func NewAgrochemicalRepository(q Querier) *AgrochemicalRepo {
	return &AgrochemicalRepo{q: q}
}

const agrochemicalColumns = `id, farm_id, name, ncm_code, category, unit, manufacturer, registry_number, toxicity_class, location, created_at, updated_at`

// Create persiste um novo defensivo.
func (r *AgrochemicalRepo) Create(item *entity.Agrochemical) error {
	query := `
		INSERT INTO agrochemicals (` + agrochemicalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.FarmID, item.Name, item.NCMCode, item.Category,
		item.Unit, item.Manufacturer, item.RegistryNumber, item.ToxicityClass,
		item.Location, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("defensivo %s: %w", item.Name, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert agrochemical: %w", err)
	}
	return nil
}

// GetByID obtém um defensivo por ID.
func (r *AgrochemicalRepo) GetByID(id string) (*entity.Agrochemical, error) {
	query := `SELECT ` + agrochemicalColumns + ` FROM agrochemicals WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByFarmAndRegistry localiza pelo registro MAPA.
func (r *AgrochemicalRepo) GetByFarmAndRegistry(farmID, registryNumber string) (*entity.Agrochemical, error) {
	query := `SELECT ` + agrochemicalColumns + ` FROM agrochemicals WHERE farm_id = $1 AND registry_number = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, farmID, registryNumber))
}

// GetByFarmAndName localiza pelo nome exato (chave de deduplicação na importação).
func (r *AgrochemicalRepo) GetByFarmAndName(farmID, name string) (*entity.Agrochemical, error) {
	query := `SELECT ` + agrochemicalColumns + ` FROM agrochemicals WHERE farm_id = $1 AND name = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, farmID, name))
}

// Update atualiza um defensivo existente.
func (r *AgrochemicalRepo) Update(item *entity.Agrochemical) error {
	query := `
		UPDATE agrochemicals
		SET name = $2, ncm_code = $3, category = $4, unit = $5, manufacturer = $6,
		    registry_number = $7, toxicity_class = $8, location = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.NCMCode, item.Category, item.Unit,
		item.Manufacturer, item.RegistryNumber, item.ToxicityClass,
		item.Location, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agrochemical: %w", err)
	}
	return nil
}

// ListByFarm lista defensivos da fazenda com total para paginação.
func (r *AgrochemicalRepo) ListByFarm(farmID string, limit, offset int) ([]*entity.Agrochemical, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM agrochemicals WHERE farm_id = $1`, farmID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count agrochemicals: %w", err)
	}

	query := `SELECT ` + agrochemicalColumns + ` FROM agrochemicals WHERE farm_id = $1 ORDER BY name, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, farmID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list agrochemicals: %w", err)
	}
	defer rows.Close()

	var list []*entity.Agrochemical
	for rows.Next() {
		var a entity.Agrochemical
		if err := rows.Scan(&a.ID, &a.FarmID, &a.Name, &a.NCMCode, &a.Category,
			&a.Unit, &a.Manufacturer, &a.RegistryNumber, &a.ToxicityClass,
			&a.Location, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan agrochemical: %w", err)
		}
		list = append(list, &a)
	}
	return list, total, rows.Err()
}

// Delete remove um defensivo.
func (r *AgrochemicalRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM agrochemicals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete agrochemical: %w", err)
	}
	return nil
}

func (r *AgrochemicalRepo) scanOne(row pgx.Row) (*entity.Agrochemical, error) {
	var a entity.Agrochemical
	err := row.Scan(&a.ID, &a.FarmID, &a.Name, &a.NCMCode, &a.Category,
		&a.Unit, &a.Manufacturer, &a.RegistryNumber, &a.ToxicityClass,
		&a.Location, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agrochemical: %w", err)
	}
	return &a, nil
}
