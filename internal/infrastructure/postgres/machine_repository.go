package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

var _ repository.MachineRepository = (*MachineRepo)(nil)

// MachineRepo implementação de MachineRepository sobre PostgreSQL.
type MachineRepo struct {
	q Querier
}

// NewMachineRepository constrói o adaptador de persistência para máquinas.
func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

// Create persiste uma máquina.
func (r *MachineRepo) Create(machine *entity.Machine) error {
	query := `
		INSERT INTO machines (id, farm_id, name, model, plate, year, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		machine.ID, machine.FarmID, machine.Name, machine.Model, machine.Plate,
		machine.Year, machine.Active, machine.CreatedAt, machine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert machine: %w", err)
	}
	return nil
}

// GetByID obtém uma máquina por ID.
func (r *MachineRepo) GetByID(id string) (*entity.Machine, error) {
	query := `
		SELECT id, farm_id, name, model, plate, year, active, created_at, updated_at
		FROM machines WHERE id = $1`
	var m entity.Machine
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.FarmID, &m.Name, &m.Model, &m.Plate, &m.Year, &m.Active,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine: %w", err)
	}
	return &m, nil
}

// Update atualiza uma máquina.
func (r *MachineRepo) Update(machine *entity.Machine) error {
	query := `
		UPDATE machines SET name = $2, model = $3, plate = $4, year = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		machine.ID, machine.Name, machine.Model, machine.Plate,
		machine.Year, machine.Active, machine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update machine: %w", err)
	}
	return nil
}

// ListByFarm lista máquinas da fazenda com total para paginação.
func (r *MachineRepo) ListByFarm(farmID string, limit, offset int) ([]*entity.Machine, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM machines WHERE farm_id = $1`, farmID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count machines: %w", err)
	}

	query := `
		SELECT id, farm_id, name, model, plate, year, active, created_at, updated_at
		FROM machines WHERE farm_id = $1
		ORDER BY name, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, farmID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()

	var list []*entity.Machine
	for rows.Next() {
		var m entity.Machine
		if err := rows.Scan(&m.ID, &m.FarmID, &m.Name, &m.Model, &m.Plate,
			&m.Year, &m.Active, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan machine: %w", err)
		}
		list = append(list, &m)
	}
	return list, total, rows.Err()
}

// Delete remove uma máquina.
func (r *MachineRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM machines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete machine: %w", err)
	}
	return nil
}
