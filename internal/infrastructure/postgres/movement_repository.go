package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação de MovementRepository sobre PostgreSQL
// (usável com pool ou tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste uma movimentação.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, farm_id, item_kind, item_id, type, quantity, employee_id, machine_id, activity, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.FarmID, movement.ItemKind, movement.ItemID,
		movement.Type, movement.Quantity, movement.EmployeeID, movement.MachineID,
		movement.Activity, movement.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT id, farm_id, item_kind, item_id, type, quantity, employee_id, machine_id, activity, created_at, created_by
		FROM movements WHERE id = $1`
	var m entity.Movement
	var createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.FarmID, &m.ItemKind, &m.ItemID, &m.Type,
		&m.Quantity, &m.EmployeeID, &m.MachineID, &m.Activity, &m.CreatedAt, &createdBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	return &m, nil
}

// Delete remove a movimentação. O estorno no razão é responsabilidade do caso
// de uso, dentro da mesma transação.
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// ListWithRefs lista movimentações com nome de item, funcionário e máquina
// resolvidos, e o total para paginação.
func (r *MovementRepo) ListWithRefs(filter repository.MovementFilter) ([]*entity.MovementWithRefs, int, error) {
	base := `
		FROM movements m
		LEFT JOIN products p ON m.item_kind = 'PRODUTO' AND p.id = m.item_id
		LEFT JOIN agrochemicals a ON m.item_kind = 'DEFENSIVO' AND a.id = m.item_id
		LEFT JOIN employees e ON e.id = m.employee_id
		LEFT JOIN machines mq ON mq.id = m.machine_id
		WHERE m.farm_id = $1`
	args := []any{filter.FarmID}
	pos := 2
	if filter.ItemKind != "" {
		base += fmt.Sprintf(" AND m.item_kind = $%d", pos)
		args = append(args, filter.ItemKind)
		pos++
	}
	if filter.ItemID != "" {
		base += fmt.Sprintf(" AND m.item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.Type != "" {
		base += fmt.Sprintf(" AND m.type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		base += fmt.Sprintf(" AND m.created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		base += fmt.Sprintf(" AND m.created_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT COUNT(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	query := `
		SELECT m.id, m.farm_id, m.item_kind, m.item_id, m.type, m.quantity,
		       m.employee_id, m.machine_id, m.activity, m.created_at, m.created_by,
		       COALESCE(p.name, a.name, '') AS item_name,
		       COALESCE(e.name, '') AS employee_name,
		       COALESCE(mq.name, '') AS machine_name ` +
		base + fmt.Sprintf(" ORDER BY m.created_at DESC, m.id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovementWithRefs
	for rows.Next() {
		var m entity.MovementWithRefs
		var createdBy *string
		if err := rows.Scan(
			&m.ID, &m.FarmID, &m.ItemKind, &m.ItemID, &m.Type, &m.Quantity,
			&m.EmployeeID, &m.MachineID, &m.Activity, &m.CreatedAt, &createdBy,
			&m.ItemName, &m.EmployeeName, &m.MachineName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, total, rows.Err()
}
