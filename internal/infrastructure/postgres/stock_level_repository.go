package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementação de StockLevelRepository sobre PostgreSQL
// (usável com pool ou tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// Get obtém a quantidade em mãos de um item. Item sem linha = quantidade zero.
func (r *StockLevelRepo) Get(ref entity.ItemRef) (*entity.StockLevel, error) {
	query := `
		SELECT item_kind, item_id, quantity, updated_at
		FROM stock_levels WHERE item_kind = $1 AND item_id = $2`
	var l entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, ref.Kind, ref.ID).Scan(
		&l.ItemKind, &l.ItemID, &l.Quantity, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{ItemKind: ref.Kind, ItemID: ref.ID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &l, nil
}

// GetForUpdate obtém o nível e bloqueia a linha (SELECT FOR UPDATE).
// Serializa escritores concorrentes do mesmo item dentro da tx corrente.
// Item sem linha: a linha zero é materializada primeiro, porque FOR UPDATE
// sobre zero linhas não adquire lock nenhum e duas primeiras movimentações
// concorrentes do mesmo item se intercalariam.
func (r *StockLevelRepo) GetForUpdate(ref entity.ItemRef) (*entity.StockLevel, error) {
	seed := `
		INSERT INTO stock_levels (item_kind, item_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (item_kind, item_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), seed, ref.Kind, ref.ID); err != nil {
		return nil, fmt.Errorf("seed stock level: %w", err)
	}

	query := `
		SELECT item_kind, item_id, quantity, updated_at
		FROM stock_levels WHERE item_kind = $1 AND item_id = $2
		FOR UPDATE`
	var l entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, ref.Kind, ref.ID).Scan(
		&l.ItemKind, &l.ItemID, &l.Quantity, &l.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock level for update: %w", err)
	}
	return &l, nil
}

// Upsert insere ou atualiza a quantidade do item.
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (item_kind, item_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (item_kind, item_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, level.ItemKind, level.ItemID, level.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}
