package postgres_test

// Testes de integração dos adaptadores PostgreSQL. Rodam apenas com
// TEST_DATABASE_URL apontando para um banco com migrations/schema.sql
// aplicado; sem a variável, são pulados.

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
	"github.com/jprezende/AgroGestor-api/internal/infrastructure/postgres"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL não definido; pulando testes de integração")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// Duas primeiras movimentações concorrentes de um item recém-criado (sem linha
// no razão) não podem se perder: GetForUpdate materializa a linha zero antes do
// FOR UPDATE, então a segunda tx espera a primeira e lê o saldo já commitado.
// Sem isso, FOR UPDATE sobre zero linhas não trava nada e a segunda escrita
// sobrescreveria a primeira (nível 10 com duas entradas de 10).
func TestGetForUpdate_PrimeirasEntradasConcorrentesNaoSePerdem(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	ref := entity.ItemRef{Kind: entity.ItemKindProduct, ID: uuid.New().String()}

	apply := func(delta decimal.Decimal) error {
		tx, err := pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(ctx) }()

		repo := postgres.NewStockLevelRepository(tx)
		level, err := repo.GetForUpdate(ref)
		if err != nil {
			return err
		}
		level.Quantity = level.Quantity.Add(delta)
		level.UpdatedAt = time.Now()
		if err := repo.Upsert(level); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- apply(decimal.NewFromInt(10))
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	level, err := postgres.NewStockLevelRepository(pool).Get(ref)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20).Equal(level.Quantity),
		"saldo final deve ser 20 (10+10), obtido %s", level.Quantity.String())
}

// GetForUpdate de um item nunca movimentado devolve saldo zero, e a linha
// materializada fica visível após o commit.
func TestGetForUpdate_ItemNovoComecaEmZero(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	ref := entity.ItemRef{Kind: entity.ItemKindAgrochemical, ID: uuid.New().String()}

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	level, err := postgres.NewStockLevelRepository(tx).GetForUpdate(ref)
	require.NoError(t, err)
	assert.True(t, level.Quantity.IsZero())
	require.NoError(t, tx.Commit(ctx))

	after, err := postgres.NewStockLevelRepository(pool).Get(ref)
	require.NoError(t, err)
	assert.True(t, after.Quantity.IsZero())
}

// Movimentações com o mesmo created_at mantêm ordem estável entre páginas:
// o desempate é por id.
func TestListWithRefs_OrdemEstavelComTimestampsIguais(t *testing.T) {
	pool := testPool(t)
	now := time.Now().UTC().Truncate(time.Second)

	farms := postgres.NewFarmRepository(pool)
	farm := &entity.Farm{
		ID:        uuid.New().String(),
		Name:      "Fazenda Teste Ordenação",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, farms.Create(farm))

	movements := postgres.NewMovementRepository(pool)
	itemID := uuid.New().String()
	ids := []string{
		"00000000-0000-0000-0000-00000000000a",
		"00000000-0000-0000-0000-00000000000b",
		"00000000-0000-0000-0000-00000000000c",
	}
	for _, id := range ids {
		require.NoError(t, movements.Create(&entity.Movement{
			ID:        id,
			FarmID:    farm.ID,
			ItemKind:  entity.ItemKindProduct,
			ItemID:    itemID,
			Type:      entity.MovementTypeEntrada,
			Quantity:  decimal.NewFromInt(1),
			CreatedAt: now,
		}))
	}

	list, total, err := movements.ListWithRefs(repositoryFilter(farm.ID, itemID))
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, list, 3)
	// created_at idêntico nas três: a ordem vem do desempate por id.
	for i, id := range ids {
		assert.Equal(t, id, list[i].ID)
	}
}

func repositoryFilter(farmID, itemID string) repository.MovementFilter {
	return repository.MovementFilter{
		FarmID:   farmID,
		ItemKind: entity.ItemKindProduct,
		ItemID:   itemID,
		Limit:    10,
	}
}
