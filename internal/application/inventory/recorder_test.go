package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jprezende/AgroGestor-api/internal/application/inventory"
	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
)

const (
	testFarmID = "farm-1"
	testUserID = "user-1"
)

type env struct {
	levels    *memLevelRepo
	movs      *memMovementRepo
	products  *memProductRepo
	agros     *memAgroRepo
	employees *memEmployeeRepo
	machines  *memMachineRepo
	recorder  *inventory.RecorderUseCase
	reconcile *inventory.ReconcileUseCase
	ledger    *inventory.LedgerQuery
}

// newEnv monta o conjunto de fakes com um produto e um defensivo de exemplo.
func newEnv() *env {
	e := &env{
		levels:    newMemLevelRepo(),
		movs:      newMemMovementRepo(),
		products:  newMemProductRepo(),
		agros:     newMemAgroRepo(),
		employees: newMemEmployeeRepo(),
		machines:  newMemMachineRepo(),
	}
	_ = e.products.Create(&entity.Product{ID: "prod-1", FarmID: testFarmID, Code: "OL-15W40", Name: "Óleo 15W40"})
	_ = e.agros.Create(&entity.Agrochemical{ID: "agro-1", FarmID: testFarmID, Name: "Glifosato 480"})
	_ = e.employees.Create(&entity.Employee{ID: "emp-1", FarmID: testFarmID, Name: "João da Silva"})
	_ = e.machines.Create(&entity.Machine{ID: "maq-1", FarmID: testFarmID, Name: "Trator 6110J"})

	tx := &memTxRunner{levels: e.levels, movs: e.movs}
	e.ledger = inventory.NewLedgerQuery(e.levels, e.products, e.agros)
	e.recorder = inventory.NewRecorderUseCase(tx, e.ledger, e.employees, e.machines, e.movs)
	e.reconcile = inventory.NewReconcileUseCase(e.recorder, e.levels)
	return e
}

func (e *env) quantity(t *testing.T, ref entity.ItemRef) decimal.Decimal {
	t.Helper()
	q, err := e.ledger.GetQuantity(testFarmID, ref)
	require.NoError(t, err)
	return q
}

func prodRef() entity.ItemRef {
	return entity.ItemRef{Kind: entity.ItemKindProduct, ID: "prod-1"}
}

func prodRefWithID(id string) entity.ItemRef {
	return entity.ItemRef{Kind: entity.ItemKindProduct, ID: id}
}

func entrada(qty int64) inventory.RecordMovementInput {
	return inventory.RecordMovementInput{
		FarmID: testFarmID, UserID: testUserID,
		ItemKind: entity.ItemKindProduct, ItemID: "prod-1",
		Type: entity.MovementTypeEntrada, Quantity: decimal.NewFromInt(qty),
	}
}

func saida(qty int64) inventory.RecordMovementInput {
	in := entrada(qty)
	in.Type = entity.MovementTypeSaida
	return in
}

// Cenário fim a fim da tela de movimentações: 50 -> +20 -> 70; saída de 90
// rejeitada sem alterar nada; excluir a entrada devolve o saldo a 50.
func TestRecorder_CenarioCompleto(t *testing.T) {
	e := newEnv()
	e.levels.set(prodRef(), 50)
	ctx := context.Background()

	mov, err := e.recorder.RecordMovement(ctx, entrada(20))
	require.NoError(t, err)
	assert.Equal(t, "Óleo 15W40", mov.ItemName)
	assert.True(t, e.quantity(t, prodRef()).Equal(decimal.NewFromInt(70)))

	_, err = e.recorder.RecordMovement(ctx, saida(90))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Óleo 15W40")
	assert.True(t, e.quantity(t, prodRef()).Equal(decimal.NewFromInt(70)))

	require.NoError(t, e.recorder.DeleteMovement(ctx, testFarmID, mov.ID))
	assert.True(t, e.quantity(t, prodRef()).Equal(decimal.NewFromInt(50)))
}

// Saldo final = Q0 + soma(entradas) - soma(saídas), para sequências aceitas.
func TestRecorder_SomaDeMovimentos(t *testing.T) {
	e := newEnv()
	e.levels.set(prodRef(), 100)
	ctx := context.Background()

	seq := []inventory.RecordMovementInput{
		entrada(30), saida(45), entrada(5), saida(10), entrada(1),
	}
	for _, in := range seq {
		_, err := e.recorder.RecordMovement(ctx, in)
		require.NoError(t, err)
	}
	// 100 + 36 - 55 = 81
	assert.True(t, e.quantity(t, prodRef()).Equal(decimal.NewFromInt(81)))
}

func TestRecorder_QuantidadeNaoPositiva(t *testing.T) {
	e := newEnv()
	e.levels.set(prodRef(), 10)
	ctx := context.Background()

	for _, qty := range []int64{0, -5} {
		in := entrada(qty)
		_, err := e.recorder.RecordMovement(ctx, in)
		require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
	// Nenhum registro e nenhum efeito no razão.
	assert.Empty(t, e.movs.movements)
	assert.True(t, e.quantity(t, prodRef()).Equal(decimal.NewFromInt(10)))
}

func TestRecorder_SaidaMaiorQueSaldo(t *testing.T) {
	e := newEnv()
	e.levels.set(prodRef(), 4)

	_, err := e.recorder.RecordMovement(context.Background(), saida(10))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, e.movs.movements)
	assert.True(t, e.quantity(t, prodRef()).Equal(decimal.NewFromInt(4)))
}

func TestRecorder_ItemInexistente(t *testing.T) {
	e := newEnv()
	in := entrada(1)
	in.ItemID = "nao-existe"
	_, err := e.recorder.RecordMovement(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecorder_TipoInvalido(t *testing.T) {
	e := newEnv()
	in := entrada(1)
	in.Type = "TRANSFERENCIA"
	_, err := e.recorder.RecordMovement(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecorder_ResolveFuncionarioEMaquina(t *testing.T) {
	e := newEnv()
	e.levels.set(prodRef(), 10)
	emp, maq := "emp-1", "maq-1"
	in := saida(3)
	in.EmployeeID = &emp
	in.MachineID = &maq
	in.Activity = "Troca de óleo"

	mov, err := e.recorder.RecordMovement(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "João da Silva", mov.EmployeeName)
	assert.Equal(t, "Trator 6110J", mov.MachineName)
}

// Excluir uma movimentação restaura o saldo como se ela nunca tivesse existido.
func TestRecorder_DeleteEstornaSaida(t *testing.T) {
	e := newEnv()
	e.levels.set(prodRef(), 20)
	ctx := context.Background()

	mov, err := e.recorder.RecordMovement(ctx, saida(15))
	require.NoError(t, err)
	assert.True(t, e.quantity(t, prodRef()).Equal(decimal.NewFromInt(5)))

	require.NoError(t, e.recorder.DeleteMovement(ctx, testFarmID, mov.ID))
	assert.True(t, e.quantity(t, prodRef()).Equal(decimal.NewFromInt(20)))
}

// O estorno de uma ENTRADA cujo saldo já foi consumido não pode negativar o razão.
func TestRecorder_DeleteEntradaComUnderflow(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	mov, err := e.recorder.RecordMovement(ctx, entrada(10))
	require.NoError(t, err)
	_, err = e.recorder.RecordMovement(ctx, saida(8))
	require.NoError(t, err)

	err = e.recorder.DeleteMovement(ctx, testFarmID, mov.ID)
	require.ErrorIs(t, err, domain.ErrWouldUnderflow)

	// A movimentação original é preservada e o saldo não muda.
	kept, err := e.movs.GetByID(mov.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
	assert.True(t, e.quantity(t, prodRef()).Equal(decimal.NewFromInt(2)))
}

func TestRecorder_DeleteMovimentacaoInexistente(t *testing.T) {
	e := newEnv()
	err := e.recorder.DeleteMovement(context.Background(), testFarmID, "nao-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Os dois ledgers (produto e defensivo) são independentes.
func TestRecorder_LedgersParalelos(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	agroRef := entity.ItemRef{Kind: entity.ItemKindAgrochemical, ID: "agro-1"}

	in := entrada(7)
	in.ItemKind = entity.ItemKindAgrochemical
	in.ItemID = "agro-1"
	_, err := e.recorder.RecordMovement(ctx, in)
	require.NoError(t, err)

	assert.True(t, e.quantity(t, agroRef).Equal(decimal.NewFromInt(7)))
	assert.True(t, e.quantity(t, prodRef()).IsZero())
}
