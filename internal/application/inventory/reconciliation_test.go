package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jprezende/AgroGestor-api/internal/application/inventory"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

func count(itemID string, qty int64) inventory.CountLine {
	return inventory.CountLine{
		ItemKind: entity.ItemKindProduct,
		ItemID:   itemID,
		Counted:  decimal.NewFromInt(qty),
	}
}

// Contagem igual ao saldo do sistema não gera movimentação nenhuma.
func TestReconcile_SemDivergenciaNaoMovimenta(t *testing.T) {
	e := newEnv()
	e.levels.set(prodRef(), 12)

	res, err := e.reconcile.Apply(context.Background(), testFarmID, testUserID, []inventory.CountLine{
		count("prod-1", 12),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Processed)
	assert.Equal(t, 1, res.Skipped)
	assert.False(t, res.PartialFailure())
	assert.Empty(t, e.movs.movements)
}

// Divergência positiva vira ENTRADA, negativa vira SAIDA; em ambos os casos o
// saldo final é o valor contado (caminho único via Recorder).
func TestReconcile_AjustaParaContagem(t *testing.T) {
	e := newEnv()
	e.levels.set(prodRef(), 10)
	agroRef := entity.ItemRef{Kind: entity.ItemKindAgrochemical, ID: "agro-1"}
	e.levels.set(agroRef, 30)

	res, err := e.reconcile.Apply(context.Background(), testFarmID, testUserID, []inventory.CountLine{
		count("prod-1", 14), // +4
		{ItemKind: entity.ItemKindAgrochemical, ItemID: "agro-1", Counted: decimal.NewFromInt(25)}, // -5
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 0, res.Skipped)

	assert.True(t, e.quantity(t, prodRef()).Equal(decimal.NewFromInt(14)))

	q, err := e.ledger.GetQuantity(testFarmID, agroRef)
	require.NoError(t, err)
	assert.True(t, q.Equal(decimal.NewFromInt(25)))

	// Os acertos documentam antes/depois na atividade.
	list, _, err := e.movs.ListWithRefs(movFilter())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Contains(t, list[0].Activity, "sistema 10")
	assert.Contains(t, list[0].Activity, "contado 14")
	assert.Equal(t, entity.MovementTypeEntrada, list[0].Type)
	assert.Equal(t, entity.MovementTypeSaida, list[1].Type)
	assert.True(t, list[1].Quantity.Equal(decimal.NewFromInt(5)))
}

// Falha em um item não desfaz os anteriores nem impede os seguintes; o
// resultado carrega a lista de falhas por item.
func TestReconcile_FalhaParcialNaoDesfazAplicados(t *testing.T) {
	e := newEnv()
	e.levels.set(prodRef(), 10)

	res, err := e.reconcile.Apply(context.Background(), testFarmID, testUserID, []inventory.CountLine{
		count("prod-1", 18),       // aplica
		count("fantasma", 5),      // item inexistente -> falha
		{ItemKind: entity.ItemKindProduct, ItemID: "prod-1", Counted: decimal.NewFromInt(-2)}, // contagem negativa -> falha
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	assert.True(t, res.PartialFailure())
	require.Len(t, res.Failures, 2)
	assert.Equal(t, "fantasma", res.Failures[0].ItemID)
	assert.NotEmpty(t, res.Failures[0].Reason)

	// O item que deu certo permanece ajustado.
	assert.True(t, e.quantity(t, prodRef()).Equal(decimal.NewFromInt(18)))
}

// Cancelamento interrompe antes de submeter novos itens; os já aplicados ficam.
func TestReconcile_CancelamentoInterrompeLote(t *testing.T) {
	e := newEnv()
	e.levels.set(prodRef(), 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := e.reconcile.Apply(ctx, testFarmID, testUserID, []inventory.CountLine{
		count("prod-1", 20),
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Processed)
	assert.True(t, e.quantity(t, prodRef()).Equal(decimal.NewFromInt(10)))
}

func movFilter() repository.MovementFilter {
	return repository.MovementFilter{FarmID: testFarmID}
}
