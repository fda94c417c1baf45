package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

// Razão de estoque: única autoridade sobre a quantidade em mãos de um item.
// As funções deste arquivo operam sobre um StockLevelRepository atado à
// transação do chamador; a linha do item é bloqueada com FOR UPDATE antes do
// read-modify-write, então escritores concorrentes do mesmo item não se
// intercalam. O escopo do lock é sempre um item, nunca global.

// ApplyDelta soma delta (com sinal) à quantidade em mãos do item. Rejeita com
// ErrInsufficientStock se o resultado ficaria negativo; nesse caso nada é
// escrito. Devolve a quantidade resultante.
func ApplyDelta(levelRepo repository.StockLevelRepository, ref entity.ItemRef, delta decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	level, err := levelRepo.GetForUpdate(ref)
	if err != nil {
		return decimal.Zero, err
	}
	newQty := level.Quantity.Add(delta)
	if newQty.IsNegative() {
		return decimal.Zero, fmt.Errorf("saldo %s, delta %s: %w",
			level.Quantity.String(), delta.String(), domain.ErrInsufficientStock)
	}
	level.Quantity = newQty
	level.UpdatedAt = now
	if err := levelRepo.Upsert(level); err != nil {
		return decimal.Zero, err
	}
	return newQty, nil
}

// SetQuantity grava diretamente a quantidade em mãos. Uso restrito a cargas
// iniciais; o acerto de inventário passa pelo Recorder (caminho único, sem
// dupla aplicação). Rejeita valor negativo com ErrInvalidQuantity.
func SetQuantity(levelRepo repository.StockLevelRepository, ref entity.ItemRef, value decimal.Decimal, now time.Time) error {
	if value.IsNegative() {
		return fmt.Errorf("valor %s: %w", value.String(), domain.ErrInvalidQuantity)
	}
	level, err := levelRepo.GetForUpdate(ref)
	if err != nil {
		return err
	}
	level.Quantity = value
	level.UpdatedAt = now
	return levelRepo.Upsert(level)
}

// LedgerQuery expõe leituras do razão validando a existência do item no catálogo.
type LedgerQuery struct {
	levelRepo repository.StockLevelRepository
	products  repository.ProductRepository
	agrochems repository.AgrochemicalRepository
}

// NewLedgerQuery constrói o leitor do razão.
func NewLedgerQuery(
	levelRepo repository.StockLevelRepository,
	products repository.ProductRepository,
	agrochems repository.AgrochemicalRepository,
) *LedgerQuery {
	return &LedgerQuery{levelRepo: levelRepo, products: products, agrochems: agrochems}
}

// GetQuantity devolve a quantidade em mãos do item. ErrNotFound se o item não
// existe no catálogo; item sem linha no razão tem quantidade zero.
func (q *LedgerQuery) GetQuantity(farmID string, ref entity.ItemRef) (decimal.Decimal, error) {
	if _, err := q.resolveItem(farmID, ref); err != nil {
		return decimal.Zero, err
	}
	level, err := q.levelRepo.Get(ref)
	if err != nil {
		return decimal.Zero, err
	}
	return level.Quantity, nil
}

// resolveItem valida que o item existe e pertence à fazenda; devolve o nome.
func (q *LedgerQuery) resolveItem(farmID string, ref entity.ItemRef) (string, error) {
	switch ref.Kind {
	case entity.ItemKindProduct:
		p, err := q.products.GetByID(ref.ID)
		if err != nil {
			return "", err
		}
		if p == nil {
			return "", fmt.Errorf("produto %s: %w", ref.ID, domain.ErrNotFound)
		}
		if p.FarmID != farmID {
			return "", domain.ErrForbidden
		}
		return p.Name, nil
	case entity.ItemKindAgrochemical:
		a, err := q.agrochems.GetByID(ref.ID)
		if err != nil {
			return "", err
		}
		if a == nil {
			return "", fmt.Errorf("defensivo %s: %w", ref.ID, domain.ErrNotFound)
		}
		if a.FarmID != farmID {
			return "", domain.ErrForbidden
		}
		return a.Name, nil
	}
	return "", fmt.Errorf("tipo de item %q: %w", ref.Kind, domain.ErrInvalidInput)
}
