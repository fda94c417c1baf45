package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

// ReconcileUseCase converte um lote de contagens físicas em movimentações de
// acerto via Recorder. Caminho único: o próprio delta do Recorder leva o saldo
// ao valor contado, sem sobrescrita direta da quantidade (que duplicaria o
// ajuste). Cada item é atômico; o lote commita item a item e falhas não
// desfazem itens já aplicados — são reportadas no resultado.
type ReconcileUseCase struct {
	recorder  *RecorderUseCase
	levelRepo repository.StockLevelRepository
}

// NewReconcileUseCase constrói o caso de uso.
func NewReconcileUseCase(recorder *RecorderUseCase, levelRepo repository.StockLevelRepository) *ReconcileUseCase {
	return &ReconcileUseCase{recorder: recorder, levelRepo: levelRepo}
}

// CountLine uma contagem física de um item.
type CountLine struct {
	ItemKind string
	ItemID   string
	Counted  decimal.Decimal
}

// ItemFailure falha individual de um item do lote.
type ItemFailure struct {
	ItemKind string `json:"item_kind"`
	ItemID   string `json:"item_id"`
	Reason   string `json:"reason"`
}

// BatchResult resumo do lote: itens ajustados, pulados (sem divergência) e falhas.
type BatchResult struct {
	Processed int           `json:"processed"`
	Skipped   int           `json:"skipped"`
	Failures  []ItemFailure `json:"failures,omitempty"`
}

// PartialFailure indica se alguma linha do lote falhou.
func (r *BatchResult) PartialFailure() bool { return len(r.Failures) > 0 }

// Apply processa o lote de contagens. O ctx é checado antes de cada item:
// cancelamento interrompe antes de submeter novos acertos (itens já aplicados
// permanecem) e devolve o resultado parcial junto com ctx.Err().
func (uc *ReconcileUseCase) Apply(ctx context.Context, farmID, userID string, lines []CountLine) (*BatchResult, error) {
	result := &BatchResult{}
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		ref := entity.ItemRef{Kind: line.ItemKind, ID: line.ItemID}
		if line.Counted.IsNegative() {
			result.Failures = append(result.Failures, ItemFailure{
				ItemKind: line.ItemKind, ItemID: line.ItemID,
				Reason: fmt.Sprintf("contagem negativa %s: %s", line.Counted.String(), domain.ErrInvalidQuantity.Error()),
			})
			continue
		}

		level, err := uc.levelRepo.Get(ref)
		if err != nil {
			result.Failures = append(result.Failures, ItemFailure{
				ItemKind: line.ItemKind, ItemID: line.ItemID, Reason: err.Error(),
			})
			continue
		}
		diff := line.Counted.Sub(level.Quantity)
		if diff.IsZero() {
			result.Skipped++
			continue
		}

		movType := entity.MovementTypeEntrada
		if diff.IsNegative() {
			movType = entity.MovementTypeSaida
		}
		_, err = uc.recorder.RecordMovement(ctx, RecordMovementInput{
			FarmID:   farmID,
			UserID:   userID,
			ItemKind: line.ItemKind,
			ItemID:   line.ItemID,
			Type:     movType,
			Quantity: diff.Abs(),
			Activity: fmt.Sprintf("Acerto de inventário: sistema %s, contado %s",
				level.Quantity.String(), line.Counted.String()),
		})
		if err != nil {
			result.Failures = append(result.Failures, ItemFailure{
				ItemKind: line.ItemKind, ItemID: line.ItemID, Reason: err.Error(),
			})
			continue
		}
		result.Processed++
	}
	return result, nil
}
