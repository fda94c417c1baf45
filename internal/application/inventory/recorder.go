package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

// RecorderUseCase valida e registra movimentações de estoque de forma
// transacional, mantendo o razão em sincronia: dentro de uma única transação a
// linha do item é bloqueada, o delta aplicado e o registro da movimentação
// gravado — ou tudo, ou nada.
type RecorderUseCase struct {
	txRunner  TxRunner
	ledger    *LedgerQuery
	employees repository.EmployeeRepository
	machines  repository.MachineRepository
	movements repository.MovementRepository
}

// NewRecorderUseCase constrói o caso de uso.
func NewRecorderUseCase(
	txRunner TxRunner,
	ledger *LedgerQuery,
	employees repository.EmployeeRepository,
	machines repository.MachineRepository,
	movements repository.MovementRepository,
) *RecorderUseCase {
	return &RecorderUseCase{
		txRunner:  txRunner,
		ledger:    ledger,
		employees: employees,
		machines:  machines,
		movements: movements,
	}
}

// RecordMovementInput entrada para registrar uma movimentação.
type RecordMovementInput struct {
	FarmID     string
	UserID     string
	ItemKind   string
	ItemID     string
	Type       string // ENTRADA ou SAIDA
	Quantity   decimal.Decimal
	EmployeeID *string
	MachineID  *string
	Activity   string
}

// RecordMovement valida a entrada, aplica o delta no razão e persiste a
// movimentação na mesma transação. Para SAIDA propaga ErrInsufficientStock sem
// criar o registro. Devolve a movimentação com os campos de exibição resolvidos.
func (uc *RecorderUseCase) RecordMovement(ctx context.Context, input RecordMovementInput) (*entity.MovementWithRefs, error) {
	if input.Type != entity.MovementTypeEntrada && input.Type != entity.MovementTypeSaida {
		return nil, fmt.Errorf("tipo de movimentação %q: %w", input.Type, domain.ErrInvalidInput)
	}
	if !input.Quantity.IsPositive() {
		return nil, fmt.Errorf("quantidade %s deve ser positiva: %w", input.Quantity.String(), domain.ErrInvalidQuantity)
	}

	ref := entity.ItemRef{Kind: input.ItemKind, ID: input.ItemID}
	itemName, err := uc.ledger.resolveItem(input.FarmID, ref)
	if err != nil {
		return nil, err
	}

	var employeeName, machineName string
	if input.EmployeeID != nil && *input.EmployeeID != "" {
		emp, err := uc.employees.GetByID(*input.EmployeeID)
		if err != nil {
			return nil, err
		}
		if emp == nil || emp.FarmID != input.FarmID {
			return nil, fmt.Errorf("funcionário %s: %w", *input.EmployeeID, domain.ErrNotFound)
		}
		employeeName = emp.Name
	} else {
		input.EmployeeID = nil
	}
	if input.MachineID != nil && *input.MachineID != "" {
		mac, err := uc.machines.GetByID(*input.MachineID)
		if err != nil {
			return nil, err
		}
		if mac == nil || mac.FarmID != input.FarmID {
			return nil, fmt.Errorf("máquina %s: %w", *input.MachineID, domain.ErrNotFound)
		}
		machineName = mac.Name
	} else {
		input.MachineID = nil
	}

	delta := input.Quantity
	if input.Type == entity.MovementTypeSaida {
		delta = delta.Neg()
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:         uuid.New().String(),
		FarmID:     input.FarmID,
		ItemKind:   input.ItemKind,
		ItemID:     input.ItemID,
		Type:       input.Type,
		Quantity:   input.Quantity,
		EmployeeID: input.EmployeeID,
		MachineID:  input.MachineID,
		Activity:   input.Activity,
		CreatedAt:  now,
		CreatedBy:  input.UserID,
	}

	// Razão primeiro, registro depois, na mesma tx (Commit/Rollback no TxRunner).
	err = uc.txRunner.Run(ctx, func(
		levelRepo repository.StockLevelRepository,
		movRepo repository.MovementRepository,
	) error {
		if _, err := ApplyDelta(levelRepo, ref, delta, now); err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				return fmt.Errorf("estoque insuficiente para %s: solicitado %s: %w",
					itemName, input.Quantity.String(), domain.ErrInsufficientStock)
			}
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}

	return &entity.MovementWithRefs{
		Movement:     *mov,
		ItemName:     itemName,
		EmployeeName: employeeName,
		MachineName:  machineName,
	}, nil
}

// DeleteMovement estorna o efeito de uma movimentação no razão e apaga o
// registro, na mesma transação. Se o estorno deixaria o saldo negativo,
// rejeita com ErrWouldUnderflow e preserva a movimentação original.
func (uc *RecorderUseCase) DeleteMovement(ctx context.Context, farmID, movementID string) error {
	mov, err := uc.movements.GetByID(movementID)
	if err != nil {
		return err
	}
	if mov == nil {
		return fmt.Errorf("movimentação %s: %w", movementID, domain.ErrNotFound)
	}
	if mov.FarmID != farmID {
		return domain.ErrForbidden
	}

	// Estorno: SAIDA devolve ao estoque, ENTRADA retira.
	reversal := mov.Quantity
	if mov.Type == entity.MovementTypeEntrada {
		reversal = reversal.Neg()
	}

	ref := entity.ItemRef{Kind: mov.ItemKind, ID: mov.ItemID}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		levelRepo repository.StockLevelRepository,
		movRepo repository.MovementRepository,
	) error {
		if _, err := ApplyDelta(levelRepo, ref, reversal, now); err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				return fmt.Errorf("estorno de %s unidades do item %s: %w",
					mov.Quantity.String(), mov.ItemID, domain.ErrWouldUnderflow)
			}
			return err
		}
		return movRepo.Delete(mov.ID)
	})
}

// ListMovements lista movimentações com campos de exibição e total (paginado).
func (uc *RecorderUseCase) ListMovements(filter repository.MovementFilter) ([]*entity.MovementWithRefs, int, error) {
	return uc.movements.ListWithRefs(filter)
}
