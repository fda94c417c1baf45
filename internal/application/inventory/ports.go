package inventory

import (
	"context"

	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade por item: a mutação do
// razão e a escrita da movimentação commitam juntas ou nenhuma commita.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		levelRepo repository.StockLevelRepository,
		movRepo repository.MovementRepository,
	) error) error
}
