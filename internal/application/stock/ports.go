package stock

import (
	"context"

	"github.com/tu-usuario/farmastock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el decremento del lote y la
// inserción del issue sean atómicos.
type TxRunner interface {
	RunIssue(ctx context.Context, fn func(
		batchRepo repository.StockBatchRepository,
		issueRepo repository.IssueRepository,
	) error) error
}
