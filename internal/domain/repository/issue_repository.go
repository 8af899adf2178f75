package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/farmastock/internal/domain/entity"
)

// IssueListRow fila del historial de salidas con el nombre del medicamento
// resuelto vía el lote.
type IssueListRow struct {
	IssueID        string
	BatchID        string
	MedicineName   string
	QuantityIssued int
	IssuedTo       string
	IssueDate      time.Time
}

// IssueRepository define el puerto de persistencia para Issue (append-only).
type IssueRepository interface {
	Create(ctx context.Context, issue *entity.Issue) error
	ListByPharmacy(ctx context.Context, pharmacyID string) ([]IssueListRow, error)
}
