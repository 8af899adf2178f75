package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/farmastock/internal/domain/entity"
	"github.com/tu-usuario/farmastock/internal/domain/repository"
)

var _ repository.IssueRepository = (*IssueRepo)(nil)

// IssueRepo implementación del puerto IssueRepository sobre PostgreSQL (usable con pool o tx).
// Issue es append-only: no hay Update ni Delete.
type IssueRepo struct {
	q Querier
}

// NewIssueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIssueRepository(q Querier) *IssueRepo {
	return &IssueRepo{q: q}
}

// Create persiste una salida de stock.
func (r *IssueRepo) Create(ctx context.Context, issue *entity.Issue) error {
	query := `
		INSERT INTO issues (id, pharmacy_id, batch_id, quantity_issued, issued_to, issue_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		issue.ID, issue.PharmacyID, issue.BatchID, issue.QuantityIssued,
		issue.IssuedTo, issue.IssueDate, issue.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert issue: %w", err)
	}
	return nil
}

// ListByPharmacy lista el historial de salidas de la farmacia, la más
// reciente primero.
func (r *IssueRepo) ListByPharmacy(ctx context.Context, pharmacyID string) ([]repository.IssueListRow, error) {
	query := `
		SELECT i.id, i.batch_id, m.name, i.quantity_issued, i.issued_to, i.issue_date
		FROM issues i
		JOIN stock_batches b ON b.id = i.batch_id
		JOIN medicines m ON m.id = b.medicine_id
		WHERE i.pharmacy_id = $1
		ORDER BY i.issue_date DESC, i.created_at DESC`
	rows, err := r.q.Query(ctx, query, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()
	var list []repository.IssueListRow
	for rows.Next() {
		var row repository.IssueListRow
		if err := rows.Scan(&row.IssueID, &row.BatchID, &row.MedicineName,
			&row.QuantityIssued, &row.IssuedTo, &row.IssueDate); err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
