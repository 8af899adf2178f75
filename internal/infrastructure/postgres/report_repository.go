package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/farmastock/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de stock bajo y
// vencimientos, siempre acotadas por pharmacy_id.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// LowStock agrupa los lotes por medicamento y devuelve los que suman menos
// que su reorder_level. Un medicamento sin lotes cuenta como cero existencias.
func (r *ReportRepo) LowStock(ctx context.Context, pharmacyID string) ([]repository.LowStockRow, error) {
	const query = `
	SELECT
	    m.id,
	    m.name,
	    COALESCE(SUM(b.quantity_remaining), 0) AS quantity_remaining,
	    m.reorder_level
	FROM medicines m
	LEFT JOIN stock_batches b ON b.medicine_id = m.id
	WHERE m.pharmacy_id = $1
	GROUP BY m.id, m.name, m.reorder_level
	HAVING COALESCE(SUM(b.quantity_remaining), 0) < m.reorder_level
	ORDER BY m.name`

	rows, err := r.pool.Query(ctx, query, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("reports.LowStock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.MedicineID, &row.MedicineName, &row.QuantityRemaining, &row.ReorderLevel); err != nil {
			return nil, fmt.Errorf("reports.LowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// NearExpiry devuelve los lotes con existencias cuyo vencimiento es anterior o
// igual a until, el más próximo primero. Incluye lotes ya vencidos.
func (r *ReportRepo) NearExpiry(ctx context.Context, pharmacyID string, until time.Time) ([]repository.NearExpiryRow, error) {
	const query = `
	SELECT b.id, m.name, b.quantity_remaining, b.expiry_date
	FROM stock_batches b
	JOIN medicines m ON m.id = b.medicine_id
	WHERE b.pharmacy_id = $1
	  AND b.quantity_remaining > 0
	  AND b.expiry_date <= $2
	ORDER BY b.expiry_date, m.name`

	rows, err := r.pool.Query(ctx, query, pharmacyID, until)
	if err != nil {
		return nil, fmt.Errorf("reports.NearExpiry: %w", err)
	}
	defer rows.Close()

	var results []repository.NearExpiryRow
	for rows.Next() {
		var row repository.NearExpiryRow
		if err := rows.Scan(&row.BatchID, &row.MedicineName, &row.QuantityRemaining, &row.ExpiryDate); err != nil {
			return nil, fmt.Errorf("reports.NearExpiry scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
