package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/farmastock/internal/domain"
	"github.com/tu-usuario/farmastock/internal/domain/entity"
	"github.com/tu-usuario/farmastock/internal/domain/repository"
)

var _ repository.StockBatchRepository = (*StockBatchRepo)(nil)

// StockBatchRepo implementación del puerto StockBatchRepository sobre PostgreSQL (usable con pool o tx).
type StockBatchRepo struct {
	q Querier
}

// NewStockBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockBatchRepository(q Querier) *StockBatchRepo {
	return &StockBatchRepo{q: q}
}

const batchColumns = `id, pharmacy_id, medicine_id, supplier_id, quantity_received, quantity_remaining, cost_per_unit, purchase_date, expiry_date, created_at`

// Create persiste un nuevo lote. quantity_remaining ya viene igualado a
// quantity_received desde el caso de uso.
func (r *StockBatchRepo) Create(ctx context.Context, batch *entity.StockBatch) error {
	query := `
		INSERT INTO stock_batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		batch.ID, batch.PharmacyID, batch.MedicineID, batch.SupplierID,
		batch.QuantityReceived, batch.QuantityRemaining, batch.CostPerUnit,
		batch.PurchaseDate, batch.ExpiryDate, batch.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			// medicine_id o supplier_id no existen en esta farmacia
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID dentro de la farmacia.
func (r *StockBatchRepo) GetByID(ctx context.Context, pharmacyID, id string) (*entity.StockBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM stock_batches WHERE pharmacy_id = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, pharmacyID, id))
}

// GetForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE) para la
// salida de stock. Usar solo dentro de una transacción.
func (r *StockBatchRepo) GetForUpdate(ctx context.Context, pharmacyID, id string) (*entity.StockBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM stock_batches WHERE pharmacy_id = $1 AND id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, pharmacyID, id))
}

func (r *StockBatchRepo) scanOne(row interface{ Scan(dest ...any) error }) (*entity.StockBatch, error) {
	var b entity.StockBatch
	err := row.Scan(&b.ID, &b.PharmacyID, &b.MedicineID, &b.SupplierID,
		&b.QuantityReceived, &b.QuantityRemaining, &b.CostPerUnit,
		&b.PurchaseDate, &b.ExpiryDate, &b.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock batch: %w", err)
	}
	return &b, nil
}

// ListByPharmacy lista los lotes de la farmacia con los nombres de medicamento
// y proveedor resueltos, ordenados por fecha de vencimiento ascendente.
func (r *StockBatchRepo) ListByPharmacy(ctx context.Context, pharmacyID string) ([]repository.StockBatchListRow, error) {
	query := `
		SELECT b.id, m.name, COALESCE(s.name, ''), b.quantity_received, b.quantity_remaining, b.expiry_date
		FROM stock_batches b
		JOIN medicines m ON m.id = b.medicine_id
		LEFT JOIN suppliers s ON s.id = b.supplier_id
		WHERE b.pharmacy_id = $1
		ORDER BY b.expiry_date, m.name`
	rows, err := r.q.Query(ctx, query, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("list stock batches: %w", err)
	}
	defer rows.Close()
	var list []repository.StockBatchListRow
	for rows.Next() {
		var row repository.StockBatchListRow
		if err := rows.Scan(&row.BatchID, &row.MedicineName, &row.SupplierName,
			&row.QuantityReceived, &row.QuantityRemaining, &row.ExpiryDate); err != nil {
			return nil, fmt.Errorf("scan stock batch: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// UpdateRemaining fija la cantidad restante del lote. RowsAffected == 0 ⇒
// ErrNotFound (lote inexistente o de otra farmacia).
func (r *StockBatchRepo) UpdateRemaining(ctx context.Context, pharmacyID, id string, remaining int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE stock_batches SET quantity_remaining = $3 WHERE pharmacy_id = $1 AND id = $2`,
		pharmacyID, id, remaining)
	if err != nil {
		return fmt.Errorf("update stock batch remaining: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
