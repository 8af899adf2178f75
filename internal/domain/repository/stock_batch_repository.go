package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/farmastock/internal/domain/entity"
)

// StockBatchListRow fila del listado de stock con los nombres ya resueltos
// (JOIN con medicines y suppliers), ordenada por fecha de vencimiento.
type StockBatchListRow struct {
	BatchID           string
	MedicineName      string
	SupplierName      string // vacío si el lote no tiene proveedor
	QuantityReceived  int
	QuantityRemaining int
	ExpiryDate        time.Time
}

// StockBatchRepository define el puerto de persistencia para StockBatch.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para la salida de stock:
// debe usarse solo con repositorios atados a una transacción.
type StockBatchRepository interface {
	Create(ctx context.Context, batch *entity.StockBatch) error
	GetByID(ctx context.Context, pharmacyID, id string) (*entity.StockBatch, error)
	GetForUpdate(ctx context.Context, pharmacyID, id string) (*entity.StockBatch, error)
	ListByPharmacy(ctx context.Context, pharmacyID string) ([]StockBatchListRow, error)
	UpdateRemaining(ctx context.Context, pharmacyID, id string, remaining int) error
}
