package repository

import (
	"context"
	"time"
)

// LowStockRow medicamento cuyo stock total restante está por debajo de su
// umbral de reposición.
type LowStockRow struct {
	MedicineID        string
	MedicineName      string
	QuantityRemaining int64
	ReorderLevel      int
}

// NearExpiryRow lote con vencimiento dentro del horizonte del reporte.
type NearExpiryRow struct {
	BatchID           string
	MedicineName      string
	QuantityRemaining int
	ExpiryDate        time.Time
}

// ReportRepository consultas de solo lectura para los reportes, siempre
// acotadas por pharmacyID.
type ReportRepository interface {
	// LowStock agrupa los lotes por medicamento y devuelve los que suman
	// menos que su reorder_level, ordenados por nombre de medicamento.
	LowStock(ctx context.Context, pharmacyID string) ([]LowStockRow, error)
	// NearExpiry devuelve los lotes con existencias cuya fecha de
	// vencimiento es anterior o igual a until, ordenados por vencimiento
	// ascendente (el más próximo primero).
	NearExpiry(ctx context.Context, pharmacyID string, until time.Time) ([]NearExpiryRow, error)
}
