package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBatch lote recibido de un medicamento, con su propia fecha de
// vencimiento y contador de cantidad restante.
// Invariante: 0 <= QuantityRemaining <= QuantityReceived.
// SupplierID, CostPerUnit y PurchaseDate son opcionales (NULL en la BD).
type StockBatch struct {
	ID                string
	PharmacyID        string
	MedicineID        string
	SupplierID        *string
	QuantityReceived  int
	QuantityRemaining int
	CostPerUnit       *decimal.Decimal
	PurchaseDate      *time.Time
	ExpiryDate        time.Time
	CreatedAt         time.Time
}
