package dto

// LowStockItem medicamento por debajo de su umbral de reposición.
type LowStockItem struct {
	MedicineName      string
	QuantityRemaining int64
	ReorderLevel      int
}

// NearExpiryItem lote próximo a vencer.
type NearExpiryItem struct {
	BatchID           string
	MedicineName      string
	QuantityRemaining int
	ExpiryDate        string
}

// DashboardSummary resumen del dashboard: ambos reportes juntos.
type DashboardSummary struct {
	LowStock   []LowStockItem
	NearExpiry []NearExpiryItem
}
