package dto

// AddStockRequest formulario de entrada de stock. Las cantidades, el costo
// y las fechas llegan como texto y se validan en el caso de uso; supplier_id,
// cost_per_unit y purchase_date son opcionales (vacío → NULL).
type AddStockRequest struct {
	MedicineID       string `form:"medicine_id"`
	SupplierID       string `form:"supplier_id"`
	QuantityReceived string `form:"quantity"`
	CostPerUnit      string `form:"cost_per_unit"`
	PurchaseDate     string `form:"purchase_date"`
	ExpiryDate       string `form:"expiry_date"`
}

// IssueStockRequest formulario de salida de stock contra un lote.
type IssueStockRequest struct {
	BatchID        string `form:"batch_id"`
	QuantityIssued string `form:"quantity_issued"`
	IssuedTo       string `form:"issued_to"`
}

// StockItemView fila del listado de stock para las vistas.
type StockItemView struct {
	BatchID           string
	MedicineName      string
	SupplierName      string
	QuantityReceived  int
	QuantityRemaining int
	ExpiryDate        string
}

// IssueView fila del historial de salidas.
type IssueView struct {
	IssueID        string
	BatchID        string
	MedicineName   string
	QuantityIssued int
	IssuedTo       string
	IssueDate      string
}
