package entity

import "time"

// Issue salida de stock registrada contra un lote. Es append-only:
// no se actualiza ni se elimina.
type Issue struct {
	ID             string
	PharmacyID     string
	BatchID        string
	QuantityIssued int
	IssuedTo       string
	IssueDate      time.Time
	CreatedAt      time.Time
}
