package entity

import "time"

// Supplier proveedor de una farmacia.
type Supplier struct {
	ID            string
	PharmacyID    string
	Name          string
	ContactPerson string
	Phone         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
