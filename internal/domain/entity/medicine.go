package entity

import "time"

// DefaultReorderLevel umbral de reposición si el formulario no indica uno.
const DefaultReorderLevel = 50

// Medicine tipo de medicamento del catálogo de una farmacia.
// ReorderLevel es el umbral bajo el cual el medicamento aparece en el
// reporte de stock bajo.
type Medicine struct {
	ID           string
	PharmacyID   string
	Name         string
	Manufacturer string
	ImageFile    string
	Description  string
	ReorderLevel int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
