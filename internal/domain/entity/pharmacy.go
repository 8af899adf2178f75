package entity

import "time"

// Pharmacy representa una farmacia: el tenant y la unidad de aislamiento de datos.
// Se crea una sola vez en el registro, junto con su usuario administrador.
type Pharmacy struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
