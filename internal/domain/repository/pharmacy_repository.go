package repository

import (
	"context"

	"github.com/tu-usuario/farmastock/internal/domain/entity"
)

// PharmacyRepository define el puerto de persistencia para Pharmacy (DIP).
// La farmacia se crea únicamente durante el registro, en la misma
// transacción que su usuario administrador.
type PharmacyRepository interface {
	Create(ctx context.Context, pharmacy *entity.Pharmacy) error
	GetByID(ctx context.Context, id string) (*entity.Pharmacy, error)
}
