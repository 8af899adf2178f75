package repository

import (
	"context"

	"github.com/tu-usuario/farmastock/internal/domain/entity"
)

// MedicineRepository define el puerto de persistencia para Medicine.
// Toda operación está acotada por pharmacyID: un id que existe pero
// pertenece a otra farmacia es indistinguible de uno inexistente.
type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	GetByID(ctx context.Context, pharmacyID, id string) (*entity.Medicine, error)
	ListByPharmacy(ctx context.Context, pharmacyID string) ([]*entity.Medicine, error)
	Update(ctx context.Context, medicine *entity.Medicine) error
	Delete(ctx context.Context, pharmacyID, id string) error
}
