package repository

import (
	"context"

	"github.com/tu-usuario/farmastock/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
// Mismo contrato tenant-scoped que MedicineRepository.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, pharmacyID, id string) (*entity.Supplier, error)
	ListByPharmacy(ctx context.Context, pharmacyID string) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, pharmacyID, id string) error
}
