package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/farmastock/internal/application/dto"
	"github.com/tu-usuario/farmastock/internal/domain"
	"github.com/tu-usuario/farmastock/internal/domain/entity"
	"github.com/tu-usuario/farmastock/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create registra un proveedor nuevo de la farmacia.
func (uc *SupplierUseCase) Create(ctx context.Context, pharmacyID string, in dto.SupplierForm) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:            uuid.New().String(),
		PharmacyID:    pharmacyID,
		Name:          name,
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Phone:         strings.TrimSpace(in.Phone),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return uc.repo.Create(ctx, supplier)
}

// GetByID obtiene un proveedor de la farmacia (para el formulario de edición).
func (uc *SupplierUseCase) GetByID(ctx context.Context, pharmacyID, id string) (*dto.SupplierView, error) {
	supplier, err := uc.repo.GetByID(ctx, pharmacyID, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierView(supplier), nil
}

// List lista los proveedores de la farmacia ordenados por nombre.
func (uc *SupplierUseCase) List(ctx context.Context, pharmacyID string) ([]dto.SupplierView, error) {
	list, err := uc.repo.ListByPharmacy(ctx, pharmacyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierView, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierView(s))
	}
	return items, nil
}

// Update actualiza un proveedor de la farmacia.
func (uc *SupplierUseCase) Update(ctx context.Context, pharmacyID, id string, in dto.SupplierForm) error {
	supplier, err := uc.repo.GetByID(ctx, pharmacyID, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	supplier.Name = name
	supplier.ContactPerson = strings.TrimSpace(in.ContactPerson)
	supplier.Phone = strings.TrimSpace(in.Phone)
	supplier.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, supplier)
}

// Delete elimina un proveedor. ErrReferentialConflict si hay lotes que lo referencian.
func (uc *SupplierUseCase) Delete(ctx context.Context, pharmacyID, id string) error {
	return uc.repo.Delete(ctx, pharmacyID, id)
}

func toSupplierView(s *entity.Supplier) *dto.SupplierView {
	return &dto.SupplierView{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
	}
}
