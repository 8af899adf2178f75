package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/farmastock/internal/application/dto"
	"github.com/tu-usuario/farmastock/internal/domain"
	"github.com/tu-usuario/farmastock/internal/domain/entity"
	"github.com/tu-usuario/farmastock/internal/domain/repository"
)

// MedicineUseCase casos de uso CRUD para medicamentos, siempre acotados por
// la farmacia del contexto de sesión.
type MedicineUseCase struct {
	repo repository.MedicineRepository
}

// NewMedicineUseCase construye el caso de uso.
func NewMedicineUseCase(repo repository.MedicineRepository) *MedicineUseCase {
	return &MedicineUseCase{repo: repo}
}

// Create registra un medicamento nuevo en el catálogo de la farmacia.
func (uc *MedicineUseCase) Create(ctx context.Context, pharmacyID string, in dto.MedicineForm) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	reorder, err := parseReorderLevel(in.ReorderLevel)
	if err != nil {
		return err
	}
	now := time.Now()
	medicine := &entity.Medicine{
		ID:           uuid.New().String(),
		PharmacyID:   pharmacyID,
		Name:         name,
		Manufacturer: strings.TrimSpace(in.Manufacturer),
		ImageFile:    strings.TrimSpace(in.ImageFile),
		Description:  in.Description,
		ReorderLevel: reorder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.repo.Create(ctx, medicine)
}

// GetByID obtiene un medicamento de la farmacia (para el formulario de edición).
func (uc *MedicineUseCase) GetByID(ctx context.Context, pharmacyID, id string) (*dto.MedicineView, error) {
	medicine, err := uc.repo.GetByID(ctx, pharmacyID, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, nil
	}
	return toMedicineView(medicine), nil
}

// List lista el catálogo de la farmacia ordenado por nombre.
func (uc *MedicineUseCase) List(ctx context.Context, pharmacyID string) ([]dto.MedicineView, error) {
	list, err := uc.repo.ListByPharmacy(ctx, pharmacyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MedicineView, 0, len(list))
	for _, m := range list {
		items = append(items, *toMedicineView(m))
	}
	return items, nil
}

// Update actualiza un medicamento de la farmacia. ErrNotFound cubre tanto el
// id inexistente como el intento cross-tenant.
func (uc *MedicineUseCase) Update(ctx context.Context, pharmacyID, id string, in dto.MedicineForm) error {
	medicine, err := uc.repo.GetByID(ctx, pharmacyID, id)
	if err != nil {
		return err
	}
	if medicine == nil {
		return domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	reorder, err := parseReorderLevel(in.ReorderLevel)
	if err != nil {
		return err
	}
	medicine.Name = name
	medicine.Manufacturer = strings.TrimSpace(in.Manufacturer)
	medicine.ImageFile = strings.TrimSpace(in.ImageFile)
	medicine.Description = in.Description
	medicine.ReorderLevel = reorder
	medicine.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, medicine)
}

// Delete elimina un medicamento. ErrReferentialConflict se propaga al handler
// como error accionable por el usuario (hay lotes que lo referencian).
func (uc *MedicineUseCase) Delete(ctx context.Context, pharmacyID, id string) error {
	return uc.repo.Delete(ctx, pharmacyID, id)
}

func toMedicineView(m *entity.Medicine) *dto.MedicineView {
	return &dto.MedicineView{
		ID:           m.ID,
		Name:         m.Name,
		Manufacturer: m.Manufacturer,
		ImageFile:    m.ImageFile,
		Description:  m.Description,
		ReorderLevel: m.ReorderLevel,
	}
}

// parseReorderLevel campo opcional de formulario: vacío aplica el valor por
// defecto; no numérico o negativo es entrada inválida.
func parseReorderLevel(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return entity.DefaultReorderLevel, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, domain.ErrInvalidInput
	}
	return n, nil
}
