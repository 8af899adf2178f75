package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farmastock/internal/application/dto"
	"github.com/tu-usuario/farmastock/internal/domain"
	"github.com/tu-usuario/farmastock/internal/domain/entity"
)

// fakeMedicineRepo repositorio en memoria con el mismo contrato tenant-scoped
// que el real: un id de otra farmacia devuelve nil.
type fakeMedicineRepo struct {
	medicines map[string]*entity.Medicine
}

func newFakeMedicineRepo() *fakeMedicineRepo {
	return &fakeMedicineRepo{medicines: make(map[string]*entity.Medicine)}
}

func (r *fakeMedicineRepo) Create(_ context.Context, m *entity.Medicine) error {
	cp := *m
	r.medicines[m.ID] = &cp
	return nil
}

func (r *fakeMedicineRepo) GetByID(_ context.Context, pharmacyID, id string) (*entity.Medicine, error) {
	m, ok := r.medicines[id]
	if !ok || m.PharmacyID != pharmacyID {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMedicineRepo) ListByPharmacy(_ context.Context, pharmacyID string) ([]*entity.Medicine, error) {
	var out []*entity.Medicine
	for _, m := range r.medicines {
		if m.PharmacyID == pharmacyID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMedicineRepo) Update(_ context.Context, m *entity.Medicine) error {
	existing, ok := r.medicines[m.ID]
	if !ok || existing.PharmacyID != m.PharmacyID {
		return domain.ErrNotFound
	}
	cp := *m
	r.medicines[m.ID] = &cp
	return nil
}

func (r *fakeMedicineRepo) Delete(_ context.Context, pharmacyID, id string) error {
	m, ok := r.medicines[id]
	if !ok || m.PharmacyID != pharmacyID {
		return domain.ErrNotFound
	}
	delete(r.medicines, id)
	return nil
}

// Caso 1: alta sin umbral indicado → aplica el valor por defecto.
func TestMedicineCreate_UmbralPorDefecto(t *testing.T) {
	repo := newFakeMedicineRepo()
	uc := NewMedicineUseCase(repo)

	err := uc.Create(context.Background(), "farmacia-1", dto.MedicineForm{
		Name:         "  Paracetamol 500mg  ",
		Manufacturer: "Genfar",
	})
	require.NoError(t, err)

	require.Len(t, repo.medicines, 1)
	for _, m := range repo.medicines {
		assert.Equal(t, "Paracetamol 500mg", m.Name, "el nombre debe guardarse sin espacios")
		assert.Equal(t, entity.DefaultReorderLevel, m.ReorderLevel)
		assert.Equal(t, "farmacia-1", m.PharmacyID)
	}
}

// Caso 2: umbral explícito, incluido cero, se respeta.
func TestMedicineCreate_UmbralExplicito(t *testing.T) {
	repo := newFakeMedicineRepo()
	uc := NewMedicineUseCase(repo)

	err := uc.Create(context.Background(), "farmacia-1", dto.MedicineForm{
		Name:         "Insulina",
		ReorderLevel: "0",
	})
	require.NoError(t, err)

	for _, m := range repo.medicines {
		assert.Equal(t, 0, m.ReorderLevel, "cero es un umbral válido (nunca reportar)")
	}
}

// Caso 3: entrada inválida → ErrInvalidInput.
func TestMedicineCreate_EntradaInvalida(t *testing.T) {
	repo := newFakeMedicineRepo()
	uc := NewMedicineUseCase(repo)

	cases := []struct {
		name string
		in   dto.MedicineForm
	}{
		{"nombre vacío", dto.MedicineForm{Name: "   "}},
		{"umbral no numérico", dto.MedicineForm{Name: "Aspirina", ReorderLevel: "muchos"}},
		{"umbral negativo", dto.MedicineForm{Name: "Aspirina", ReorderLevel: "-5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.Create(context.Background(), "farmacia-1", tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, repo.medicines)
}

// Caso 4: actualizar un medicamento de otra farmacia → ErrNotFound,
// indistinguible de un id inexistente.
func TestMedicineUpdate_CrossTenant(t *testing.T) {
	repo := newFakeMedicineRepo()
	uc := NewMedicineUseCase(repo)

	require.NoError(t, uc.Create(context.Background(), "farmacia-1", dto.MedicineForm{Name: "Omeprazol"}))
	var id string
	for k := range repo.medicines {
		id = k
	}

	err := uc.Update(context.Background(), "farmacia-2", id, dto.MedicineForm{Name: "Otro nombre"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	m, _ := repo.GetByID(context.Background(), "farmacia-1", id)
	require.NotNil(t, m)
	assert.Equal(t, "Omeprazol", m.Name, "el medicamento no debe modificarse")
}

// Caso 5: GetByID cross-tenant devuelve nil, nil.
func TestMedicineGetByID_CrossTenant(t *testing.T) {
	repo := newFakeMedicineRepo()
	uc := NewMedicineUseCase(repo)

	require.NoError(t, uc.Create(context.Background(), "farmacia-1", dto.MedicineForm{Name: "Loratadina"}))
	var id string
	for k := range repo.medicines {
		id = k
	}

	view, err := uc.GetByID(context.Background(), "farmacia-2", id)
	require.NoError(t, err)
	assert.Nil(t, view)
}
