package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farmastock/internal/domain/repository"
)

// fakeReportRepo devuelve filas fijas y captura los argumentos de la última
// llamada para verificar el horizonte.
type fakeReportRepo struct {
	lowRows  []repository.LowStockRow
	nearRows []repository.NearExpiryRow

	gotPharmacyID string
	gotUntil      time.Time
}

func (r *fakeReportRepo) LowStock(_ context.Context, pharmacyID string) ([]repository.LowStockRow, error) {
	r.gotPharmacyID = pharmacyID
	return r.lowRows, nil
}

func (r *fakeReportRepo) NearExpiry(_ context.Context, pharmacyID string, until time.Time) ([]repository.NearExpiryRow, error) {
	r.gotPharmacyID = pharmacyID
	r.gotUntil = until
	return r.nearRows, nil
}

// Caso 1: el horizonte del reporte de vencimientos es hoy + horizonDays.
func TestNearExpiry_HorizonteConfigurado(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := NewReportUseCase(repo, 45)
	frozen := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return frozen }

	_, err := uc.NearExpiry(context.Background(), "farmacia-1")
	require.NoError(t, err)

	assert.Equal(t, "farmacia-1", repo.gotPharmacyID)
	assert.Equal(t, frozen.AddDate(0, 0, 45), repo.gotUntil,
		"el horizonte debe ser ahora + los días configurados")
}

// Caso 2: horizonDays <= 0 aplica el horizonte por defecto de 30 días.
func TestNearExpiry_HorizontePorDefecto(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := NewReportUseCase(repo, 0)
	frozen := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return frozen }

	_, err := uc.NearExpiry(context.Background(), "farmacia-1")
	require.NoError(t, err)

	assert.Equal(t, frozen.AddDate(0, 0, 30), repo.gotUntil)
}

// Caso 3: las filas del repositorio se mapean a los items de la vista con la
// fecha formateada ISO.
func TestNearExpiry_MapeoDeFilas(t *testing.T) {
	repo := &fakeReportRepo{
		nearRows: []repository.NearExpiryRow{
			{
				BatchID:           "batch-1",
				MedicineName:      "Amoxicilina",
				QuantityRemaining: 8,
				ExpiryDate:        time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	uc := NewReportUseCase(repo, 30)

	items, err := uc.NearExpiry(context.Background(), "farmacia-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "batch-1", items[0].BatchID)
	assert.Equal(t, "Amoxicilina", items[0].MedicineName)
	assert.Equal(t, 8, items[0].QuantityRemaining)
	assert.Equal(t, "2026-04-02", items[0].ExpiryDate)
}

// Caso 4: el reporte de stock bajo mapea nombre, restante y umbral.
func TestLowStock_MapeoDeFilas(t *testing.T) {
	repo := &fakeReportRepo{
		lowRows: []repository.LowStockRow{
			{MedicineID: "med-1", MedicineName: "Paracetamol", QuantityRemaining: 12, ReorderLevel: 50},
			{MedicineID: "med-2", MedicineName: "Salbutamol", QuantityRemaining: 0, ReorderLevel: 20},
		},
	}
	uc := NewReportUseCase(repo, 30)

	items, err := uc.LowStock(context.Background(), "farmacia-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Paracetamol", items[0].MedicineName)
	assert.Equal(t, int64(12), items[0].QuantityRemaining)
	assert.Equal(t, 50, items[0].ReorderLevel)
	assert.Equal(t, int64(0), items[1].QuantityRemaining,
		"un medicamento sin lotes cuenta como cero existencias")
}

// Caso 5: el dashboard combina ambos reportes.
func TestDashboard_CombinaReportes(t *testing.T) {
	repo := &fakeReportRepo{
		lowRows: []repository.LowStockRow{
			{MedicineID: "med-1", MedicineName: "Paracetamol", QuantityRemaining: 3, ReorderLevel: 50},
		},
		nearRows: []repository.NearExpiryRow{
			{BatchID: "batch-1", MedicineName: "Paracetamol", QuantityRemaining: 3, ExpiryDate: time.Now()},
		},
	}
	uc := NewReportUseCase(repo, 30)

	summary, err := uc.Dashboard(context.Background(), "farmacia-1")
	require.NoError(t, err)
	assert.Len(t, summary.LowStock, 1)
	assert.Len(t, summary.NearExpiry, 1)
}
