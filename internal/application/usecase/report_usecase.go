package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/farmastock/internal/application/dto"
	"github.com/tu-usuario/farmastock/internal/domain/repository"
)

// defaultNearExpiryDays horizonte del reporte de vencimientos si la
// configuración no indica otro.
const defaultNearExpiryDays = 30

// ReportUseCase reportes de solo lectura: stock bajo y vencimientos próximos.
type ReportUseCase struct {
	repo        repository.ReportRepository
	horizonDays int
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso. horizonDays <= 0 aplica el
// horizonte por defecto de 30 días.
func NewReportUseCase(repo repository.ReportRepository, horizonDays int) *ReportUseCase {
	if horizonDays <= 0 {
		horizonDays = defaultNearExpiryDays
	}
	return &ReportUseCase{repo: repo, horizonDays: horizonDays, now: time.Now}
}

// LowStock medicamentos de la farmacia por debajo de su umbral de reposición,
// ordenados por nombre.
func (uc *ReportUseCase) LowStock(ctx context.Context, pharmacyID string) ([]dto.LowStockItem, error) {
	rows, err := uc.repo.LowStock(ctx, pharmacyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.LowStockItem{
			MedicineName:      row.MedicineName,
			QuantityRemaining: row.QuantityRemaining,
			ReorderLevel:      row.ReorderLevel,
		})
	}
	return items, nil
}

// NearExpiry lotes con existencias que vencen dentro del horizonte, el más
// próximo primero.
func (uc *ReportUseCase) NearExpiry(ctx context.Context, pharmacyID string) ([]dto.NearExpiryItem, error) {
	until := uc.now().AddDate(0, 0, uc.horizonDays)
	rows, err := uc.repo.NearExpiry(ctx, pharmacyID, until)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NearExpiryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.NearExpiryItem{
			BatchID:           row.BatchID,
			MedicineName:      row.MedicineName,
			QuantityRemaining: row.QuantityRemaining,
			ExpiryDate:        row.ExpiryDate.Format("2006-01-02"),
		})
	}
	return items, nil
}

// Dashboard resumen con ambos reportes para la vista principal.
func (uc *ReportUseCase) Dashboard(ctx context.Context, pharmacyID string) (*dto.DashboardSummary, error) {
	low, err := uc.LowStock(ctx, pharmacyID)
	if err != nil {
		return nil, err
	}
	near, err := uc.NearExpiry(ctx, pharmacyID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummary{LowStock: low, NearExpiry: near}, nil
}
