package stock

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmastock/internal/application/dto"
	"github.com/tu-usuario/farmastock/internal/domain"
	"github.com/tu-usuario/farmastock/internal/domain/entity"
	"github.com/tu-usuario/farmastock/internal/domain/repository"
)

// dateLayout formato de fecha de los formularios.
const dateLayout = "2006-01-02"

// StockUseCase entradas y salidas de stock por lote.
// La salida decrementa quantity_remaining en la misma transacción que inserta
// el issue, con bloqueo de fila (SELECT FOR UPDATE).
type StockUseCase struct {
	txRunner     TxRunner
	batchRepo    repository.StockBatchRepository
	issueRepo    repository.IssueRepository
	medicineRepo repository.MedicineRepository
	supplierRepo repository.SupplierRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	batchRepo repository.StockBatchRepository,
	issueRepo repository.IssueRepository,
	medicineRepo repository.MedicineRepository,
	supplierRepo repository.SupplierRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:     txRunner,
		batchRepo:    batchRepo,
		issueRepo:    issueRepo,
		medicineRepo: medicineRepo,
		supplierRepo: supplierRepo,
	}
}

// AddBatch valida el formulario y registra un lote nuevo. La cantidad
// restante arranca igual a la recibida. medicine_id (y supplier_id si viene)
// deben pertenecer a la farmacia del contexto.
func (uc *StockUseCase) AddBatch(ctx context.Context, pharmacyID string, in dto.AddStockRequest) error {
	if in.MedicineID == "" {
		return domain.ErrInvalidInput
	}
	qty, err := parsePositiveInt(in.QuantityReceived)
	if err != nil {
		return domain.ErrInvalidInput
	}
	expiry, err := time.Parse(dateLayout, in.ExpiryDate)
	if err != nil {
		return domain.ErrInvalidInput
	}

	var purchase *time.Time
	if strings.TrimSpace(in.PurchaseDate) != "" {
		d, err := time.Parse(dateLayout, in.PurchaseDate)
		if err != nil {
			return domain.ErrInvalidInput
		}
		purchase = &d
	}

	var cost *decimal.Decimal
	if strings.TrimSpace(in.CostPerUnit) != "" {
		c, err := decimal.NewFromString(in.CostPerUnit)
		if err != nil || c.IsNegative() {
			return domain.ErrInvalidInput
		}
		cost = &c
	}

	// El medicamento (y el proveedor, si viene) deben existir en esta farmacia:
	// la FK sola no garantiza que sean del mismo tenant.
	medicine, err := uc.medicineRepo.GetByID(ctx, pharmacyID, in.MedicineID)
	if err != nil {
		return err
	}
	if medicine == nil {
		return domain.ErrNotFound
	}
	var supplierID *string
	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(ctx, pharmacyID, in.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrNotFound
		}
		supplierID = &in.SupplierID
	}

	batch := &entity.StockBatch{
		ID:                uuid.New().String(),
		PharmacyID:        pharmacyID,
		MedicineID:        in.MedicineID,
		SupplierID:        supplierID,
		QuantityReceived:  qty,
		QuantityRemaining: qty,
		CostPerUnit:       cost,
		PurchaseDate:      purchase,
		ExpiryDate:        expiry,
		CreatedAt:         time.Now(),
	}
	return uc.batchRepo.Create(ctx, batch)
}

// IssueStock registra una salida contra un lote: dentro de una transacción
// bloquea la fila del lote, rechaza con ErrInsufficientStock si la cantidad
// pedida supera la restante, decrementa y guarda el issue. Commit solo si
// ambas sentencias terminan bien.
func (uc *StockUseCase) IssueStock(ctx context.Context, pharmacyID string, in dto.IssueStockRequest) error {
	if in.BatchID == "" || strings.TrimSpace(in.IssuedTo) == "" {
		return domain.ErrInvalidInput
	}
	qty, err := parsePositiveInt(in.QuantityIssued)
	if err != nil {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	return uc.txRunner.RunIssue(ctx, func(
		batchRepo repository.StockBatchRepository,
		issueRepo repository.IssueRepository,
	) error {
		batch, err := batchRepo.GetForUpdate(ctx, pharmacyID, in.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}
		if qty > batch.QuantityRemaining {
			return domain.ErrInsufficientStock
		}
		if err := batchRepo.UpdateRemaining(ctx, pharmacyID, batch.ID, batch.QuantityRemaining-qty); err != nil {
			return err
		}
		issue := &entity.Issue{
			ID:             uuid.New().String(),
			PharmacyID:     pharmacyID,
			BatchID:        batch.ID,
			QuantityIssued: qty,
			IssuedTo:       strings.TrimSpace(in.IssuedTo),
			IssueDate:      now,
			CreatedAt:      now,
		}
		return issueRepo.Create(ctx, issue)
	})
}

// ListStock lista los lotes de la farmacia para la vista de stock.
func (uc *StockUseCase) ListStock(ctx context.Context, pharmacyID string) ([]dto.StockItemView, error) {
	rows, err := uc.batchRepo.ListByPharmacy(ctx, pharmacyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemView, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.StockItemView{
			BatchID:           row.BatchID,
			MedicineName:      row.MedicineName,
			SupplierName:      row.SupplierName,
			QuantityReceived:  row.QuantityReceived,
			QuantityRemaining: row.QuantityRemaining,
			ExpiryDate:        row.ExpiryDate.Format(dateLayout),
		})
	}
	return items, nil
}

// ListIssues lista el historial de salidas de la farmacia.
func (uc *StockUseCase) ListIssues(ctx context.Context, pharmacyID string) ([]dto.IssueView, error) {
	rows, err := uc.issueRepo.ListByPharmacy(ctx, pharmacyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IssueView, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.IssueView{
			IssueID:        row.IssueID,
			BatchID:        row.BatchID,
			MedicineName:   row.MedicineName,
			QuantityIssued: row.QuantityIssued,
			IssuedTo:       row.IssuedTo,
			IssueDate:      row.IssueDate.Format(dateLayout),
		})
	}
	return items, nil
}

// parsePositiveInt convierte un campo numérico de formulario; cero, negativo
// o no numérico es entrada inválida.
func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	if n <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return n, nil
}
