package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/tu-usuario/farmastock/internal/application/dto"
	"github.com/tu-usuario/farmastock/internal/application/stock"
	"github.com/tu-usuario/farmastock/internal/application/usecase"
	"github.com/tu-usuario/farmastock/internal/domain"
	"github.com/tu-usuario/farmastock/pkg/logger"
)

// StockHandler maneja el listado de lotes, la entrada y la salida de stock.
type StockHandler struct {
	uc         *stock.StockUseCase
	medicineUC *usecase.MedicineUseCase
	supplierUC *usecase.SupplierUseCase
	store      *session.Store
	log        *logger.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(
	uc *stock.StockUseCase,
	medicineUC *usecase.MedicineUseCase,
	supplierUC *usecase.SupplierUseCase,
	store *session.Store,
	log *logger.Logger,
) *StockHandler {
	return &StockHandler{uc: uc, medicineUC: medicineUC, supplierUC: supplierUC, store: store, log: log}
}

// List GET /stock — lotes de la farmacia ordenados por vencimiento, más el
// historial de salidas.
func (h *StockHandler) List(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	items, err := h.uc.ListStock(c.Context(), sc.PharmacyID)
	if err != nil {
		h.log.Error().Err(err).Str("pharmacy_id", sc.PharmacyID).Msg("listar stock")
		items = nil
	}
	issues, issuesErr := h.uc.ListIssues(c.Context(), sc.PharmacyID)
	if issuesErr != nil {
		h.log.Error().Err(issuesErr).Str("pharmacy_id", sc.PharmacyID).Msg("listar salidas")
		issues = nil
	}
	data := fiber.Map{
		"Title":      "Stock",
		"Session":    sc,
		"StockItems": items,
		"Issues":     issues,
		"Flash":      PopFlash(c, h.store),
	}
	if err != nil || issuesErr != nil {
		data["Notice"] = "No se pudo cargar el stock"
	}
	return c.Render("stock_view", data)
}

// ShowAdd GET /stock/add — formulario de entrada con los medicamentos y
// proveedores de la farmacia.
func (h *StockHandler) ShowAdd(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	medicines, err := h.medicineUC.List(c.Context(), sc.PharmacyID)
	if err != nil {
		h.log.Error().Err(err).Msg("cargar medicamentos para entrada")
	}
	suppliers, err := h.supplierUC.List(c.Context(), sc.PharmacyID)
	if err != nil {
		h.log.Error().Err(err).Msg("cargar proveedores para entrada")
	}
	return c.Render("stock_add", fiber.Map{
		"Title":     "Registrar entrada de stock",
		"Session":   sc,
		"Medicines": medicines,
		"Suppliers": suppliers,
		"Flash":     PopFlash(c, h.store),
	})
}

// Add POST /stock/add — registra un lote nuevo.
func (h *StockHandler) Add(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		SetFlash(c, h.store, "error", "Formulario inválido")
		return c.Redirect("/stock/add", fiber.StatusSeeOther)
	}
	if err := h.uc.AddBatch(c.Context(), sc.PharmacyID, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			SetFlash(c, h.store, "error", "Cantidad y fecha de vencimiento (YYYY-MM-DD) son requeridas; la cantidad debe ser numérica y positiva")
		case errors.Is(err, domain.ErrNotFound):
			SetFlash(c, h.store, "error", "El medicamento o proveedor seleccionado no existe")
		default:
			h.log.Error().Err(err).Msg("registrar entrada de stock")
			SetFlash(c, h.store, "error", "No se pudo registrar la entrada")
		}
		return c.Redirect("/stock/add", fiber.StatusSeeOther)
	}
	SetFlash(c, h.store, "success", "Entrada de stock registrada")
	return c.Redirect("/stock", fiber.StatusSeeOther)
}

// ShowIssue GET /stock/issue — formulario de salida con los lotes disponibles.
func (h *StockHandler) ShowIssue(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	items, err := h.uc.ListStock(c.Context(), sc.PharmacyID)
	if err != nil {
		h.log.Error().Err(err).Msg("cargar lotes para salida")
	}
	// Solo lotes con existencias
	available := make([]dto.StockItemView, 0, len(items))
	for _, it := range items {
		if it.QuantityRemaining > 0 {
			available = append(available, it)
		}
	}
	return c.Render("stock_issue", fiber.Map{
		"Title":   "Registrar salida de stock",
		"Session": sc,
		"Batches": available,
		"Flash":   PopFlash(c, h.store),
	})
}

// Issue POST /stock/issue — decrementa el lote e inserta la salida en una
// sola transacción; el stock insuficiente se rechaza antes del commit.
func (h *StockHandler) Issue(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	var in dto.IssueStockRequest
	if err := c.BodyParser(&in); err != nil {
		SetFlash(c, h.store, "error", "Formulario inválido")
		return c.Redirect("/stock/issue", fiber.StatusSeeOther)
	}
	if err := h.uc.IssueStock(c.Context(), sc.PharmacyID, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			SetFlash(c, h.store, "error", "Stock insuficiente en el lote seleccionado")
		case errors.Is(err, domain.ErrNotFound):
			SetFlash(c, h.store, "error", "El lote seleccionado no existe")
		case errors.Is(err, domain.ErrInvalidInput):
			SetFlash(c, h.store, "error", "Lote, cantidad numérica positiva y destinatario son requeridos")
		default:
			h.log.Error().Err(err).Msg("registrar salida de stock")
			SetFlash(c, h.store, "error", "No se pudo registrar la salida")
		}
		return c.Redirect("/stock/issue", fiber.StatusSeeOther)
	}
	SetFlash(c, h.store, "success", "Salida de stock registrada")
	return c.Redirect("/stock", fiber.StatusSeeOther)
}
