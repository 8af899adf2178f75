package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/tu-usuario/farmastock/internal/application/dto"
	"github.com/tu-usuario/farmastock/internal/application/usecase"
	"github.com/tu-usuario/farmastock/pkg/logger"
)

// ReportHandler maneja el dashboard y los reportes de solo lectura.
type ReportHandler struct {
	uc    *usecase.ReportUseCase
	store *session.Store
	log   *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, store *session.Store, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, store: store, log: log}
}

// Dashboard GET /dashboard — resumen de stock bajo y vencimientos próximos.
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	summary, err := h.uc.Dashboard(c.Context(), sc.PharmacyID)
	if err != nil {
		h.log.Error().Err(err).Str("pharmacy_id", sc.PharmacyID).Msg("dashboard")
		summary = &dto.DashboardSummary{}
	}
	data := fiber.Map{
		"Title":   "Dashboard",
		"Session": sc,
		"Summary": summary,
		"Flash":   PopFlash(c, h.store),
	}
	if err != nil {
		data["Notice"] = "No se pudieron cargar los reportes"
	}
	return c.Render("dashboard", data)
}

// Index GET /reports — índice de reportes.
func (h *ReportHandler) Index(c *fiber.Ctx) error {
	return c.Render("reports", fiber.Map{
		"Title":   "Reportes",
		"Session": CurrentSession(c),
		"Flash":   PopFlash(c, h.store),
	})
}

// LowStock GET /reports/low-stock — medicamentos bajo su umbral de reposición.
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	items, err := h.uc.LowStock(c.Context(), sc.PharmacyID)
	if err != nil {
		h.log.Error().Err(err).Str("pharmacy_id", sc.PharmacyID).Msg("reporte stock bajo")
		items = nil
	}
	data := fiber.Map{
		"Title":      "Reporte de stock bajo",
		"Session":    sc,
		"ReportName": "Stock bajo",
		"LowStock":   items,
	}
	if err != nil {
		data["Notice"] = "No se pudo generar el reporte"
	}
	return c.Render("report_low_stock", data)
}

// NearExpiry GET /reports/near-expiry — lotes que vencen dentro del horizonte,
// el más próximo primero.
func (h *ReportHandler) NearExpiry(c *fiber.Ctx) error {
	sc := CurrentSession(c)
	items, err := h.uc.NearExpiry(c.Context(), sc.PharmacyID)
	if err != nil {
		h.log.Error().Err(err).Str("pharmacy_id", sc.PharmacyID).Msg("reporte vencimientos")
		items = nil
	}
	data := fiber.Map{
		"Title":      "Reporte de vencimientos",
		"Session":    sc,
		"ReportName": "Vencimientos próximos",
		"NearExpiry": items,
	}
	if err != nil {
		data["Notice"] = "No se pudo generar el reporte"
	}
	return c.Render("report_near_expiry", data)
}
