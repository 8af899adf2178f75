package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/tu-usuario/farmastock/internal/application/auth"
	"github.com/tu-usuario/farmastock/internal/application/stock"
	"github.com/tu-usuario/farmastock/internal/application/usecase"
	"github.com/tu-usuario/farmastock/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store      *session.Store
	AuthUC     *auth.AuthUseCase
	MedicineUC *usecase.MedicineUseCase
	SupplierUC *usecase.SupplierUseCase
	StockUC    *stock.StockUseCase
	ReportUC   *usecase.ReportUseCase
	Log        *logger.Logger
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Store, deps.Log)
	medicineHandler := NewMedicineHandler(deps.MedicineUC, deps.Store, deps.Log)
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Store, deps.Log)
	stockHandler := NewStockHandler(deps.StockUC, deps.MedicineUC, deps.SupplierUC, deps.Store, deps.Log)
	reportHandler := NewReportHandler(deps.ReportUC, deps.Store, deps.Log)

	// Área pública
	app.Get("/", medicineHandler.Home)
	app.Get("/login", authHandler.ShowLogin)
	app.Post("/login", authHandler.Login)
	app.Get("/signup", authHandler.ShowSignup)
	app.Post("/signup", authHandler.Signup)
	app.Get("/logout", authHandler.Logout)

	// Área autenticada: toda ruta pasa por RequireSession, que carga el
	// contexto de la farmacia en c.Locals.
	protected := app.Group("/", RequireSession(deps.Store))

	protected.Get("/dashboard", reportHandler.Dashboard)

	medicines := protected.Group("/medicines")
	medicines.Get("/", medicineHandler.List)
	medicines.Post("/", medicineHandler.Create)
	medicines.Get("/edit/:id", medicineHandler.ShowEdit)
	medicines.Post("/edit/:id", medicineHandler.Update)
	medicines.Post("/delete/:id", medicineHandler.Delete)

	suppliers := protected.Group("/suppliers")
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/edit/:id", supplierHandler.ShowEdit)
	suppliers.Post("/edit/:id", supplierHandler.Update)
	suppliers.Post("/delete/:id", supplierHandler.Delete)

	stockGroup := protected.Group("/stock")
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/add", stockHandler.ShowAdd)
	stockGroup.Post("/add", stockHandler.Add)
	stockGroup.Get("/issue", stockHandler.ShowIssue)
	stockGroup.Post("/issue", stockHandler.Issue)

	reports := protected.Group("/reports")
	reports.Get("/", reportHandler.Index)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/near-expiry", reportHandler.NearExpiry)
}
