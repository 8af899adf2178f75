package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/tu-usuario/farmastock/internal/application/auth"
	"github.com/tu-usuario/farmastock/internal/application/stock"
	"github.com/tu-usuario/farmastock/internal/application/usecase"
	"github.com/tu-usuario/farmastock/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/farmastock/internal/interfaces/http"
	"github.com/tu-usuario/farmastock/pkg/config"
	"github.com/tu-usuario/farmastock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Fallar en el arranque si el pool no se puede establecer: es el único
	// error fatal del proceso.
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	medicineRepo := postgres.NewMedicineRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	batchRepo := postgres.NewStockBatchRepository(pool)
	issueRepo := postgres.NewIssueRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, txRunner, log)
	medicineUC := usecase.NewMedicineUseCase(medicineRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	stockUC := stock.NewStockUseCase(txRunner, batchRepo, issueRepo, medicineRepo, supplierRepo)
	reportUC := usecase.NewReportUseCase(reportRepo, cfg.Report.NearExpiryDays)

	store := httpRouter.NewSessionStore(cfg.Session)

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Static("/public", "./public")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:      store,
		AuthUC:     authUC,
		MedicineUC: medicineUC,
		SupplierUC: supplierUC,
		StockUC:    stockUC,
		ReportUC:   reportUC,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
