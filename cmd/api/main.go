package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jprezende/AgroGestor-api/internal/application/auth"
	"github.com/jprezende/AgroGestor-api/internal/application/harvest"
	"github.com/jprezende/AgroGestor-api/internal/application/importer"
	"github.com/jprezende/AgroGestor-api/internal/application/inventory"
	"github.com/jprezende/AgroGestor-api/internal/application/usecase"
	infranfe "github.com/jprezende/AgroGestor-api/internal/infrastructure/nfe"
	infrapdf "github.com/jprezende/AgroGestor-api/internal/infrastructure/pdf"
	"github.com/jprezende/AgroGestor-api/internal/infrastructure/postgres"
	httpRouter "github.com/jprezende/AgroGestor-api/internal/interfaces/http"
	"github.com/jprezende/AgroGestor-api/pkg/config"
	"github.com/jprezende/AgroGestor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	farmRepo := postgres.NewFarmRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	agrochemicalRepo := postgres.NewAgrochemicalRepository(pool)
	fieldRepo := postgres.NewFieldRepository(pool)
	plantingRepo := postgres.NewPlantingRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	machineRepo := postgres.NewMachineRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	stockLevelRepo := postgres.NewStockLevelRepository(pool)
	harvestLoadRepo := postgres.NewHarvestLoadRepository(pool)
	nfeImportRepo := postgres.NewNFeImportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Razão de estoque: leituras validam o catálogo; escritas passam pelo
	// registrador transacional (SELECT ... FOR UPDATE no nível).
	ledger := inventory.NewLedgerQuery(stockLevelRepo, productRepo, agrochemicalRepo)
	recorder := inventory.NewRecorderUseCase(txRunner, ledger, employeeRepo, machineRepo, movementRepo)
	reconcile := inventory.NewReconcileUseCase(recorder, stockLevelRepo)

	harvestUC := harvest.NewUseCase(harvestLoadRepo, plantingRepo, harvest.Config{
		SackWeightKg: decimal.NewFromInt(int64(cfg.Harvest.SackWeightKg)),
	})

	nfeDecoder := infranfe.NewDecoder()
	importerUC := importer.NewUseCase(nfeDecoder, recorder, agrochemicalRepo, nfeImportRepo)

	authUC := auth.NewAuthUseCase(userRepo, farmRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	farmUC := usecase.NewFarmUseCase(farmRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	agrochemicalUC := usecase.NewAgrochemicalUseCase(agrochemicalRepo)
	fieldUC := usecase.NewFieldUseCase(fieldRepo)
	plantingUC := usecase.NewPlantingUseCase(plantingRepo, fieldRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	machineUC := usecase.NewMachineUseCase(machineRepo)

	pdfReporter := infrapdf.NewHarvestReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AgroGestor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		FarmUC:         farmUC,
		ProductUC:      productUC,
		AgrochemicalUC: agrochemicalUC,
		FieldUC:        fieldUC,
		PlantingUC:     plantingUC,
		EmployeeUC:     employeeUC,
		MachineUC:      machineUC,
		Recorder:       recorder,
		Ledger:         ledger,
		Reconcile:      reconcile,
		HarvestUC:      harvestUC,
		ImporterUC:     importerUC,
		AuthUC:         authUC,
		FarmRepo:       farmRepo,
		PDFReporter:    pdfReporter,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
