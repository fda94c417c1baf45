package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jprezende/AgroGestor-api/internal/application/auth"
	"github.com/jprezende/AgroGestor-api/internal/application/harvest"
	"github.com/jprezende/AgroGestor-api/internal/application/importer"
	"github.com/jprezende/AgroGestor-api/internal/application/inventory"
	"github.com/jprezende/AgroGestor-api/internal/application/usecase"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
	"github.com/jprezende/AgroGestor-api/internal/infrastructure/pdf"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	FarmUC         *usecase.FarmUseCase
	ProductUC      *usecase.ProductUseCase
	AgrochemicalUC *usecase.AgrochemicalUseCase
	FieldUC        *usecase.FieldUseCase
	PlantingUC     *usecase.PlantingUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	MachineUC      *usecase.MachineUseCase
	Recorder       *inventory.RecorderUseCase
	Ledger         *inventory.LedgerQuery
	Reconcile      *inventory.ReconcileUseCase
	HarvestUC      *harvest.UseCase
	ImporterUC     *importer.UseCase
	AuthUC         *auth.AuthUseCase
	FarmRepo       repository.FarmRepository
	PDFReporter    *pdf.HarvestReportGenerator
	JWTSecret      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Farms (público para criação; cadastro inicial da fazenda antecede o login)
	farms := api.Group("/farms")
	farmHandler := NewFarmHandler(deps.FarmUC)
	farms.Post("/", farmHandler.Create)
	farms.Get("/", farmHandler.List)
	farms.Get("/:id", farmHandler.GetByID)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Papéis com permissão de escrita em cadastros e estoque.
	writers := RequireRole(entity.RoleAdmin, entity.RoleGerente, entity.RoleOperador)
	managers := RequireRole(entity.RoleAdmin, entity.RoleGerente)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", managers, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", managers, productHandler.Update)
	products.Delete("/:id", managers, productHandler.Delete)

	// Agrochemicals (protegido)
	agrochemicals := protected.Group("/agrochemicals")
	agrochemicalHandler := NewAgrochemicalHandler(deps.AgrochemicalUC)
	agrochemicals.Post("/", managers, agrochemicalHandler.Create)
	agrochemicals.Get("/", agrochemicalHandler.List)
	agrochemicals.Get("/:id", agrochemicalHandler.GetByID)
	agrochemicals.Put("/:id", managers, agrochemicalHandler.Update)
	agrochemicals.Delete("/:id", managers, agrochemicalHandler.Delete)

	// Fields (protegido)
	fields := protected.Group("/fields")
	fieldHandler := NewFieldHandler(deps.FieldUC)
	fields.Post("/", managers, fieldHandler.Create)
	fields.Get("/", fieldHandler.List)
	fields.Get("/:id", fieldHandler.GetByID)
	fields.Put("/:id", managers, fieldHandler.Update)
	fields.Delete("/:id", managers, fieldHandler.Delete)

	// Plantings (protegido)
	plantings := protected.Group("/plantings")
	plantingHandler := NewPlantingHandler(deps.PlantingUC)
	plantings.Post("/", managers, plantingHandler.Create)
	plantings.Get("/", plantingHandler.List)
	plantings.Get("/:id", plantingHandler.GetByID)
	plantings.Put("/:id", managers, plantingHandler.Update)
	plantings.Delete("/:id", managers, plantingHandler.Delete)

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", managers, employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", managers, employeeHandler.Update)
	employees.Delete("/:id", managers, employeeHandler.Delete)

	// Machines (protegido)
	machines := protected.Group("/machines")
	machineHandler := NewMachineHandler(deps.MachineUC)
	machines.Post("/", managers, machineHandler.Create)
	machines.Get("/", machineHandler.List)
	machines.Get("/:id", machineHandler.GetByID)
	machines.Put("/:id", managers, machineHandler.Update)
	machines.Delete("/:id", managers, machineHandler.Delete)

	// Movements (protegido): o razão só muda por aqui.
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.Recorder)
	movements.Post("/", writers, movementHandler.Record)
	movements.Get("/", movementHandler.List)
	movements.Get("/export.csv", movementHandler.ExportCSV)
	movements.Delete("/:id", managers, movementHandler.Delete)

	// Stock (protegido)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.Ledger, deps.Reconcile)
	stock.Get("/:kind/:id", stockHandler.GetQuantity)
	stock.Post("/reconcile", managers, stockHandler.Reconcile)

	// Harvest loads (protegido)
	loads := protected.Group("/harvest-loads")
	harvestHandler := NewHarvestHandler(deps.HarvestUC, deps.FarmRepo, deps.PDFReporter)
	loads.Post("/", writers, harvestHandler.Create)
	loads.Get("/", harvestHandler.List)
	loads.Get("/summary", harvestHandler.Summary)
	loads.Get("/export.csv", harvestHandler.ExportCSV)
	loads.Get("/report.pdf", harvestHandler.Report)
	loads.Delete("/:id", managers, harvestHandler.Delete)

	// NF-e imports (protegido)
	imports := protected.Group("/imports")
	importHandler := NewImportHandler(deps.ImporterUC)
	imports.Post("/nfe", managers, importHandler.ImportNFe)
	imports.Get("/nfe", importHandler.History)
}
