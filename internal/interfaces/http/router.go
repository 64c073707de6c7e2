package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/auth"
	appledger "github.com/jhoicas/PuntoVenta-api/internal/application/ledger"
	"github.com/jhoicas/PuntoVenta-api/internal/application/usecase"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	LedgerUC   *appledger.StockLedgerUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	UnitUC     *usecase.UnitUseCase
	StoreUC    *usecase.StoreUseCase
	ReportUC   *usecase.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)

	// Products: lecturas para cualquier rol; alta/edición manual y borrado
	// son solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.LedgerUC)
	products.Get("/", productHandler.List)
	products.Put("/", admin, productHandler.Upsert)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", admin, productHandler.Delete)
	products.Get("/:id/history", productHandler.History)
	products.Get("/:id/reconcile", productHandler.Reconcile)

	// Movimientos de stock (protegido, cualquier rol)
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	products.Post("/scan", inventoryHandler.Scan)
	products.Post("/:id/stock-in", inventoryHandler.StockIn)
	products.Post("/:id/sell", inventoryHandler.Sell)
	products.Post("/:id/remove", inventoryHandler.Remove)
	products.Post("/:id/reject", inventoryHandler.Reject)
	products.Post("/:id/return", inventoryHandler.CustomerReturn)
	products.Post("/:id/refund", inventoryHandler.Refund)
	products.Post("/:id/dispose", inventoryHandler.Dispose)

	// Catálogo: categorías y unidades
	catalogHandler := NewCatalogHandler(deps.CategoryUC, deps.UnitUC)
	categories := protected.Group("/categories")
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Put("/:id", catalogHandler.RenameCategory)
	categories.Delete("/:id", catalogHandler.DeleteCategory)

	units := protected.Group("/units")
	units.Post("/", catalogHandler.CreateUnit)
	units.Get("/", catalogHandler.ListUnits)
	units.Delete("/:id", catalogHandler.DeleteUnit)

	// Tienda
	store := protected.Group("/store")
	storeHandler := NewStoreHandler(deps.StoreUC)
	store.Get("/", storeHandler.Get)
	store.Put("/", admin, storeHandler.Save)

	// Empleados y perfil (solo admin gestiona empleados)
	protected.Post("/employees", admin, authHandler.CreateEmployee)
	protected.Get("/employees", admin, authHandler.ListEmployees)
	protected.Put("/me/markup", authHandler.UpdateMarkup)

	// Reportes y exportes
	reportsHandler := NewReportsHandler(deps.ReportUC)
	reports := protected.Group("/reports")
	reports.Get("/sales-summary", reportsHandler.SalesSummary)
	reports.Get("/best-sellers", reportsHandler.BestSellers)
	reports.Get("/stock-alerts", reportsHandler.StockAlerts)
	reports.Get("/sales.pdf", admin, reportsHandler.SalesReportPDF)
	reports.Post("/labels.pdf", admin, reportsHandler.ProductLabelsPDF)

	protected.Get("/ledger", reportsHandler.LedgerExport)
}
