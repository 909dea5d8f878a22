package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-ops/internal/application/analytics"
	"github.com/jhoicas/inventory-ops/internal/application/operation"
	"github.com/jhoicas/inventory-ops/internal/application/usecase"
	"github.com/jhoicas/inventory-ops/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	PackagingUC *usecase.PackagingUseCase
	HistoryUC   *usecase.HistoryUseCase
	EntryUC     *operation.EntryUseCase
	ReportUC    *analytics.ReportUseCase
	JWTSecret   string
	JWTIssuer   string
}

// Router registra las rutas de la API. Todas requieren Bearer Token; el rol viewer solo lee.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	readers := RequireRole(jwt.RoleAdmin, jwt.RoleOperator, jwt.RoleViewer)
	writers := RequireRole(jwt.RoleAdmin, jwt.RoleOperator)

	catalog := NewCatalogHandler(deps.ProductUC, deps.WarehouseUC, deps.PackagingUC)
	api.Get("/products", readers, catalog.ListProducts)
	api.Get("/products/:id", readers, catalog.GetProduct)
	api.Get("/warehouses", readers, catalog.ListWarehouses)
	api.Get("/packaging-options", readers, catalog.ListPackagingOptions)

	// Borrador de operación del operador autenticado
	ops := NewOperationHandler(deps.EntryUC, deps.HistoryUC)
	api.Get("/operations/history", readers, ops.History)
	draft := api.Group("/operations/draft", writers)
	draft.Get("/", ops.GetDraft)
	draft.Patch("/", ops.UpdateDraft)
	draft.Delete("/", ops.ResetDraft)
	draft.Put("/type", ops.SelectType)
	draft.Post("/packaging-lines", ops.AddPackagingLine)
	draft.Delete("/packaging-lines/:index", ops.RemovePackagingLine)
	draft.Post("/packaging-options", ops.AddPackagingOption)
	draft.Post("/products", ops.AddProduct)
	draft.Delete("/products/:index", ops.RemoveProduct)
	draft.Post("/save", ops.Save)
	draft.Get("/pdf", ops.ExportPDF)
	draft.Get("/print", ops.PrintPDF)

	reports := NewReportHandler(deps.ReportUC)
	rg := api.Group("/reports", readers)
	rg.Get("/", reports.GetReport)
	rg.Get("/summary", reports.GetSummary)
	rg.Get("/operations", reports.RecentOperations)
	rg.Post("/export", reports.Export)
	rg.Post("/date-filter", reports.DateFilter)
}
