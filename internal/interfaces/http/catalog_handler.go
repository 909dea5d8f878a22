package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-ops/internal/application/usecase"
)

// CatalogHandler lectura de productos, bodegas y etiquetas de empaque.
type CatalogHandler struct {
	products   *usecase.ProductUseCase
	warehouses *usecase.WarehouseUseCase
	packaging  *usecase.PackagingUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(products *usecase.ProductUseCase, warehouses *usecase.WarehouseUseCase, packaging *usecase.PackagingUseCase) *CatalogHandler {
	return &CatalogHandler{products: products, warehouses: warehouses, packaging: packaging}
}

// ListProducts godoc
// @Summary      Listar productos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.products.List(c.UserContext())
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// GetProduct godoc
// @Summary      Obtener producto por ID
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	out, err := h.products.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// ListWarehouses godoc
// @Summary      Listar bodegas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WarehouseListResponse
// @Router       /api/warehouses [get]
func (h *CatalogHandler) ListWarehouses(c *fiber.Ctx) error {
	out, err := h.warehouses.List(c.UserContext())
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// ListPackagingOptions godoc
// @Summary      Listar etiquetas de empaque
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Texto a buscar (sin distinguir mayúsculas)"
// @Success      200  {object}  dto.PackagingOptionListResponse
// @Router       /api/packaging-options [get]
func (h *CatalogHandler) ListPackagingOptions(c *fiber.Ctx) error {
	out, err := h.packaging.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}
