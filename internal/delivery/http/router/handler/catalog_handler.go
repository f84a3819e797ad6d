package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for product browsing handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts handles retrieving the full catalog
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct handles retrieving a single product by id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// SearchProducts handles substring search over the catalog
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	products, err := h.catalogUC.SearchProducts(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// ListCategories handles retrieving the category names
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// ListProductsByCategory handles retrieving the products of one category
func (h *CatalogHandler) ListProductsByCategory(c echo.Context) error {
	category := c.Param("category")
	if category == "" {
		return response.BadRequest(c, "INVALID_CATEGORY", "Category is required")
	}

	products, err := h.catalogUC.ListProductsByCategory(c.Request().Context(), category)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}
