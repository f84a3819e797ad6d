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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC     usecase.CartUsecase
	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CartHandler holds dependencies for basket handlers
type CartHandler struct {
	cartUC     usecase.CartUsecase
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:     params.CartUC,
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// AddItemRequest represents the request body for adding a product
type AddItemRequest struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"omitempty,min=1"`
}

// SetQuantityRequest represents the request body for replacing a quantity
type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// GetCart handles retrieving the basket
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.cartUC.GetCart(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Cart retrieved successfully")
}

// AddItem handles adding a product to the basket
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.cartUC.AddItem(c.Request().Context(), &usecase.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view, "Item added to cart")
}

// SetQuantity handles replacing the quantity of a basket entry
func (h *CartHandler) SetQuantity(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil || productID < 1 {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.cartUC.SetQuantity(c.Request().Context(), &usecase.SetQuantityInput{
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Quantity updated")
}

// RemoveItem handles deleting a basket entry
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil || productID < 1 {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	view, err := h.cartUC.RemoveItem(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Item removed from cart")
}

// ClearCart handles discarding the whole basket
func (h *CartHandler) ClearCart(c echo.Context) error {
	view, err := h.cartUC.ClearCart(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Cart cleared")
}

// Checkout handles converting the basket into an order
func (h *CartHandler) Checkout(c echo.Context) error {
	out, err := h.checkoutUC.Checkout(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out, "Checkout completed")
}
