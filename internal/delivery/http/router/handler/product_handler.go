package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

// requesterAndProductID extracts the authenticated user and the product path
// parameter shared by every gated product route. Failures surface as errors
// for the central error handler.
func requesterAndProductID(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	requesterID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid product ID")
	}

	return requesterID, productID, nil
}

type createProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	SKU         string `json:"sku" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
}

// Create handles product creation. The creator becomes the owner.
func (h *ProductHandler) Create(c echo.Context) error {
	requesterID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), requesterID, usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product created successfully")
}

// List returns every product the caller owns.
func (h *ProductHandler) List(c echo.Context) error {
	requesterID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	products, err := h.uc.ListProducts(c.Request().Context(), requesterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "")
}

// Get returns a single product the caller owns.
func (h *ProductHandler) Get(c echo.Context) error {
	requesterID, productID, err := requesterAndProductID(c)
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), requesterID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

type replaceProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	SKU         string `json:"sku" validate:"required"`
	Quantity    *int   `json:"quantity" validate:"required"`
}

// Replace handles PUT: a full replacement of the product's mutable fields.
// The response carries no entity body.
func (h *ProductHandler) Replace(c echo.Context) error {
	requesterID, productID, err := requesterAndProductID(c)
	if err != nil {
		return err
	}

	var req replaceProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err = h.uc.ReplaceProduct(c.Request().Context(), requesterID, productID, usecase.ReplaceProductInput{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Quantity:    *req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product updated successfully")
}

type patchProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	SKU         *string `json:"sku,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
}

// Patch handles PATCH: a partial update carrying at least one field.
// The response carries no entity body.
func (h *ProductHandler) Patch(c echo.Context) error {
	requesterID, productID, err := requesterAndProductID(c)
	if err != nil {
		return err
	}

	var req patchProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	err = h.uc.PatchProduct(c.Request().Context(), requesterID, productID, usecase.PatchProductInput{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product updated successfully")
}

// Delete removes a product the caller owns, along with its stored images.
func (h *ProductHandler) Delete(c echo.Context) error {
	requesterID, productID, err := requesterAndProductID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), requesterID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
