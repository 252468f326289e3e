package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
// The owner is always the authenticated caller, never a request field.
type CreateProductInput struct {
	Name        string
	Description string
	SKU         string
	Quantity    int
}

// ReplaceProductInput carries a full replacement of a product's mutable
// fields. Every field is required.
type ReplaceProductInput struct {
	Name        string
	Description string
	SKU         string
	Quantity    int
}

// PatchProductInput carries a partial update. Nil fields are left untouched;
// at least one field must be set.
type PatchProductInput struct {
	Name        *string
	Description *string
	SKU         *string
	Quantity    *int
}

// Empty reports whether the patch carries no recognized field.
func (in PatchProductInput) Empty() bool {
	return in.Name == nil && in.Description == nil && in.SKU == nil && in.Quantity == nil
}

// ProductUsecase defines the interface for product-related business operations.
// Reads and mutations on an existing product are owner-gated: a product that
// does not exist yields a not-found error, one owned by someone else yields a
// forbidden error, in that order.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, ownerID uuid.UUID, input CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, requesterID, productID uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)
	ReplaceProduct(ctx context.Context, requesterID, productID uuid.UUID, input ReplaceProductInput) error
	PatchProduct(ctx context.Context, requesterID, productID uuid.UUID, input PatchProductInput) error
	DeleteProduct(ctx context.Context, requesterID, productID uuid.UUID) error
}
