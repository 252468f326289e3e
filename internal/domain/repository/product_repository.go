// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrImageNotFound is returned when a product image record is not found.
	ErrImageNotFound = errors.New("product image not found")
)

// ProductRepository defines the standard operations for product persistence.
// Update refreshes the entity's UpdatedAt timestamp as part of its contract.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListByOwnerID retrieves all products owned by the given user.
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product entity in the storage and touches UpdatedAt.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product row. Image rows cascade at the database level.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ImageRepository defines the standard operations for product image metadata persistence.
type ImageRepository interface {
	// FindByID retrieves a single image record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductImage, error)

	// ListByProductID retrieves all image records attached to the given product.
	ListByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.ProductImage, error)

	// Create persists a new image metadata record.
	Create(ctx context.Context, image *entity.ProductImage) error

	// Delete removes an image metadata record.
	Delete(ctx context.Context, id uuid.UUID) error
}
