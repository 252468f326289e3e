// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item owned by exactly one user.
// OwnerID is immutable after creation; every mutation is gated on it.
type Product struct {
	ID          uuid.UUID // The unique ID for this product.
	OwnerID     uuid.UUID // Links this product to the User that created it. Never changes.
	Name        string    // Display name of the product.
	Description string    // Free-form description.
	SKU         string    // Stock-keeping code. Unique across all products.
	Quantity    int       // Units in stock. Never negative.
	CreatedAt   time.Time // Timestamp of when this product was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this product.
}

// ProductImage is the metadata record for an image attached to a product.
// The bytes live in object storage under StorageKey; the record cannot
// outlive its product (rows cascade on product deletion).
type ProductImage struct {
	ID          uuid.UUID // The unique ID for this image record.
	ProductID   uuid.UUID // Links this image to its parent product.
	StorageKey  string    // Object storage locator: {ownerID}/{productID}/{imageID}.{ext}.
	Filename    string    // Original filename as uploaded, for display.
	ContentType string    // MIME type of the stored bytes.
	SizeBytes   int64     // Size of the stored bytes.
	CreatedAt   time.Time // Timestamp of when this image was uploaded.
}
