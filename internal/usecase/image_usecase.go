package usecase

import (
	"context"
	"io"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UploadImageInput carries one image file from a multipart upload.
// Size and content type come from the multipart header and are validated
// before any bytes reach storage.
type UploadImageInput struct {
	Filename    string
	ContentType string
	SizeBytes   int64
	Body        io.Reader
}

// --- Output DTOs ---

// ImageOutput pairs an image record with a presigned URL from which the
// bytes can be fetched directly.
type ImageOutput struct {
	Image *entity.ProductImage
	URL   string
}

// ImageUsecase defines the interface for product-image operations.
// All operations are gated through the parent product's owner, with the same
// not-found-before-forbidden ordering as ProductUsecase.
type ImageUsecase interface {
	UploadImage(ctx context.Context, requesterID, productID uuid.UUID, input UploadImageInput) (*entity.ProductImage, error)
	ListImages(ctx context.Context, requesterID, productID uuid.UUID) ([]*entity.ProductImage, error)
	GetImage(ctx context.Context, requesterID, productID, imageID uuid.UUID) (*ImageOutput, error)
	DeleteImage(ctx context.Context, requesterID, productID, imageID uuid.UUID) error
}
