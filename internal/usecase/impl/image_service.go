package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/constants"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPresignTTL = 15 * time.Minute

// imageExtensions maps accepted content types to the extension used in the
// storage key.
var imageExtensions = map[string]string{
	constants.ImageTypeJPEG: "jpg",
	constants.ImageTypePNG:  "png",
	constants.ImageTypeGIF:  "gif",
}

// imageService implements the ImageUsecase interface.
type imageService struct {
	productRepo repository.ProductRepository
	imageRepo   repository.ImageRepository
	storage     service.ObjectStorage
	presignTTL  time.Duration
	logger      *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ImageRepo   repository.ImageRepository
	Storage     service.ObjectStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	presignTTL := defaultPresignTTL
	if params.Config.Storage != nil && params.Config.Storage.PresignTTL > 0 {
		presignTTL = params.Config.Storage.PresignTTL
	}

	return &imageService{
		productRepo: params.ProductRepo,
		imageRepo:   params.ImageRepo,
		storage:     params.Storage,
		presignTTL:  presignTTL,
		logger:      params.Logger,
	}
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage validates the upload from its multipart header, streams the
// bytes to object storage, and records the image row. Size and content type
// are rejected before any byte reaches storage.
func (srv *imageService) UploadImage(ctx context.Context, requesterID, productID uuid.UUID, input usecase.UploadImageInput) (*entity.ProductImage, error) {
	product, err := loadOwnedProduct(ctx, srv.productRepo, requesterID, productID)
	if err != nil {
		return nil, err
	}

	if input.SizeBytes > constants.MaxImageSizeBytes {
		return nil, domainerrors.ErrImageTooLarge
	}
	ext, ok := imageExtensions[input.ContentType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedImageType
	}

	key := fmt.Sprintf("%s/%s/%s.%s", product.OwnerID, product.ID, uuid.New(), ext)

	if err := srv.storage.Put(ctx, key, input.Body, input.SizeBytes, input.ContentType); err != nil {
		srv.log(ctx).Error("Failed to upload image bytes",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrStorageFailure
	}

	image := &entity.ProductImage{
		ProductID:   productID,
		StorageKey:  key,
		Filename:    input.Filename,
		ContentType: input.ContentType,
		SizeBytes:   input.SizeBytes,
	}

	if err := srv.imageRepo.Create(ctx, image); err != nil {
		// The metadata row failed after the bytes landed; remove them so
		// storage does not accumulate orphans.
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Error("Failed to clean up orphaned image bytes",
				slog.String("key", key),
				slog.Any("error", delErr),
			)
		}

		return nil, err
	}

	srv.log(ctx).Info("Image uploaded",
		slog.Any("imageID", image.ID),
		slog.Any("productID", productID),
		slog.Int64("size", input.SizeBytes),
	)

	return image, nil
}

// ListImages returns the image records of a product the caller owns.
func (srv *imageService) ListImages(ctx context.Context, requesterID, productID uuid.UUID) ([]*entity.ProductImage, error) {
	if _, err := loadOwnedProduct(ctx, srv.productRepo, requesterID, productID); err != nil {
		return nil, err
	}

	images, err := srv.imageRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list images")
	}

	return images, nil
}

// GetImage returns one image record plus a presigned URL for its bytes.
func (srv *imageService) GetImage(ctx context.Context, requesterID, productID, imageID uuid.UUID) (*usecase.ImageOutput, error) {
	if _, err := loadOwnedProduct(ctx, srv.productRepo, requesterID, productID); err != nil {
		return nil, err
	}

	image, err := srv.findProductImage(ctx, productID, imageID)
	if err != nil {
		return nil, err
	}

	url, err := srv.storage.PresignGet(ctx, image.StorageKey, srv.presignTTL)
	if err != nil {
		srv.log(ctx).Error("Failed to presign image URL",
			slog.String("key", image.StorageKey),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrStorageFailure
	}

	return &usecase.ImageOutput{Image: image, URL: url}, nil
}

// DeleteImage removes an image's bytes from storage, then its record. A
// storage failure leaves the record in place so the image stays listable
// and the delete can be retried.
func (srv *imageService) DeleteImage(ctx context.Context, requesterID, productID, imageID uuid.UUID) error {
	if _, err := loadOwnedProduct(ctx, srv.productRepo, requesterID, productID); err != nil {
		return err
	}

	image, err := srv.findProductImage(ctx, productID, imageID)
	if err != nil {
		return err
	}

	if err := srv.storage.Delete(ctx, image.StorageKey); err != nil {
		srv.log(ctx).Error("Failed to delete image bytes",
			slog.String("key", image.StorageKey),
			slog.Any("error", err),
		)

		return domainerrors.ErrStorageFailure
	}

	if err := srv.imageRepo.Delete(ctx, imageID); err != nil {
		return err
	}

	srv.log(ctx).Info("Image deleted",
		slog.Any("imageID", imageID),
		slog.Any("productID", productID),
	)

	return nil
}

// findProductImage loads an image record and confirms it belongs to the
// given product. An image reached through the wrong product is not found.
func (srv *imageService) findProductImage(ctx context.Context, productID, imageID uuid.UUID) (*entity.ProductImage, error) {
	image, err := srv.imageRepo.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return nil, domainerrors.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find image")
	}

	if image.ProductID != productID {
		return nil, domainerrors.ErrImageNotFound
	}

	return image, nil
}
