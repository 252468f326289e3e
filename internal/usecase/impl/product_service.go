package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	imageRepo   repository.ImageRepository
	storage     service.ObjectStorage
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ImageRepo   repository.ImageRepository
	Storage     service.ObjectStorage
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		imageRepo:   params.ImageRepo,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadOwnedProduct is the access guard for everything scoped to a product.
// Existence is checked before ownership: a missing product is a not-found
// error for everyone, an existing product owned by someone else is forbidden.
func loadOwnedProduct(ctx context.Context, productRepo repository.ProductRepository, requesterID, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.OwnerID != requesterID {
		return nil, domainerrors.ErrForbidden
	}

	return product, nil
}

// CreateProduct creates a product owned by the caller.
func (srv *productService) CreateProduct(ctx context.Context, ownerID uuid.UUID, input usecase.CreateProductInput) (*entity.Product, error) {
	if input.Quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must not be negative")
	}

	product := &entity.Product{
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		SKU:         input.SKU,
		Quantity:    input.Quantity,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created",
		slog.Any("productID", product.ID),
		slog.Any("ownerID", ownerID),
	)

	return product, nil
}

// GetProduct returns a product the caller owns.
func (srv *productService) GetProduct(ctx context.Context, requesterID, productID uuid.UUID) (*entity.Product, error) {
	return loadOwnedProduct(ctx, srv.productRepo, requesterID, productID)
}

// ListProducts returns every product the caller owns.
func (srv *productService) ListProducts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ReplaceProduct overwrites every mutable field of a product the caller owns.
// The access guard runs before any field validation.
func (srv *productService) ReplaceProduct(ctx context.Context, requesterID, productID uuid.UUID, input usecase.ReplaceProductInput) error {
	product, err := loadOwnedProduct(ctx, srv.productRepo, requesterID, productID)
	if err != nil {
		return err
	}

	if input.Quantity < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("quantity must not be negative")
	}

	product.Name = input.Name
	product.Description = input.Description
	product.SKU = input.SKU
	product.Quantity = input.Quantity

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return err
	}

	srv.log(ctx).Info("Product replaced", slog.Any("productID", productID))

	return nil
}

// PatchProduct applies a partial update to a product the caller owns.
// The access guard runs before any field validation; a patch with no
// recognized field is rejected.
func (srv *productService) PatchProduct(ctx context.Context, requesterID, productID uuid.UUID, input usecase.PatchProductInput) error {
	product, err := loadOwnedProduct(ctx, srv.productRepo, requesterID, productID)
	if err != nil {
		return err
	}

	if input.Empty() {
		return domainerrors.ErrValidationFailed.WrapMessage("patch must carry at least one field")
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("quantity must not be negative")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return err
	}

	srv.log(ctx).Info("Product patched", slog.Any("productID", productID))

	return nil
}

// DeleteProduct removes a product the caller owns. All stored image bytes
// are deleted first; a storage failure aborts the deletion so no row ever
// points at bytes that were partially removed. Image rows cascade with the
// product row.
func (srv *productService) DeleteProduct(ctx context.Context, requesterID, productID uuid.UUID) error {
	_, err := loadOwnedProduct(ctx, srv.productRepo, requesterID, productID)
	if err != nil {
		return err
	}

	images, err := srv.imageRepo.ListByProductID(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to list product images")
	}

	for _, image := range images {
		if err := srv.storage.Delete(ctx, image.StorageKey); err != nil {
			srv.log(ctx).Error("Failed to delete image bytes",
				slog.Any("imageID", image.ID),
				slog.String("key", image.StorageKey),
				slog.Any("error", err),
			)

			return domainerrors.ErrStorageFailure
		}
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}
