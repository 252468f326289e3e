package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	mockRepo "catalog/internal/mocks/repository"
	mockService "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// imageServiceFixtures holds all test dependencies for image service tests.
type imageServiceFixtures struct {
	service     usecase.ImageUsecase
	productRepo *mockRepo.MockProductRepository
	imageRepo   *mockRepo.MockImageRepository
	storage     *mockService.MockObjectStorage
}

func createTestImageService(t *testing.T) imageServiceFixtures {
	t.Helper()

	productRepo := &mockRepo.MockProductRepository{}
	imageRepo := &mockRepo.MockImageRepository{}
	storage := &mockService.MockObjectStorage{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewImageService(ImageServiceParams{
		ProductRepo: productRepo,
		ImageRepo:   imageRepo,
		Storage:     storage,
		Config: &config.Config{
			Storage: &config.StorageConfig{PresignTTL: 15 * time.Minute},
		},
		Logger: logger,
	})

	return imageServiceFixtures{
		service:     service,
		productRepo: productRepo,
		imageRepo:   imageRepo,
		storage:     storage,
	}
}

func ownedProduct(ownerID, productID uuid.UUID) *entity.Product {
	return &entity.Product{ID: productID, OwnerID: ownerID}
}

func TestImageService_UploadImage_Success(t *testing.T) {
	fx := createTestImageService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	fx.productRepo.On("FindByID", ctx, productID).Return(ownedProduct(ownerID, productID), nil)

	keyPattern := regexp.MustCompile(
		fmt.Sprintf(`^%s/%s/[0-9a-f-]{36}\.jpg$`, ownerID, productID),
	)
	fx.storage.On("Put", ctx, mock.MatchedBy(func(key string) bool {
		return keyPattern.MatchString(key)
	}), mock.Anything, int64(1024), "image/jpeg").Return(nil)
	fx.imageRepo.On("Create", ctx, mock.MatchedBy(func(img *entity.ProductImage) bool {
		return img.ProductID == productID && img.Filename == "photo.jpg" && img.SizeBytes == 1024
	})).Return(nil)

	image, err := fx.service.UploadImage(ctx, ownerID, productID, usecase.UploadImageInput{
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   1024,
		Body:        strings.NewReader("fake image bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, productID, image.ProductID)
	fx.storage.AssertExpectations(t)
	fx.imageRepo.AssertExpectations(t)
}

func TestImageService_UploadImage_TooLargeRejectedBeforeStorage(t *testing.T) {
	fx := createTestImageService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	fx.productRepo.On("FindByID", ctx, productID).Return(ownedProduct(ownerID, productID), nil)

	_, err := fx.service.UploadImage(ctx, ownerID, productID, usecase.UploadImageInput{
		Filename:    "huge.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   5*1024*1024 + 1,
		Body:        strings.NewReader(""),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
	fx.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImageService_UploadImage_UnsupportedTypeRejectedBeforeStorage(t *testing.T) {
	fx := createTestImageService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	fx.productRepo.On("FindByID", ctx, productID).Return(ownedProduct(ownerID, productID), nil)

	_, err := fx.service.UploadImage(ctx, ownerID, productID, usecase.UploadImageInput{
		Filename:    "doc.pdf",
		ContentType: "application/pdf",
		SizeBytes:   1024,
		Body:        strings.NewReader(""),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImageType)
	fx.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImageService_UploadImage_GuardPrecedesValidation(t *testing.T) {
	fx := createTestImageService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.On("FindByID", ctx, productID).Return(ownedProduct(uuid.New(), productID), nil)

	// Even an invalid upload to someone else's product reads as forbidden.
	_, err := fx.service.UploadImage(ctx, uuid.New(), productID, usecase.UploadImageInput{
		Filename:    "doc.pdf",
		ContentType: "application/pdf",
		SizeBytes:   10 * 1024 * 1024,
		Body:        strings.NewReader(""),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestImageService_UploadImage_MetadataFailureCleansUpBytes(t *testing.T) {
	fx := createTestImageService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	fx.productRepo.On("FindByID", ctx, productID).Return(ownedProduct(ownerID, productID), nil)
	fx.storage.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.imageRepo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed"))
	fx.storage.On("Delete", ctx, mock.Anything).Return(nil)

	_, err := fx.service.UploadImage(ctx, ownerID, productID, usecase.UploadImageInput{
		Filename:    "photo.png",
		ContentType: "image/png",
		SizeBytes:   512,
		Body:        strings.NewReader("bytes"),
	})

	require.Error(t, err)
	fx.storage.AssertCalled(t, "Delete", ctx, mock.Anything)
}

func TestImageService_GetImage_ReturnsPresignedURL(t *testing.T) {
	fx := createTestImageService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()
	imageID := uuid.New()

	fx.productRepo.On("FindByID", ctx, productID).Return(ownedProduct(ownerID, productID), nil)
	fx.imageRepo.On("FindByID", ctx, imageID).Return(&entity.ProductImage{
		ID:         imageID,
		ProductID:  productID,
		StorageKey: "k/e/y.jpg",
	}, nil)
	fx.storage.On("PresignGet", ctx, "k/e/y.jpg", 15*time.Minute).
		Return("https://bucket.example.com/k/e/y.jpg?sig=abc", nil)

	output, err := fx.service.GetImage(ctx, ownerID, productID, imageID)

	require.NoError(t, err)
	assert.Equal(t, imageID, output.Image.ID)
	assert.Contains(t, output.URL, "sig=abc")
}

func TestImageService_GetImage_WrongProductIsNotFound(t *testing.T) {
	fx := createTestImageService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()
	imageID := uuid.New()

	fx.productRepo.On("FindByID", ctx, productID).Return(ownedProduct(ownerID, productID), nil)
	fx.imageRepo.On("FindByID", ctx, imageID).Return(&entity.ProductImage{
		ID:        imageID,
		ProductID: uuid.New(),
	}, nil)

	_, err := fx.service.GetImage(ctx, ownerID, productID, imageID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
}

func TestImageService_DeleteImage_StorageFirst(t *testing.T) {
	fx := createTestImageService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()
	imageID := uuid.New()

	fx.productRepo.On("FindByID", ctx, productID).Return(ownedProduct(ownerID, productID), nil)
	fx.imageRepo.On("FindByID", ctx, imageID).Return(&entity.ProductImage{
		ID:         imageID,
		ProductID:  productID,
		StorageKey: "k/e/y.jpg",
	}, nil)
	fx.storage.On("Delete", ctx, "k/e/y.jpg").Return(nil)
	fx.imageRepo.On("Delete", ctx, imageID).Return(nil)

	err := fx.service.DeleteImage(ctx, ownerID, productID, imageID)

	require.NoError(t, err)
	fx.storage.AssertExpectations(t)
	fx.imageRepo.AssertExpectations(t)
}

func TestImageService_DeleteImage_StorageFailureKeepsRecord(t *testing.T) {
	fx := createTestImageService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()
	imageID := uuid.New()

	fx.productRepo.On("FindByID", ctx, productID).Return(ownedProduct(ownerID, productID), nil)
	fx.imageRepo.On("FindByID", ctx, imageID).Return(&entity.ProductImage{
		ID:         imageID,
		ProductID:  productID,
		StorageKey: "k/e/y.jpg",
	}, nil)
	fx.storage.On("Delete", ctx, "k/e/y.jpg").Return(errors.New("bucket unreachable"))

	err := fx.service.DeleteImage(ctx, ownerID, productID, imageID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStorageFailure)
	fx.imageRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
