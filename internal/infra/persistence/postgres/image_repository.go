package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// imageRepository implements the domain's ImageRepository interface using GORM.
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{db: db}
}

// FindByID retrieves a single image record by its unique ID.
func (repo *imageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductImage, error) {
	var imageM model.ProductImageModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&imageM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find image by id")
	}

	return toImageDomain(&imageM), nil
}

// ListByProductID retrieves every image record attached to a product,
// oldest first so display order is stable.
func (repo *imageRepository) ListByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.ProductImage, error) {
	var imageMs []model.ProductImageModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&imageMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list images by product")
	}

	images := make([]*entity.ProductImage, 0, len(imageMs))
	for i := range imageMs {
		images = append(images, toImageDomain(&imageMs[i]))
	}

	return images, nil
}

// Create persists a new image record to the database.
func (repo *imageRepository) Create(ctx context.Context, image *entity.ProductImage) error {
	imageM := fromImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("image parent product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create image record")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt

	return nil
}

// Delete removes an image record.
func (repo *imageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductImageModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete image record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrImageNotFound
	}

	return nil
}

// toImageDomain converts a GORM ProductImageModel to a domain ProductImage entity.
func toImageDomain(data *model.ProductImageModel) *entity.ProductImage {
	if data == nil {
		return nil
	}

	return &entity.ProductImage{
		ID:          data.ID,
		ProductID:   data.ProductID,
		StorageKey:  data.StorageKey,
		Filename:    data.Filename,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
		CreatedAt:   data.CreatedAt,
	}
}

// fromImageDomain converts a domain ProductImage entity to a GORM ProductImageModel.
func fromImageDomain(data *entity.ProductImage) *model.ProductImageModel {
	if data == nil {
		return nil
	}

	return &model.ProductImageModel{
		ID:          data.ID,
		ProductID:   data.ProductID,
		StorageKey:  data.StorageKey,
		Filename:    data.Filename,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
	}
}
