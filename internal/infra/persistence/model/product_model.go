package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. OwnerID references users.id and is
// written once at creation; updates never touch it.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	SKU         string    `gorm:"type:varchar(64);unique;not null"`
	Quantity    int       `gorm:"not null;check:quantity >= 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Images []ProductImageModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table. Rows cascade when the
// parent product row is deleted; the bytes in object storage do not, which is
// why deletion order is storage first, rows second.
type ProductImageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	StorageKey  string    `gorm:"type:varchar(512);not null"`
	Filename    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100);not null"`
	SizeBytes   int64     `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}
