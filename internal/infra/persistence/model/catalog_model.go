package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index"`
	Name         string     `gorm:"type:varchar(160);not null"`
	Description  string     `gorm:"type:text"`
	Price        float64    `gorm:"type:decimal(10,2);not null"`
	ImageURL     string     `gorm:"type:varchar(255)"`
	IsAvailable  bool       `gorm:"not null;default:true;index"`
	IsFeatured   bool       `gorm:"not null;default:false"`
	DisplayOrder int        `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(120);not null;uniqueIndex"`
	Description  string    `gorm:"type:text"`
	IconURL      string    `gorm:"type:varchar(255)"`
	DisplayOrder int       `gorm:"not null;default:0"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
