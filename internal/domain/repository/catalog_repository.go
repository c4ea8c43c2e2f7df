package repository

import (
	"context"

	"localia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductFilter narrows and orders product listings.
type ProductFilter struct {
	Page        int
	Limit       int
	BusinessID  *uuid.UUID
	CategoryID  *uuid.UUID
	IsAvailable *bool
	IsFeatured  *bool
	Search      string
	SortBy      string
	SortOrder   string
}

// CategoryFilter narrows and orders category listings.
type CategoryFilter struct {
	Page      int
	Limit     int
	IsActive  *bool
	Search    string
	SortBy    string
	SortOrder string
}

// CatalogRepository defines database operations for products and categories.
type CatalogRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)
	UpdateProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, category *entity.Category) error
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindCategories(ctx context.Context, filter CategoryFilter) ([]*entity.Category, int64, error)
	UpdateCategory(ctx context.Context, category *entity.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// CountProductsByCategory returns how many products reference the
	// category; deletion is refused while the count is non-zero.
	CountProductsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
