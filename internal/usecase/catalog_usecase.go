package usecase

import (
	"context"

	"localia/internal/domain/entity"
	"localia/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateProductInput is the payload for adding a product to a catalog.
type CreateProductInput struct {
	BusinessID   uuid.UUID  `json:"business_id"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Price        float64    `json:"price"`
	ImageURL     string     `json:"image_url,omitempty"`
	IsAvailable  bool       `json:"is_available"`
	IsFeatured   bool       `json:"is_featured"`
	DisplayOrder int        `json:"display_order"`
}

// UpdateProductInput applies partial updates; nil fields are left unchanged.
type UpdateProductInput struct {
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Price        *float64   `json:"price,omitempty"`
	ImageURL     *string    `json:"image_url,omitempty"`
	IsAvailable  *bool      `json:"is_available,omitempty"`
	IsFeatured   *bool      `json:"is_featured,omitempty"`
	DisplayOrder *int       `json:"display_order,omitempty"`
}

// CreateCategoryInput is the payload for adding a catalog category.
type CreateCategoryInput struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	IconURL      string `json:"icon_url,omitempty"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// UpdateCategoryInput applies partial updates; nil fields are left unchanged.
type UpdateCategoryInput struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	IconURL      *string `json:"icon_url,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// CatalogUsecase covers product and category administration.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, filter repository.ProductFilter) (*Paged[*entity.Product], error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListCategories(ctx context.Context, filter repository.CategoryFilter) (*Paged[*entity.Category], error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
