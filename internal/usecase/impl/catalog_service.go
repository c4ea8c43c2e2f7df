package impl

import (
	"context"
	"time"

	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	"localia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates the product/category administration service.
func NewCatalogService(catalogRepo repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.CategoryID != nil {
		if _, err := s.catalogRepo.FindCategoryByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "check product category")
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New(),
		BusinessID:   input.BusinessID,
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		ImageURL:     input.ImageURL,
		IsAvailable:  input.IsAvailable,
		IsFeatured:   input.IsFeatured,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.catalogRepo.CreateProduct(ctx, product); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create product")
	}

	return product, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.catalogRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find product")
	}

	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) (*usecase.Paged[*entity.Product], error) {
	products, total, err := s.catalogRepo.FindProducts(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list products")
	}

	return &usecase.Paged[*entity.Product]{
		Data:       products,
		Pagination: usecase.NewPageInfo(filter.Page, filter.Limit, total),
	}, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	applyProductUpdates(product, input)

	if err := s.catalogRepo.UpdateProduct(ctx, product); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "update product")
	}

	return product, nil
}

func applyProductUpdates(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.DisplayOrder != nil {
		product.DisplayOrder = *input.DisplayOrder
	}
	product.UpdatedAt = time.Now()
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.catalogRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "delete product")
	}

	return nil
}

func (s *catalogService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	now := time.Now()
	category := &entity.Category{
		ID:           uuid.New(),
		Name:         input.Name,
		Description:  input.Description,
		IconURL:      input.IconURL,
		DisplayOrder: input.DisplayOrder,
		IsActive:     input.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.catalogRepo.CreateCategory(ctx, category); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create category")
	}

	return category, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.catalogRepo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find category")
	}

	return category, nil
}

func (s *catalogService) ListCategories(ctx context.Context, filter repository.CategoryFilter) (*usecase.Paged[*entity.Category], error) {
	categories, total, err := s.catalogRepo.FindCategories(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list categories")
	}

	return &usecase.Paged[*entity.Category]{
		Data:       categories,
		Pagination: usecase.NewPageInfo(filter.Page, filter.Limit, total),
	}, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.IconURL != nil {
		category.IconURL = *input.IconURL
	}
	if input.DisplayOrder != nil {
		category.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	category.UpdatedAt = time.Now()

	if err := s.catalogRepo.UpdateCategory(ctx, category); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "update category")
	}

	return category, nil
}

// DeleteCategory refuses to remove a category that products still point at.
func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	count, err := s.catalogRepo.CountProductsByCategory(ctx, id)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "count products in category")
	}
	if count > 0 {
		return domainerrors.ErrCategoryInUse
	}

	if err := s.catalogRepo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "delete category")
	}

	return nil
}
