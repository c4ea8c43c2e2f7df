package impl

import (
	"context"
	"testing"

	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	mockRepo "localia/internal/mocks/repository"
	"localia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateProduct(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates a product in an existing category", func(t *testing.T) {
		t.Parallel()

		categoryID := uuid.New()
		catalogRepo := mockRepo.NewMockCatalogRepository(t)
		catalogRepo.EXPECT().FindCategoryByID(ctx, categoryID).Return(&entity.Category{ID: categoryID, Name: "Pan dulce"}, nil)
		catalogRepo.EXPECT().CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

		service := NewCatalogService(catalogRepo)

		product, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
			BusinessID:  uuid.New(),
			CategoryID:  &categoryID,
			Name:        "Concha de vainilla",
			Price:       18.50,
			IsAvailable: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Concha de vainilla", product.Name)
		assert.Equal(t, &categoryID, product.CategoryID)
		assert.NotEqual(t, uuid.Nil, product.ID)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		t.Parallel()

		categoryID := uuid.New()
		catalogRepo := mockRepo.NewMockCatalogRepository(t)
		catalogRepo.EXPECT().FindCategoryByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

		service := NewCatalogService(catalogRepo)

		product, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
			BusinessID: uuid.New(),
			CategoryID: &categoryID,
			Name:       "Concha de vainilla",
			Price:      18.50,
		})

		require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
		assert.Nil(t, product)
	})
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := uuid.New()

	existing := &entity.Product{
		ID:          id,
		BusinessID:  uuid.New(),
		Name:        "Concha de vainilla",
		Price:       18.50,
		IsAvailable: true,
	}

	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	catalogRepo.EXPECT().FindProductByID(ctx, id).Return(existing, nil)
	catalogRepo.EXPECT().UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	service := NewCatalogService(catalogRepo)

	newPrice := 21.00
	unavailable := false
	product, err := service.UpdateProduct(ctx, id, &usecase.UpdateProductInput{
		Price:       &newPrice,
		IsAvailable: &unavailable,
	})

	require.NoError(t, err)
	assert.Equal(t, 21.00, product.Price)
	assert.False(t, product.IsAvailable)
	// Untouched fields keep their values.
	assert.Equal(t, "Concha de vainilla", product.Name)
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("deletes an empty category", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		catalogRepo := mockRepo.NewMockCatalogRepository(t)
		catalogRepo.EXPECT().CountProductsByCategory(ctx, id).Return(0, nil)
		catalogRepo.EXPECT().DeleteCategory(ctx, id).Return(nil)

		service := NewCatalogService(catalogRepo)

		require.NoError(t, service.DeleteCategory(ctx, id))
	})

	t.Run("refuses to delete a category that still has products", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		catalogRepo := mockRepo.NewMockCatalogRepository(t)
		catalogRepo.EXPECT().CountProductsByCategory(ctx, id).Return(7, nil)

		service := NewCatalogService(catalogRepo)

		err := service.DeleteCategory(ctx, id)

		require.ErrorIs(t, err, domainerrors.ErrCategoryInUse)
	})

	t.Run("maps a missing category to the domain error", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		catalogRepo := mockRepo.NewMockCatalogRepository(t)
		catalogRepo.EXPECT().CountProductsByCategory(ctx, id).Return(0, nil)
		catalogRepo.EXPECT().DeleteCategory(ctx, id).Return(repository.ErrCategoryNotFound)

		service := NewCatalogService(catalogRepo)

		err := service.DeleteCategory(ctx, id)

		require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	filter := repository.ProductFilter{Page: 2, Limit: 10}
	products := []*entity.Product{{ID: uuid.New(), Name: "Concha de vainilla"}}
	catalogRepo.EXPECT().FindProducts(ctx, filter).Return(products, 25, nil)

	service := NewCatalogService(catalogRepo)

	page, err := service.ListProducts(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, int64(25), page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}
