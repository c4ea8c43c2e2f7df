package postgres

import (
	"context"

	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	"localia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// CreateProduct persists a new product row.
func (repo *catalogRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *catalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindProducts lists products with pagination and the unpaginated total.
func (repo *catalogRepository) FindProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.BusinessID != nil {
		query = query.Where("business_id = ?", *filter.BusinessID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.IsAvailable != nil {
		query = query.Where("is_available = ?", *filter.IsAvailable)
	}
	if filter.IsFeatured != nil {
		query = query.Where("is_featured = ?", *filter.IsFeatured)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	err := query.
		Order(orderClause(filter.SortBy, filter.SortOrder, productSortColumns, "display_order")).
		Offset(pageOffset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&productModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to find products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// UpdateProduct saves the full product row.
func (repo *catalogRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("category_id", "name", "description", "price", "image_url",
			"is_available", "is_featured", "display_order").
		Updates(productM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes a product by its ID (soft delete).
func (repo *catalogRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// CreateCategory persists a new category row.
func (repo *catalogRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithMessage("a category with this name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// FindCategoryByID retrieves a category by its unique ID.
func (repo *catalogRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindCategories lists categories with pagination and the unpaginated total.
func (repo *catalogRepository) FindCategories(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CategoryModel{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count categories")
	}

	var categoryModels []*model.CategoryModel
	err := query.
		Order(orderClause(filter.SortBy, filter.SortOrder, categorySortColumns, "display_order")).
		Offset(pageOffset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&categoryModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to find categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, total, nil
}

// UpdateCategory saves the full category row.
func (repo *catalogRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Select("name", "description", "icon_url", "display_order", "is_active").
		Updates(categoryM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// DeleteCategory removes a category by its ID. Callers check
// CountProductsByCategory first.
func (repo *catalogRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CategoryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// CountProductsByCategory returns how many products reference the category.
func (repo *catalogRepository) CountProductsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products by category")
	}

	return count, nil
}

var productSortColumns = map[string]string{
	"name":          "name",
	"price":         "price",
	"display_order": "display_order",
	"created_at":    "created_at",
}

var categorySortColumns = map[string]string{
	"name":          "name",
	"display_order": "display_order",
	"created_at":    "created_at",
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:           data.ID,
		BusinessID:   data.BusinessID,
		CategoryID:   data.CategoryID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		ImageURL:     data.ImageURL,
		IsAvailable:  data.IsAvailable,
		IsFeatured:   data.IsFeatured,
		DisplayOrder: data.DisplayOrder,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:           data.ID,
		BusinessID:   data.BusinessID,
		CategoryID:   data.CategoryID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		ImageURL:     data.ImageURL,
		IsAvailable:  data.IsAvailable,
		IsFeatured:   data.IsFeatured,
		DisplayOrder: data.DisplayOrder,
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		IconURL:      data.IconURL,
		DisplayOrder: data.DisplayOrder,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		IconURL:      data.IconURL,
		DisplayOrder: data.DisplayOrder,
		IsActive:     data.IsActive,
	}
}
