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

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// CreateBusiness persists a new business row. A unique-index violation on
// owner_id maps to ErrDuplicateBusiness, which is how a lost onboarding
// race surfaces.
func (repo *businessRepository) CreateBusiness(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBusiness
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessCreationFailed.WrapMessage("invalid owner or address reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindBusinessByID retrieves a business with its owner profile attached.
func (repo *businessRepository) FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	return toBusinessDomain(&businessM), nil
}

// FindBusinessByOwner retrieves the business owned by the given user.
func (repo *businessRepository) FindBusinessByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by owner")
	}

	return toBusinessDomain(&businessM), nil
}

// FindBusinesses lists businesses with pagination and the unpaginated total.
func (repo *businessRepository) FindBusinesses(ctx context.Context, filter repository.BusinessFilter) ([]*entity.Business, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BusinessModel{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count businesses")
	}

	var businessModels []*model.BusinessModel
	err := query.
		Preload("Owner").
		Order(orderClause(filter.SortBy, filter.SortOrder, businessSortColumns, "created_at")).
		Offset(pageOffset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&businessModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to find businesses")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, total, nil
}

// UpdateStatus toggles the is_active flag and returns the updated row.
func (repo *businessRepository) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*entity.Business, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update business status")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrBusinessNotFound
	}

	return repo.FindBusinessByID(ctx, id)
}

// Statistics aggregates counts over all businesses plus a per-category
// breakdown of the active ones.
func (repo *businessRepository) Statistics(ctx context.Context) (*entity.BusinessStatistics, error) {
	var stats entity.BusinessStatistics

	err := repo.db.WithContext(ctx).
		Raw(`SELECT
				COUNT(*) AS total,
				COUNT(*) FILTER (WHERE is_active) AS active,
				COUNT(*) FILTER (WHERE NOT is_active) AS inactive
			FROM businesses
			WHERE deleted_at IS NULL`).
		Scan(&stats).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate business statistics")
	}

	var categories []entity.CategoryCount
	err = repo.db.WithContext(ctx).
		Raw(`SELECT category AS name, COUNT(*) AS count
			FROM businesses
			WHERE is_active = true AND deleted_at IS NULL
			GROUP BY category
			ORDER BY count DESC`).
		Scan(&categories).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate businesses by category")
	}

	stats.Categories = categories

	return &stats, nil
}

var businessSortColumns = map[string]string{
	"name":       "name",
	"category":   "category",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Name:             data.Name,
		LegalName:        data.LegalName,
		Description:      data.Description,
		Category:         data.Category,
		Tags:             []string(data.Tags),
		Phone:            data.Phone,
		Email:            data.Email,
		WebsiteURL:       data.WebsiteURL,
		AddressID:        data.AddressID,
		Longitude:        data.Longitude,
		Latitude:         data.Latitude,
		IsActive:         data.IsActive,
		IsVerified:       data.IsVerified,
		AcceptsOrders:    data.AcceptsOrders,
		CommissionRate:   data.CommissionRate,
		UsesEcoPackaging: data.UsesEcoPackaging,
		Owner:            toClientDomain(data.Owner),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Name:             data.Name,
		LegalName:        data.LegalName,
		Description:      data.Description,
		Category:         data.Category,
		Tags:             data.Tags,
		Phone:            data.Phone,
		Email:            data.Email,
		WebsiteURL:       data.WebsiteURL,
		AddressID:        data.AddressID,
		Longitude:        data.Longitude,
		Latitude:         data.Latitude,
		IsActive:         data.IsActive,
		IsVerified:       data.IsVerified,
		AcceptsOrders:    data.AcceptsOrders,
		CommissionRate:   data.CommissionRate,
		UsesEcoPackaging: data.UsesEcoPackaging,
	}
}
