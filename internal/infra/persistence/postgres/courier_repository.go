package postgres

import (
	"context"

	"localia/internal/domain/entity"
	"localia/internal/domain/repository"
	"localia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// courierRepository implements the repository.CourierRepository interface.
type courierRepository struct {
	db *gorm.DB
}

// NewCourierRepository is the constructor for courierRepository.
func NewCourierRepository(db *gorm.DB) repository.CourierRepository {
	return &courierRepository{
		db: db,
	}
}

// FindCouriers lists courier profiles with pagination and the unpaginated total.
func (repo *courierRepository) FindCouriers(ctx context.Context, filter repository.CourierFilter) ([]*entity.Courier, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CourierModel{})

	if filter.IsAvailable != nil {
		query = query.Where("is_available = ?", *filter.IsAvailable)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsVerified != nil {
		query = query.Where("is_verified = ?", *filter.IsVerified)
	}
	if filter.IsGreen != nil {
		query = query.Where("is_green = ?", *filter.IsGreen)
	}
	if filter.VehicleType != "" {
		query = query.Where("vehicle_type = ?", filter.VehicleType)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR license_plate ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count couriers")
	}

	var courierModels []*model.CourierModel
	err := query.
		Order(orderClause(filter.SortBy, filter.SortOrder, courierSortColumns, "created_at")).
		Offset(pageOffset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&courierModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to find couriers")
	}

	couriers := make([]*entity.Courier, 0, len(courierModels))
	for _, courierM := range courierModels {
		couriers = append(couriers, toCourierDomain(courierM))
	}

	return couriers, total, nil
}

// FindCourierByID retrieves a courier profile by its unique ID.
func (repo *courierRepository) FindCourierByID(ctx context.Context, id uuid.UUID) (*entity.Courier, error) {
	var courierM model.CourierModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&courierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourierNotFound
		}

		return nil, errors.Wrap(err, "failed to find courier by ID")
	}

	return toCourierDomain(&courierM), nil
}

// UpdateStatus toggles the is_active flag and returns the updated row.
func (repo *courierRepository) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*entity.Courier, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CourierModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update courier status")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrCourierNotFound
	}

	return repo.FindCourierByID(ctx, id)
}

var courierSortColumns = map[string]string{
	"first_name":   "first_name",
	"last_name":    "last_name",
	"vehicle_type": "vehicle_type",
	"created_at":   "created_at",
}

// toCourierDomain converts a GORM CourierModel to a domain Courier entity.
func toCourierDomain(data *model.CourierModel) *entity.Courier {
	if data == nil {
		return nil
	}

	return &entity.Courier{
		ID:                 data.ID,
		FirstName:          data.FirstName,
		LastName:           data.LastName,
		Phone:              data.Phone,
		VehicleType:        data.VehicleType,
		VehicleDescription: data.VehicleDescription,
		LicensePlate:       data.LicensePlate,
		IsAvailable:        data.IsAvailable,
		IsActive:           data.IsActive,
		IsVerified:         data.IsVerified,
		IsGreen:            data.IsGreen,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
