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

// regionColumns reads every region column, converting the PostGIS geometry
// to GeoJSON in the same round trip.
const regionColumns = `
	id, name, description, city, state, country,
	center_longitude, center_latitude, max_delivery_radius_meters,
	min_order_amount, is_active, is_default,
	ST_AsGeoJSON(coverage_area) AS coverage_area_geojson,
	created_at, updated_at
`

// regionRepository implements the repository.RegionRepository interface.
type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{
		db: db,
	}
}

// ActiveRegionFromFunction resolves the active region through the
// database-side get_active_service_region() function. A missing function
// surfaces as repository.ErrFunctionMissing so the caller can fall back to
// a direct table query.
func (repo *regionRepository) ActiveRegionFromFunction(ctx context.Context) (*entity.ServiceRegion, error) {
	var regionM model.ServiceRegionModel

	err := repo.db.WithContext(ctx).
		Raw(`SELECT ` + regionColumns + ` FROM get_active_service_region()`).
		First(&regionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, classifyRegionError(err)
	}

	return toRegionDomain(&regionM), nil
}

// FindDefaultActiveRegion queries the table directly for the default active
// region, taking the oldest row when several are flagged as default.
func (repo *regionRepository) FindDefaultActiveRegion(ctx context.Context) (*entity.ServiceRegion, error) {
	var regionM model.ServiceRegionModel

	err := repo.db.WithContext(ctx).
		Raw(`SELECT ` + regionColumns + `
			FROM service_regions
			WHERE is_active = true AND is_default = true
			ORDER BY created_at ASC
			LIMIT 1`).
		First(&regionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, classifyRegionError(err)
	}

	return toRegionDomain(&regionM), nil
}

// PointInActiveRegionFunction evaluates the database-side
// is_location_in_active_region(lon, lat) predicate.
func (repo *regionRepository) PointInActiveRegionFunction(ctx context.Context, longitude, latitude float64) (bool, error) {
	var inside bool

	err := repo.db.WithContext(ctx).
		Raw(`SELECT is_location_in_active_region(?, ?)`, longitude, latitude).
		Scan(&inside).Error
	if err != nil {
		return false, classifyRegionError(err)
	}

	return inside, nil
}

// PointInRegionPolygon evaluates ST_Covers against the stored coverage
// polygon of one region. ST_Covers rather than ST_Contains so points on
// the boundary count as inside.
func (repo *regionRepository) PointInRegionPolygon(ctx context.Context, regionID uuid.UUID, longitude, latitude float64) (bool, error) {
	var row struct {
		HasPolygon bool
		Covered    bool
	}

	err := repo.db.WithContext(ctx).
		Raw(`SELECT
				coverage_area IS NOT NULL AS has_polygon,
				COALESCE(ST_Covers(coverage_area, ST_SetSRID(ST_MakePoint(?, ?), 4326)), false) AS covered
			FROM service_regions
			WHERE id = ?`, longitude, latitude, regionID).
		Scan(&row).Error
	if err != nil {
		switch pgErrorCode(err) {
		case pgCodeUndefinedTable:
			return false, errors.Wrap(repository.ErrStorageNotProvisioned, err.Error())
		case pgCodeUndefinedFunction:
			return false, errors.Wrap(repository.ErrFunctionMissing, err.Error())
		}

		// Anything else here means PostGIS could not evaluate the
		// predicate, which the validator treats as strategy-unavailable.
		return false, errors.Wrap(repository.ErrGeometryUnavailable, err.Error())
	}

	if !row.HasPolygon {
		return false, repository.ErrNoCoveragePolygon
	}

	return row.Covered, nil
}

// FindRegions lists regions with pagination and the unpaginated total.
func (repo *regionRepository) FindRegions(ctx context.Context, filter repository.RegionFilter) ([]*entity.ServiceRegion, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ServiceRegionModel{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsDefault != nil {
		query = query.Where("is_default = ?", *filter.IsDefault)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR city ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, classifyRegionError(err)
	}

	var regionModels []*model.ServiceRegionModel
	err := query.
		Select(regionColumns).
		Order(orderClause(filter.SortBy, filter.SortOrder, regionSortColumns, "created_at")).
		Offset(pageOffset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&regionModels).Error
	if err != nil {
		return nil, 0, classifyRegionError(err)
	}

	regions := make([]*entity.ServiceRegion, 0, len(regionModels))
	for _, regionM := range regionModels {
		regions = append(regions, toRegionDomain(regionM))
	}

	return regions, total, nil
}

// FindRegionByID retrieves a region by its unique ID.
func (repo *regionRepository) FindRegionByID(ctx context.Context, id uuid.UUID) (*entity.ServiceRegion, error) {
	var regionM model.ServiceRegionModel

	err := repo.db.WithContext(ctx).
		Raw(`SELECT `+regionColumns+` FROM service_regions WHERE id = ?`, id).
		First(&regionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, classifyRegionError(err)
	}

	return toRegionDomain(&regionM), nil
}

// Statistics aggregates counts over all regions in one query.
func (repo *regionRepository) Statistics(ctx context.Context) (*entity.RegionStatistics, error) {
	var stats entity.RegionStatistics

	err := repo.db.WithContext(ctx).
		Raw(`SELECT
				COUNT(*) AS total,
				COUNT(*) FILTER (WHERE is_active) AS active,
				COUNT(*) FILTER (WHERE NOT is_active) AS inactive,
				COUNT(*) FILTER (WHERE is_default) AS default_count
			FROM service_regions`).
		Scan(&stats).Error
	if err != nil {
		return nil, classifyRegionError(err)
	}

	return &stats, nil
}

var regionSortColumns = map[string]string{
	"name":       "name",
	"city":       "city",
	"state":      "state",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// --- Mapper Functions ---

// toRegionDomain converts a GORM ServiceRegionModel to a domain ServiceRegion entity.
func toRegionDomain(data *model.ServiceRegionModel) *entity.ServiceRegion {
	if data == nil {
		return nil
	}

	region := &entity.ServiceRegion{
		ID:                      data.ID,
		Name:                    data.Name,
		Description:             data.Description,
		City:                    data.City,
		State:                   data.State,
		Country:                 data.Country,
		CenterLongitude:         data.CenterLongitude,
		CenterLatitude:          data.CenterLatitude,
		MaxDeliveryRadiusMeters: data.MaxDeliveryRadiusMeters,
		MinOrderAmount:          data.MinOrderAmount,
		IsActive:                data.IsActive,
		IsDefault:               data.IsDefault,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
	if data.CoverageAreaGeoJSON != nil {
		region.CoverageAreaGeoJSON = *data.CoverageAreaGeoJSON
	}

	return region
}
