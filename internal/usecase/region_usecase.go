package usecase

import (
	"context"

	"localia/internal/domain/entity"
	"localia/internal/domain/repository"

	"github.com/google/uuid"
)

// RegionUsecase resolves the active service region and validates
// coordinates against its coverage polygon.
type RegionUsecase interface {
	// ActiveRegion returns the single active+default region, or nil when
	// none is configured yet.
	ActiveRegion(ctx context.Context) (*entity.ServiceRegion, error)

	// ValidateLocation determines whether the coordinate pair falls inside
	// the active region's coverage area. It never returns an error for
	// business outcomes (outside coverage, not configured); those are
	// reported through the result.
	ValidateLocation(ctx context.Context, longitude, latitude float64) (*entity.LocationValidation, error)

	// ListRegions pages through configured regions.
	ListRegions(ctx context.Context, filter repository.RegionFilter) (*Paged[*entity.ServiceRegion], error)

	// GetRegion retrieves one region by ID.
	GetRegion(ctx context.Context, id uuid.UUID) (*entity.ServiceRegion, error)

	// Statistics aggregates counts over all regions.
	Statistics(ctx context.Context) (*entity.RegionStatistics, error)
}
