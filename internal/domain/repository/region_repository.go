// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"

	"localia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sentinel errors for region persistence. The location validator branches
// on these instead of inspecting raw database errors, so the SQLSTATE
// classification lives in exactly one place (the postgres layer).
var (
	// ErrRegionNotFound is returned when no region matches the lookup.
	ErrRegionNotFound = errors.New("service region not found")
	// ErrFunctionMissing is returned when a database-side helper function
	// is not installed (undefined_function, SQLSTATE 42883).
	ErrFunctionMissing = errors.New("database function is not installed")
	// ErrStorageNotProvisioned is returned when the region table itself is
	// missing (undefined_table, SQLSTATE 42P01): an expected state on a
	// fresh deployment, not a failure.
	ErrStorageNotProvisioned = errors.New("service region storage is not provisioned")
	// ErrNoCoveragePolygon is returned when the region exists but has no
	// stored coverage polygon to test against.
	ErrNoCoveragePolygon = errors.New("region has no coverage polygon")
	// ErrGeometryUnavailable is returned when the geometry extension
	// cannot evaluate the containment predicate.
	ErrGeometryUnavailable = errors.New("geometry support is unavailable")
)

// RegionFilter narrows and orders region listings.
type RegionFilter struct {
	Page      int
	Limit     int
	IsActive  *bool
	IsDefault *bool
	Search    string
	SortBy    string
	SortOrder string
}

// RegionRepository defines read-only access to service regions. Regions are
// mutated only by out-of-band database administration.
type RegionRepository interface {
	// ActiveRegionFromFunction resolves the active+default region through
	// the database-side get_active_service_region() function.
	ActiveRegionFromFunction(ctx context.Context) (*entity.ServiceRegion, error)

	// FindDefaultActiveRegion queries the table directly for the single
	// row with is_default AND is_active, taking the first if several exist.
	FindDefaultActiveRegion(ctx context.Context) (*entity.ServiceRegion, error)

	// PointInActiveRegionFunction evaluates the database-side
	// is_location_in_active_region(lon, lat) predicate.
	PointInActiveRegionFunction(ctx context.Context, longitude, latitude float64) (bool, error)

	// PointInRegionPolygon evaluates ST_Covers against the stored coverage
	// polygon of one region. Boundary points count as covered.
	PointInRegionPolygon(ctx context.Context, regionID uuid.UUID, longitude, latitude float64) (bool, error)

	// FindRegions lists regions with pagination, returning the page and
	// the unpaginated total.
	FindRegions(ctx context.Context, filter RegionFilter) ([]*entity.ServiceRegion, int64, error)

	// FindRegionByID retrieves a region by its unique ID.
	FindRegionByID(ctx context.Context, id uuid.UUID) (*entity.ServiceRegion, error)

	// Statistics aggregates counts over all regions.
	Statistics(ctx context.Context) (*entity.RegionStatistics, error)
}
