// Package impl contains the concrete use-case services.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"localia/config"
	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	"localia/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

const (
	msgNoActiveRegion    = "no active service region is configured"
	msgStorageMissing    = "service region storage is not provisioned yet"
	msgOutsideCoverage   = "the location is outside the coverage area of the active service region"
	msgUnverifiedAllowed = "location could not be verified; allowing by default"
	msgUnverifiedDenied  = "location could not be verified; rejecting"
)

// containmentOutcome tags the result of one containment strategy.
type containmentOutcome int

const (
	// outcomeMatched means the strategy answered the containment question.
	outcomeMatched containmentOutcome = iota
	// outcomeNotApplicable means the strategy cannot run in this
	// deployment (function not installed, no polygon stored) and the next
	// strategy should be tried.
	outcomeNotApplicable
	// outcomeUnavailable means the strategy should have worked but the
	// geometry machinery failed; the chain stops and the degraded-mode
	// policy applies.
	outcomeUnavailable
)

// containmentResult is the tagged outcome of a containment strategy.
type containmentResult struct {
	outcome containmentOutcome
	inside  bool
}

// containmentStrategy asks one backend whether a point lies inside the
// region's coverage area. Strategies are composed in order; branching on
// SQLSTATE-derived sentinel errors replaces the original's string matching
// on error text.
type containmentStrategy struct {
	name  string
	check func(ctx context.Context, region *entity.ServiceRegion, longitude, latitude float64) (containmentResult, error)
}

type regionService struct {
	regionRepo repository.RegionRepository
	strategies []containmentStrategy
	failOpen   bool
	logger     *slog.Logger
}

// NewRegionService creates the region resolution and location validation
// service.
func NewRegionService(regionRepo repository.RegionRepository, cfg *config.Config, logger *slog.Logger) usecase.RegionUsecase {
	failOpen := true
	if cfg.Regions != nil {
		failOpen = cfg.Regions.FailOpen
	}

	srv := &regionService{
		regionRepo: regionRepo,
		failOpen:   failOpen,
		logger:     logger,
	}
	srv.strategies = []containmentStrategy{
		{name: "db_function", check: srv.checkWithFunction},
		{name: "postgis_covers", check: srv.checkWithPostgis},
		{name: "local_polygon", check: srv.checkWithLocalPolygon},
	}

	return srv
}

// ActiveRegion resolves the active+default region. A nil region with a nil
// error means "not configured yet", which callers treat as an expected
// early-deployment state rather than a failure.
func (s *regionService) ActiveRegion(ctx context.Context) (*entity.ServiceRegion, error) {
	region, err := s.regionRepo.ActiveRegionFromFunction(ctx)
	switch {
	case err == nil:
		return region, nil
	case errors.Is(err, repository.ErrFunctionMissing):
		// Helper function not installed; fall back to the direct query.
	case errors.Is(err, repository.ErrRegionNotFound),
		errors.Is(err, repository.ErrStorageNotProvisioned):
		return nil, nil
	default:
		return nil, domainerrors.ErrRegionServiceUnavailable.WrapMessage("resolve active region via function")
	}

	region, err = s.regionRepo.FindDefaultActiveRegion(ctx)
	switch {
	case err == nil:
		return region, nil
	case errors.Is(err, repository.ErrRegionNotFound),
		errors.Is(err, repository.ErrStorageNotProvisioned):
		return nil, nil
	default:
		return nil, domainerrors.ErrRegionServiceUnavailable.WrapMessage("resolve active region via query")
	}
}

// ValidateLocation runs the containment strategy chain against the active
// region. Business outcomes (outside coverage, not configured, degraded
// mode) come back in the result; only genuine database failures return an
// error.
func (s *regionService) ValidateLocation(ctx context.Context, longitude, latitude float64) (*entity.LocationValidation, error) {
	region, err := s.ActiveRegion(ctx)
	if err != nil {
		return nil, err
	}
	if region == nil {
		// Hard stop: an unconfigured platform accepts nothing.
		return &entity.LocationValidation{IsValid: false, Message: msgNoActiveRegion}, nil
	}

	for _, strategy := range s.strategies {
		result, err := strategy.check(ctx, region, longitude, latitude)
		if err != nil {
			if errors.Is(err, repository.ErrStorageNotProvisioned) {
				return &entity.LocationValidation{IsValid: false, Message: msgStorageMissing}, nil
			}

			return nil, domainerrors.ErrRegionServiceUnavailable.WrapMessage("containment check " + strategy.name)
		}

		switch result.outcome {
		case outcomeMatched:
			if !result.inside {
				return &entity.LocationValidation{IsValid: false, Message: msgOutsideCoverage}, nil
			}

			return &entity.LocationValidation{
				IsValid: true,
				Region:  region,
				Message: fmt.Sprintf("location is inside the %s service region", region.Name),
			}, nil
		case outcomeNotApplicable:
			continue
		case outcomeUnavailable:
			return s.degraded(ctx, region, strategy.name, longitude, latitude), nil
		}
	}

	// Every strategy declined; same degraded-mode policy as an explicit
	// geometry failure.
	return s.degraded(ctx, region, "none", longitude, latitude), nil
}

// degraded applies the fail-open policy: an unverifiable location passes
// with a warning. Shipping behavior of the original platform; flipping
// Regions.FailOpen to false turns this into a rejection.
func (s *regionService) degraded(ctx context.Context, region *entity.ServiceRegion, strategy string, longitude, latitude float64) *entity.LocationValidation {
	s.logger.LogAttrs(ctx, slog.LevelWarn, "location containment unverifiable",
		slog.String("strategy", strategy),
		slog.String("region", region.Name),
		slog.Float64("longitude", longitude),
		slog.Float64("latitude", latitude),
		slog.Bool("failOpen", s.failOpen),
	)

	if !s.failOpen {
		return &entity.LocationValidation{IsValid: false, Message: msgUnverifiedDenied}
	}

	return &entity.LocationValidation{
		IsValid: true,
		Region:  region,
		Message: msgUnverifiedAllowed,
	}
}

func (s *regionService) checkWithFunction(ctx context.Context, _ *entity.ServiceRegion, longitude, latitude float64) (containmentResult, error) {
	inside, err := s.regionRepo.PointInActiveRegionFunction(ctx, longitude, latitude)
	if err != nil {
		if errors.Is(err, repository.ErrFunctionMissing) {
			return containmentResult{outcome: outcomeNotApplicable}, nil
		}

		return containmentResult{}, err
	}

	return containmentResult{outcome: outcomeMatched, inside: inside}, nil
}

func (s *regionService) checkWithPostgis(ctx context.Context, region *entity.ServiceRegion, longitude, latitude float64) (containmentResult, error) {
	inside, err := s.regionRepo.PointInRegionPolygon(ctx, region.ID, longitude, latitude)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrFunctionMissing),
			errors.Is(err, repository.ErrNoCoveragePolygon):
			return containmentResult{outcome: outcomeNotApplicable}, nil
		case errors.Is(err, repository.ErrGeometryUnavailable):
			return containmentResult{outcome: outcomeUnavailable}, nil
		}

		return containmentResult{}, err
	}

	return containmentResult{outcome: outcomeMatched, inside: inside}, nil
}

// checkWithLocalPolygon evaluates the containment in process from the
// region's GeoJSON coverage area, so an instance without PostGIS still gets
// a real answer. Boundary points count as inside, matching ST_Covers.
func (s *regionService) checkWithLocalPolygon(_ context.Context, region *entity.ServiceRegion, longitude, latitude float64) (containmentResult, error) {
	if region.CoverageAreaGeoJSON == "" {
		return containmentResult{outcome: outcomeUnavailable}, nil
	}

	geometry, err := geojson.UnmarshalGeometry([]byte(region.CoverageAreaGeoJSON))
	if err != nil {
		return containmentResult{outcome: outcomeUnavailable}, nil
	}

	point := orb.Point{longitude, latitude}
	switch geo := geometry.Geometry().(type) {
	case orb.Polygon:
		return containmentResult{outcome: outcomeMatched, inside: planar.PolygonContains(geo, point)}, nil
	case orb.MultiPolygon:
		return containmentResult{outcome: outcomeMatched, inside: planar.MultiPolygonContains(geo, point)}, nil
	default:
		return containmentResult{outcome: outcomeUnavailable}, nil
	}
}

func (s *regionService) ListRegions(ctx context.Context, filter repository.RegionFilter) (*usecase.Paged[*entity.ServiceRegion], error) {
	regions, total, err := s.regionRepo.FindRegions(ctx, filter)
	if err != nil {
		if errors.Is(err, repository.ErrStorageNotProvisioned) {
			return nil, domainerrors.ErrRegionNotConfigured.WithDetails(msgStorageMissing)
		}

		return nil, domainerrors.ErrRegionServiceUnavailable.WrapMessage("list regions")
	}

	return &usecase.Paged[*entity.ServiceRegion]{
		Data:       regions,
		Pagination: usecase.NewPageInfo(filter.Page, filter.Limit, total),
	}, nil
}

func (s *regionService) GetRegion(ctx context.Context, id uuid.UUID) (*entity.ServiceRegion, error) {
	region, err := s.regionRepo.FindRegionByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRegionNotFound):
			return nil, domainerrors.ErrRegionNotFound
		case errors.Is(err, repository.ErrStorageNotProvisioned):
			return nil, domainerrors.ErrRegionNotConfigured.WithDetails(msgStorageMissing)
		}

		return nil, domainerrors.ErrRegionServiceUnavailable.WrapMessage("get region")
	}

	return region, nil
}

func (s *regionService) Statistics(ctx context.Context) (*entity.RegionStatistics, error) {
	stats, err := s.regionRepo.Statistics(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrStorageNotProvisioned) {
			return nil, domainerrors.ErrRegionNotConfigured.WithDetails(msgStorageMissing)
		}

		return nil, domainerrors.ErrRegionServiceUnavailable.WrapMessage("region statistics")
	}

	return stats, nil
}
