package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"localia/config"
	"localia/internal/domain/entity"
	"localia/internal/domain/repository"
	mockRepo "localia/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRegionConfig(failOpen bool) *config.Config {
	cfg := &config.Config{}
	cfg.Regions = &config.RegionsConfig{FailOpen: failOpen}

	return cfg
}

// A rectangle around the Roma/Condesa area of Mexico City.
const romaCoverageGeoJSON = `{"type":"Polygon","coordinates":[[[-99.20,19.35],[-99.10,19.35],[-99.10,19.48],[-99.20,19.48],[-99.20,19.35]]]}`

func newCDMXRegion() *entity.ServiceRegion {
	return &entity.ServiceRegion{
		ID:                  uuid.New(),
		Name:                "Ciudad de México",
		City:                "Ciudad de México",
		State:               "CDMX",
		Country:             "MX",
		IsActive:            true,
		IsDefault:           true,
		CoverageAreaGeoJSON: romaCoverageGeoJSON,
	}
}

func TestRegionService_ActiveRegion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("resolves via database function", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		region := newCDMXRegion()
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(region, nil)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		got, err := service.ActiveRegion(ctx)

		require.NoError(t, err)
		assert.Equal(t, region, got)
	})

	t.Run("falls back to direct query when function is missing", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		region := newCDMXRegion()
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(nil, repository.ErrFunctionMissing)
		regionRepo.EXPECT().FindDefaultActiveRegion(ctx).Return(region, nil)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		got, err := service.ActiveRegion(ctx)

		require.NoError(t, err)
		assert.Equal(t, region, got)
	})

	t.Run("returns nil without error when no region is configured", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(nil, repository.ErrFunctionMissing)
		regionRepo.EXPECT().FindDefaultActiveRegion(ctx).Return(nil, repository.ErrRegionNotFound)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		got, err := service.ActiveRegion(ctx)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("returns nil without error when storage is not provisioned", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(nil, repository.ErrStorageNotProvisioned)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		got, err := service.ActiveRegion(ctx)

		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRegionService_ValidateLocation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("rejects everything when no region is configured", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(nil, repository.ErrRegionNotFound)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		result, err := service.ValidateLocation(ctx, -99.16, 19.42)

		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, "no active service region is configured", result.Message)
	})

	t.Run("accepts a point inside via the database function", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		region := newCDMXRegion()
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(region, nil)
		regionRepo.EXPECT().PointInActiveRegionFunction(ctx, -99.16, 19.42).Return(true, nil)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		result, err := service.ValidateLocation(ctx, -99.16, 19.42)

		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, region, result.Region)
		assert.Contains(t, result.Message, region.Name)
	})

	t.Run("rejects a point outside via the database function", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		region := newCDMXRegion()
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(region, nil)
		regionRepo.EXPECT().PointInActiveRegionFunction(ctx, -99.30, 19.42).Return(false, nil)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		result, err := service.ValidateLocation(ctx, -99.30, 19.42)

		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, "the location is outside the coverage area of the active service region", result.Message)
	})

	t.Run("falls back to stored polygon when the function is missing", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		region := newCDMXRegion()
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(region, nil)
		regionRepo.EXPECT().PointInActiveRegionFunction(ctx, -99.16, 19.42).Return(false, repository.ErrFunctionMissing)
		regionRepo.EXPECT().PointInRegionPolygon(ctx, region.ID, -99.16, 19.42).Return(true, nil)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		result, err := service.ValidateLocation(ctx, -99.16, 19.42)

		require.NoError(t, err)
		assert.True(t, result.IsValid)
	})

	t.Run("evaluates the polygon in process when the database cannot", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		region := newCDMXRegion()
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(region, nil)
		regionRepo.EXPECT().PointInActiveRegionFunction(ctx, -99.16, 19.42).Return(false, repository.ErrFunctionMissing)
		regionRepo.EXPECT().PointInRegionPolygon(ctx, region.ID, -99.16, 19.42).Return(false, repository.ErrNoCoveragePolygon)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		result, err := service.ValidateLocation(ctx, -99.16, 19.42)

		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Contains(t, result.Message, region.Name)
	})

	t.Run("rejects a point outside the local polygon", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		region := newCDMXRegion()
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(region, nil)
		regionRepo.EXPECT().PointInActiveRegionFunction(ctx, -99.30, 19.42).Return(false, repository.ErrFunctionMissing)
		regionRepo.EXPECT().PointInRegionPolygon(ctx, region.ID, -99.30, 19.42).Return(false, repository.ErrNoCoveragePolygon)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		result, err := service.ValidateLocation(ctx, -99.30, 19.42)

		require.NoError(t, err)
		assert.False(t, result.IsValid)
	})

	t.Run("reports missing storage as a business outcome", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		region := newCDMXRegion()
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(region, nil)
		regionRepo.EXPECT().PointInActiveRegionFunction(ctx, -99.16, 19.42).Return(false, repository.ErrStorageNotProvisioned)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		result, err := service.ValidateLocation(ctx, -99.16, 19.42)

		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, "service region storage is not provisioned yet", result.Message)
	})

	t.Run("allows an unverifiable location when failing open", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		region := newCDMXRegion()
		region.CoverageAreaGeoJSON = ""
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(region, nil)
		regionRepo.EXPECT().PointInActiveRegionFunction(ctx, -99.16, 19.42).Return(false, repository.ErrFunctionMissing)
		regionRepo.EXPECT().PointInRegionPolygon(ctx, region.ID, -99.16, 19.42).Return(false, repository.ErrGeometryUnavailable)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		result, err := service.ValidateLocation(ctx, -99.16, 19.42)

		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, "location could not be verified; allowing by default", result.Message)
	})

	t.Run("denies an unverifiable location when failing closed", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		region := newCDMXRegion()
		region.CoverageAreaGeoJSON = ""
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(region, nil)
		regionRepo.EXPECT().PointInActiveRegionFunction(ctx, -99.16, 19.42).Return(false, repository.ErrFunctionMissing)
		regionRepo.EXPECT().PointInRegionPolygon(ctx, region.ID, -99.16, 19.42).Return(false, repository.ErrGeometryUnavailable)

		service := NewRegionService(regionRepo, newRegionConfig(false), newDiscardLogger())

		result, err := service.ValidateLocation(ctx, -99.16, 19.42)

		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, "location could not be verified; rejecting", result.Message)
	})
}

func TestRegionService_GetRegion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns the region", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		region := newCDMXRegion()
		regionRepo.EXPECT().FindRegionByID(ctx, region.ID).Return(region, nil)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		got, err := service.GetRegion(ctx, region.ID)

		require.NoError(t, err)
		assert.Equal(t, region, got)
	})

	t.Run("maps a missing region to a domain error", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		id := uuid.New()
		regionRepo.EXPECT().FindRegionByID(ctx, id).Return(nil, repository.ErrRegionNotFound)

		service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		got, err := service.GetRegion(ctx, id)

		require.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestRegionService_ListRegions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	regionRepo := mockRepo.NewMockRegionRepository(t)
	region := newCDMXRegion()
	filter := repository.RegionFilter{Page: 1, Limit: 20}
	regionRepo.EXPECT().FindRegions(ctx, filter).Return([]*entity.ServiceRegion{region}, 1, nil)

	service := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

	page, err := service.ListRegions(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, int64(1), page.Pagination.Total)
	assert.Equal(t, 1, page.Pagination.TotalPages)
}
