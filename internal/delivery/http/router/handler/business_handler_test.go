package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"localia/config"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	mockRepo "localia/internal/mocks/repository"
	"localia/internal/usecase"
	"localia/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRegionUsecase(t *testing.T, regionRepo *mockRepo.MockRegionRepository) usecase.RegionUsecase {
	t.Helper()

	cfg := &config.Config{}
	cfg.Regions = &config.RegionsConfig{FailOpen: true}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return impl.NewRegionService(regionRepo, cfg, logger)
}

func newValidateLocationContext(query string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/businesses/validate-location?"+query, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestBusinessHandler_ValidateLocation(t *testing.T) {
	t.Parallel()

	t.Run("rejects malformed longitude before touching the database", func(t *testing.T) {
		t.Parallel()

		// No expectations: the repository must not be called.
		regionRepo := mockRepo.NewMockRegionRepository(t)
		handler := NewBusinessHandler(nil, newTestRegionUsecase(t, regionRepo))

		c, _ := newValidateLocationContext("longitude=not-a-number&latitude=19.42")

		err := handler.ValidateLocation(c)

		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		assert.Contains(t, appErr.Message(), "longitude")
	})

	t.Run("rejects a missing latitude", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		handler := NewBusinessHandler(nil, newTestRegionUsecase(t, regionRepo))

		c, _ := newValidateLocationContext("longitude=-99.16")

		err := handler.ValidateLocation(c)

		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Message(), "latitude")
	})

	t.Run("returns the validation outcome for well-formed coordinates", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		regionRepo.EXPECT().ActiveRegionFromFunction(mock.Anything).Return(nil, repository.ErrStorageNotProvisioned)

		handler := NewBusinessHandler(nil, newTestRegionUsecase(t, regionRepo))

		c, rec := newValidateLocationContext("longitude=-99.16&latitude=19.42")

		err := handler.ValidateLocation(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"isValid":false`)
		assert.Contains(t, rec.Body.String(), "no active service region is configured")
	})
}

func TestBusinessHandler_ActiveRegion(t *testing.T) {
	t.Parallel()

	t.Run("maps an unconfigured platform to the not-configured error", func(t *testing.T) {
		t.Parallel()

		regionRepo := mockRepo.NewMockRegionRepository(t)
		regionRepo.EXPECT().ActiveRegionFromFunction(mock.Anything).Return(nil, repository.ErrStorageNotProvisioned)

		handler := NewBusinessHandler(nil, newTestRegionUsecase(t, regionRepo))

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/businesses/active-region", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.ActiveRegion(c)

		require.ErrorIs(t, err, domainerrors.ErrRegionNotConfigured)
	})
}
