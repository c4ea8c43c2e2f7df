package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "localia/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/businesses", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("renders an application error with its business code", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorTestContext()

		NewErrorMiddleware(logger).HandleHTTPError(domainerrors.ErrBusinessNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
		assert.Contains(t, rec.Body.String(), "BUSINESS_NOT_FOUND")
		assert.Contains(t, rec.Body.String(), `"path":"/businesses"`)
	})

	t.Run("unwraps a wrapped application error", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorTestContext()
		wrapped := errors.Wrap(domainerrors.ErrRegionServiceUnavailable, "containment check postgis_covers")

		NewErrorMiddleware(logger).HandleHTTPError(wrapped, c)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "REGION_SERVICE_UNAVAILABLE")
	})

	t.Run("passes echo errors through with their status", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorTestContext()

		NewErrorMiddleware(logger).HandleHTTPError(echo.ErrMethodNotAllowed, c)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
	})

	t.Run("hides unexpected errors behind a 500", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorTestContext()

		NewErrorMiddleware(logger).HandleHTTPError(errors.New("pq: connection reset"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})

	t.Run("does nothing once the response is committed", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorTestContext()
		_ = c.NoContent(http.StatusOK)

		NewErrorMiddleware(logger).HandleHTTPError(domainerrors.ErrBusinessNotFound, c)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
