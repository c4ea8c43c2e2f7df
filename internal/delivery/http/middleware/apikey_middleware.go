package middleware

import (
	"net/http"
	"strings"
	"time"

	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyAPIIdentity is where Validate stores the authenticated key
// identity for handlers.
const ContextKeyAPIIdentity = "apiIdentity"

// APIKeyMiddleware authenticates machine callers by API key and records
// every keyed request in the audit log.
type APIKeyMiddleware struct {
	apiKeyUC usecase.APIKeyUsecase
}

// NewAPIKeyMiddleware is the constructor for APIKeyMiddleware.
func NewAPIKeyMiddleware(apiKeyUC usecase.APIKeyUsecase) *APIKeyMiddleware {
	return &APIKeyMiddleware{apiKeyUC: apiKeyUC}
}

// Validate checks the X-API-Key header (or an Authorization Bearer/ApiKey
// scheme) and attaches the key identity to the context. The audit row is
// written after the handler returns, best effort, with the resolved status
// and latency.
func (m *APIKeyMiddleware) Validate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		plainKey := extractAPIKey(c)

		identity, err := m.apiKeyUC.ValidateKey(c.Request().Context(), plainKey)
		if err != nil {
			return err
		}

		c.Set(ContextKeyAPIIdentity, identity)

		start := time.Now()
		handlerErr := next(c)

		logEntry := &entity.APIRequestLog{
			APIKeyID:       &identity.KeyID,
			Method:         c.Request().Method,
			Path:           c.Request().URL.Path,
			StatusCode:     auditStatus(c, handlerErr),
			ResponseTimeMs: time.Since(start).Milliseconds(),
			RemoteIP:       c.RealIP(),
			UserAgent:      c.Request().UserAgent(),
		}
		if handlerErr != nil {
			logEntry.ErrorMessage = handlerErr.Error()
		}
		m.apiKeyUC.RecordRequest(c.Request().Context(), logEntry)

		return handlerErr
	}
}

// auditStatus resolves the response status for the audit row. When the
// handler errored the central error handler has not written the response
// yet, so the status is derived from the error itself.
func auditStatus(c echo.Context, handlerErr error) int {
	if handlerErr == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(handlerErr, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(handlerErr, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// extractAPIKey reads the key from the X-API-Key header, falling back to
// the Authorization header with either the Bearer or the ApiKey scheme so
// tooling that only supports one style works.
func extractAPIKey(c echo.Context) string {
	if key := c.Request().Header.Get("X-API-Key"); key != "" {
		return key
	}

	authHeader := c.Request().Header.Get("Authorization")
	for _, scheme := range []string{"Bearer ", "ApiKey "} {
		if token := strings.TrimPrefix(authHeader, scheme); token != authHeader {
			return token
		}
	}

	return ""
}

// APIIdentityFromContext returns the authenticated API key identity, or nil
// when the route did not go through Validate.
func APIIdentityFromContext(c echo.Context) *entity.APIKeyIdentity {
	if identity, ok := c.Get(ContextKeyAPIIdentity).(*entity.APIKeyIdentity); ok {
		return identity
	}

	return nil
}
