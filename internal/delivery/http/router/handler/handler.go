// Package handler contains the HTTP request handlers.
package handler

import (
	"strconv"

	domainerrors "localia/internal/domain/errors"
	"localia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pagination reads and normalizes the page/limit query parameters.
func pagination(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = usecase.DefaultPageLimit
	}
	if limit > usecase.MaxPageLimit {
		limit = usecase.MaxPageLimit
	}

	return page, limit
}

// queryBool parses an optional boolean query parameter, returning nil when
// absent or malformed.
func queryBool(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &value
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithMessage("invalid " + name + " parameter, must be a UUID")
	}

	return id, nil
}
