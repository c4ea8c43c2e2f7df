package handler

import (
	"localia/internal/delivery/http/response"
	"localia/internal/domain/repository"
	"localia/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RegionHandler serves the service-region administration endpoints.
type RegionHandler struct {
	regionUC usecase.RegionUsecase
}

// NewRegionHandler is the constructor for RegionHandler.
func NewRegionHandler(regionUC usecase.RegionUsecase) *RegionHandler {
	return &RegionHandler{regionUC: regionUC}
}

// List handles GET /service-regions.
func (h *RegionHandler) List(c echo.Context) error {
	page, limit := pagination(c)

	filter := repository.RegionFilter{
		Page:      page,
		Limit:     limit,
		IsActive:  queryBool(c, "isActive"),
		IsDefault: queryBool(c, "isDefault"),
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}

	result, err := h.regionUC.ListRegions(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.Success(c, result)
}

// Statistics handles GET /service-regions/statistics.
func (h *RegionHandler) Statistics(c echo.Context) error {
	stats, err := h.regionUC.Statistics(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, stats)
}

// Get handles GET /service-regions/:id.
func (h *RegionHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	region, err := h.regionUC.GetRegion(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, region)
}
