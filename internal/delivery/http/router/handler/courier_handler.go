package handler

import (
	"localia/internal/delivery/http/response"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	"localia/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CourierHandler serves the courier administration endpoints.
type CourierHandler struct {
	courierUC usecase.CourierUsecase
}

// NewCourierHandler is the constructor for CourierHandler.
func NewCourierHandler(courierUC usecase.CourierUsecase) *CourierHandler {
	return &CourierHandler{courierUC: courierUC}
}

// List handles GET /couriers.
func (h *CourierHandler) List(c echo.Context) error {
	page, limit := pagination(c)

	filter := repository.CourierFilter{
		Page:        page,
		Limit:       limit,
		IsAvailable: queryBool(c, "isAvailable"),
		IsActive:    queryBool(c, "isActive"),
		IsVerified:  queryBool(c, "isVerified"),
		IsGreen:     queryBool(c, "isGreen"),
		VehicleType: c.QueryParam("vehicleType"),
		Search:      c.QueryParam("search"),
		SortBy:      c.QueryParam("sortBy"),
		SortOrder:   c.QueryParam("sortOrder"),
	}

	result, err := h.courierUC.ListCouriers(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.Success(c, result)
}

// Get handles GET /couriers/:id.
func (h *CourierHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	courier, err := h.courierUC.GetCourier(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, courier)
}

// UpdateStatus handles PATCH /couriers/:id/status.
func (h *CourierHandler) UpdateStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	courier, err := h.courierUC.UpdateStatus(c.Request().Context(), id, *req.IsActive)
	if err != nil {
		return err
	}

	return response.Success(c, courier)
}
