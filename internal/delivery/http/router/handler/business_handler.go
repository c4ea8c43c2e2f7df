package handler

import (
	"strconv"

	"localia/internal/delivery/http/middleware"
	"localia/internal/delivery/http/response"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	"localia/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BusinessHandler serves business onboarding and administration endpoints.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	regionUC   usecase.RegionUsecase
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(businessUC usecase.BusinessUsecase, regionUC usecase.RegionUsecase) *BusinessHandler {
	return &BusinessHandler{
		businessUC: businessUC,
		regionUC:   regionUC,
	}
}

// ActiveRegion handles GET /businesses/active-region. Public: merchant
// apps use it to show coverage before the owner logs in.
func (h *BusinessHandler) ActiveRegion(c echo.Context) error {
	region, err := h.regionUC.ActiveRegion(c.Request().Context())
	if err != nil {
		return err
	}
	if region == nil {
		return domainerrors.ErrRegionNotConfigured
	}

	return response.Success(c, region)
}

// ValidateLocation handles GET /businesses/validate-location. Malformed
// coordinates are rejected before any database work happens.
func (h *BusinessHandler) ValidateLocation(c echo.Context) error {
	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("longitude must be a valid number")
	}

	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("latitude must be a valid number")
	}

	validation, err := h.regionUC.ValidateLocation(c.Request().Context(), longitude, latitude)
	if err != nil {
		return err
	}

	return response.Success(c, validation)
}

type createBusinessRequest struct {
	Name             string   `json:"name" validate:"required,max=160"`
	LegalName        string   `json:"legal_name" validate:"omitempty,max=160"`
	Description      string   `json:"description"`
	Category         string   `json:"category" validate:"required,max=80"`
	Tags             []string `json:"tags"`
	Phone            string   `json:"phone" validate:"omitempty,max=20"`
	Email            string   `json:"email" validate:"omitempty,email"`
	WebsiteURL       string   `json:"website_url" validate:"omitempty,url"`
	Longitude        *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Latitude         *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	AddressLine1     string   `json:"address_line1"`
	AddressLine2     string   `json:"address_line2"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	PostalCode       string   `json:"postal_code"`
	Country          string   `json:"country" validate:"omitempty,len=2"`
	UsesEcoPackaging bool     `json:"uses_eco_packaging"`
}

// Create handles POST /businesses, the onboarding gate.
func (h *BusinessHandler) Create(c echo.Context) error {
	var req createBusinessRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.CreateBusinessInput{
		Name:             req.Name,
		LegalName:        req.LegalName,
		Description:      req.Description,
		Category:         req.Category,
		Tags:             req.Tags,
		Phone:            req.Phone,
		Email:            req.Email,
		WebsiteURL:       req.WebsiteURL,
		Longitude:        *req.Longitude,
		Latitude:         *req.Latitude,
		AddressLine1:     req.AddressLine1,
		AddressLine2:     req.AddressLine2,
		City:             req.City,
		State:            req.State,
		PostalCode:       req.PostalCode,
		Country:          req.Country,
		UsesEcoPackaging: req.UsesEcoPackaging,
	}

	business, err := h.businessUC.CreateBusiness(c.Request().Context(), middleware.UserIDFromContext(c), input)
	if err != nil {
		return err
	}

	return response.Created(c, business)
}

// MyBusiness handles GET /businesses/my-business.
func (h *BusinessHandler) MyBusiness(c echo.Context) error {
	business, err := h.businessUC.MyBusiness(c.Request().Context(), middleware.UserIDFromContext(c))
	if err != nil {
		return err
	}

	return response.Success(c, business)
}

// List handles GET /businesses.
func (h *BusinessHandler) List(c echo.Context) error {
	page, limit := pagination(c)

	filter := repository.BusinessFilter{
		Page:      page,
		Limit:     limit,
		IsActive:  queryBool(c, "isActive"),
		Category:  c.QueryParam("category"),
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}

	result, err := h.businessUC.ListBusinesses(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.Success(c, result)
}

// Statistics handles GET /businesses/statistics.
func (h *BusinessHandler) Statistics(c echo.Context) error {
	stats, err := h.businessUC.Statistics(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, stats)
}

// Get handles GET /businesses/:id.
func (h *BusinessHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.businessUC.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, business)
}

type updateStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// UpdateStatus handles PATCH /businesses/:id/status.
func (h *BusinessHandler) UpdateStatus(c echo.Context) error {
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

	business, err := h.businessUC.UpdateStatus(c.Request().Context(), id, *req.IsActive)
	if err != nil {
		return err
	}

	return response.Success(c, business)
}
