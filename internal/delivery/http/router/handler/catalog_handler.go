package handler

import (
	"localia/internal/delivery/http/response"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	"localia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CatalogHandler serves product and category administration endpoints.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(catalogUC usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

type createProductRequest struct {
	BusinessID   uuid.UUID  `json:"business_id" validate:"required"`
	CategoryID   *uuid.UUID `json:"category_id"`
	Name         string     `json:"name" validate:"required,max=160"`
	Description  string     `json:"description"`
	Price        *float64   `json:"price" validate:"required,gte=0"`
	ImageURL     string     `json:"image_url" validate:"omitempty,url"`
	IsAvailable  *bool      `json:"is_available"`
	IsFeatured   bool       `json:"is_featured"`
	DisplayOrder int        `json:"display_order"`
}

// CreateProduct handles POST /products.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		BusinessID:   req.BusinessID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        *req.Price,
		ImageURL:     req.ImageURL,
		IsAvailable:  available,
		IsFeatured:   req.IsFeatured,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return err
	}

	return response.Created(c, product)
}

// GetProduct handles GET /products/:id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, product)
}

// ListProducts handles GET /products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	page, limit := pagination(c)

	filter := repository.ProductFilter{
		Page:        page,
		Limit:       limit,
		IsAvailable: queryBool(c, "isAvailable"),
		IsFeatured:  queryBool(c, "isFeatured"),
		Search:      c.QueryParam("search"),
		SortBy:      c.QueryParam("sortBy"),
		SortOrder:   c.QueryParam("sortOrder"),
	}

	if raw := c.QueryParam("businessId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithMessage("businessId must be a UUID")
		}
		filter.BusinessID = &id
	}
	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithMessage("categoryId must be a UUID")
		}
		filter.CategoryID = &id
	}

	result, err := h.catalogUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.Success(c, result)
}

// UpdateProduct handles PATCH /products/:id.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid request body")
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), id, &input)
	if err != nil {
		return err
	}

	return response.Success(c, product)
}

// DeleteProduct handles DELETE /products/:id.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, map[string]bool{"deleted": true})
}

type createCategoryRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	Description  string `json:"description"`
	IconURL      string `json:"icon_url" validate:"omitempty,url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// CreateCategory handles POST /categories.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), &usecase.CreateCategoryInput{
		Name:         req.Name,
		Description:  req.Description,
		IconURL:      req.IconURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     active,
	})
	if err != nil {
		return err
	}

	return response.Created(c, category)
}

// GetCategory handles GET /categories/:id.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.catalogUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, category)
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	page, limit := pagination(c)

	filter := repository.CategoryFilter{
		Page:      page,
		Limit:     limit,
		IsActive:  queryBool(c, "isActive"),
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}

	result, err := h.catalogUC.ListCategories(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.Success(c, result)
}

// UpdateCategory handles PATCH /categories/:id.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateCategoryInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid request body")
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), id, &input)
	if err != nil {
		return err
	}

	return response.Success(c, category)
}

// DeleteCategory handles DELETE /categories/:id. Refused while products
// still reference the category.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, map[string]bool{"deleted": true})
}
