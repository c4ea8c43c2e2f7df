package handler

import (
	"time"

	"localia/internal/delivery/http/middleware"
	"localia/internal/delivery/http/response"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// APIKeyHandler serves application registration and key management.
type APIKeyHandler struct {
	apiKeyUC usecase.APIKeyUsecase
}

// NewAPIKeyHandler is the constructor for APIKeyHandler.
func NewAPIKeyHandler(apiKeyUC usecase.APIKeyUsecase) *APIKeyHandler {
	return &APIKeyHandler{apiKeyUC: apiKeyUC}
}

type createApplicationRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description"`
	AppType     string `json:"app_type" validate:"required,oneof=web mobile partner internal"`
	Platform    string `json:"platform" validate:"omitempty,max=40"`
	Version     string `json:"version" validate:"omitempty,max=20"`
}

// CreateApplication handles POST /api-keys/applications.
func (h *APIKeyHandler) CreateApplication(c echo.Context) error {
	var req createApplicationRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	app, err := h.apiKeyUC.CreateApplication(c.Request().Context(), &usecase.CreateApplicationInput{
		Name:        req.Name,
		Description: req.Description,
		AppType:     req.AppType,
		Platform:    req.Platform,
		Version:     req.Version,
		CreatedBy:   issuerKeyID(c),
	})
	if err != nil {
		return err
	}

	return response.Created(c, app)
}

// issuerKeyID resolves the authenticated API key behind the request so new
// applications and keys carry their provenance.
func issuerKeyID(c echo.Context) *uuid.UUID {
	identity := middleware.APIIdentityFromContext(c)
	if identity == nil {
		return nil
	}

	keyID := identity.KeyID

	return &keyID
}

type createKeyRequest struct {
	ApplicationID uuid.UUID  `json:"application_id" validate:"required"`
	Name          string     `json:"name" validate:"required,max=120"`
	Description   string     `json:"description"`
	Scopes        []string   `json:"scopes" validate:"omitempty,dive,oneof=read write admin"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

// CreateKey handles POST /api-keys. The plaintext key appears in this
// response and nowhere else.
func (h *APIKeyHandler) CreateKey(c echo.Context) error {
	var req createKeyRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	issued, err := h.apiKeyUC.CreateKey(c.Request().Context(), &usecase.CreateKeyInput{
		ApplicationID: req.ApplicationID,
		Name:          req.Name,
		Description:   req.Description,
		Scopes:        req.Scopes,
		ExpiresAt:     req.ExpiresAt,
		CreatedBy:     issuerKeyID(c),
	})
	if err != nil {
		return err
	}

	return response.Created(c, issued)
}

// ListKeys handles GET /api-keys/applications/:id/keys.
func (h *APIKeyHandler) ListKeys(c echo.Context) error {
	applicationID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	keys, err := h.apiKeyUC.ListKeys(c.Request().Context(), applicationID)
	if err != nil {
		return err
	}

	return response.Success(c, keys)
}

// RevokeKey handles DELETE /api-keys/:id.
func (h *APIKeyHandler) RevokeKey(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.apiKeyUC.RevokeKey(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, map[string]bool{"revoked": true})
}
