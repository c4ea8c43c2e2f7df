package handler

import (
	"strings"

	"localia/internal/delivery/http/response"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves account registration, sessions, and password
// recovery.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(authUC usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

type signUpRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=120"`
	LastName  string `json:"last_name" validate:"required,max=120"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Role      string `json:"role" validate:"omitempty,oneof=client owner courier"`
}

// SignUp handles POST /auth/signup.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	return response.Created(c, result)
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authUC.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return response.Success(c, result)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authUC.RefreshSession(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return response.Success(c, result)
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RequestPasswordReset handles POST /auth/password/reset. The response is
// the same whether or not the email exists.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req passwordResetRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return response.Success(c, map[string]string{
		"message": "if the email exists, a recovery link has been sent",
	})
}

type passwordUpdateRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UpdatePassword handles POST /auth/password/update. The bearer token is
// the recovery session Supabase established from the emailed link.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	var req passwordUpdateRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authUC.UpdatePassword(c.Request().Context(), token, req.NewPassword); err != nil {
		return err
	}

	return response.Success(c, map[string]string{"message": "password updated"})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.Profile(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return response.Success(c, user)
}

// SignOut handles POST /auth/signout.
func (h *AuthHandler) SignOut(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	if err := h.authUC.SignOut(c.Request().Context(), token); err != nil {
		return err
	}

	return response.Success(c, map[string]string{"message": "signed out"})
}

// bearerToken extracts the raw access token. These routes hand the token
// to the auth provider, which is itself the verification.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader == "" || token == authHeader {
		return "", domainerrors.ErrUnauthorized.WithMessage("Authorization header with a bearer token is required")
	}

	return token, nil
}
