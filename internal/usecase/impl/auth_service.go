package impl

import (
	"context"
	"log/slog"
	"strings"

	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	"localia/internal/domain/service"
	"localia/internal/usecase"

	"github.com/pkg/errors"
)

const defaultSignUpRole = "client"

type authService struct {
	gateway    service.AuthGateway
	clientRepo repository.ClientRepository
	logger     *slog.Logger
}

// NewAuthService creates the authentication service. Credentials live on
// the Supabase side; this service drives sign-up, sessions, and password
// recovery, and enriches results with the local profile row.
func NewAuthService(
	gateway service.AuthGateway,
	clientRepo repository.ClientRepository,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		gateway:    gateway,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (s *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpResult, error) {
	role := input.Role
	if role == "" {
		role = defaultSignUpRole
	}

	account, err := s.gateway.SignUp(ctx, service.SignUpParams{
		Email:    input.Email,
		Password: input.Password,
		Metadata: map[string]interface{}{
			"first_name": input.FirstName,
			"last_name":  input.LastName,
			"phone":      input.Phone,
			"role":       role,
		},
	})
	if err != nil {
		if containsAny(err, "already registered", "already exists") {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, domainerrors.ErrSignUpFailed.WithDetails(err.Error())
	}

	s.logger.Info("user signed up",
		slog.String("userID", account.ID.String()),
		slog.String("role", role),
	)

	return &usecase.SignUpResult{
		User: &usecase.AuthUser{
			ID:        account.ID,
			Email:     account.Email,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Phone:     input.Phone,
			Role:      role,
		},
		Message: "registered successfully; verify your email to confirm the account",
	}, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*usecase.SignInResult, error) {
	session, err := s.gateway.SignInWithPassword(ctx, email, password)
	if err != nil {
		if containsAny(err, "invalid login credentials") {
			return nil, domainerrors.ErrInvalidCredentials
		}
		if containsAny(err, "email not confirmed") {
			return nil, domainerrors.ErrEmailNotConfirmed
		}

		return nil, domainerrors.ErrInvalidCredentials.WithDetails(err.Error())
	}

	return &usecase.SignInResult{
		User:    s.resolveUser(ctx, session.Account),
		Session: toUsecaseSession(session),
	}, nil
}

func (s *authService) RefreshSession(ctx context.Context, refreshToken string) (*usecase.SignInResult, error) {
	session, err := s.gateway.RefreshSession(ctx, refreshToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidRefreshToken
	}

	return &usecase.SignInResult{
		User:    s.resolveUser(ctx, session.Account),
		Session: toUsecaseSession(session),
	}, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := s.gateway.SendPasswordRecovery(ctx, email); err != nil {
		return domainerrors.ErrPasswordResetFailed.WithDetails(err.Error())
	}

	return nil
}

func (s *authService) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	if err := s.gateway.UpdatePassword(ctx, accessToken, newPassword); err != nil {
		return domainerrors.ErrPasswordUpdateFailed.WithDetails(err.Error())
	}

	return nil
}

func (s *authService) Profile(ctx context.Context, accessToken string) (*usecase.AuthUser, error) {
	account, err := s.gateway.AccountFromToken(ctx, accessToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithMessage("Invalid or expired token")
	}

	return s.resolveUser(ctx, *account), nil
}

func (s *authService) SignOut(ctx context.Context, accessToken string) error {
	if err := s.gateway.SignOut(ctx, accessToken); err != nil {
		return domainerrors.ErrUnauthorized.WithMessage("Invalid or expired token")
	}

	return nil
}

// resolveUser prefers the local profile row over signup metadata. The row
// is created by the Supabase trigger, so right after signup it may not
// exist yet; metadata keeps the response useful in that window.
func (s *authService) resolveUser(ctx context.Context, account service.AuthAccount) *usecase.AuthUser {
	user := &usecase.AuthUser{
		ID:        account.ID,
		Email:     account.Email,
		FirstName: metadataString(account.Metadata, "first_name"),
		LastName:  metadataString(account.Metadata, "last_name"),
		Phone:     metadataString(account.Metadata, "phone"),
		Role:      metadataString(account.Metadata, "role"),
	}

	profile, err := s.clientRepo.FindClientByID(ctx, account.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrClientNotFound) {
			s.logger.Warn("profile lookup failed during auth",
				slog.String("userID", account.ID.String()),
				slog.Any("error", err),
			)
		}

		return user
	}

	applyProfile(user, profile)

	return user
}

func applyProfile(user *usecase.AuthUser, profile *entity.Client) {
	user.FirstName = profile.FirstName
	user.LastName = profile.LastName
	if profile.Phone != "" {
		user.Phone = profile.Phone
	}
	if profile.Email != "" {
		user.Email = profile.Email
	}
}

func toUsecaseSession(session *service.AuthSession) *usecase.AuthSession {
	return &usecase.AuthSession{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
	}
}

func metadataString(metadata map[string]interface{}, key string) string {
	if value, ok := metadata[key].(string); ok {
		return value
	}

	return ""
}

// containsAny matches provider error messages, which are the only failure
// signal GoTrue exposes.
func containsAny(err error, fragments ...string) bool {
	message := strings.ToLower(err.Error())
	for _, fragment := range fragments {
		if strings.Contains(message, fragment) {
			return true
		}
	}

	return false
}
