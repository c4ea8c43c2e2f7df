package impl

import (
	"context"
	"testing"

	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	"localia/internal/domain/service"
	mockRepo "localia/internal/mocks/repository"
	mockService "localia/internal/mocks/service"
	"localia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthService(gateway service.AuthGateway, clientRepo repository.ClientRepository) usecase.AuthUsecase {
	return NewAuthService(gateway, clientRepo, newDiscardLogger())
}

func TestAuthService_SignUp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("registers with profile metadata and a default role", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		gateway := mockService.NewMockAuthGateway(t)
		clientRepo := mockRepo.NewMockClientRepository(t)

		var captured service.SignUpParams
		gateway.EXPECT().
			SignUp(ctx, mock.AnythingOfType("service.SignUpParams")).
			Run(func(_ context.Context, params service.SignUpParams) {
				captured = params
			}).
			Return(&service.AuthAccount{ID: userID, Email: "maria@example.com"}, nil)

		svc := newAuthService(gateway, clientRepo)

		result, err := svc.SignUp(ctx, &usecase.SignUpInput{
			Email:     "maria@example.com",
			Password:  "sup3r-secreta",
			FirstName: "María",
			LastName:  "García",
			Phone:     "+525512345678",
		})

		require.NoError(t, err)
		require.NotNil(t, result.User)
		assert.Equal(t, userID, result.User.ID)
		assert.Equal(t, "client", result.User.Role)
		assert.NotEmpty(t, result.Message)

		assert.Equal(t, "maria@example.com", captured.Email)
		assert.Equal(t, "María", captured.Metadata["first_name"])
		assert.Equal(t, "client", captured.Metadata["role"])
	})

	t.Run("maps an already registered email to a conflict", func(t *testing.T) {
		t.Parallel()

		gateway := mockService.NewMockAuthGateway(t)
		clientRepo := mockRepo.NewMockClientRepository(t)

		gateway.EXPECT().
			SignUp(ctx, mock.AnythingOfType("service.SignUpParams")).
			Return(nil, errors.New("400: User already registered"))

		svc := newAuthService(gateway, clientRepo)

		_, err := svc.SignUp(ctx, &usecase.SignUpInput{
			Email:    "maria@example.com",
			Password: "sup3r-secreta",
		})

		require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	})

	t.Run("other provider failures surface as signup failed", func(t *testing.T) {
		t.Parallel()

		gateway := mockService.NewMockAuthGateway(t)
		clientRepo := mockRepo.NewMockClientRepository(t)

		gateway.EXPECT().
			SignUp(ctx, mock.AnythingOfType("service.SignUpParams")).
			Return(nil, errors.New("password should be at least 6 characters"))

		svc := newAuthService(gateway, clientRepo)

		_, err := svc.SignUp(ctx, &usecase.SignUpInput{Email: "x@example.com", Password: "p"})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "SIGNUP_FAILED", appErr.ErrorCode())
	})
}

func TestAuthService_SignIn(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	session := func(userID uuid.UUID) *service.AuthSession {
		return &service.AuthSession{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			ExpiresIn:    3600,
			Account: service.AuthAccount{
				ID:    userID,
				Email: "maria@example.com",
				Metadata: map[string]interface{}{
					"first_name": "Meta",
					"role":       "client",
				},
			},
		}
	}

	t.Run("returns the session enriched with the profile row", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		gateway := mockService.NewMockAuthGateway(t)
		clientRepo := mockRepo.NewMockClientRepository(t)

		gateway.EXPECT().
			SignInWithPassword(ctx, "maria@example.com", "sup3r-secreta").
			Return(session(userID), nil)
		clientRepo.EXPECT().
			FindClientByID(ctx, userID).
			Return(&entity.Client{
				ID:        userID,
				FirstName: "María",
				LastName:  "García",
				Phone:     "+525512345678",
			}, nil)

		svc := newAuthService(gateway, clientRepo)

		result, err := svc.SignIn(ctx, "maria@example.com", "sup3r-secreta")

		require.NoError(t, err)
		require.NotNil(t, result.Session)
		assert.Equal(t, "access-token", result.Session.AccessToken)
		assert.Equal(t, "refresh-token", result.Session.RefreshToken)

		// The profile row wins over signup metadata.
		assert.Equal(t, "María", result.User.FirstName)
		assert.Equal(t, "García", result.User.LastName)
		assert.Equal(t, "client", result.User.Role)
	})

	t.Run("falls back to metadata while the profile row is missing", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		gateway := mockService.NewMockAuthGateway(t)
		clientRepo := mockRepo.NewMockClientRepository(t)

		gateway.EXPECT().
			SignInWithPassword(ctx, "maria@example.com", "sup3r-secreta").
			Return(session(userID), nil)
		clientRepo.EXPECT().
			FindClientByID(ctx, userID).
			Return(nil, repository.ErrClientNotFound)

		svc := newAuthService(gateway, clientRepo)

		result, err := svc.SignIn(ctx, "maria@example.com", "sup3r-secreta")

		require.NoError(t, err)
		assert.Equal(t, "Meta", result.User.FirstName)
	})

	t.Run("maps invalid login credentials", func(t *testing.T) {
		t.Parallel()

		gateway := mockService.NewMockAuthGateway(t)
		clientRepo := mockRepo.NewMockClientRepository(t)

		gateway.EXPECT().
			SignInWithPassword(ctx, "maria@example.com", "wrong").
			Return(nil, errors.New("400: Invalid login credentials"))

		svc := newAuthService(gateway, clientRepo)

		_, err := svc.SignIn(ctx, "maria@example.com", "wrong")

		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("maps an unconfirmed email", func(t *testing.T) {
		t.Parallel()

		gateway := mockService.NewMockAuthGateway(t)
		clientRepo := mockRepo.NewMockClientRepository(t)

		gateway.EXPECT().
			SignInWithPassword(ctx, "maria@example.com", "sup3r-secreta").
			Return(nil, errors.New("400: Email not confirmed"))

		svc := newAuthService(gateway, clientRepo)

		_, err := svc.SignIn(ctx, "maria@example.com", "sup3r-secreta")

		require.ErrorIs(t, err, domainerrors.ErrEmailNotConfirmed)
	})
}

func TestAuthService_Sessions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("refresh failure maps to invalid refresh token", func(t *testing.T) {
		t.Parallel()

		gateway := mockService.NewMockAuthGateway(t)
		clientRepo := mockRepo.NewMockClientRepository(t)

		gateway.EXPECT().
			RefreshSession(ctx, "stale-token").
			Return(nil, errors.New("401: refresh_token_not_found"))

		svc := newAuthService(gateway, clientRepo)

		_, err := svc.RefreshSession(ctx, "stale-token")

		require.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
	})

	t.Run("password reset is a passthrough", func(t *testing.T) {
		t.Parallel()

		gateway := mockService.NewMockAuthGateway(t)
		clientRepo := mockRepo.NewMockClientRepository(t)

		gateway.EXPECT().
			SendPasswordRecovery(ctx, "maria@example.com").
			Return(nil)

		svc := newAuthService(gateway, clientRepo)

		require.NoError(t, svc.RequestPasswordReset(ctx, "maria@example.com"))
	})

	t.Run("profile resolves the token and the profile row", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		gateway := mockService.NewMockAuthGateway(t)
		clientRepo := mockRepo.NewMockClientRepository(t)

		gateway.EXPECT().
			AccountFromToken(ctx, "access-token").
			Return(&service.AuthAccount{ID: userID, Email: "maria@example.com"}, nil)
		clientRepo.EXPECT().
			FindClientByID(ctx, userID).
			Return(&entity.Client{ID: userID, FirstName: "María", LastName: "García"}, nil)

		svc := newAuthService(gateway, clientRepo)

		user, err := svc.Profile(ctx, "access-token")

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "María", user.FirstName)
	})

	t.Run("profile rejects a bad token", func(t *testing.T) {
		t.Parallel()

		gateway := mockService.NewMockAuthGateway(t)
		clientRepo := mockRepo.NewMockClientRepository(t)

		gateway.EXPECT().
			AccountFromToken(ctx, "bad-token").
			Return(nil, errors.New("401: invalid JWT"))

		svc := newAuthService(gateway, clientRepo)

		_, err := svc.Profile(ctx, "bad-token")

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
	})
}
