package auth

import (
	"testing"
	"time"

	"localia/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-value-for-tests"

func newTokenConfig(issuer string) *config.Config {
	cfg := &config.Config{}
	cfg.Supabase = &config.SupabaseConfig{
		JWTSecret: testSecret,
		Issuer:    issuer,
	}

	return cfg
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewSupabaseTokenService(t *testing.T) {
	t.Parallel()

	t.Run("requires a jwt secret", func(t *testing.T) {
		t.Parallel()

		_, err := NewSupabaseTokenService(&config.Config{})

		require.Error(t, err)
	})

	t.Run("accepts a full configuration", func(t *testing.T) {
		t.Parallel()

		service, err := NewSupabaseTokenService(newTokenConfig("https://project.supabase.co/auth/v1"))

		require.NoError(t, err)
		assert.NotNil(t, service)
	})
}

func TestSupabaseTokenService_ValidateAccessToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("extracts the claims from a valid token", func(t *testing.T) {
		t.Parallel()

		service, err := NewSupabaseTokenService(newTokenConfig(""))
		require.NoError(t, err)

		tokenString := signToken(t, testSecret, jwt.MapClaims{
			"sub":   userID.String(),
			"email": "owner@example.com",
			"role":  "authenticated",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		claims, err := service.ValidateAccessToken(tokenString)

		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "owner@example.com", claims.Email)
		assert.Equal(t, "authenticated", claims.Role)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		t.Parallel()

		service, err := NewSupabaseTokenService(newTokenConfig(""))
		require.NoError(t, err)

		tokenString := signToken(t, "some-other-secret", jwt.MapClaims{
			"sub": userID.String(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err = service.ValidateAccessToken(tokenString)

		require.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		t.Parallel()

		service, err := NewSupabaseTokenService(newTokenConfig(""))
		require.NoError(t, err)

		tokenString := signToken(t, testSecret, jwt.MapClaims{
			"sub": userID.String(),
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		_, err = service.ValidateAccessToken(tokenString)

		require.Error(t, err)
	})

	t.Run("rejects a token without an expiry", func(t *testing.T) {
		t.Parallel()

		service, err := NewSupabaseTokenService(newTokenConfig(""))
		require.NoError(t, err)

		tokenString := signToken(t, testSecret, jwt.MapClaims{
			"sub": userID.String(),
		})

		_, err = service.ValidateAccessToken(tokenString)

		require.Error(t, err)
	})

	t.Run("rejects a wrong issuer", func(t *testing.T) {
		t.Parallel()

		service, err := NewSupabaseTokenService(newTokenConfig("https://project.supabase.co/auth/v1"))
		require.NoError(t, err)

		tokenString := signToken(t, testSecret, jwt.MapClaims{
			"sub": userID.String(),
			"iss": "https://evil.example.com",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err = service.ValidateAccessToken(tokenString)

		require.Error(t, err)
	})

	t.Run("rejects a subject that is not a user ID", func(t *testing.T) {
		t.Parallel()

		service, err := NewSupabaseTokenService(newTokenConfig(""))
		require.NoError(t, err)

		tokenString := signToken(t, testSecret, jwt.MapClaims{
			"sub": "service-role",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err = service.ValidateAccessToken(tokenString)

		require.Error(t, err)
	})
}
