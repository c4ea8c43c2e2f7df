package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"localia/config"
	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	mockRepo "localia/internal/mocks/repository"
	"localia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAPIKeyConfig() *config.Config {
	cfg := &config.Config{}
	cfg.APIKeys = &config.APIKeysConfig{
		Prefix:             "localia_",
		RateLimitPerMinute: 60,
		RateLimitPerHour:   1000,
		RateLimitPerDay:    10000,
	}

	return cfg
}

func TestAPIKeyService_CreateKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("issues a prefixed key and stores only its hash", func(t *testing.T) {
		t.Parallel()

		appID := uuid.New()
		apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
		apiKeyRepo.EXPECT().FindApplicationByID(ctx, appID).Return(&entity.APIApplication{ID: appID, Name: "storefront"}, nil)

		var storedKey *entity.APIKey
		apiKeyRepo.EXPECT().CreateKey(ctx, mock.AnythingOfType("*entity.APIKey")).Run(func(_ context.Context, key *entity.APIKey) {
			storedKey = key
		}).Return(nil)

		service := NewAPIKeyService(apiKeyRepo, newAPIKeyConfig(), newDiscardLogger())

		issued, err := service.CreateKey(ctx, &usecase.CreateKeyInput{ApplicationID: appID, Name: "storefront key"})

		require.NoError(t, err)
		require.NotNil(t, issued)

		// Prefix plus 32 random bytes in hex.
		assert.Len(t, issued.PlainKey, len("localia_")+64)
		assert.Equal(t, "localia_", issued.PlainKey[:8])

		require.NotNil(t, storedKey)
		assert.NotContains(t, storedKey.KeyHash, issued.PlainKey)
		expectedHash := sha256.Sum256([]byte(issued.PlainKey))
		assert.Equal(t, hex.EncodeToString(expectedHash[:]), storedKey.KeyHash)
		assert.Equal(t, issued.PlainKey[:20], storedKey.KeyPrefix)
		assert.Equal(t, []string{"read"}, storedKey.Scopes)
		assert.Equal(t, 60, storedKey.RateLimitPerMinute)
	})

	t.Run("rejects an unknown application", func(t *testing.T) {
		t.Parallel()

		appID := uuid.New()
		apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
		apiKeyRepo.EXPECT().FindApplicationByID(ctx, appID).Return(nil, repository.ErrApplicationNotFound)

		service := NewAPIKeyService(apiKeyRepo, newAPIKeyConfig(), newDiscardLogger())

		issued, err := service.CreateKey(ctx, &usecase.CreateKeyInput{ApplicationID: appID, Name: "orphan"})

		require.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
		assert.Nil(t, issued)
	})
}

func TestAPIKeyService_ValidateKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	newStoredKey := func(plainKey string, appID uuid.UUID) *entity.APIKey {
		hash := sha256.Sum256([]byte(plainKey))

		return &entity.APIKey{
			ID:            uuid.New(),
			ApplicationID: appID,
			KeyHash:       hex.EncodeToString(hash[:]),
			Scopes:        []string{"read", "write"},
		}
	}

	t.Run("resolves the key to its application identity", func(t *testing.T) {
		t.Parallel()

		plainKey := "localia_" + "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
		appID := uuid.New()
		key := newStoredKey(plainKey, appID)

		apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
		apiKeyRepo.EXPECT().FindKeyByHash(ctx, key.KeyHash).Return(key, nil)
		apiKeyRepo.EXPECT().FindApplicationByID(ctx, appID).Return(&entity.APIApplication{ID: appID, Name: "storefront", AppType: "web"}, nil)
		apiKeyRepo.EXPECT().TouchLastUsed(ctx, key.ID).Return(nil)

		service := NewAPIKeyService(apiKeyRepo, newAPIKeyConfig(), newDiscardLogger())

		identity, err := service.ValidateKey(ctx, plainKey)

		require.NoError(t, err)
		assert.Equal(t, key.ID, identity.KeyID)
		assert.Equal(t, "storefront", identity.ApplicationName)
		assert.Equal(t, []string{"read", "write"}, identity.Scopes)
	})

	t.Run("rejects an empty key", func(t *testing.T) {
		t.Parallel()

		apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)

		service := NewAPIKeyService(apiKeyRepo, newAPIKeyConfig(), newDiscardLogger())

		identity, err := service.ValidateKey(ctx, "")

		require.ErrorIs(t, err, domainerrors.ErrAPIKeyMissing)
		assert.Nil(t, identity)
	})

	t.Run("rejects an unknown key", func(t *testing.T) {
		t.Parallel()

		apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
		apiKeyRepo.EXPECT().FindKeyByHash(ctx, mock.AnythingOfType("string")).Return(nil, repository.ErrAPIKeyNotFound)

		service := NewAPIKeyService(apiKeyRepo, newAPIKeyConfig(), newDiscardLogger())

		identity, err := service.ValidateKey(ctx, "localia_deadbeef")

		require.ErrorIs(t, err, domainerrors.ErrAPIKeyInvalid)
		assert.Nil(t, identity)
	})

	t.Run("rejects a revoked key", func(t *testing.T) {
		t.Parallel()

		plainKey := "localia_revoked"
		key := newStoredKey(plainKey, uuid.New())
		key.Revoked = true

		apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
		apiKeyRepo.EXPECT().FindKeyByHash(ctx, key.KeyHash).Return(key, nil)

		service := NewAPIKeyService(apiKeyRepo, newAPIKeyConfig(), newDiscardLogger())

		identity, err := service.ValidateKey(ctx, plainKey)

		require.Error(t, err)
		assert.Nil(t, identity)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "API_KEY_INVALID", appErr.ErrorCode())
	})

	t.Run("rejects an expired key", func(t *testing.T) {
		t.Parallel()

		plainKey := "localia_expired"
		key := newStoredKey(plainKey, uuid.New())
		expired := time.Now().Add(-time.Hour)
		key.ExpiresAt = &expired

		apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
		apiKeyRepo.EXPECT().FindKeyByHash(ctx, key.KeyHash).Return(key, nil)

		service := NewAPIKeyService(apiKeyRepo, newAPIKeyConfig(), newDiscardLogger())

		identity, err := service.ValidateKey(ctx, plainKey)

		require.Error(t, err)
		assert.Nil(t, identity)
	})

	t.Run("tolerates a failed last-used update", func(t *testing.T) {
		t.Parallel()

		plainKey := "localia_touchfail"
		appID := uuid.New()
		key := newStoredKey(plainKey, appID)

		apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
		apiKeyRepo.EXPECT().FindKeyByHash(ctx, key.KeyHash).Return(key, nil)
		apiKeyRepo.EXPECT().FindApplicationByID(ctx, appID).Return(&entity.APIApplication{ID: appID, Name: "storefront"}, nil)
		apiKeyRepo.EXPECT().TouchLastUsed(ctx, key.ID).Return(assert.AnError)

		service := NewAPIKeyService(apiKeyRepo, newAPIKeyConfig(), newDiscardLogger())

		identity, err := service.ValidateKey(ctx, plainKey)

		require.NoError(t, err)
		assert.NotNil(t, identity)
	})
}

func TestAPIKeyService_RecordRequest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("assigns an id when missing", func(t *testing.T) {
		t.Parallel()

		apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
		var recorded *entity.APIRequestLog
		apiKeyRepo.EXPECT().RecordRequest(ctx, mock.AnythingOfType("*entity.APIRequestLog")).Run(func(_ context.Context, log *entity.APIRequestLog) {
			recorded = log
		}).Return(nil)

		service := NewAPIKeyService(apiKeyRepo, newAPIKeyConfig(), newDiscardLogger())

		service.RecordRequest(ctx, &entity.APIRequestLog{Method: "GET", Path: "/businesses"})

		require.NotNil(t, recorded)
		assert.NotEqual(t, uuid.Nil, recorded.ID)
	})

	t.Run("swallows audit failures", func(t *testing.T) {
		t.Parallel()

		apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
		apiKeyRepo.EXPECT().RecordRequest(ctx, mock.AnythingOfType("*entity.APIRequestLog")).Return(assert.AnError)

		service := NewAPIKeyService(apiKeyRepo, newAPIKeyConfig(), newDiscardLogger())

		service.RecordRequest(ctx, &entity.APIRequestLog{Method: "GET", Path: "/businesses"})
	})
}
