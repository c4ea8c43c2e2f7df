package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"localia/config"
	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	"localia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// keyPrefixLen is how many leading characters of the plaintext key are
// stored for display in dashboards.
const keyPrefixLen = 20

type apiKeyService struct {
	apiKeyRepo repository.APIKeyRepository
	cfg        *config.APIKeysConfig
	logger     *slog.Logger
}

// NewAPIKeyService creates the API key management service.
func NewAPIKeyService(
	apiKeyRepo repository.APIKeyRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.APIKeyUsecase {
	return &apiKeyService{
		apiKeyRepo: apiKeyRepo,
		cfg:        cfg.APIKeys,
		logger:     logger,
	}
}

func (s *apiKeyService) CreateApplication(ctx context.Context, input *usecase.CreateApplicationInput) (*entity.APIApplication, error) {
	app := &entity.APIApplication{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		AppType:     input.AppType,
		Platform:    input.Platform,
		Version:     input.Version,
		CreatedBy:   input.CreatedBy,
	}

	if err := s.apiKeyRepo.CreateApplication(ctx, app); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create api application")
	}

	return app, nil
}

func (s *apiKeyService) CreateKey(ctx context.Context, input *usecase.CreateKeyInput) (*usecase.IssuedKey, error) {
	if _, err := s.apiKeyRepo.FindApplicationByID(ctx, input.ApplicationID); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, domainerrors.ErrApplicationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find api application")
	}

	plainKey, err := s.generateKey()
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("generate api key")
	}

	hash := sha256.Sum256([]byte(plainKey))

	scopes := input.Scopes
	if len(scopes) == 0 {
		scopes = []string{"read"}
	}

	key := &entity.APIKey{
		ID:                 uuid.New(),
		ApplicationID:      input.ApplicationID,
		KeyHash:            hex.EncodeToString(hash[:]),
		KeyPrefix:          plainKey[:keyPrefixLen],
		Name:               input.Name,
		Description:        input.Description,
		Scopes:             scopes,
		ExpiresAt:          input.ExpiresAt,
		RateLimitPerMinute: s.cfg.RateLimitPerMinute,
		RateLimitPerHour:   s.cfg.RateLimitPerHour,
		RateLimitPerDay:    s.cfg.RateLimitPerDay,
		CreatedBy:          input.CreatedBy,
	}

	if err := s.apiKeyRepo.CreateKey(ctx, key); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create api key")
	}

	return &usecase.IssuedKey{PlainKey: plainKey, Key: key}, nil
}

// generateKey builds the plaintext key: the configured prefix followed by
// 32 random bytes in hex.
func (s *apiKeyService) generateKey() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return s.cfg.Prefix + hex.EncodeToString(raw), nil
}

func (s *apiKeyService) ListKeys(ctx context.Context, applicationID uuid.UUID) ([]*entity.APIKey, error) {
	keys, err := s.apiKeyRepo.FindKeysByApplication(ctx, applicationID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list api keys")
	}

	return keys, nil
}

func (s *apiKeyService) RevokeKey(ctx context.Context, id uuid.UUID) error {
	if err := s.apiKeyRepo.RevokeKey(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAPIKeyNotFound) {
			return domainerrors.ErrAPIKeyInvalid.WithMessage("API key not found")
		}

		return domainerrors.NewDatabaseExecuteError(err, "revoke api key")
	}

	return nil
}

func (s *apiKeyService) ValidateKey(ctx context.Context, plainKey string) (*entity.APIKeyIdentity, error) {
	if plainKey == "" {
		return nil, domainerrors.ErrAPIKeyMissing
	}

	hash := sha256.Sum256([]byte(plainKey))

	key, err := s.apiKeyRepo.FindKeyByHash(ctx, hex.EncodeToString(hash[:]))
	if err != nil {
		if errors.Is(err, repository.ErrAPIKeyNotFound) {
			return nil, domainerrors.ErrAPIKeyInvalid
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find api key")
	}

	if key.Revoked {
		return nil, domainerrors.ErrAPIKeyInvalid.WithMessage("API key has been revoked")
	}

	if key.Expired(time.Now()) {
		return nil, domainerrors.ErrAPIKeyInvalid.WithMessage("API key has expired")
	}

	app, err := s.apiKeyRepo.FindApplicationByID(ctx, key.ApplicationID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find api application")
	}

	if err := s.apiKeyRepo.TouchLastUsed(ctx, key.ID); err != nil {
		s.logger.WarnContext(ctx, "failed to update api key last_used_at",
			slog.String("key_id", key.ID.String()),
			slog.Any("error", err))
	}

	return &entity.APIKeyIdentity{
		KeyID:           key.ID,
		ApplicationID:   key.ApplicationID,
		ApplicationName: app.Name,
		AppType:         app.AppType,
		Scopes:          key.Scopes,
	}, nil
}

func (s *apiKeyService) RecordRequest(ctx context.Context, log *entity.APIRequestLog) {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	if err := s.apiKeyRepo.RecordRequest(ctx, log); err != nil {
		s.logger.WarnContext(ctx, "failed to record api request",
			slog.String("path", log.Path),
			slog.Any("error", err))
	}
}
