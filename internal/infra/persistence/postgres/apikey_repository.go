package postgres

import (
	"context"
	"time"

	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	"localia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// apiKeyRepository implements the repository.APIKeyRepository interface.
type apiKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository is the constructor for apiKeyRepository.
func NewAPIKeyRepository(db *gorm.DB) repository.APIKeyRepository {
	return &apiKeyRepository{
		db: db,
	}
}

// CreateApplication persists a new API application row.
func (repo *apiKeyRepository) CreateApplication(ctx context.Context, app *entity.APIApplication) error {
	appM := fromApplicationDomain(app)

	if err := repo.db.WithContext(ctx).Create(appM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create api application")
	}

	app.ID = appM.ID
	app.CreatedAt = appM.CreatedAt
	app.UpdatedAt = appM.UpdatedAt

	return nil
}

// FindApplicationByID retrieves an API application by its unique ID.
func (repo *apiKeyRepository) FindApplicationByID(ctx context.Context, id uuid.UUID) (*entity.APIApplication, error) {
	var appM model.APIApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find api application by ID")
	}

	return toApplicationDomain(&appM), nil
}

// CreateKey persists a new API key row.
func (repo *apiKeyRepository) CreateKey(ctx context.Context, key *entity.APIKey) error {
	keyM := fromKeyDomain(key)

	if err := repo.db.WithContext(ctx).Create(keyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrApplicationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create api key")
	}

	key.ID = keyM.ID
	key.CreatedAt = keyM.CreatedAt
	key.UpdatedAt = keyM.UpdatedAt

	return nil
}

// FindKeyByHash looks a key up by its SHA-256 hash.
func (repo *apiKeyRepository) FindKeyByHash(ctx context.Context, keyHash string) (*entity.APIKey, error) {
	var keyM model.APIKeyModel

	if err := repo.db.WithContext(ctx).
		Where("key_hash = ?", keyHash).
		First(&keyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAPIKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find api key by hash")
	}

	return toKeyDomain(&keyM), nil
}

// FindKeysByApplication lists all keys issued under one application.
func (repo *apiKeyRepository) FindKeysByApplication(ctx context.Context, applicationID uuid.UUID) ([]*entity.APIKey, error) {
	var keyModels []*model.APIKeyModel

	if err := repo.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&keyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find api keys by application")
	}

	keys := make([]*entity.APIKey, 0, len(keyModels))
	for _, keyM := range keyModels {
		keys = append(keys, toKeyDomain(keyM))
	}

	return keys, nil
}

// RevokeKey marks a key as revoked.
func (repo *apiKeyRepository) RevokeKey(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.APIKeyModel{}).
		Where("id = ?", id).
		Update("revoked", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to revoke api key")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAPIKeyNotFound
	}

	return nil
}

// TouchLastUsed updates last_used_at to now.
func (repo *apiKeyRepository) TouchLastUsed(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.APIKeyModel{}).
		Where("id = ?", id).
		Update("last_used_at", time.Now()).Error
	if err != nil {
		return errors.Wrap(err, "failed to touch api key last_used_at")
	}

	return nil
}

// RecordRequest appends one audit row.
func (repo *apiKeyRepository) RecordRequest(ctx context.Context, log *entity.APIRequestLog) error {
	logM := fromRequestLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return errors.Wrap(err, "failed to record api request")
	}

	return nil
}

// --- Mapper Functions ---

func toApplicationDomain(data *model.APIApplicationModel) *entity.APIApplication {
	if data == nil {
		return nil
	}

	return &entity.APIApplication{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		AppType:     data.AppType,
		Platform:    data.Platform,
		Version:     data.Version,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromApplicationDomain(data *entity.APIApplication) *model.APIApplicationModel {
	if data == nil {
		return nil
	}

	return &model.APIApplicationModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		AppType:     data.AppType,
		Platform:    data.Platform,
		Version:     data.Version,
		CreatedBy:   data.CreatedBy,
	}
}

func toKeyDomain(data *model.APIKeyModel) *entity.APIKey {
	if data == nil {
		return nil
	}

	return &entity.APIKey{
		ID:                 data.ID,
		ApplicationID:      data.ApplicationID,
		KeyHash:            data.KeyHash,
		KeyPrefix:          data.KeyPrefix,
		Name:               data.Name,
		Description:        data.Description,
		Scopes:             []string(data.Scopes),
		ExpiresAt:          data.ExpiresAt,
		Revoked:            data.Revoked,
		RateLimitPerMinute: data.RateLimitPerMinute,
		RateLimitPerHour:   data.RateLimitPerHour,
		RateLimitPerDay:    data.RateLimitPerDay,
		LastUsedAt:         data.LastUsedAt,
		CreatedBy:          data.CreatedBy,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromKeyDomain(data *entity.APIKey) *model.APIKeyModel {
	if data == nil {
		return nil
	}

	return &model.APIKeyModel{
		ID:                 data.ID,
		ApplicationID:      data.ApplicationID,
		KeyHash:            data.KeyHash,
		KeyPrefix:          data.KeyPrefix,
		Name:               data.Name,
		Description:        data.Description,
		Scopes:             data.Scopes,
		ExpiresAt:          data.ExpiresAt,
		Revoked:            data.Revoked,
		RateLimitPerMinute: data.RateLimitPerMinute,
		RateLimitPerHour:   data.RateLimitPerHour,
		RateLimitPerDay:    data.RateLimitPerDay,
		LastUsedAt:         data.LastUsedAt,
		CreatedBy:          data.CreatedBy,
	}
}

func fromRequestLogDomain(data *entity.APIRequestLog) *model.APIRequestLogModel {
	if data == nil {
		return nil
	}

	return &model.APIRequestLogModel{
		ID:             data.ID,
		APIKeyID:       data.APIKeyID,
		Method:         data.Method,
		Path:           data.Path,
		StatusCode:     data.StatusCode,
		ResponseTimeMs: data.ResponseTimeMs,
		RemoteIP:       data.RemoteIP,
		UserAgent:      data.UserAgent,
		ErrorMessage:   data.ErrorMessage,
	}
}
