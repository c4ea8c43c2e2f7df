package repository

import (
	"context"

	"localia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for API key persistence.
var (
	// ErrApplicationNotFound is returned when an API application is not found.
	ErrApplicationNotFound = errors.New("api application not found")
	// ErrAPIKeyNotFound is returned when no key matches the lookup.
	ErrAPIKeyNotFound = errors.New("api key not found")
)

// APIKeyRepository defines database operations for API applications, keys,
// and the request audit log.
type APIKeyRepository interface {
	CreateApplication(ctx context.Context, app *entity.APIApplication) error
	FindApplicationByID(ctx context.Context, id uuid.UUID) (*entity.APIApplication, error)

	CreateKey(ctx context.Context, key *entity.APIKey) error
	// FindKeyByHash looks a key up by its SHA-256 hash. The caller checks
	// expiry and revocation.
	FindKeyByHash(ctx context.Context, keyHash string) (*entity.APIKey, error)
	FindKeysByApplication(ctx context.Context, applicationID uuid.UUID) ([]*entity.APIKey, error)
	RevokeKey(ctx context.Context, id uuid.UUID) error

	// TouchLastUsed updates last_used_at; callers treat failures as
	// non-fatal.
	TouchLastUsed(ctx context.Context, id uuid.UUID) error

	// RecordRequest appends one audit row, best effort.
	RecordRequest(ctx context.Context, log *entity.APIRequestLog) error
}
