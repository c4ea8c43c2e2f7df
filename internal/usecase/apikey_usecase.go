package usecase

import (
	"context"
	"time"

	"localia/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateApplicationInput registers a new API consumer.
type CreateApplicationInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	AppType     string     `json:"app_type"`
	Platform    string     `json:"platform,omitempty"`
	Version     string     `json:"version,omitempty"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
}

// CreateKeyInput issues a key for an application.
type CreateKeyInput struct {
	ApplicationID uuid.UUID  `json:"application_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Scopes        []string   `json:"scopes,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedBy     *uuid.UUID `json:"created_by,omitempty"`
}

// IssuedKey pairs the stored key record with its plaintext value. The
// plaintext is surfaced exactly once, at issuance.
type IssuedKey struct {
	PlainKey string         `json:"apiKey"`
	Key      *entity.APIKey `json:"keyData"`
}

// APIKeyUsecase covers application registration, key issuance and
// validation, and the request audit log.
type APIKeyUsecase interface {
	CreateApplication(ctx context.Context, input *CreateApplicationInput) (*entity.APIApplication, error)
	CreateKey(ctx context.Context, input *CreateKeyInput) (*IssuedKey, error)
	ListKeys(ctx context.Context, applicationID uuid.UUID) ([]*entity.APIKey, error)
	RevokeKey(ctx context.Context, id uuid.UUID) error

	// ValidateKey checks a plaintext key's hash, expiry, and revocation,
	// returning the authenticated identity. Touches last_used_at best
	// effort.
	ValidateKey(ctx context.Context, plainKey string) (*entity.APIKeyIdentity, error)

	// RecordRequest appends one audit row; failures are logged, never
	// propagated.
	RecordRequest(ctx context.Context, log *entity.APIRequestLog)
}
