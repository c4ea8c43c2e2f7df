package entity

import (
	"time"

	"github.com/google/uuid"
)

// APIApplication is a registered consumer of the API (a front-end, a
// partner integration) that keys are issued under.
type APIApplication struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	AppType     string     `json:"app_type"`
	Platform    string     `json:"platform,omitempty"`
	Version     string     `json:"version,omitempty"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// APIKey is an issued credential. Only the SHA-256 hash is stored; the
// plaintext key is returned exactly once at creation time.
type APIKey struct {
	ID                 uuid.UUID  `json:"id"`
	ApplicationID      uuid.UUID  `json:"application_id"`
	KeyHash            string     `json:"-"`
	KeyPrefix          string     `json:"key_prefix"`
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	Scopes             []string   `json:"scopes"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	Revoked            bool       `json:"revoked"`
	RateLimitPerMinute int        `json:"rate_limit_per_minute"`
	RateLimitPerHour   int        `json:"rate_limit_per_hour"`
	RateLimitPerDay    int        `json:"rate_limit_per_day"`
	LastUsedAt         *time.Time `json:"last_used_at,omitempty"`
	CreatedBy          *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Expired reports whether the key has passed its expiry, if any.
func (k *APIKey) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && now.After(*k.ExpiresAt)
}

// APIKeyIdentity is the authenticated key context attached to requests.
type APIKeyIdentity struct {
	KeyID           uuid.UUID `json:"key_id"`
	ApplicationID   uuid.UUID `json:"application_id"`
	ApplicationName string    `json:"application_name"`
	AppType         string    `json:"app_type"`
	Scopes          []string  `json:"scopes"`
}

// APIRequestLog is one audited API call, recorded best effort.
type APIRequestLog struct {
	ID             uuid.UUID  `json:"id"`
	APIKeyID       *uuid.UUID `json:"api_key_id,omitempty"`
	Method         string     `json:"method"`
	Path           string     `json:"path"`
	StatusCode     int        `json:"status_code"`
	ResponseTimeMs int64      `json:"response_time_ms"`
	RemoteIP       string     `json:"remote_ip,omitempty"`
	UserAgent      string     `json:"user_agent,omitempty"`
	ErrorMessage   string     `json:"error_message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
