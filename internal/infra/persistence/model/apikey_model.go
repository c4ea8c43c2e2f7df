package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// APIApplicationModel is the GORM-specific struct for the
// 'api_applications' table.
type APIApplicationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string     `gorm:"type:varchar(120);not null"`
	Description string     `gorm:"type:text"`
	AppType     string     `gorm:"type:varchar(40);not null"`
	Platform    string     `gorm:"type:varchar(40)"`
	Version     string     `gorm:"type:varchar(20)"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (APIApplicationModel) TableName() string {
	return "api_applications"
}

// APIKeyModel is the GORM-specific struct for the 'api_keys' table. Only
// the SHA-256 hash of the key is stored.
type APIKeyModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ApplicationID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	KeyHash            string         `gorm:"type:char(64);not null;uniqueIndex"`
	KeyPrefix          string         `gorm:"type:varchar(20);not null"`
	Name               string         `gorm:"type:varchar(120);not null"`
	Description        string         `gorm:"type:text"`
	Scopes             pq.StringArray `gorm:"type:text[]"`
	ExpiresAt          *time.Time
	Revoked            bool `gorm:"not null;default:false"`
	RateLimitPerMinute int  `gorm:"not null;default:60"`
	RateLimitPerHour   int  `gorm:"not null;default:1000"`
	RateLimitPerDay    int  `gorm:"not null;default:10000"`
	LastUsedAt         *time.Time
	CreatedBy          *uuid.UUID `gorm:"type:uuid"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (APIKeyModel) TableName() string {
	return "api_keys"
}

// APIRequestLogModel is the GORM-specific struct for the
// 'api_request_logs' table. Rows are append-only.
type APIRequestLogModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	APIKeyID       *uuid.UUID `gorm:"type:uuid;index"`
	Method         string     `gorm:"type:varchar(10);not null"`
	Path           string     `gorm:"type:varchar(255);not null"`
	StatusCode     int        `gorm:"not null"`
	ResponseTimeMs int64      `gorm:"not null"`
	RemoteIP       string     `gorm:"type:varchar(45)"`
	UserAgent      string     `gorm:"type:varchar(255)"`
	ErrorMessage   string     `gorm:"type:text"`
	CreatedAt      time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (APIRequestLogModel) TableName() string {
	return "api_request_logs"
}
