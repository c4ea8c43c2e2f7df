package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// BusinessModel is the GORM-specific struct for the 'businesses' table.
// The unique index on owner_id guarantees at most one business per owner
// even when two onboarding requests race past the application pre-check.
type BusinessModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_businesses_owner_id"`
	Name             string         `gorm:"type:varchar(160);not null"`
	LegalName        string         `gorm:"type:varchar(160)"`
	Description      string         `gorm:"type:text"`
	Category         string         `gorm:"type:varchar(80);not null;index"`
	Tags             pq.StringArray `gorm:"type:text[]"`
	Phone            string         `gorm:"type:varchar(20)"`
	Email            string         `gorm:"type:varchar(160)"`
	WebsiteURL       string         `gorm:"type:varchar(255)"`
	AddressID        *uuid.UUID     `gorm:"type:uuid"`
	Longitude        float64        `gorm:"type:decimal(11,8);not null"`
	Latitude         float64        `gorm:"type:decimal(10,8);not null"`
	IsActive         bool           `gorm:"not null;default:true;index"`
	IsVerified       bool           `gorm:"not null;default:false"`
	AcceptsOrders    bool           `gorm:"not null;default:true"`
	CommissionRate   float64        `gorm:"type:decimal(5,2);not null;default:10.0"`
	UsesEcoPackaging bool           `gorm:"not null;default:false"`
	Owner            *ClientModel   `gorm:"foreignKey:OwnerID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
