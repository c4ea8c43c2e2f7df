package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientModel is the GORM-specific struct for the 'client_profiles' table.
// Rows are created by the Supabase auth trigger; the ID is the auth user ID.
type ClientModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	FirstName     string    `gorm:"type:varchar(120);not null"`
	LastName      string    `gorm:"type:varchar(120);not null"`
	Email         string    `gorm:"type:varchar(160)"`
	Phone         string    `gorm:"type:varchar(20)"`
	PhoneVerified bool      `gorm:"not null;default:false"`
	IsActive      bool      `gorm:"not null;default:true;index"`
	TotalOrders   int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "client_profiles"
}
