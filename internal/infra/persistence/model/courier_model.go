package model

import (
	"time"

	"github.com/google/uuid"
)

// CourierModel is the GORM-specific struct for the 'courier_profiles' table.
type CourierModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	FirstName          string    `gorm:"type:varchar(120);not null"`
	LastName           string    `gorm:"type:varchar(120);not null"`
	Phone              string    `gorm:"type:varchar(20)"`
	VehicleType        string    `gorm:"type:varchar(40);not null;index"`
	VehicleDescription string    `gorm:"type:varchar(255)"`
	LicensePlate       string    `gorm:"type:varchar(20)"`
	IsAvailable        bool      `gorm:"not null;default:false;index"`
	IsActive           bool      `gorm:"not null;default:true;index"`
	IsVerified         bool      `gorm:"not null;default:false"`
	IsGreen            bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourierModel) TableName() string {
	return "courier_profiles"
}
