package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Line1      string    `gorm:"column:address_line1;type:varchar(255);not null"`
	Line2      string    `gorm:"column:address_line2;type:varchar(255)"`
	City       string    `gorm:"type:varchar(120);not null"`
	State      string    `gorm:"type:varchar(120);not null"`
	PostalCode string    `gorm:"type:varchar(10);not null"`
	Country    string    `gorm:"type:varchar(2);not null;default:'MX'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
