package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a physical street address attached to a business. It is
// inserted together with the business row inside one transaction so a
// failed onboarding never leaves an orphaned address behind.
type Address struct {
	ID         uuid.UUID `json:"id"`
	Line1      string    `json:"address_line1"`
	Line2      string    `json:"address_line2,omitempty"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
