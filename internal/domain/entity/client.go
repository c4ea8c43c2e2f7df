package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is an end customer's profile. Profiles are provisioned by the
// Supabase auth flow; this service reads them for administration.
type Client struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	PhoneVerified bool      `json:"phone_verified"`
	IsActive      bool      `json:"is_active"`
	TotalOrders   int64     `json:"total_orders"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
