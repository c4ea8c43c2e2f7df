package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a local store registered on the platform. Each owner may have
// at most one business; the storage layer enforces this with a unique index
// on OwnerID.
type Business struct {
	ID               uuid.UUID  `json:"id"`
	OwnerID          uuid.UUID  `json:"owner_id"`
	Name             string     `json:"name"`
	LegalName        string     `json:"legal_name,omitempty"`
	Description      string     `json:"description,omitempty"`
	Category         string     `json:"category"`
	Tags             []string   `json:"tags,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Email            string     `json:"email,omitempty"`
	WebsiteURL       string     `json:"website_url,omitempty"`
	AddressID        *uuid.UUID `json:"address_id,omitempty"`
	Longitude        float64    `json:"longitude"`
	Latitude         float64    `json:"latitude"`
	IsActive         bool       `json:"is_active"`
	IsVerified       bool       `json:"is_verified"`
	AcceptsOrders    bool       `json:"accepts_orders"`
	CommissionRate   float64    `json:"commission_rate"`
	UsesEcoPackaging bool       `json:"uses_eco_packaging"`
	Owner            *Client    `json:"owner,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// BusinessStatistics aggregates counts over all businesses.
type BusinessStatistics struct {
	Total      int64           `json:"total"`
	Active     int64           `json:"active"`
	Inactive   int64           `json:"inactive"`
	Categories []CategoryCount `json:"categories"`
}

// CategoryCount is the number of active businesses in one category.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
