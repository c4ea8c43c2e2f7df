// Package entity contains the core business objects of the platform.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRegion describes a named delivery coverage zone. Regions are
// administered directly in the database; the application only reads them.
type ServiceRegion struct {
	ID                      uuid.UUID `json:"id"`
	Name                    string    `json:"name"`
	Description             string    `json:"description,omitempty"`
	City                    string    `json:"city"`
	State                   string    `json:"state"`
	Country                 string    `json:"country"`
	CenterLongitude         float64   `json:"center_longitude"`
	CenterLatitude          float64   `json:"center_latitude"`
	MaxDeliveryRadiusMeters int       `json:"max_delivery_radius_meters"`
	MinOrderAmount          float64   `json:"min_order_amount"`
	IsActive                bool      `json:"is_active"`
	IsDefault               bool      `json:"is_default"`
	// CoverageAreaGeoJSON is the serviceable polygon as a GeoJSON geometry
	// string. Empty when the region has no polygon configured.
	CoverageAreaGeoJSON string    `json:"coverage_area_geojson,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// LocationValidation is the outcome of checking a coordinate pair against
// the active service region. Computed per request, never persisted.
type LocationValidation struct {
	IsValid bool           `json:"isValid"`
	Region  *ServiceRegion `json:"region,omitempty"`
	Message string         `json:"message,omitempty"`
}

// RegionStatistics aggregates counts over all configured regions.
type RegionStatistics struct {
	Total        int64 `json:"total"`
	Active       int64 `json:"active"`
	Inactive     int64 `json:"inactive"`
	DefaultCount int64 `json:"default_count"`
}
