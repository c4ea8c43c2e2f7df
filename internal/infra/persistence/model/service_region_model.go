// Package model contains the GORM-specific structs mapping domain entities
// to PostgreSQL tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRegionModel is the GORM-specific struct for the 'service_regions'
// table. The coverage_area column is a PostGIS geometry; queries read it
// back as GeoJSON through ST_AsGeoJSON, which lands in CoverageAreaGeoJSON.
type ServiceRegionModel struct {
	ID                      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                    string    `gorm:"type:varchar(120);not null"`
	Description             string    `gorm:"type:text"`
	City                    string    `gorm:"type:varchar(120);not null"`
	State                   string    `gorm:"type:varchar(120);not null"`
	Country                 string    `gorm:"type:varchar(2);not null;default:'MX'"`
	CenterLongitude         float64   `gorm:"type:decimal(11,8);not null"`
	CenterLatitude          float64   `gorm:"type:decimal(10,8);not null"`
	MaxDeliveryRadiusMeters int       `gorm:"not null;default:5000"`
	MinOrderAmount          float64   `gorm:"type:decimal(10,2);not null;default:0"`
	IsActive                bool      `gorm:"not null;default:true;index"`
	IsDefault               bool      `gorm:"not null;default:false"`
	CoverageAreaGeoJSON     *string   `gorm:"column:coverage_area_geojson;->"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceRegionModel) TableName() string {
	return "service_regions"
}
