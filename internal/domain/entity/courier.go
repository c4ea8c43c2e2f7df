package entity

import (
	"time"

	"github.com/google/uuid"
)

// Courier is a delivery driver (repartidor) registered on the platform.
type Courier struct {
	ID                 uuid.UUID `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Phone              string    `json:"phone,omitempty"`
	VehicleType        string    `json:"vehicle_type"`
	VehicleDescription string    `json:"vehicle_description,omitempty"`
	LicensePlate       string    `json:"license_plate,omitempty"`
	IsAvailable        bool      `json:"is_available"`
	IsActive           bool      `json:"is_active"`
	IsVerified         bool      `json:"is_verified"`
	// IsGreen marks couriers using zero-emission vehicles.
	IsGreen   bool      `json:"is_green"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
