package repository

import (
	"context"

	"localia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrClientNotFound is returned when a client profile is not found.
var ErrClientNotFound = errors.New("client not found")

// ErrCourierNotFound is returned when a courier is not found.
var ErrCourierNotFound = errors.New("courier not found")

// ClientFilter narrows and orders client listings.
type ClientFilter struct {
	Page          int
	Limit         int
	IsActive      *bool
	PhoneVerified *bool
	Search        string
	SortBy        string
	SortOrder     string
}

// ClientRepository defines read access to client profiles.
type ClientRepository interface {
	FindClients(ctx context.Context, filter ClientFilter) ([]*entity.Client, int64, error)
	FindClientByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
}

// CourierFilter narrows and orders courier listings.
type CourierFilter struct {
	Page        int
	Limit       int
	IsAvailable *bool
	IsActive    *bool
	IsVerified  *bool
	IsGreen     *bool
	VehicleType string
	Search      string
	SortBy      string
	SortOrder   string
}

// CourierRepository defines database operations for couriers.
type CourierRepository interface {
	FindCouriers(ctx context.Context, filter CourierFilter) ([]*entity.Courier, int64, error)
	FindCourierByID(ctx context.Context, id uuid.UUID) (*entity.Courier, error)

	// UpdateStatus toggles the is_active flag and returns the updated row.
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*entity.Courier, error)
}
