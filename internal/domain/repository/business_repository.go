package repository

import (
	"context"

	"localia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when a business is not found.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrDuplicateBusiness is returned when the owner already has a
	// business. Raised both by the pre-check and by the unique index on
	// owner_id, so two concurrent onboardings cannot both succeed.
	ErrDuplicateBusiness = errors.New("owner already has a business")
)

// BusinessFilter narrows and orders business listings.
type BusinessFilter struct {
	Page      int
	Limit     int
	IsActive  *bool
	Category  string
	Search    string
	SortBy    string
	SortOrder string
}

// BusinessRepository defines the interface for business-related database
// operations.
type BusinessRepository interface {
	// CreateBusiness persists a new business row.
	CreateBusiness(ctx context.Context, business *entity.Business) error

	// FindBusinessByID retrieves a business by its unique ID, with the
	// owner profile attached when available.
	FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindBusinessByOwner retrieves the business owned by the given user.
	// Returns ErrBusinessNotFound if the owner has none.
	FindBusinessByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error)

	// FindBusinesses lists businesses with pagination, returning the page
	// and the unpaginated total.
	FindBusinesses(ctx context.Context, filter BusinessFilter) ([]*entity.Business, int64, error)

	// UpdateStatus toggles the is_active flag and returns the updated row.
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*entity.Business, error)

	// Statistics aggregates counts over all businesses.
	Statistics(ctx context.Context) (*entity.BusinessStatistics, error)
}

// AddressRepository persists business street addresses.
type AddressRepository interface {
	// CreateAddress persists a new address row.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)
}
