package usecase

import (
	"context"

	"localia/internal/domain/entity"
	"localia/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateBusinessInput carries everything submitted during onboarding. The
// address block is optional; when any address field is present an address
// row is created alongside the business.
type CreateBusinessInput struct {
	Name             string   `json:"name"`
	LegalName        string   `json:"legal_name,omitempty"`
	Description      string   `json:"description,omitempty"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Email            string   `json:"email,omitempty"`
	WebsiteURL       string   `json:"website_url,omitempty"`
	Longitude        float64  `json:"longitude"`
	Latitude         float64  `json:"latitude"`
	AddressLine1     string   `json:"address_line1,omitempty"`
	AddressLine2     string   `json:"address_line2,omitempty"`
	City             string   `json:"city,omitempty"`
	State            string   `json:"state,omitempty"`
	PostalCode       string   `json:"postal_code,omitempty"`
	Country          string   `json:"country,omitempty"`
	UsesEcoPackaging bool     `json:"uses_eco_packaging,omitempty"`
}

// HasAddress reports whether any address field was supplied.
func (in *CreateBusinessInput) HasAddress() bool {
	return in.AddressLine1 != "" || in.City != "" || in.PostalCode != ""
}

// BusinessUsecase covers business administration and onboarding.
type BusinessUsecase interface {
	// CreateBusiness runs the onboarding gate: one business per owner,
	// coordinates inside the active service region, then an atomic
	// address+business write.
	CreateBusiness(ctx context.Context, ownerID uuid.UUID, input *CreateBusinessInput) (*entity.Business, error)

	// MyBusiness returns the caller's business.
	MyBusiness(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error)

	// ListBusinesses pages through businesses with owner enrichment.
	ListBusinesses(ctx context.Context, filter repository.BusinessFilter) (*Paged[*entity.Business], error)

	// GetBusiness retrieves one business by ID.
	GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// UpdateStatus activates or deactivates a business.
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*entity.Business, error)

	// Statistics aggregates counts over all businesses.
	Statistics(ctx context.Context) (*entity.BusinessStatistics, error)
}
