package impl

import (
	"context"
	"log/slog"
	"time"

	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	"localia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type businessService struct {
	txManager    repository.TransactionManager
	businessRepo repository.BusinessRepository
	regionUC     usecase.RegionUsecase
	logger       *slog.Logger
}

// NewBusinessService creates the business administration and onboarding
// service.
func NewBusinessService(
	txManager repository.TransactionManager,
	businessRepo repository.BusinessRepository,
	regionUC usecase.RegionUsecase,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		txManager:    txManager,
		businessRepo: businessRepo,
		regionUC:     regionUC,
		logger:       logger,
	}
}

// CreateBusiness gates onboarding: one business per owner, coordinates
// inside the active service region, then the address and business rows
// written inside one transaction so a late failure leaves nothing behind.
func (s *businessService) CreateBusiness(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateBusinessInput) (*entity.Business, error) {
	// Pre-check before any write. The unique index on owner_id backstops
	// this against concurrent requests.
	if _, err := s.businessRepo.FindBusinessByOwner(ctx, ownerID); err == nil {
		return nil, domainerrors.ErrBusinessAlreadyExists
	} else if !errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "check existing business")
	}

	validation, err := s.regionUC.ValidateLocation(ctx, input.Longitude, input.Latitude)
	if err != nil {
		return nil, err
	}
	if !validation.IsValid {
		return nil, domainerrors.ErrLocationOutsideCoverage.WithMessage(validation.Message)
	}
	if validation.Region != nil && validation.Message != "" {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "business location validated",
			slog.String("region", validation.Region.Name),
			slog.String("message", validation.Message),
		)
	}

	now := time.Now()
	business := &entity.Business{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Name:             input.Name,
		LegalName:        input.LegalName,
		Description:      input.Description,
		Category:         input.Category,
		Tags:             input.Tags,
		Phone:            input.Phone,
		Email:            input.Email,
		WebsiteURL:       input.WebsiteURL,
		Longitude:        input.Longitude,
		Latitude:         input.Latitude,
		IsActive:         true,
		AcceptsOrders:    false,
		UsesEcoPackaging: input.UsesEcoPackaging,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.HasAddress() {
			address := &entity.Address{
				ID:         uuid.New(),
				Line1:      input.AddressLine1,
				Line2:      input.AddressLine2,
				City:       input.City,
				State:      input.State,
				PostalCode: input.PostalCode,
				Country:    input.Country,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := repoFactory.NewAddressRepository().CreateAddress(ctx, address); err != nil {
				return errors.Wrap(err, "create business address")
			}
			business.AddressID = &address.ID
		}

		if err := repoFactory.NewBusinessRepository().CreateBusiness(ctx, business); err != nil {
			return errors.Wrap(err, "create business")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateBusiness) {
			return nil, domainerrors.ErrBusinessAlreadyExists
		}
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "persist business")
	}

	return business, nil
}

func (s *businessService) MyBusiness(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	business, err := s.businessRepo.FindBusinessByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find business by owner")
	}

	return business, nil
}

func (s *businessService) ListBusinesses(ctx context.Context, filter repository.BusinessFilter) (*usecase.Paged[*entity.Business], error) {
	businesses, total, err := s.businessRepo.FindBusinesses(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list businesses")
	}

	return &usecase.Paged[*entity.Business]{
		Data:       businesses,
		Pagination: usecase.NewPageInfo(filter.Page, filter.Limit, total),
	}, nil
}

func (s *businessService) GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find business by id")
	}

	return business, nil
}

func (s *businessService) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*entity.Business, error) {
	business, err := s.businessRepo.UpdateStatus(ctx, id, isActive)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "update business status")
	}

	return business, nil
}

func (s *businessService) Statistics(ctx context.Context) (*entity.BusinessStatistics, error) {
	stats, err := s.businessRepo.Statistics(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "business statistics")
	}

	return stats, nil
}
