package impl

import (
	"context"
	"testing"

	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	mockRepo "localia/internal/mocks/repository"
	"localia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// insideRegionUsecase wires a region service whose mocks accept any point,
// so business tests exercise the onboarding gate without repeating the
// containment fixtures.
func insideRegionUsecase(t *testing.T, ctx context.Context) usecase.RegionUsecase {
	t.Helper()

	regionRepo := mockRepo.NewMockRegionRepository(t)
	region := newCDMXRegion()
	regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(region, nil).Maybe()
	regionRepo.EXPECT().PointInActiveRegionFunction(ctx, mock.AnythingOfType("float64"), mock.AnythingOfType("float64")).Return(true, nil).Maybe()

	return NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())
}

func newOnboardingInput() *usecase.CreateBusinessInput {
	return &usecase.CreateBusinessInput{
		Name:         "Panadería La Espiga",
		Category:     "bakery",
		Phone:        "+52 55 1234 5678",
		Longitude:    -99.16,
		Latitude:     19.42,
		AddressLine1: "Av. Álvaro Obregón 120",
		City:         "Ciudad de México",
		State:        "CDMX",
		PostalCode:   "06700",
		Country:      "MX",
	}
}

func TestBusinessService_CreateBusiness(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates the address and business in one transaction", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		businessRepo.EXPECT().FindBusinessByOwner(ctx, ownerID).Return(nil, repository.ErrBusinessNotFound)

		txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		txAddressRepo := mockRepo.NewMockAddressRepository(t)

		var createdAddress *entity.Address
		txAddressRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).Run(func(_ context.Context, address *entity.Address) {
			createdAddress = address
		}).Return(nil)

		var createdBusiness *entity.Business
		txBusinessRepo.EXPECT().CreateBusiness(ctx, mock.AnythingOfType("*entity.Business")).Run(func(_ context.Context, business *entity.Business) {
			createdBusiness = business
		}).Return(nil)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
		factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)

		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).RunAndReturn(
			func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
				return fn(factory)
			})

		service := NewBusinessService(txManager, businessRepo, insideRegionUsecase(t, ctx), newDiscardLogger())

		business, err := service.CreateBusiness(ctx, ownerID, newOnboardingInput())

		require.NoError(t, err)
		require.NotNil(t, business)
		assert.Equal(t, ownerID, business.OwnerID)
		assert.True(t, business.IsActive)
		assert.False(t, business.AcceptsOrders)

		require.NotNil(t, createdAddress)
		assert.Equal(t, "Av. Álvaro Obregón 120", createdAddress.Line1)
		require.NotNil(t, createdBusiness)
		require.NotNil(t, createdBusiness.AddressID)
		assert.Equal(t, createdAddress.ID, *createdBusiness.AddressID)
	})

	t.Run("skips the address row when no address was supplied", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		businessRepo.EXPECT().FindBusinessByOwner(ctx, ownerID).Return(nil, repository.ErrBusinessNotFound)

		txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		txBusinessRepo.EXPECT().CreateBusiness(ctx, mock.AnythingOfType("*entity.Business")).Return(nil)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)

		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).RunAndReturn(
			func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
				return fn(factory)
			})

		input := newOnboardingInput()
		input.AddressLine1 = ""
		input.City = ""
		input.PostalCode = ""

		service := NewBusinessService(txManager, businessRepo, insideRegionUsecase(t, ctx), newDiscardLogger())

		business, err := service.CreateBusiness(ctx, ownerID, input)

		require.NoError(t, err)
		assert.Nil(t, business.AddressID)
	})

	t.Run("rejects an owner who already has a business", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		businessRepo.EXPECT().FindBusinessByOwner(ctx, ownerID).Return(&entity.Business{ID: uuid.New(), OwnerID: ownerID}, nil)

		txManager := mockRepo.NewMockTransactionManager(t)

		service := NewBusinessService(txManager, businessRepo, insideRegionUsecase(t, ctx), newDiscardLogger())

		business, err := service.CreateBusiness(ctx, ownerID, newOnboardingInput())

		require.ErrorIs(t, err, domainerrors.ErrBusinessAlreadyExists)
		assert.Nil(t, business)
	})

	t.Run("rejects coordinates outside the active region", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		businessRepo.EXPECT().FindBusinessByOwner(ctx, ownerID).Return(nil, repository.ErrBusinessNotFound)

		regionRepo := mockRepo.NewMockRegionRepository(t)
		region := newCDMXRegion()
		regionRepo.EXPECT().ActiveRegionFromFunction(ctx).Return(region, nil)
		regionRepo.EXPECT().PointInActiveRegionFunction(ctx, mock.AnythingOfType("float64"), mock.AnythingOfType("float64")).Return(false, nil)
		regionUC := NewRegionService(regionRepo, newRegionConfig(true), newDiscardLogger())

		txManager := mockRepo.NewMockTransactionManager(t)

		service := NewBusinessService(txManager, businessRepo, regionUC, newDiscardLogger())

		business, err := service.CreateBusiness(ctx, ownerID, newOnboardingInput())

		require.Error(t, err)
		assert.Nil(t, business)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "LOCATION_OUTSIDE_COVERAGE", appErr.ErrorCode())
	})

	t.Run("maps a concurrent duplicate insert to the conflict error", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		businessRepo.EXPECT().FindBusinessByOwner(ctx, ownerID).Return(nil, repository.ErrBusinessNotFound)

		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).Return(repository.ErrDuplicateBusiness)

		service := NewBusinessService(txManager, businessRepo, insideRegionUsecase(t, ctx), newDiscardLogger())

		business, err := service.CreateBusiness(ctx, ownerID, newOnboardingInput())

		require.ErrorIs(t, err, domainerrors.ErrBusinessAlreadyExists)
		assert.Nil(t, business)
	})
}

func TestBusinessService_MyBusiness(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns the owner's business", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		expected := &entity.Business{ID: uuid.New(), OwnerID: ownerID, Name: "Panadería La Espiga"}
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		businessRepo.EXPECT().FindBusinessByOwner(ctx, ownerID).Return(expected, nil)

		service := NewBusinessService(mockRepo.NewMockTransactionManager(t), businessRepo, insideRegionUsecase(t, ctx), newDiscardLogger())

		business, err := service.MyBusiness(ctx, ownerID)

		require.NoError(t, err)
		assert.Equal(t, expected, business)
	})

	t.Run("maps a missing business to the domain error", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		businessRepo.EXPECT().FindBusinessByOwner(ctx, ownerID).Return(nil, repository.ErrBusinessNotFound)

		service := NewBusinessService(mockRepo.NewMockTransactionManager(t), businessRepo, insideRegionUsecase(t, ctx), newDiscardLogger())

		business, err := service.MyBusiness(ctx, ownerID)

		require.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
		assert.Nil(t, business)
	})
}

func TestBusinessService_UpdateStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := uuid.New()

	updated := &entity.Business{ID: id, IsActive: false}
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	businessRepo.EXPECT().UpdateStatus(ctx, id, false).Return(updated, nil)

	service := NewBusinessService(mockRepo.NewMockTransactionManager(t), businessRepo, insideRegionUsecase(t, ctx), newDiscardLogger())

	business, err := service.UpdateStatus(ctx, id, false)

	require.NoError(t, err)
	assert.False(t, business.IsActive)
}
