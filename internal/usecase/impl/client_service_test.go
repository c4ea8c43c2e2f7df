package impl

import (
	"context"
	"testing"

	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	mockRepo "localia/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientService_GetClient(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns the client profile", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		expected := &entity.Client{ID: id, FirstName: "María", LastName: "García"}
		clientRepo := mockRepo.NewMockClientRepository(t)
		clientRepo.EXPECT().FindClientByID(ctx, id).Return(expected, nil)

		service := NewClientService(clientRepo)

		client, err := service.GetClient(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, expected, client)
	})

	t.Run("maps a missing profile to the domain error", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		clientRepo := mockRepo.NewMockClientRepository(t)
		clientRepo.EXPECT().FindClientByID(ctx, id).Return(nil, repository.ErrClientNotFound)

		service := NewClientService(clientRepo)

		client, err := service.GetClient(ctx, id)

		require.ErrorIs(t, err, domainerrors.ErrClientNotFound)
		assert.Nil(t, client)
	})
}

func TestClientService_ListClients(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	clientRepo := mockRepo.NewMockClientRepository(t)
	filter := repository.ClientFilter{Page: 1, Limit: 20}
	clients := []*entity.Client{{ID: uuid.New(), FirstName: "María", LastName: "García"}}
	clientRepo.EXPECT().FindClients(ctx, filter).Return(clients, 1, nil)

	service := NewClientService(clientRepo)

	page, err := service.ListClients(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, int64(1), page.Pagination.Total)
}

func TestCourierService_UpdateStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("toggles the courier", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		updated := &entity.Courier{ID: id, IsActive: false}
		courierRepo := mockRepo.NewMockCourierRepository(t)
		courierRepo.EXPECT().UpdateStatus(ctx, id, false).Return(updated, nil)

		service := NewCourierService(courierRepo)

		courier, err := service.UpdateStatus(ctx, id, false)

		require.NoError(t, err)
		assert.False(t, courier.IsActive)
	})

	t.Run("maps a missing courier to the domain error", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		courierRepo := mockRepo.NewMockCourierRepository(t)
		courierRepo.EXPECT().UpdateStatus(ctx, id, true).Return(nil, repository.ErrCourierNotFound)

		service := NewCourierService(courierRepo)

		courier, err := service.UpdateStatus(ctx, id, true)

		require.ErrorIs(t, err, domainerrors.ErrCourierNotFound)
		assert.Nil(t, courier)
	})
}
