package impl

import (
	"context"

	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	"localia/internal/domain/repository"
	"localia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates the client administration service.
func NewClientService(clientRepo repository.ClientRepository) usecase.ClientUsecase {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) ListClients(ctx context.Context, filter repository.ClientFilter) (*usecase.Paged[*entity.Client], error) {
	clients, total, err := s.clientRepo.FindClients(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list clients")
	}

	return &usecase.Paged[*entity.Client]{
		Data:       clients,
		Pagination: usecase.NewPageInfo(filter.Page, filter.Limit, total),
	}, nil
}

func (s *clientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find client")
	}

	return client, nil
}

type courierService struct {
	courierRepo repository.CourierRepository
}

// NewCourierService creates the courier administration service.
func NewCourierService(courierRepo repository.CourierRepository) usecase.CourierUsecase {
	return &courierService{courierRepo: courierRepo}
}

func (s *courierService) ListCouriers(ctx context.Context, filter repository.CourierFilter) (*usecase.Paged[*entity.Courier], error) {
	couriers, total, err := s.courierRepo.FindCouriers(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list couriers")
	}

	return &usecase.Paged[*entity.Courier]{
		Data:       couriers,
		Pagination: usecase.NewPageInfo(filter.Page, filter.Limit, total),
	}, nil
}

func (s *courierService) GetCourier(ctx context.Context, id uuid.UUID) (*entity.Courier, error) {
	courier, err := s.courierRepo.FindCourierByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourierNotFound) {
			return nil, domainerrors.ErrCourierNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find courier")
	}

	return courier, nil
}

func (s *courierService) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*entity.Courier, error) {
	courier, err := s.courierRepo.UpdateStatus(ctx, id, isActive)
	if err != nil {
		if errors.Is(err, repository.ErrCourierNotFound) {
			return nil, domainerrors.ErrCourierNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "update courier status")
	}

	return courier, nil
}
