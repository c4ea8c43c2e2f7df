package usecase

import (
	"context"

	"localia/internal/domain/entity"
	"localia/internal/domain/repository"

	"github.com/google/uuid"
)

// ClientUsecase covers read-only client administration.
type ClientUsecase interface {
	ListClients(ctx context.Context, filter repository.ClientFilter) (*Paged[*entity.Client], error)
	GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error)
}

// CourierUsecase covers courier administration.
type CourierUsecase interface {
	ListCouriers(ctx context.Context, filter repository.CourierFilter) (*Paged[*entity.Courier], error)
	GetCourier(ctx context.Context, id uuid.UUID) (*entity.Courier, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*entity.Courier, error)
}
