package postgres

import (
	"context"

	"localia/internal/domain/entity"
	"localia/internal/domain/repository"
	"localia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// clientRepository implements the repository.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// FindClients lists client profiles with pagination and the unpaginated total.
func (repo *clientRepository) FindClients(ctx context.Context, filter repository.ClientFilter) ([]*entity.Client, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ClientModel{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.PhoneVerified != nil {
		query = query.Where("phone_verified = ?", *filter.PhoneVerified)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count clients")
	}

	var clientModels []*model.ClientModel
	err := query.
		Order(orderClause(filter.SortBy, filter.SortOrder, clientSortColumns, "created_at")).
		Offset(pageOffset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&clientModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to find clients")
	}

	clients := make([]*entity.Client, 0, len(clientModels))
	for _, clientM := range clientModels {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, total, nil
}

// FindClientByID retrieves a client profile by its unique ID.
func (repo *clientRepository) FindClientByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return toClientDomain(&clientM), nil
}

var clientSortColumns = map[string]string{
	"first_name":   "first_name",
	"last_name":    "last_name",
	"total_orders": "total_orders",
	"created_at":   "created_at",
}

// toClientDomain converts a GORM ClientModel to a domain Client entity.
func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	return &entity.Client{
		ID:            data.ID,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Email:         data.Email,
		Phone:         data.Phone,
		PhoneVerified: data.PhoneVerified,
		IsActive:      data.IsActive,
		TotalOrders:   data.TotalOrders,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
