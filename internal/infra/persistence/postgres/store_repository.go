package postgres

import (
	"context"

	"stamply/internal/domain/entity"
	"stamply/internal/domain/repository"
	"stamply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// FindStoreByID retrieves a store by its unique ID.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// FindStoresInBounds retrieves active stores inside the given bounding box.
func (repo *storeRepository) FindStoresInBounds(ctx context.Context, minLat, minLng, maxLat, maxLng float64) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("longitude BETWEEN ? AND ?", minLng, maxLng).
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores in bounds")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:                data.ID,
		Name:              data.Name,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		AcceptanceRadiusM: data.AcceptanceRadiusM,
		PendingRadiusM:    data.PendingRadiusM,
		PointValue:        data.PointValue,
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
