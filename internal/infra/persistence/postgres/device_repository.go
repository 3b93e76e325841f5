package postgres

import (
	"context"
	"time"

	"stamply/internal/domain/entity"
	"stamply/internal/domain/repository"
	"stamply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindDeviceByFingerprint retrieves a device by its fingerprint hash.
func (repo *deviceRepository) FindDeviceByFingerprint(ctx context.Context, fingerprint string) (*entity.StoreDevice, error) {
	var deviceM model.StoreDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("fingerprint = ?", fingerprint).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by fingerprint")
	}

	return toDeviceDomain(&deviceM), nil
}

// TouchDevice records the most recent accepted scan on a device.
func (repo *deviceRepository) TouchDevice(ctx context.Context, id uuid.UUID, userID uuid.UUID, usedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_user_id": userID,
			"last_used_at": usedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM StoreDeviceModel to a domain StoreDevice entity.
func toDeviceDomain(data *model.StoreDeviceModel) *entity.StoreDevice {
	if data == nil {
		return nil
	}

	return &entity.StoreDevice{
		ID:          data.ID,
		StoreID:     data.StoreID,
		Fingerprint: data.Fingerprint,
		LastUserID:  data.LastUserID,
		LastUsedAt:  data.LastUsedAt,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
