package postgres

import (
	"context"

	"stamply/internal/domain/entity"
	"stamply/internal/domain/repository"
	"stamply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pendingScanRepository implements the repository.PendingScanRepository interface.
type pendingScanRepository struct {
	db *gorm.DB
}

// NewPendingScanRepository is the constructor for pendingScanRepository.
func NewPendingScanRepository(db *gorm.DB) repository.PendingScanRepository {
	return &pendingScanRepository{
		db: db,
	}
}

// CreatePendingScan persists a new pending scan record.
func (repo *pendingScanRepository) CreatePendingScan(ctx context.Context, scan *entity.PendingScan) error {
	scanM := fromPendingScanDomain(scan)

	if err := repo.db.WithContext(ctx).Create(scanM).Error; err != nil {
		return errors.Wrap(err, "failed to create pending scan")
	}

	scan.ID = scanM.ID
	scan.CreatedAt = scanM.CreatedAt

	return nil
}

// FindPendingScanByID retrieves a pending scan by its unique ID.
func (repo *pendingScanRepository) FindPendingScanByID(ctx context.Context, id uuid.UUID) (*entity.PendingScan, error) {
	return repo.findPendingScan(ctx, id, false)
}

// FindPendingScanByIDForUpdate retrieves a pending scan with a row lock.
// Must be called inside a transaction.
func (repo *pendingScanRepository) FindPendingScanByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.PendingScan, error) {
	return repo.findPendingScan(ctx, id, true)
}

func (repo *pendingScanRepository) findPendingScan(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.PendingScan, error) {
	query := repo.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var scanM model.PendingScanModel
	if err := query.Where("id = ?", id).First(&scanM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPendingScanNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending scan")
	}

	return toPendingScanDomain(&scanM), nil
}

// ListPendingScans retrieves pending scans matching the filter, newest first.
func (repo *pendingScanRepository) ListPendingScans(ctx context.Context, filter repository.PendingScanFilter) ([]*entity.PendingScan, error) {
	query := repo.db.WithContext(ctx).Model(&model.PendingScanModel{})

	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var scanModels []*model.PendingScanModel
	if err := query.Order("created_at DESC, id DESC").Find(&scanModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending scans")
	}

	scans := make([]*entity.PendingScan, 0, len(scanModels))
	for _, scanM := range scanModels {
		scans = append(scans, toPendingScanDomain(scanM))
	}

	return scans, nil
}

// UpdatePendingScanStatus persists a status transition and its review
// timestamp. Core facts of the record are never rewritten.
func (repo *pendingScanRepository) UpdatePendingScanStatus(ctx context.Context, scan *entity.PendingScan) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PendingScanModel{}).
		Where("id = ?", scan.ID).
		Updates(map[string]any{
			"status":      scan.Status.String(),
			"reviewed_at": scan.ReviewedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update pending scan status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPendingScanNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPendingScanDomain converts a GORM PendingScanModel to a domain PendingScan entity.
func toPendingScanDomain(data *model.PendingScanModel) *entity.PendingScan {
	if data == nil {
		return nil
	}

	return &entity.PendingScan{
		ID:                data.ID,
		UserID:            data.UserID,
		StoreID:           data.StoreID,
		DeviceFingerprint: data.DeviceFingerprint,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		DistanceM:         data.DistanceM,
		Status:            entity.PendingStatus(data.Status),
		OccurredAt:        data.OccurredAt,
		ReviewedAt:        data.ReviewedAt,
		CreatedAt:         data.CreatedAt,
	}
}

// fromPendingScanDomain converts a domain PendingScan entity to a GORM PendingScanModel.
func fromPendingScanDomain(scan *entity.PendingScan) *model.PendingScanModel {
	if scan == nil {
		return nil
	}

	return &model.PendingScanModel{
		ID:                scan.ID,
		UserID:            scan.UserID,
		StoreID:           scan.StoreID,
		DeviceFingerprint: scan.DeviceFingerprint,
		Latitude:          scan.Latitude,
		Longitude:         scan.Longitude,
		DistanceM:         scan.DistanceM,
		Status:            scan.Status.String(),
		OccurredAt:        scan.OccurredAt,
		ReviewedAt:        scan.ReviewedAt,
	}
}
