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

// suspiciousScanRepository implements the repository.SuspiciousScanRepository interface.
type suspiciousScanRepository struct {
	db *gorm.DB
}

// NewSuspiciousScanRepository is the constructor for suspiciousScanRepository.
func NewSuspiciousScanRepository(db *gorm.DB) repository.SuspiciousScanRepository {
	return &suspiciousScanRepository{
		db: db,
	}
}

// CreateSuspiciousScan persists a new suspicious scan record.
func (repo *suspiciousScanRepository) CreateSuspiciousScan(ctx context.Context, scan *entity.SuspiciousScan) error {
	scanM := fromSuspiciousScanDomain(scan)

	if err := repo.db.WithContext(ctx).Create(scanM).Error; err != nil {
		return errors.Wrap(err, "failed to create suspicious scan")
	}

	scan.ID = scanM.ID
	scan.CreatedAt = scanM.CreatedAt

	return nil
}

// FindSuspiciousScanByID retrieves a suspicious scan by its unique ID.
func (repo *suspiciousScanRepository) FindSuspiciousScanByID(ctx context.Context, id uuid.UUID) (*entity.SuspiciousScan, error) {
	return repo.findSuspiciousScan(ctx, id, false)
}

// FindSuspiciousScanByIDForUpdate retrieves a suspicious scan with a row
// lock. Must be called inside a transaction.
func (repo *suspiciousScanRepository) FindSuspiciousScanByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.SuspiciousScan, error) {
	return repo.findSuspiciousScan(ctx, id, true)
}

func (repo *suspiciousScanRepository) findSuspiciousScan(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.SuspiciousScan, error) {
	query := repo.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var scanM model.SuspiciousScanModel
	if err := query.Where("id = ?", id).First(&scanM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSuspiciousScanNotFound
		}

		return nil, errors.Wrap(err, "failed to find suspicious scan")
	}

	return toSuspiciousScanDomain(&scanM), nil
}

// ListSuspiciousScans retrieves suspicious scans matching the filter, newest first.
func (repo *suspiciousScanRepository) ListSuspiciousScans(ctx context.Context, filter repository.SuspiciousScanFilter) ([]*entity.SuspiciousScan, error) {
	query := repo.db.WithContext(ctx).Model(&model.SuspiciousScanModel{})

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

	var scanModels []*model.SuspiciousScanModel
	if err := query.Order("created_at DESC, id DESC").Find(&scanModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list suspicious scans")
	}

	scans := make([]*entity.SuspiciousScan, 0, len(scanModels))
	for _, scanM := range scanModels {
		scans = append(scans, toSuspiciousScanDomain(scanM))
	}

	return scans, nil
}

// UpdateSuspiciousScanStatus persists a status transition and its review timestamp.
func (repo *suspiciousScanRepository) UpdateSuspiciousScanStatus(ctx context.Context, scan *entity.SuspiciousScan) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SuspiciousScanModel{}).
		Where("id = ?", scan.ID).
		Updates(map[string]any{
			"status":      scan.Status.String(),
			"reviewed_at": scan.ReviewedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update suspicious scan status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSuspiciousScanNotFound
	}

	return nil
}

// HasBlockedScan reports whether the user or the device fingerprint appears
// on any blocked suspicious scan.
func (repo *suspiciousScanRepository) HasBlockedScan(ctx context.Context, userID uuid.UUID, fingerprint string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SuspiciousScanModel{}).
		Where("status = ?", entity.SuspiciousStatusBlocked.String()).
		Where("user_id = ? OR device_fingerprint = ?", userID, fingerprint).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check deny-list")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toSuspiciousScanDomain converts a GORM SuspiciousScanModel to a domain SuspiciousScan entity.
func toSuspiciousScanDomain(data *model.SuspiciousScanModel) *entity.SuspiciousScan {
	if data == nil {
		return nil
	}

	return &entity.SuspiciousScan{
		ID:                data.ID,
		UserID:            data.UserID,
		StoreID:           data.StoreID,
		DeviceFingerprint: data.DeviceFingerprint,
		ScanLatitude:      data.ScanLatitude,
		ScanLongitude:     data.ScanLongitude,
		StoreLatitude:     data.StoreLatitude,
		StoreLongitude:    data.StoreLongitude,
		DistanceM:         data.DistanceM,
		Reason:            data.Reason,
		Status:            entity.SuspiciousStatus(data.Status),
		OccurredAt:        data.OccurredAt,
		ReviewedAt:        data.ReviewedAt,
		CreatedAt:         data.CreatedAt,
	}
}

// fromSuspiciousScanDomain converts a domain SuspiciousScan entity to a GORM SuspiciousScanModel.
func fromSuspiciousScanDomain(scan *entity.SuspiciousScan) *model.SuspiciousScanModel {
	if scan == nil {
		return nil
	}

	return &model.SuspiciousScanModel{
		ID:                scan.ID,
		UserID:            scan.UserID,
		StoreID:           scan.StoreID,
		DeviceFingerprint: scan.DeviceFingerprint,
		ScanLatitude:      scan.ScanLatitude,
		ScanLongitude:     scan.ScanLongitude,
		StoreLatitude:     scan.StoreLatitude,
		StoreLongitude:    scan.StoreLongitude,
		DistanceM:         scan.DistanceM,
		Reason:            scan.Reason,
		Status:            scan.Status.String(),
		OccurredAt:        scan.OccurredAt,
		ReviewedAt:        scan.ReviewedAt,
	}
}
