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

// scanDedupRepository implements the repository.ScanDedupRepository interface.
type scanDedupRepository struct {
	db *gorm.DB
}

// NewScanDedupRepository is the constructor for scanDedupRepository.
func NewScanDedupRepository(db *gorm.DB) repository.ScanDedupRepository {
	return &scanDedupRepository{
		db: db,
	}
}

// CreateMarker inserts the marker for a (user, store, day) key. The unique
// index makes the insert itself the lock: exactly one concurrent scan wins,
// the rest observe ErrDuplicateScan.
func (repo *scanDedupRepository) CreateMarker(ctx context.Context, marker *entity.ScanDedupMarker) error {
	markerM := fromScanDedupMarkerDomain(marker)

	if err := repo.db.WithContext(ctx).Create(markerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateScan
		}

		return errors.Wrap(err, "failed to create scan dedup marker")
	}

	marker.ID = markerM.ID
	marker.CreatedAt = markerM.CreatedAt

	return nil
}

// FindMarker retrieves the marker for a (user, store, day) key.
func (repo *scanDedupRepository) FindMarker(ctx context.Context, userID, storeID uuid.UUID, day string) (*entity.ScanDedupMarker, error) {
	var markerM model.ScanDedupMarkerModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ? AND day = ?", userID, storeID, day).
		First(&markerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMarkerNotFound
		}

		return nil, errors.Wrap(err, "failed to find scan dedup marker")
	}

	return toScanDedupMarkerDomain(&markerM), nil
}

// IncrementDuplicateCount atomically bumps the duplicate counter for an
// existing marker and returns the new count. RETURNING carries the exact
// value this bump produced, so concurrent repeats each observe a distinct
// count and the first repeat of the day is unambiguous.
func (repo *scanDedupRepository) IncrementDuplicateCount(ctx context.Context, userID, storeID uuid.UUID, day string) (int64, error) {
	var markerM model.ScanDedupMarkerModel

	result := repo.db.WithContext(ctx).
		Model(&markerM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "duplicate_count"}}}).
		Where("user_id = ? AND store_id = ? AND day = ?", userID, storeID, day).
		Update("duplicate_count", gorm.Expr("duplicate_count + 1"))

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to increment duplicate count")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrMarkerNotFound
	}

	return markerM.DuplicateCount, nil
}

// --- Mapper Functions ---

// toScanDedupMarkerDomain converts a GORM ScanDedupMarkerModel to a domain ScanDedupMarker entity.
func toScanDedupMarkerDomain(data *model.ScanDedupMarkerModel) *entity.ScanDedupMarker {
	if data == nil {
		return nil
	}

	return &entity.ScanDedupMarker{
		ID:             data.ID,
		UserID:         data.UserID,
		StoreID:        data.StoreID,
		Day:            data.Day,
		DuplicateCount: data.DuplicateCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromScanDedupMarkerDomain converts a domain ScanDedupMarker entity to a GORM ScanDedupMarkerModel.
func fromScanDedupMarkerDomain(marker *entity.ScanDedupMarker) *model.ScanDedupMarkerModel {
	if marker == nil {
		return nil
	}

	return &model.ScanDedupMarkerModel{
		ID:             marker.ID,
		UserID:         marker.UserID,
		StoreID:        marker.StoreID,
		Day:            marker.Day,
		DuplicateCount: marker.DuplicateCount,
	}
}
