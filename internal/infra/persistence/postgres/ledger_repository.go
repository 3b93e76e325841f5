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
	"gorm.io/gorm/clause"
)

// ledgerRepository implements the repository.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// CreateEntry appends a new immutable ledger entry.
func (repo *ledgerRepository) CreateEntry(ctx context.Context, entry *entity.LedgerEntry) error {
	entryM := fromLedgerEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return errors.Wrap(err, "failed to create ledger entry")
	}

	// Propagate the DB-generated ID and timestamp back to the caller.
	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindEntriesByUserAndStore retrieves entries for a (user, store) pair,
// newest first, with the paging pushed into the query.
func (repo *ledgerRepository) FindEntriesByUserAndStore(ctx context.Context, userID, storeID uuid.UUID, limit, offset int) ([]*entity.LedgerEntry, error) {
	var entryModels []*model.LedgerEntryModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ledger entries")
	}

	entries := make([]*entity.LedgerEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toLedgerEntryDomain(entryM))
	}

	return entries, nil
}

// SumDeltasByUserAndStore folds the ledger for a (user, store) pair.
func (repo *ledgerRepository) SumDeltasByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (int64, error) {
	var sum int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		Select("COALESCE(SUM(delta), 0)").
		Scan(&sum).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum ledger deltas")
	}

	return sum, nil
}

// FindLastScanEntryByUser retrieves the user's most recent scan-type entry
// across all stores.
func (repo *ledgerRepository) FindLastScanEntryByUser(ctx context.Context, userID uuid.UUID) (*entity.LedgerEntry, error) {
	var entryM model.LedgerEntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, entity.EntryTypeScan.String()).
		Order("created_at DESC").
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLedgerEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find last scan entry")
	}

	return toLedgerEntryDomain(&entryM), nil
}

// LockBalance loads the balance row for a (user, store) pair with FOR UPDATE,
// creating it at zero if absent. Must run inside a transaction.
func (repo *ledgerRepository) LockBalance(ctx context.Context, userID, storeID uuid.UUID) (*entity.PointBalance, error) {
	var balanceM model.PointBalanceModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&balanceM).Error
	if err == nil {
		return toPointBalanceDomain(&balanceM), nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to lock balance row")
	}

	// First ledger activity for this pair: seed the row at zero. A
	// concurrent seeder may win the insert race; fall back to locking the
	// winner's row.
	balanceM = model.PointBalanceModel{
		UserID:  userID,
		StoreID: storeID,
		Balance: 0,
	}
	if createErr := repo.db.WithContext(ctx).Create(&balanceM).Error; createErr != nil {
		if !isUniqueConstraintViolation(createErr) {
			return nil, errors.Wrap(createErr, "failed to seed balance row")
		}

		if lockErr := repo.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND store_id = ?", userID, storeID).
			First(&balanceM).Error; lockErr != nil {
			return nil, errors.Wrap(lockErr, "failed to lock balance row after seed race")
		}
	}

	return toPointBalanceDomain(&balanceM), nil
}

// UpdateBalance persists the cached balance row. Must run in the same
// transaction as the ledger append it reflects.
func (repo *ledgerRepository) UpdateBalance(ctx context.Context, balance *entity.PointBalance) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PointBalanceModel{}).
		Where("user_id = ? AND store_id = ?", balance.UserID, balance.StoreID).
		Updates(map[string]any{
			"balance":    balance.Balance,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update balance row")
	}

	if result.RowsAffected == 0 {
		return errors.New("balance row missing during update")
	}

	return nil
}

// --- Mapper Functions ---

// toLedgerEntryDomain converts a GORM LedgerEntryModel to a domain LedgerEntry entity.
func toLedgerEntryDomain(data *model.LedgerEntryModel) *entity.LedgerEntry {
	if data == nil {
		return nil
	}

	return &entity.LedgerEntry{
		ID:          data.ID,
		UserID:      data.UserID,
		StoreID:     data.StoreID,
		Delta:       data.Delta,
		Type:        entity.EntryType(data.Type),
		RewardTitle: data.RewardTitle,
		Note:        data.Note,
		CreatedAt:   data.CreatedAt,
	}
}

// fromLedgerEntryDomain converts a domain LedgerEntry entity to a GORM LedgerEntryModel.
func fromLedgerEntryDomain(entry *entity.LedgerEntry) *model.LedgerEntryModel {
	if entry == nil {
		return nil
	}

	return &model.LedgerEntryModel{
		ID:          entry.ID,
		UserID:      entry.UserID,
		StoreID:     entry.StoreID,
		Delta:       entry.Delta,
		Type:        entry.Type.String(),
		RewardTitle: entry.RewardTitle,
		Note:        entry.Note,
		CreatedAt:   entry.CreatedAt,
	}
}

// toPointBalanceDomain converts a GORM PointBalanceModel to a domain PointBalance entity.
func toPointBalanceDomain(data *model.PointBalanceModel) *entity.PointBalance {
	if data == nil {
		return nil
	}

	return &entity.PointBalance{
		UserID:    data.UserID,
		StoreID:   data.StoreID,
		Balance:   data.Balance,
		UpdatedAt: data.UpdatedAt,
	}
}
