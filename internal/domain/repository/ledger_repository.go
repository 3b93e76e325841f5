package repository

import (
	"context"

	"stamply/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLedgerEntryNotFound is returned when no matching ledger entry exists.
var ErrLedgerEntryNotFound = errors.New("ledger entry not found")

// LedgerRepository defines the interface for the append-only points ledger.
// Entries are immutable; there is deliberately no update or delete operation.
type LedgerRepository interface {
	// CreateEntry appends a new immutable ledger entry.
	CreateEntry(ctx context.Context, entry *entity.LedgerEntry) error

	// FindEntriesByUserAndStore retrieves entries for a (user, store) pair
	// ordered by creation time descending, so history reads stay bounded as
	// the ledger grows. A non-positive limit returns all entries.
	FindEntriesByUserAndStore(ctx context.Context, userID, storeID uuid.UUID, limit, offset int) ([]*entity.LedgerEntry, error)

	// SumDeltasByUserAndStore folds the ledger for a (user, store) pair and
	// returns the current balance. This is the source of truth; the cached
	// counter is only a read optimization.
	SumDeltasByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (int64, error)

	// FindLastScanEntryByUser retrieves the user's most recent scan-type
	// entry across all stores, used for the implied-travel-speed heuristic.
	// Returns ErrLedgerEntryNotFound when the user has no scan entries.
	FindLastScanEntryByUser(ctx context.Context, userID uuid.UUID) (*entity.LedgerEntry, error)

	// LockBalance loads the denormalized balance row for a (user, store)
	// pair with a row lock, creating it at zero if absent. Must be called
	// inside a transaction; the lock serializes concurrent appends for the
	// pair.
	LockBalance(ctx context.Context, userID, storeID uuid.UUID) (*entity.PointBalance, error)

	// UpdateBalance persists the cached balance row. Must run in the same
	// transaction as the ledger append it reflects.
	UpdateBalance(ctx context.Context, balance *entity.PointBalance) error
}
