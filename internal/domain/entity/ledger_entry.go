package entity

import (
	"time"

	"github.com/google/uuid"
)

// EntryType classifies a ledger entry by the operation that produced it.
type EntryType string

const (
	// EntryTypeScan is a credit from an accepted (or approved) QR scan.
	EntryTypeScan EntryType = "scan"
	// EntryTypeRedeem is a debit from a reward redemption.
	EntryTypeRedeem EntryType = "redeem"
	// EntryTypeBonus is an operator-issued promotional credit.
	EntryTypeBonus EntryType = "bonus"
	// EntryTypeAdjustment is an operator-issued manual correction.
	EntryTypeAdjustment EntryType = "adjustment"
)

// String returns the string representation of the EntryType.
func (t EntryType) String() string {
	return string(t)
}

// IsValid checks if the EntryType is a valid value.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeScan, EntryTypeRedeem, EntryTypeBonus, EntryTypeAdjustment:
		return true
	default:
		return false
	}
}

// LedgerEntry is one append-only point movement for a (user, store) pair.
// Entries are immutable once written; the current balance of a pair is the
// sum of its deltas, never a separately mutable field.
type LedgerEntry struct {
	ID          uuid.UUID `json:"id"`           // The unique identifier of the entry.
	UserID      uuid.UUID `json:"user_id"`      // The user whose balance this entry moves.
	StoreID     uuid.UUID `json:"store_id"`     // The store the points belong to.
	Delta       int64     `json:"delta"`        // Signed point change; negative for redemptions.
	Type        EntryType `json:"type"`         // Operation that produced the entry.
	RewardTitle string    `json:"reward_title"` // Reward name for redeem entries, empty otherwise.
	Note        string    `json:"note"`         // Free-text operator or system note.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this entry was appended.
}

// PointBalance is the denormalized running total for a (user, store) pair.
// It is a rebuildable read cache updated in the same transaction as every
// ledger append, and doubles as the per-pair row lock for redemptions. The
// ledger fold remains the source of truth.
type PointBalance struct {
	UserID    uuid.UUID `json:"user_id"`
	StoreID   uuid.UUID `json:"store_id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}
