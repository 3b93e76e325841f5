package usecase

import (
	"context"

	"stamply/internal/domain/entity"

	"github.com/google/uuid"
)

// ManualEntryInput represents an operator-issued bonus or adjustment.
type ManualEntryInput struct {
	UserID  uuid.UUID        `json:"user_id"`
	StoreID uuid.UUID        `json:"store_id"`
	Delta   int64            `json:"delta"`
	Type    entity.EntryType `json:"type"` // Must be bonus or adjustment.
	Note    string           `json:"note"`
}

// BalanceResult reports a user's balance at a single store.
type BalanceResult struct {
	UserID  uuid.UUID `json:"user_id"`
	StoreID uuid.UUID `json:"store_id"`
	Balance int64     `json:"balance"`
}

// ReconcileResult reports a reconciliation run over one balance.
type ReconcileResult struct {
	UserID   uuid.UUID `json:"user_id"`
	StoreID  uuid.UUID `json:"store_id"`
	Computed int64     `json:"computed"` // Fold over the ledger, the source of truth.
	Counter  int64     `json:"counter"`  // Denormalized counter before the run.
	Repaired bool      `json:"repaired"`
}

// LedgerUsecase defines the interface for reading and maintaining the
// append-only points ledger.
type LedgerUsecase interface {
	// GetBalance folds the user's ledger entries at a store into a balance.
	GetBalance(ctx context.Context, userID, storeID uuid.UUID) (*BalanceResult, error)

	// GetHistory lists the user's ledger entries at a store, newest first.
	GetHistory(ctx context.Context, userID, storeID uuid.UUID, limit, offset int) ([]*entity.LedgerEntry, error)

	// AppendManualEntry appends a bonus or adjustment entry. Negative
	// adjustments are refused when they would take the balance below zero.
	AppendManualEntry(ctx context.Context, input *ManualEntryInput) (*entity.LedgerEntry, error)

	// ReconcileBalance recomputes one denormalized balance counter from the
	// ledger fold and repairs it when they disagree.
	ReconcileBalance(ctx context.Context, userID, storeID uuid.UUID) (*ReconcileResult, error)
}
