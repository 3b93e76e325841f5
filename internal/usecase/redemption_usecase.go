package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RedeemInput represents a reward redemption request.
type RedeemInput struct {
	UserID      uuid.UUID `json:"user_id"`
	StoreID     uuid.UUID `json:"store_id"`
	RewardTitle string    `json:"reward_title"`
	PointsCost  int64     `json:"points_cost"`
}

// RedeemResult describes a completed redemption.
type RedeemResult struct {
	LedgerEntryID uuid.UUID `json:"ledger_entry_id"`
	PointsSpent   int64     `json:"points_spent"`
	Balance       int64     `json:"balance"` // Balance at the store after the redemption.
}

// RedemptionUsecase defines the interface for spending points on rewards.
type RedemptionUsecase interface {
	// Redeem atomically checks the user's balance at the store and appends a
	// negative ledger entry. Concurrent redemptions against the same balance
	// serialize; the engine never lets a balance go negative.
	Redeem(ctx context.Context, input *RedeemInput) (*RedeemResult, error)
}
