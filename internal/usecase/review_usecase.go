package usecase

import (
	"context"

	"stamply/internal/domain/entity"

	"github.com/google/uuid"
)

// PendingScanListInput filters the pending review queue.
type PendingScanListInput struct {
	StoreID *uuid.UUID            `json:"store_id,omitempty"`
	Status  *entity.PendingStatus `json:"status,omitempty"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
}

// SuspiciousScanListInput filters the suspicious review queue.
type SuspiciousScanListInput struct {
	StoreID *uuid.UUID               `json:"store_id,omitempty"`
	Status  *entity.SuspiciousStatus `json:"status,omitempty"`
	Limit   int                      `json:"limit"`
	Offset  int                      `json:"offset"`
}

// ApproveResult describes the outcome of approving a pending scan.
type ApproveResult struct {
	Changed       bool       `json:"changed"` // False when the scan was already approved.
	LedgerEntryID *uuid.UUID `json:"ledger_entry_id,omitempty"`
	PointsEarned  int64      `json:"points_earned"`
}

// ReviewUsecase defines the interface for working the pending and suspicious
// review queues.
type ReviewUsecase interface {
	// Pending queue
	ListPendingScans(ctx context.Context, input *PendingScanListInput) ([]*entity.PendingScan, error)
	ApprovePendingScan(ctx context.Context, id uuid.UUID) (*ApproveResult, error)
	RejectPendingScan(ctx context.Context, id uuid.UUID) error

	// Suspicious queue
	ListSuspiciousScans(ctx context.Context, input *SuspiciousScanListInput) ([]*entity.SuspiciousScan, error)
	MarkSuspiciousScanReviewed(ctx context.Context, id uuid.UUID) error
	DismissSuspiciousScan(ctx context.Context, id uuid.UUID) error
	BlockSuspiciousScan(ctx context.Context, id uuid.UUID) error
}
