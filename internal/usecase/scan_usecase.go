// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"stamply/internal/domain/entity"

	"github.com/google/uuid"
)

// ScanOutcome identifies which path a processed scan took.
type ScanOutcome string

const (
	// ScanOutcomeAccepted means points were credited immediately.
	ScanOutcomeAccepted ScanOutcome = "accepted"
	// ScanOutcomePending means the scan was parked for manual review.
	ScanOutcomePending ScanOutcome = "pending"
	// ScanOutcomeSuspicious means the scan was flagged and no points moved.
	ScanOutcomeSuspicious ScanOutcome = "suspicious"
	// ScanOutcomeDeduped means the user already earned at this store today.
	ScanOutcomeDeduped ScanOutcome = "deduped"
)

// ScanInput represents a single QR scan reported by a customer device.
type ScanInput struct {
	UserID            uuid.UUID `json:"user_id"`
	StoreID           uuid.UUID `json:"store_id"`
	DeviceFingerprint string    `json:"device_fingerprint"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// ScanResult describes the decision taken for a scan.
type ScanResult struct {
	Outcome       ScanOutcome `json:"outcome"`
	DistanceM     float64     `json:"distance_m"`
	PointsEarned  int64       `json:"points_earned"`            // Zero unless Outcome is accepted.
	LedgerEntryID *uuid.UUID  `json:"ledger_entry_id,omitempty"`
	RecordID      *uuid.UUID  `json:"record_id,omitempty"` // Pending or suspicious record, when one was created.
	Reason        string      `json:"reason,omitempty"`    // Human-readable cause for pending/suspicious outcomes.
}

// ScanUsecase defines the interface for validating scans and crediting points.
type ScanUsecase interface {
	// ProcessScan validates a reported scan and routes it to exactly one of
	// the accepted, pending, suspicious or deduped outcomes.
	ProcessScan(ctx context.Context, input *ScanInput) (*ScanResult, error)

	// ResolveScanTarget parses a QR payload into the store it identifies.
	ResolveScanTarget(ctx context.Context, qrData string) (*entity.Store, error)
}
