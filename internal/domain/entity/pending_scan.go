package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidTransition is returned when a review transition is applied to a
// record that already reached a different terminal state.
var ErrInvalidTransition = errors.New("invalid review state transition")

// PendingStatus is the review state of a PendingScan.
type PendingStatus string

const (
	// PendingStatusPending awaits an operator decision.
	PendingStatusPending PendingStatus = "pending"
	// PendingStatusApproved credits the scan; terminal.
	PendingStatusApproved PendingStatus = "approved"
	// PendingStatusRejected discards the scan without ledger effect; terminal.
	PendingStatusRejected PendingStatus = "rejected"
)

// String returns the string representation of the PendingStatus.
func (s PendingStatus) String() string {
	return string(s)
}

// IsValid checks if the PendingStatus is a valid value.
func (s PendingStatus) IsValid() bool {
	switch s {
	case PendingStatusPending, PendingStatusApproved, PendingStatusRejected:
		return true
	default:
		return false
	}
}

// PendingScan holds a scan whose distance fell into the ambiguous band
// between the acceptance and pending radius. Core facts (coordinates,
// distance) never change after creation; only status and reviewed_at move.
type PendingScan struct {
	ID                uuid.UUID     `json:"id"`
	UserID            uuid.UUID     `json:"user_id"`
	StoreID           uuid.UUID     `json:"store_id"`
	DeviceFingerprint string        `json:"device_fingerprint"`
	Latitude          float64       `json:"latitude"`   // Reported latitude at scan time.
	Longitude         float64       `json:"longitude"`  // Reported longitude at scan time.
	DistanceM         float64       `json:"distance_m"` // Computed distance to the store coordinate.
	Status            PendingStatus `json:"status"`
	OccurredAt        time.Time     `json:"occurred_at"`
	ReviewedAt        *time.Time    `json:"reviewed_at"`
	CreatedAt         time.Time     `json:"created_at"`
}

// Approve moves the record to approved. Reapplying on an already-approved
// record reports changed=false so duplicate operator clicks never double
// credit; approving a rejected record is an invalid transition.
func (p *PendingScan) Approve(now time.Time) (changed bool, err error) {
	switch p.Status {
	case PendingStatusApproved:
		return false, nil
	case PendingStatusRejected:
		return false, ErrInvalidTransition
	case PendingStatusPending:
		p.Status = PendingStatusApproved
		p.ReviewedAt = &now

		return true, nil
	default:
		return false, errors.Errorf("unknown pending status: %s", p.Status)
	}
}

// Reject moves the record to rejected with the same idempotency contract as
// Approve.
func (p *PendingScan) Reject(now time.Time) (changed bool, err error) {
	switch p.Status {
	case PendingStatusRejected:
		return false, nil
	case PendingStatusApproved:
		return false, ErrInvalidTransition
	case PendingStatusPending:
		p.Status = PendingStatusRejected
		p.ReviewedAt = &now

		return true, nil
	default:
		return false, errors.Errorf("unknown pending status: %s", p.Status)
	}
}
