package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SuspiciousStatus is the review state of a SuspiciousScan.
type SuspiciousStatus string

const (
	// SuspiciousStatusNew awaits triage.
	SuspiciousStatusNew SuspiciousStatus = "new"
	// SuspiciousStatusReviewed has been looked at; not yet closed.
	SuspiciousStatusReviewed SuspiciousStatus = "reviewed"
	// SuspiciousStatusDismissed was investigated and judged harmless; terminal.
	// Dismissal never credits points retroactively; an operator issues a
	// manual adjustment entry if credit is warranted.
	SuspiciousStatusDismissed SuspiciousStatus = "dismissed"
	// SuspiciousStatusBlocked marks the scan as fraudulent; terminal. The
	// user and device fingerprint enter the deny-list consulted on future
	// scans.
	SuspiciousStatusBlocked SuspiciousStatus = "blocked"
)

// String returns the string representation of the SuspiciousStatus.
func (s SuspiciousStatus) String() string {
	return string(s)
}

// IsValid checks if the SuspiciousStatus is a valid value.
func (s SuspiciousStatus) IsValid() bool {
	switch s {
	case SuspiciousStatusNew, SuspiciousStatusReviewed, SuspiciousStatusDismissed, SuspiciousStatusBlocked:
		return true
	default:
		return false
	}
}

// SuspiciousScan holds a scan classified as implausible, either because the
// reported coordinate fell outside the pending radius or because the implied
// travel speed since the previous accepted scan was impossible. It never
// credits points by itself. Both coordinate pairs are retained for forensics.
type SuspiciousScan struct {
	ID                uuid.UUID        `json:"id"`
	UserID            uuid.UUID        `json:"user_id"`
	StoreID           uuid.UUID        `json:"store_id"`
	DeviceFingerprint string           `json:"device_fingerprint"`
	ScanLatitude      float64          `json:"scan_latitude"`  // Coordinate reported by the client.
	ScanLongitude     float64          `json:"scan_longitude"` //
	StoreLatitude     float64          `json:"store_latitude"` // Registered store coordinate at scan time.
	StoreLongitude    float64          `json:"store_longitude"`
	DistanceM         float64          `json:"distance_m"`
	Reason            string           `json:"reason"` // Why the classifier flagged the scan.
	Status            SuspiciousStatus `json:"status"`
	OccurredAt        time.Time        `json:"occurred_at"`
	ReviewedAt        *time.Time       `json:"reviewed_at"`
	CreatedAt         time.Time        `json:"created_at"`
}

// MarkReviewed moves a new record to reviewed. Reapplying is a no-op;
// reviewing a closed record is an invalid transition.
func (s *SuspiciousScan) MarkReviewed(now time.Time) (changed bool, err error) {
	switch s.Status {
	case SuspiciousStatusReviewed:
		return false, nil
	case SuspiciousStatusDismissed, SuspiciousStatusBlocked:
		return false, ErrInvalidTransition
	case SuspiciousStatusNew:
		s.Status = SuspiciousStatusReviewed
		s.ReviewedAt = &now

		return true, nil
	default:
		return false, errors.Errorf("unknown suspicious status: %s", s.Status)
	}
}

// Dismiss closes the record as harmless from new or reviewed.
func (s *SuspiciousScan) Dismiss(now time.Time) (changed bool, err error) {
	switch s.Status {
	case SuspiciousStatusDismissed:
		return false, nil
	case SuspiciousStatusBlocked:
		return false, ErrInvalidTransition
	case SuspiciousStatusNew, SuspiciousStatusReviewed:
		s.Status = SuspiciousStatusDismissed
		s.ReviewedAt = &now

		return true, nil
	default:
		return false, errors.Errorf("unknown suspicious status: %s", s.Status)
	}
}

// Block closes the record as fraudulent from new or reviewed. Callers are
// responsible for the forward-looking deny-list effect.
func (s *SuspiciousScan) Block(now time.Time) (changed bool, err error) {
	switch s.Status {
	case SuspiciousStatusBlocked:
		return false, nil
	case SuspiciousStatusDismissed:
		return false, ErrInvalidTransition
	case SuspiciousStatusNew, SuspiciousStatusReviewed:
		s.Status = SuspiciousStatusBlocked
		s.ReviewedAt = &now

		return true, nil
	default:
		return false, errors.Errorf("unknown suspicious status: %s", s.Status)
	}
}
