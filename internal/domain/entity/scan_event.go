package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScanEvent is the ephemeral input produced once per physical QR scan at a
// point of sale. It is never persisted as such; the processor turns it into a
// ledger entry, a pending scan, or a suspicious scan.
type ScanEvent struct {
	UserID            uuid.UUID `json:"user_id"`
	StoreID           uuid.UUID `json:"store_id"`
	DeviceFingerprint string    `json:"device_fingerprint"`
	Latitude          float64   `json:"latitude"`  // Reported latitude in decimal degrees.
	Longitude         float64   `json:"longitude"` // Reported longitude in decimal degrees.
	OccurredAt        time.Time `json:"occurred_at"`
}

// ScanDay returns the calendar-day key used for per-day scan deduplication.
// Days are reckoned in UTC so that all process instances agree on the key.
func ScanDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ScanDedupMarker records that a (user, store) pair already earned a scan
// credit on a calendar day. The storage layer enforces uniqueness on
// (user, store, day); inserting the marker is the serialization point that
// prevents double crediting under concurrent scans.
type ScanDedupMarker struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	StoreID        uuid.UUID `json:"store_id"`
	Day            string    `json:"day"`             // UTC calendar day, formatted 2006-01-02.
	DuplicateCount int64     `json:"duplicate_count"` // Number of deduplicated repeats observed after the first accept.
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
