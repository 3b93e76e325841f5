package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreDevice represents a point-of-sale device registered to a store.
// A device belongs to exactly one store at a time; re-registration creates a
// new fingerprint rather than mutating identity, so historical ledger and
// review records keep pointing at the fingerprint that produced them.
type StoreDevice struct {
	ID          uuid.UUID  `json:"id"`           // The unique identifier of the device.
	StoreID     uuid.UUID  `json:"store_id"`     // The store this device is registered to.
	Fingerprint string     `json:"fingerprint"`  // Hash derived from client signals; stable per registration.
	LastUserID  *uuid.UUID `json:"last_user_id"` // User from the most recent accepted scan, if any.
	LastUsedAt  *time.Time `json:"last_used_at"` // Timestamp of the most recent accepted scan, if any.
	IsActive    bool       `json:"is_active"`    // Inactive devices reject all scans.
	CreatedAt   time.Time  `json:"created_at"`   // Timestamp of when this device was registered.
	UpdatedAt   time.Time  `json:"updated_at"`   // Timestamp of the last modification.
}
