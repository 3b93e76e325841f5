package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a participating retail store as the engine reads it from
// the shared directory. Store management is owned elsewhere; the engine only
// consumes the registered coordinate and per-store tuning.
type Store struct {
	ID                uuid.UUID `json:"id"`                  // The unique identifier of the store.
	Name              string    `json:"name"`                // Display name.
	Latitude          float64   `json:"latitude"`            // Registered latitude in decimal degrees.
	Longitude         float64   `json:"longitude"`           // Registered longitude in decimal degrees.
	AcceptanceRadiusM float64   `json:"acceptance_radius_m"` // Geofence for immediate credit; 0 uses the system default.
	PendingRadiusM    float64   `json:"pending_radius_m"`    // Outer geofence for manual review; 0 uses the system default.
	PointValue        int64     `json:"point_value"`         // Points per accepted scan; 0 uses the system default.
	IsActive          bool      `json:"is_active"`           // Inactive stores reject all scans.
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
