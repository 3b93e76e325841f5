package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the engine's minimal view of a loyalty customer. Account management
// (registration, profile, authentication) is owned by an external
// collaborator; the engine only needs identity and liveness.
type User struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier of the user.
	IsActive  bool      `json:"is_active"`  // Inactive users cannot earn or redeem points.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this user was created.
}
