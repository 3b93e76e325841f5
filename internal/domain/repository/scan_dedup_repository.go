package repository

import (
	"context"

	"stamply/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for scan deduplication.
var (
	// ErrDuplicateScan is returned when a marker already exists for the
	// (user, store, day) key, i.e. the pair already earned credit that day.
	ErrDuplicateScan = errors.New("scan already accepted for this day")
	// ErrMarkerNotFound is returned when no marker exists for the key.
	ErrMarkerNotFound = errors.New("scan dedup marker not found")
)

// ScanDedupRepository defines the interface for per-day scan dedup markers.
// The storage layer enforces a unique index on (user, store, day); the insert
// itself acts as the lock, so check-then-insert races resolve to exactly one
// winner.
type ScanDedupRepository interface {
	// CreateMarker inserts the marker for a (user, store, day) key.
	// Returns ErrDuplicateScan when the key already exists.
	CreateMarker(ctx context.Context, marker *entity.ScanDedupMarker) error

	// FindMarker retrieves the marker for a (user, store, day) key.
	// Returns ErrMarkerNotFound when absent.
	FindMarker(ctx context.Context, userID, storeID uuid.UUID, day string) (*entity.ScanDedupMarker, error)

	// IncrementDuplicateCount atomically bumps the duplicate counter for an
	// existing marker and returns the new count. Used to log repeat attempts
	// once per day instead of flooding the audit log.
	IncrementDuplicateCount(ctx context.Context, userID, storeID uuid.UUID, day string) (int64, error)
}
