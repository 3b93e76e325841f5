package repository

import (
	"context"

	"stamply/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSuspiciousScanNotFound is returned when a suspicious scan is not found.
var ErrSuspiciousScanNotFound = errors.New("suspicious scan not found")

// SuspiciousScanFilter narrows suspicious scan listings.
type SuspiciousScanFilter struct {
	StoreID *uuid.UUID
	Status  *entity.SuspiciousStatus
	Limit   int
	Offset  int
}

// SuspiciousScanRepository defines the interface for the suspicious review queue.
type SuspiciousScanRepository interface {
	// CreateSuspiciousScan persists a new suspicious scan record.
	CreateSuspiciousScan(ctx context.Context, scan *entity.SuspiciousScan) error

	// FindSuspiciousScanByID retrieves a suspicious scan by its unique ID.
	FindSuspiciousScanByID(ctx context.Context, id uuid.UUID) (*entity.SuspiciousScan, error)

	// FindSuspiciousScanByIDForUpdate retrieves a suspicious scan with a row
	// lock. Must be called inside a transaction.
	FindSuspiciousScanByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.SuspiciousScan, error)

	// ListSuspiciousScans retrieves suspicious scans matching the filter, newest first.
	ListSuspiciousScans(ctx context.Context, filter SuspiciousScanFilter) ([]*entity.SuspiciousScan, error)

	// UpdateSuspiciousScanStatus persists a status transition and its review timestamp.
	UpdateSuspiciousScanStatus(ctx context.Context, scan *entity.SuspiciousScan) error

	// HasBlockedScan reports whether the user or the device fingerprint
	// appears on any blocked suspicious scan. The classifier consults this
	// deny-list before applying distance thresholds.
	HasBlockedScan(ctx context.Context, userID uuid.UUID, fingerprint string) (bool, error)
}
