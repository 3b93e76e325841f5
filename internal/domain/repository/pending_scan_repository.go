package repository

import (
	"context"

	"stamply/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPendingScanNotFound is returned when a pending scan is not found.
var ErrPendingScanNotFound = errors.New("pending scan not found")

// PendingScanFilter narrows pending scan listings.
type PendingScanFilter struct {
	StoreID *uuid.UUID
	Status  *entity.PendingStatus
	Limit   int
	Offset  int
}

// PendingScanRepository defines the interface for the pending review queue.
type PendingScanRepository interface {
	// CreatePendingScan persists a new pending scan record.
	CreatePendingScan(ctx context.Context, scan *entity.PendingScan) error

	// FindPendingScanByID retrieves a pending scan by its unique ID.
	FindPendingScanByID(ctx context.Context, id uuid.UUID) (*entity.PendingScan, error)

	// FindPendingScanByIDForUpdate retrieves a pending scan with a row lock.
	// Must be called inside a transaction; serializes concurrent review
	// decisions on the same record.
	FindPendingScanByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.PendingScan, error)

	// ListPendingScans retrieves pending scans matching the filter, newest first.
	ListPendingScans(ctx context.Context, filter PendingScanFilter) ([]*entity.PendingScan, error)

	// UpdatePendingScanStatus persists a status transition and its review timestamp.
	// Core facts of the record are never rewritten.
	UpdatePendingScanStatus(ctx context.Context, scan *entity.PendingScan) error
}
