package repository

import (
	"context"
	"time"

	"stamply/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for point-of-sale device lookups.
type DeviceRepository interface {
	// FindDeviceByFingerprint retrieves a device by its fingerprint hash.
	FindDeviceByFingerprint(ctx context.Context, fingerprint string) (*entity.StoreDevice, error)

	// TouchDevice records the most recent accepted scan on a device:
	// last_used_at and the linked user from that scan.
	TouchDevice(ctx context.Context, id uuid.UUID, userID uuid.UUID, usedAt time.Time) error
}
