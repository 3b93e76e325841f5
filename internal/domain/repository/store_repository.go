// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stamply/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the interface for store directory lookups.
// Store management itself is owned by an external collaborator; the engine
// only reads.
type StoreRepository interface {
	// FindStoreByID retrieves a store by its unique ID.
	FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindStoresInBounds retrieves active stores whose registered coordinate
	// falls inside the given bounding box (min/max latitude and longitude).
	FindStoresInBounds(ctx context.Context, minLat, minLng, maxLat, maxLng float64) ([]*entity.Store, error)
}
