package usecase

import (
	"context"

	"stamply/internal/domain/entity"

	"github.com/google/uuid"
)

// NearbyStore pairs a store with its distance from the query point.
type NearbyStore struct {
	Store     *entity.Store `json:"store"`
	DistanceM float64       `json:"distance_m"`
}

// StoreUsecase defines the interface for store lookups and scan QR material.
type StoreUsecase interface {
	// GetStore fetches a single store by ID.
	GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error)

	// GenerateScanQR renders the PNG QR code a store prints at the counter.
	GenerateScanQR(ctx context.Context, storeID uuid.UUID) ([]byte, error)

	// FindNearbyStores returns active stores within radiusM of the point,
	// ordered nearest first.
	FindNearbyStores(ctx context.Context, lat, lng, radiusM float64, limit int) ([]*NearbyStore, error)
}
