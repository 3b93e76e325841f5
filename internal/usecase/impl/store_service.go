package impl

import (
	"context"
	"sort"

	"stamply/internal/domain/entity"
	domainerrors "stamply/internal/domain/errors"
	"stamply/internal/domain/repository"
	"stamply/internal/domain/service"
	"stamply/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	defaultNearbyLimit = 20
	maxNearbyRadiusM   = 50000
)

type storeService struct {
	storeRepo repository.StoreRepository
	qrService service.QRCodeService
}

// NewStoreService creates a new store service instance
func NewStoreService(storeRepo repository.StoreRepository, qrService service.QRCodeService) usecase.StoreUsecase {
	return &storeService{
		storeRepo: storeRepo,
		qrService: qrService,
	}
}

// GetStore fetches a single store by ID.
func (s *storeService) GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find store by ID")
	}

	return store, nil
}

// GenerateScanQR renders the PNG QR code a store prints at the counter.
func (s *storeService) GenerateScanQR(ctx context.Context, storeID uuid.UUID) ([]byte, error) {
	store, err := s.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !store.IsActive {
		return nil, domainerrors.ErrStoreInactive
	}

	png, err := s.qrService.GenerateStoreQR(store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

// FindNearbyStores returns active stores within radiusM of the point, nearest
// first. A bounding box prefilter narrows the candidate set before the exact
// great-circle distance is computed per store.
func (s *storeService) FindNearbyStores(ctx context.Context, lat, lng, radiusM float64, limit int) ([]*usecase.NearbyStore, error) {
	if !isValidCoordinate(lat, lng) {
		return nil, domainerrors.ErrInvalidCoordinate
	}
	if radiusM <= 0 || radiusM > maxNearbyRadiusM {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be between 1 and 50000 meters")
	}
	if limit <= 0 {
		limit = defaultNearbyLimit
	}

	bound := geo.NewBoundAroundPoint(orb.Point{lng, lat}, radiusM)
	candidates, err := s.storeRepo.FindStoresInBounds(ctx,
		bound.Min.Lat(), bound.Min.Lon(), bound.Max.Lat(), bound.Max.Lon())
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find stores in bounds")
	}

	nearby := make([]*usecase.NearbyStore, 0, len(candidates))
	for _, store := range candidates {
		distance := haversineMeters(lat, lng, store.Latitude, store.Longitude)
		if distance > radiusM {
			continue
		}

		nearby = append(nearby, &usecase.NearbyStore{
			Store:     store,
			DistanceM: distance,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceM < nearby[j].DistanceM
	})

	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}
