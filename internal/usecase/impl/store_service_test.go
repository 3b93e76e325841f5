package impl

import (
	"context"
	"testing"

	"stamply/internal/domain/entity"
	domainerrors "stamply/internal/domain/errors"
	"stamply/internal/domain/repository"
	mockRepo "stamply/internal/mocks/repository"
	mockSvc "stamply/internal/mocks/service"
	"stamply/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storeServiceFixtures holds all test dependencies for store service tests.
type storeServiceFixtures struct {
	service   usecase.StoreUsecase
	storeRepo *mockRepo.MockStoreRepository
	qrService *mockSvc.MockQRCodeService
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewStoreService(storeRepo, qrService)

	return storeServiceFixtures{
		service:   service,
		storeRepo: storeRepo,
		qrService: qrService,
	}
}

func TestStoreService_GetStore(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	store := testStore()

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, store.ID).
		Return(store, nil)

	got, err := fx.service.GetStore(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, store, got)
}

func TestStoreService_GetStore_NotFound(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, id).
		Return(nil, repository.ErrStoreNotFound)

	_, err := fx.service.GetStore(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_GenerateScanQR(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	store := testStore()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, store.ID).
		Return(store, nil)

	fx.qrService.EXPECT().
		GenerateStoreQR(store.ID).
		Return(png, nil)

	got, err := fx.service.GenerateScanQR(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestStoreService_GenerateScanQR_InactiveStore(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	store := testStore()
	store.IsActive = false

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, store.ID).
		Return(store, nil)

	_, err := fx.service.GenerateScanQR(ctx, store.ID)
	assert.ErrorIs(t, err, domainerrors.ErrStoreInactive)
}

func TestStoreService_FindNearbyStores_SortsAndFilters(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	lat, lng := 25.0330, 121.5654

	// ~100m and ~45m away respectively.
	near := &entity.Store{ID: uuid.New(), Name: "near", Latitude: lat + 0.0009, Longitude: lng, IsActive: true}
	nearer := &entity.Store{ID: uuid.New(), Name: "nearer", Latitude: lat + 0.0004, Longitude: lng, IsActive: true}
	// Inside the bounding box corner but outside the circular radius.
	corner := &entity.Store{ID: uuid.New(), Name: "corner", Latitude: lat + 0.0088, Longitude: lng + 0.0097, IsActive: true}

	fx.storeRepo.EXPECT().
		FindStoresInBounds(ctx, mock.AnythingOfType("float64"), mock.AnythingOfType("float64"),
			mock.AnythingOfType("float64"), mock.AnythingOfType("float64")).
		Return([]*entity.Store{near, nearer, corner}, nil)

	nearby, err := fx.service.FindNearbyStores(ctx, lat, lng, 1000, 10)
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "nearer", nearby[0].Store.Name)
	assert.Equal(t, "near", nearby[1].Store.Name)
	assert.Less(t, nearby[0].DistanceM, nearby[1].DistanceM)
}

func TestStoreService_FindNearbyStores_LimitApplies(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	lat, lng := 25.0330, 121.5654

	stores := []*entity.Store{
		{ID: uuid.New(), Latitude: lat + 0.0001, Longitude: lng, IsActive: true},
		{ID: uuid.New(), Latitude: lat + 0.0002, Longitude: lng, IsActive: true},
		{ID: uuid.New(), Latitude: lat + 0.0003, Longitude: lng, IsActive: true},
	}

	fx.storeRepo.EXPECT().
		FindStoresInBounds(ctx, mock.AnythingOfType("float64"), mock.AnythingOfType("float64"),
			mock.AnythingOfType("float64"), mock.AnythingOfType("float64")).
		Return(stores, nil)

	nearby, err := fx.service.FindNearbyStores(ctx, lat, lng, 500, 2)
	require.NoError(t, err)
	assert.Len(t, nearby, 2)
}

func TestStoreService_FindNearbyStores_InvalidInput(t *testing.T) {
	fx := createTestStoreService(t)

	_, err := fx.service.FindNearbyStores(context.Background(), 95, 0, 1000, 10)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)

	_, err = fx.service.FindNearbyStores(context.Background(), 25, 121, 0, 10)
	require.Error(t, err)

	_, err = fx.service.FindNearbyStores(context.Background(), 25, 121, 100000, 10)
	require.Error(t, err)
}
