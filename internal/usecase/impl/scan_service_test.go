package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"stamply/config"
	"stamply/internal/domain/entity"
	domainerrors "stamply/internal/domain/errors"
	"stamply/internal/domain/repository"
	"stamply/internal/domain/service"
	mockRepo "stamply/internal/mocks/repository"
	mockSvc "stamply/internal/mocks/service"
	"stamply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// scanServiceFixtures holds all test dependencies for scan service tests.
type scanServiceFixtures struct {
	service        usecase.ScanUsecase
	txManager      *mockRepo.MockTransactionManager
	txFactory      *mockRepo.MockRepositoryFactory
	storeRepo      *mockRepo.MockStoreRepository
	userRepo       *mockRepo.MockUserRepository
	deviceRepo     *mockRepo.MockDeviceRepository
	ledgerRepo     *mockRepo.MockLedgerRepository
	dedupRepo      *mockRepo.MockScanDedupRepository
	suspiciousRepo *mockRepo.MockSuspiciousScanRepository
	pendingRepo    *mockRepo.MockPendingScanRepository
	qrService      *mockSvc.MockQRCodeService
	publisher      *mockSvc.MockEventPublisher
	config         *config.Config
}

func createTestScanService(t *testing.T) scanServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)
	dedupRepo := mockRepo.NewMockScanDedupRepository(t)
	suspiciousRepo := mockRepo.NewMockSuspiciousScanRepository(t)
	pendingRepo := mockRepo.NewMockPendingScanRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	cfg := &config.Config{Loyalty: testLoyaltyConfig()}
	logger := slog.Default()

	service := NewScanService(
		txManager, storeRepo, userRepo, deviceRepo,
		ledgerRepo, dedupRepo, suspiciousRepo,
		qrService, publisher, cfg, logger,
	)

	return scanServiceFixtures{
		service:        service,
		txManager:      txManager,
		txFactory:      txFactory,
		storeRepo:      storeRepo,
		userRepo:       userRepo,
		deviceRepo:     deviceRepo,
		ledgerRepo:     ledgerRepo,
		dedupRepo:      dedupRepo,
		suspiciousRepo: suspiciousRepo,
		pendingRepo:    pendingRepo,
		qrService:      qrService,
		publisher:      publisher,
		config:         cfg,
	}
}

// expectParticipants wires the user, store and device lookups for a clean scan.
func (fx scanServiceFixtures) expectParticipants(ctx context.Context, input *usecase.ScanInput, store *entity.Store) {
	fx.userRepo.EXPECT().
		FindUserByID(ctx, input.UserID).
		Return(&entity.User{ID: input.UserID, IsActive: true}, nil)

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, input.StoreID).
		Return(store, nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByFingerprint(ctx, input.DeviceFingerprint).
		Return(&entity.StoreDevice{
			ID:          uuid.New(),
			StoreID:     input.StoreID,
			Fingerprint: input.DeviceFingerprint,
			IsActive:    true,
		}, nil)
}

// expectTxPassthrough makes the transaction manager run the callback against
// the mock factory, as the real GORM-backed manager would with a live tx.
func (fx scanServiceFixtures) expectTxPassthrough(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.txFactory)
		})
}

func testScanInput(store *entity.Store, lat, lng float64) *usecase.ScanInput {
	return &usecase.ScanInput{
		UserID:            uuid.New(),
		StoreID:           store.ID,
		DeviceFingerprint: "fp-pos-1",
		Latitude:          lat,
		Longitude:         lng,
		OccurredAt:        time.Now(),
	}
}

func TestScanService_ProcessScan_Accepted(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := testStore()
	input := testScanInput(store, store.Latitude+0.00045, store.Longitude) // ~50m away
	day := entity.ScanDay(input.OccurredAt)

	fx.expectParticipants(ctx, input, store)

	fx.dedupRepo.EXPECT().
		FindMarker(ctx, input.UserID, input.StoreID, day).
		Return(nil, repository.ErrMarkerNotFound)

	fx.suspiciousRepo.EXPECT().
		HasBlockedScan(ctx, input.UserID, input.DeviceFingerprint).
		Return(false, nil)

	fx.ledgerRepo.EXPECT().
		FindLastScanEntryByUser(ctx, input.UserID).
		Return(nil, repository.ErrLedgerEntryNotFound)

	fx.expectTxPassthrough(ctx)
	fx.txFactory.EXPECT().NewScanDedupRepository().Return(fx.dedupRepo)
	fx.txFactory.EXPECT().NewLedgerRepository().Return(fx.ledgerRepo)
	fx.txFactory.EXPECT().NewDeviceRepository().Return(fx.deviceRepo)

	fx.dedupRepo.EXPECT().
		CreateMarker(ctx, mock.AnythingOfType("*entity.ScanDedupMarker")).
		Return(nil)

	var credited *entity.LedgerEntry
	fx.ledgerRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.LedgerEntry")).
		Run(func(_ context.Context, entry *entity.LedgerEntry) {
			credited = entry
		}).
		Return(nil)

	fx.ledgerRepo.EXPECT().
		LockBalance(ctx, input.UserID, input.StoreID).
		Return(&entity.PointBalance{UserID: input.UserID, StoreID: input.StoreID, Balance: 4}, nil)

	fx.ledgerRepo.EXPECT().
		UpdateBalance(ctx, mock.AnythingOfType("*entity.PointBalance")).
		Return(nil)

	// The in-tx device lookup reuses the expectation from expectParticipants.
	fx.deviceRepo.EXPECT().
		TouchDevice(ctx, mock.AnythingOfType("uuid.UUID"), input.UserID, input.OccurredAt).
		Return(nil)

	result, err := fx.service.ProcessScan(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScanOutcomeAccepted, result.Outcome)
	assert.Equal(t, int64(1), result.PointsEarned)
	require.NotNil(t, result.LedgerEntryID)

	require.NotNil(t, credited)
	assert.Equal(t, entity.EntryTypeScan, credited.Type)
	assert.Equal(t, int64(1), credited.Delta)
	assert.Equal(t, input.UserID, credited.UserID)
}

func TestScanService_ProcessScan_Pending(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := testStore()
	input := testScanInput(store, store.Latitude+0.0027, store.Longitude) // ~300m away
	day := entity.ScanDay(input.OccurredAt)

	fx.expectParticipants(ctx, input, store)

	fx.dedupRepo.EXPECT().
		FindMarker(ctx, input.UserID, input.StoreID, day).
		Return(nil, repository.ErrMarkerNotFound)

	fx.suspiciousRepo.EXPECT().
		HasBlockedScan(ctx, input.UserID, input.DeviceFingerprint).
		Return(false, nil)

	fx.ledgerRepo.EXPECT().
		FindLastScanEntryByUser(ctx, input.UserID).
		Return(nil, repository.ErrLedgerEntryNotFound)

	fx.expectTxPassthrough(ctx)
	fx.txFactory.EXPECT().NewPendingScanRepository().Return(fx.pendingRepo)

	var parked *entity.PendingScan
	fx.pendingRepo.EXPECT().
		CreatePendingScan(ctx, mock.AnythingOfType("*entity.PendingScan")).
		Run(func(_ context.Context, scan *entity.PendingScan) {
			parked = scan
		}).
		Return(nil)

	result, err := fx.service.ProcessScan(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScanOutcomePending, result.Outcome)
	assert.Zero(t, result.PointsEarned)
	assert.NotEmpty(t, result.Reason)

	require.NotNil(t, parked)
	assert.Equal(t, entity.PendingStatusPending, parked.Status)
	assert.Equal(t, input.Latitude, parked.Latitude)
	assert.InDelta(t, result.DistanceM, parked.DistanceM, 0.001)
}

func TestScanService_ProcessScan_Suspicious(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := testStore()
	input := testScanInput(store, store.Latitude+0.09, store.Longitude) // ~10km away
	day := entity.ScanDay(input.OccurredAt)

	fx.expectParticipants(ctx, input, store)

	fx.dedupRepo.EXPECT().
		FindMarker(ctx, input.UserID, input.StoreID, day).
		Return(nil, repository.ErrMarkerNotFound)

	fx.suspiciousRepo.EXPECT().
		HasBlockedScan(ctx, input.UserID, input.DeviceFingerprint).
		Return(false, nil)

	fx.ledgerRepo.EXPECT().
		FindLastScanEntryByUser(ctx, input.UserID).
		Return(nil, repository.ErrLedgerEntryNotFound)

	fx.expectTxPassthrough(ctx)
	fx.txFactory.EXPECT().NewSuspiciousScanRepository().Return(fx.suspiciousRepo)

	var flagged *entity.SuspiciousScan
	fx.suspiciousRepo.EXPECT().
		CreateSuspiciousScan(ctx, mock.AnythingOfType("*entity.SuspiciousScan")).
		Run(func(_ context.Context, scan *entity.SuspiciousScan) {
			flagged = scan
		}).
		Return(nil)

	result, err := fx.service.ProcessScan(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScanOutcomeSuspicious, result.Outcome)
	assert.Zero(t, result.PointsEarned)

	require.NotNil(t, flagged)
	assert.Equal(t, entity.SuspiciousStatusNew, flagged.Status)
	assert.Equal(t, store.Latitude, flagged.StoreLatitude)
	assert.Equal(t, input.Latitude, flagged.ScanLatitude)
	assert.NotEmpty(t, flagged.Reason)
}

func TestScanService_ProcessScan_DedupedFastPath(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := testStore()
	input := testScanInput(store, store.Latitude, store.Longitude)
	day := entity.ScanDay(input.OccurredAt)

	fx.expectParticipants(ctx, input, store)

	fx.dedupRepo.EXPECT().
		FindMarker(ctx, input.UserID, input.StoreID, day).
		Return(&entity.ScanDedupMarker{UserID: input.UserID, StoreID: input.StoreID, Day: day}, nil)

	fx.dedupRepo.EXPECT().
		IncrementDuplicateCount(ctx, input.UserID, input.StoreID, day).
		Return(1, nil)

	result, err := fx.service.ProcessScan(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScanOutcomeDeduped, result.Outcome)
	assert.Zero(t, result.PointsEarned)
	assert.Nil(t, result.LedgerEntryID)
}

func TestScanService_ProcessScan_DedupedByMarkerRace(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := testStore()
	input := testScanInput(store, store.Latitude, store.Longitude)
	day := entity.ScanDay(input.OccurredAt)

	fx.expectParticipants(ctx, input, store)

	fx.dedupRepo.EXPECT().
		FindMarker(ctx, input.UserID, input.StoreID, day).
		Return(nil, repository.ErrMarkerNotFound)

	fx.suspiciousRepo.EXPECT().
		HasBlockedScan(ctx, input.UserID, input.DeviceFingerprint).
		Return(false, nil)

	fx.ledgerRepo.EXPECT().
		FindLastScanEntryByUser(ctx, input.UserID).
		Return(nil, repository.ErrLedgerEntryNotFound)

	// A concurrent scan wins the unique-index insert inside the transaction.
	fx.expectTxPassthrough(ctx)
	fx.txFactory.EXPECT().NewScanDedupRepository().Return(fx.dedupRepo)
	fx.dedupRepo.EXPECT().
		CreateMarker(ctx, mock.AnythingOfType("*entity.ScanDedupMarker")).
		Return(repository.ErrDuplicateScan)

	fx.dedupRepo.EXPECT().
		IncrementDuplicateCount(ctx, input.UserID, input.StoreID, day).
		Return(2, nil)

	result, err := fx.service.ProcessScan(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScanOutcomeDeduped, result.Outcome)
}

func TestScanService_ProcessScan_DenyListedUserIsSuspicious(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := testStore()
	// Standing right at the store, but previously blocked.
	input := testScanInput(store, store.Latitude, store.Longitude)
	day := entity.ScanDay(input.OccurredAt)

	fx.expectParticipants(ctx, input, store)

	fx.dedupRepo.EXPECT().
		FindMarker(ctx, input.UserID, input.StoreID, day).
		Return(nil, repository.ErrMarkerNotFound)

	fx.suspiciousRepo.EXPECT().
		HasBlockedScan(ctx, input.UserID, input.DeviceFingerprint).
		Return(true, nil)

	fx.ledgerRepo.EXPECT().
		FindLastScanEntryByUser(ctx, input.UserID).
		Return(nil, repository.ErrLedgerEntryNotFound)

	fx.expectTxPassthrough(ctx)
	fx.txFactory.EXPECT().NewSuspiciousScanRepository().Return(fx.suspiciousRepo)
	fx.suspiciousRepo.EXPECT().
		CreateSuspiciousScan(ctx, mock.AnythingOfType("*entity.SuspiciousScan")).
		Return(nil)

	result, err := fx.service.ProcessScan(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScanOutcomeSuspicious, result.Outcome)
	assert.Contains(t, result.Reason, "deny-list")
}

func TestScanService_ProcessScan_ImpossibleTravelSpeed(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := testStore()
	input := testScanInput(store, store.Latitude, store.Longitude)
	day := entity.ScanDay(input.OccurredAt)

	prevStore := &entity.Store{
		ID:        uuid.New(),
		Name:      "Kaohsiung Branch",
		Latitude:  22.6273,
		Longitude: 120.3014,
		IsActive:  true,
	}

	fx.expectParticipants(ctx, input, store)

	fx.dedupRepo.EXPECT().
		FindMarker(ctx, input.UserID, input.StoreID, day).
		Return(nil, repository.ErrMarkerNotFound)

	fx.suspiciousRepo.EXPECT().
		HasBlockedScan(ctx, input.UserID, input.DeviceFingerprint).
		Return(false, nil)

	// Credited ~300km away ten minutes ago: implies ~1800km/h.
	fx.ledgerRepo.EXPECT().
		FindLastScanEntryByUser(ctx, input.UserID).
		Return(&entity.LedgerEntry{
			ID:        uuid.New(),
			UserID:    input.UserID,
			StoreID:   prevStore.ID,
			Type:      entity.EntryTypeScan,
			CreatedAt: input.OccurredAt.Add(-10 * time.Minute),
		}, nil)

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, prevStore.ID).
		Return(prevStore, nil)

	fx.expectTxPassthrough(ctx)
	fx.txFactory.EXPECT().NewSuspiciousScanRepository().Return(fx.suspiciousRepo)
	fx.suspiciousRepo.EXPECT().
		CreateSuspiciousScan(ctx, mock.AnythingOfType("*entity.SuspiciousScan")).
		Return(nil)

	result, err := fx.service.ProcessScan(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScanOutcomeSuspicious, result.Outcome)
	assert.Contains(t, result.Reason, "travel speed")
}

func TestScanService_ProcessScan_InvalidCoordinate(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := testStore()
	input := testScanInput(store, 91, 0)

	_, err := fx.service.ProcessScan(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestScanService_ProcessScan_DeviceStoreMismatch(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := testStore()
	input := testScanInput(store, store.Latitude, store.Longitude)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, input.UserID).
		Return(&entity.User{ID: input.UserID, IsActive: true}, nil)

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, input.StoreID).
		Return(store, nil)

	// Device registered to a different store.
	fx.deviceRepo.EXPECT().
		FindDeviceByFingerprint(ctx, input.DeviceFingerprint).
		Return(&entity.StoreDevice{
			ID:       uuid.New(),
			StoreID:  uuid.New(),
			IsActive: true,
		}, nil)

	_, err := fx.service.ProcessScan(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceStoreMismatch)
}

func TestScanService_ProcessScan_InactiveStore(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := testStore()
	store.IsActive = false
	input := testScanInput(store, store.Latitude, store.Longitude)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, input.UserID).
		Return(&entity.User{ID: input.UserID, IsActive: true}, nil)

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, input.StoreID).
		Return(store, nil)

	_, err := fx.service.ProcessScan(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrStoreInactive)
}

func TestScanService_ProcessScan_ConflictRetriesExhausted(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := testStore()
	input := testScanInput(store, store.Latitude, store.Longitude)
	day := entity.ScanDay(input.OccurredAt)

	fx.expectParticipants(ctx, input, store)

	fx.dedupRepo.EXPECT().
		FindMarker(ctx, input.UserID, input.StoreID, day).
		Return(nil, repository.ErrMarkerNotFound)

	fx.suspiciousRepo.EXPECT().
		HasBlockedScan(ctx, input.UserID, input.DeviceFingerprint).
		Return(false, nil)

	fx.ledgerRepo.EXPECT().
		FindLastScanEntryByUser(ctx, input.UserID).
		Return(nil, repository.ErrLedgerEntryNotFound)

	// Every attempt loses the serialization race.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(repository.ErrTxConflict, "deadlock detected")).
		Times(fx.config.Loyalty.MaxCommitRetries)

	_, err := fx.service.ProcessScan(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrConcurrencyConflict)
}

func TestScanService_ResolveScanTarget(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := testStore()

	fx.qrService.EXPECT().
		ParseStoreQR("qr-payload").
		Return(store.ID, nil)

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, store.ID).
		Return(store, nil)

	resolved, err := fx.service.ResolveScanTarget(ctx, "qr-payload")
	require.NoError(t, err)
	assert.Equal(t, store.ID, resolved.ID)
}

// Services resolve loyalty defaults independently; whichever constructs
// first over a shared config without a loyalty section must not change what
// the others see.
func TestScanService_DefaultsUnaffectedByConstructionOrder(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)
	dedupRepo := mockRepo.NewMockScanDedupRepository(t)
	suspiciousRepo := mockRepo.NewMockSuspiciousScanRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	cfg := &config.Config{}
	logger := slog.Default()

	_ = NewRedemptionService(txManager, storeRepo, userRepo, publisher, cfg, logger)
	svc := NewScanService(
		txManager, storeRepo, userRepo, deviceRepo,
		ledgerRepo, dedupRepo, suspiciousRepo,
		qrService, publisher, cfg, logger,
	)
	assert.Nil(t, cfg.Loyalty, "constructors must not write into the shared config")

	ctx := context.Background()
	store := testStore()
	// No per-store overrides: classification and crediting run entirely on
	// the system defaults.
	store.AcceptanceRadiusM = 0
	store.PendingRadiusM = 0
	store.PointValue = 0
	input := testScanInput(store, store.Latitude, store.Longitude) // at the counter
	day := entity.ScanDay(input.OccurredAt)

	userRepo.EXPECT().
		FindUserByID(ctx, input.UserID).
		Return(&entity.User{ID: input.UserID, IsActive: true}, nil)
	storeRepo.EXPECT().
		FindStoreByID(ctx, input.StoreID).
		Return(store, nil)
	deviceRepo.EXPECT().
		FindDeviceByFingerprint(ctx, input.DeviceFingerprint).
		Return(&entity.StoreDevice{
			ID:          uuid.New(),
			StoreID:     input.StoreID,
			Fingerprint: input.DeviceFingerprint,
			IsActive:    true,
		}, nil)

	dedupRepo.EXPECT().
		FindMarker(ctx, input.UserID, input.StoreID, day).
		Return(nil, repository.ErrMarkerNotFound)
	suspiciousRepo.EXPECT().
		HasBlockedScan(ctx, input.UserID, input.DeviceFingerprint).
		Return(false, nil)
	ledgerRepo.EXPECT().
		FindLastScanEntryByUser(ctx, input.UserID).
		Return(nil, repository.ErrLedgerEntryNotFound)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(txFactory)
		})
	txFactory.EXPECT().NewScanDedupRepository().Return(dedupRepo)
	txFactory.EXPECT().NewLedgerRepository().Return(ledgerRepo)
	txFactory.EXPECT().NewDeviceRepository().Return(deviceRepo)

	dedupRepo.EXPECT().
		CreateMarker(ctx, mock.AnythingOfType("*entity.ScanDedupMarker")).
		Return(nil)
	ledgerRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.LedgerEntry")).
		Return(nil)
	ledgerRepo.EXPECT().
		LockBalance(ctx, input.UserID, input.StoreID).
		Return(&entity.PointBalance{UserID: input.UserID, StoreID: input.StoreID}, nil)
	ledgerRepo.EXPECT().
		UpdateBalance(ctx, mock.AnythingOfType("*entity.PointBalance")).
		Return(nil)
	deviceRepo.EXPECT().
		TouchDevice(ctx, mock.AnythingOfType("uuid.UUID"), input.UserID, input.OccurredAt).
		Return(nil)

	result, err := svc.ProcessScan(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScanOutcomeAccepted, result.Outcome)
	assert.Equal(t, int64(1), result.PointsEarned)
}

// Only the first repeat of a day reaches the audit stream; the exact counter
// value returned by the atomic bump is what gates it.
func TestScanService_ProcessScan_DuplicateAuditOnlyOnFirstRepeat(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)
	dedupRepo := mockRepo.NewMockScanDedupRepository(t)
	suspiciousRepo := mockRepo.NewMockSuspiciousScanRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	cfg := &config.Config{Loyalty: testLoyaltyConfig()}
	svc := NewScanService(
		txManager, storeRepo, userRepo, deviceRepo,
		ledgerRepo, dedupRepo, suspiciousRepo,
		qrService, publisher, cfg, slog.Default(),
	)

	ctx := context.Background()
	store := testStore()
	input := testScanInput(store, store.Latitude, store.Longitude)
	day := entity.ScanDay(input.OccurredAt)

	userRepo.EXPECT().
		FindUserByID(ctx, input.UserID).
		Return(&entity.User{ID: input.UserID, IsActive: true}, nil)
	storeRepo.EXPECT().
		FindStoreByID(ctx, input.StoreID).
		Return(store, nil)
	deviceRepo.EXPECT().
		FindDeviceByFingerprint(ctx, input.DeviceFingerprint).
		Return(&entity.StoreDevice{
			ID:          uuid.New(),
			StoreID:     input.StoreID,
			Fingerprint: input.DeviceFingerprint,
			IsActive:    true,
		}, nil)

	fxMarker := &entity.ScanDedupMarker{UserID: input.UserID, StoreID: input.StoreID, Day: day}
	dedupRepo.EXPECT().
		FindMarker(ctx, input.UserID, input.StoreID, day).
		Return(fxMarker, nil)

	dedupRepo.EXPECT().
		IncrementDuplicateCount(ctx, input.UserID, input.StoreID, day).
		Return(1, nil).
		Once()
	dedupRepo.EXPECT().
		IncrementDuplicateCount(ctx, input.UserID, input.StoreID, day).
		Return(2, nil).
		Once()

	// Any second dedupe event would be an unexpected call on the mock.
	publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.MatchedBy(func(event *service.AuditEvent) bool {
			return event.Kind == service.AuditScanDeduped
		})).
		Return(nil).
		Once()

	first, err := svc.ProcessScan(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScanOutcomeDeduped, first.Outcome)

	second, err := svc.ProcessScan(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScanOutcomeDeduped, second.Outcome)
}

func TestScanService_ResolveScanTarget_BadPayload(t *testing.T) {
	fx := createTestScanService(t)

	fx.qrService.EXPECT().
		ParseStoreQR("garbage").
		Return(uuid.Nil, errors.New("invalid QR payload"))

	_, err := fx.service.ResolveScanTarget(context.Background(), "garbage")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
