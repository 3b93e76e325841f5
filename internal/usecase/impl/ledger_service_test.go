package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

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

// ledgerServiceFixtures holds all test dependencies for ledger service tests.
type ledgerServiceFixtures struct {
	service    usecase.LedgerUsecase
	txManager  *mockRepo.MockTransactionManager
	txFactory  *mockRepo.MockRepositoryFactory
	ledgerRepo *mockRepo.MockLedgerRepository
	storeRepo  *mockRepo.MockStoreRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestLedgerService(t *testing.T) ledgerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	service := NewLedgerService(txManager, ledgerRepo, storeRepo, userRepo, publisher, slog.Default())

	return ledgerServiceFixtures{
		service:    service,
		txManager:  txManager,
		txFactory:  txFactory,
		ledgerRepo: ledgerRepo,
		storeRepo:  storeRepo,
		userRepo:   userRepo,
	}
}

func (fx ledgerServiceFixtures) expectPair(ctx context.Context, userID, storeID uuid.UUID) {
	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, IsActive: true}, nil)

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, IsActive: true}, nil)
}

func (fx ledgerServiceFixtures) expectTxPassthrough(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.txFactory)
		})
	fx.txFactory.EXPECT().NewLedgerRepository().Return(fx.ledgerRepo)
}

func ledgerEntryAt(userID, storeID uuid.UUID, delta int64, at time.Time) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:        uuid.New(),
		UserID:    userID,
		StoreID:   storeID,
		Delta:     delta,
		Type:      entity.EntryTypeScan,
		CreatedAt: at,
	}
}

func TestLedgerService_GetBalance(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	fx.expectPair(ctx, userID, storeID)

	fx.ledgerRepo.EXPECT().
		SumDeltasByUserAndStore(ctx, userID, storeID).
		Return(7, nil)

	result, err := fx.service.GetBalance(ctx, userID, storeID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Balance)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, storeID, result.StoreID)
}

func TestLedgerService_GetHistory_ForwardsPagingToRepository(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()
	base := time.Now().Add(-3 * time.Hour)

	middle := ledgerEntryAt(userID, storeID, 1, base.Add(time.Hour))
	newest := ledgerEntryAt(userID, storeID, -1, base.Add(2*time.Hour))

	fx.expectPair(ctx, userID, storeID)

	// The query carries the paging; the service only clamps it.
	fx.ledgerRepo.EXPECT().
		FindEntriesByUserAndStore(ctx, userID, storeID, 2, 4).
		Return([]*entity.LedgerEntry{newest, middle}, nil)

	entries, err := fx.service.GetHistory(ctx, userID, storeID, 2, 4)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newest.ID, entries[0].ID)
	assert.Equal(t, middle.ID, entries[1].ID)
}

func TestLedgerService_GetHistory_ClampsLimitAndOffset(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	fx.expectPair(ctx, userID, storeID)

	fx.ledgerRepo.EXPECT().
		FindEntriesByUserAndStore(ctx, userID, storeID, 50, 0).
		Return(nil, nil).
		Once()

	entries, err := fx.service.GetHistory(ctx, userID, storeID, 0, -3)
	require.NoError(t, err)
	assert.Empty(t, entries)

	fx.ledgerRepo.EXPECT().
		FindEntriesByUserAndStore(ctx, userID, storeID, 200, 0).
		Return(nil, nil).
		Once()

	_, err = fx.service.GetHistory(ctx, userID, storeID, 500, 0)
	require.NoError(t, err)
}

func TestLedgerService_AppendManualEntry_Bonus(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	input := &usecase.ManualEntryInput{
		UserID:  uuid.New(),
		StoreID: uuid.New(),
		Delta:   20,
		Type:    entity.EntryTypeBonus,
		Note:    "opening week promotion",
	}

	fx.expectPair(ctx, input.UserID, input.StoreID)
	fx.expectTxPassthrough(ctx)

	fx.ledgerRepo.EXPECT().
		LockBalance(ctx, input.UserID, input.StoreID).
		Return(&entity.PointBalance{UserID: input.UserID, StoreID: input.StoreID, Balance: 5}, nil)

	fx.ledgerRepo.EXPECT().
		SumDeltasByUserAndStore(ctx, input.UserID, input.StoreID).
		Return(5, nil)

	fx.ledgerRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.LedgerEntry")).
		Return(nil)

	var saved *entity.PointBalance
	fx.ledgerRepo.EXPECT().
		UpdateBalance(ctx, mock.AnythingOfType("*entity.PointBalance")).
		Run(func(_ context.Context, balance *entity.PointBalance) {
			saved = balance
		}).
		Return(nil)

	entry, err := fx.service.AppendManualEntry(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(20), entry.Delta)
	assert.Equal(t, entity.EntryTypeBonus, entry.Type)
	assert.Equal(t, "opening week promotion", entry.Note)

	require.NotNil(t, saved)
	assert.Equal(t, int64(25), saved.Balance)
}

func TestLedgerService_AppendManualEntry_NegativeAdjustmentBelowZero(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	input := &usecase.ManualEntryInput{
		UserID:  uuid.New(),
		StoreID: uuid.New(),
		Delta:   -10,
		Type:    entity.EntryTypeAdjustment,
	}

	fx.expectPair(ctx, input.UserID, input.StoreID)
	fx.expectTxPassthrough(ctx)

	fx.ledgerRepo.EXPECT().
		LockBalance(ctx, input.UserID, input.StoreID).
		Return(&entity.PointBalance{UserID: input.UserID, StoreID: input.StoreID, Balance: 4}, nil)

	fx.ledgerRepo.EXPECT().
		SumDeltasByUserAndStore(ctx, input.UserID, input.StoreID).
		Return(4, nil)

	_, err := fx.service.AppendManualEntry(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
}

func TestLedgerService_AppendManualEntry_InvalidType(t *testing.T) {
	fx := createTestLedgerService(t)

	_, err := fx.service.AppendManualEntry(context.Background(), &usecase.ManualEntryInput{
		UserID:  uuid.New(),
		StoreID: uuid.New(),
		Delta:   5,
		Type:    entity.EntryTypeScan, // scans only come from the scan path
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEntryType)
}

func TestLedgerService_AppendManualEntry_NegativeBonusRefused(t *testing.T) {
	fx := createTestLedgerService(t)

	_, err := fx.service.AppendManualEntry(context.Background(), &usecase.ManualEntryInput{
		UserID:  uuid.New(),
		StoreID: uuid.New(),
		Delta:   -5,
		Type:    entity.EntryTypeBonus,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestLedgerService_ReconcileBalance_RepairsDrift(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	fx.expectTxPassthrough(ctx)

	fx.ledgerRepo.EXPECT().
		LockBalance(ctx, userID, storeID).
		Return(&entity.PointBalance{UserID: userID, StoreID: storeID, Balance: 9}, nil)

	fx.ledgerRepo.EXPECT().
		SumDeltasByUserAndStore(ctx, userID, storeID).
		Return(6, nil)

	var saved *entity.PointBalance
	fx.ledgerRepo.EXPECT().
		UpdateBalance(ctx, mock.AnythingOfType("*entity.PointBalance")).
		Run(func(_ context.Context, balance *entity.PointBalance) {
			saved = balance
		}).
		Return(nil)

	result, err := fx.service.ReconcileBalance(ctx, userID, storeID)
	require.NoError(t, err)
	assert.True(t, result.Repaired)
	assert.Equal(t, int64(9), result.Counter)
	assert.Equal(t, int64(6), result.Computed)

	require.NotNil(t, saved)
	assert.Equal(t, int64(6), saved.Balance)
}

func TestLedgerService_ReconcileBalance_NoDrift(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	fx.expectTxPassthrough(ctx)

	fx.ledgerRepo.EXPECT().
		LockBalance(ctx, userID, storeID).
		Return(&entity.PointBalance{UserID: userID, StoreID: storeID, Balance: 6}, nil)

	fx.ledgerRepo.EXPECT().
		SumDeltasByUserAndStore(ctx, userID, storeID).
		Return(6, nil)

	result, err := fx.service.ReconcileBalance(ctx, userID, storeID)
	require.NoError(t, err)
	assert.False(t, result.Repaired)
	assert.Equal(t, int64(6), result.Computed)
}

func TestLedgerService_GetBalance_UnknownStore(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, IsActive: true}, nil)

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	_, err := fx.service.GetBalance(ctx, userID, storeID)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}
