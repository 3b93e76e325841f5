package impl

import (
	"context"
	"log/slog"
	"testing"

	"stamply/config"
	"stamply/internal/domain/entity"
	domainerrors "stamply/internal/domain/errors"
	"stamply/internal/domain/repository"
	mockRepo "stamply/internal/mocks/repository"
	mockSvc "stamply/internal/mocks/service"
	"stamply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// redemptionServiceFixtures holds all test dependencies for redemption service tests.
type redemptionServiceFixtures struct {
	service    usecase.RedemptionUsecase
	txManager  *mockRepo.MockTransactionManager
	txFactory  *mockRepo.MockRepositoryFactory
	storeRepo  *mockRepo.MockStoreRepository
	userRepo   *mockRepo.MockUserRepository
	ledgerRepo *mockRepo.MockLedgerRepository
	config     *config.Config
}

func createTestRedemptionService(t *testing.T) redemptionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	cfg := &config.Config{Loyalty: testLoyaltyConfig()}

	service := NewRedemptionService(txManager, storeRepo, userRepo, publisher, cfg, slog.Default())

	return redemptionServiceFixtures{
		service:    service,
		txManager:  txManager,
		txFactory:  txFactory,
		storeRepo:  storeRepo,
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		config:     cfg,
	}
}

func (fx redemptionServiceFixtures) expectPair(ctx context.Context, userID, storeID uuid.UUID) {
	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, IsActive: true}, nil)

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, IsActive: true}, nil)
}

func (fx redemptionServiceFixtures) expectTxPassthrough(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.txFactory)
		})
	fx.txFactory.EXPECT().NewLedgerRepository().Return(fx.ledgerRepo)
}

func TestRedemptionService_Redeem_Success(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	input := &usecase.RedeemInput{
		UserID:      uuid.New(),
		StoreID:     uuid.New(),
		RewardTitle: "Free Americano",
		PointsCost:  10,
	}

	fx.expectPair(ctx, input.UserID, input.StoreID)
	fx.expectTxPassthrough(ctx)

	fx.ledgerRepo.EXPECT().
		LockBalance(ctx, input.UserID, input.StoreID).
		Return(&entity.PointBalance{UserID: input.UserID, StoreID: input.StoreID, Balance: 12}, nil)

	fx.ledgerRepo.EXPECT().
		SumDeltasByUserAndStore(ctx, input.UserID, input.StoreID).
		Return(12, nil)

	var debit *entity.LedgerEntry
	fx.ledgerRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.LedgerEntry")).
		Run(func(_ context.Context, entry *entity.LedgerEntry) {
			debit = entry
		}).
		Return(nil)

	var saved *entity.PointBalance
	fx.ledgerRepo.EXPECT().
		UpdateBalance(ctx, mock.AnythingOfType("*entity.PointBalance")).
		Run(func(_ context.Context, balance *entity.PointBalance) {
			saved = balance
		}).
		Return(nil)

	result, err := fx.service.Redeem(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.PointsSpent)
	assert.Equal(t, int64(2), result.Balance)

	require.NotNil(t, debit)
	assert.Equal(t, int64(-10), debit.Delta)
	assert.Equal(t, entity.EntryTypeRedeem, debit.Type)
	assert.Equal(t, "Free Americano", debit.RewardTitle)

	require.NotNil(t, saved)
	assert.Equal(t, int64(2), saved.Balance)
}

func TestRedemptionService_Redeem_InsufficientBalance(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	input := &usecase.RedeemInput{
		UserID:      uuid.New(),
		StoreID:     uuid.New(),
		RewardTitle: "Free Lunch",
		PointsCost:  100,
	}

	fx.expectPair(ctx, input.UserID, input.StoreID)
	fx.expectTxPassthrough(ctx)

	fx.ledgerRepo.EXPECT().
		LockBalance(ctx, input.UserID, input.StoreID).
		Return(&entity.PointBalance{UserID: input.UserID, StoreID: input.StoreID, Balance: 3}, nil)

	// No debit is appended when the fold comes up short.
	fx.ledgerRepo.EXPECT().
		SumDeltasByUserAndStore(ctx, input.UserID, input.StoreID).
		Return(3, nil)

	_, err := fx.service.Redeem(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
}

func TestRedemptionService_Redeem_ExactBalanceSucceeds(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	input := &usecase.RedeemInput{
		UserID:      uuid.New(),
		StoreID:     uuid.New(),
		RewardTitle: "Sticker",
		PointsCost:  5,
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

	fx.ledgerRepo.EXPECT().
		UpdateBalance(ctx, mock.AnythingOfType("*entity.PointBalance")).
		Return(nil)

	result, err := fx.service.Redeem(ctx, input)
	require.NoError(t, err)
	assert.Zero(t, result.Balance)
}

func TestRedemptionService_Redeem_NonPositiveCost(t *testing.T) {
	fx := createTestRedemptionService(t)

	_, err := fx.service.Redeem(context.Background(), &usecase.RedeemInput{
		UserID:     uuid.New(),
		StoreID:    uuid.New(),
		PointsCost: 0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPointsCost)

	_, err = fx.service.Redeem(context.Background(), &usecase.RedeemInput{
		UserID:     uuid.New(),
		StoreID:    uuid.New(),
		PointsCost: -5,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPointsCost)
}

func TestRedemptionService_Redeem_UnknownUser(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	input := &usecase.RedeemInput{
		UserID:     uuid.New(),
		StoreID:    uuid.New(),
		PointsCost: 1,
	}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, input.UserID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Redeem(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestRedemptionService_Redeem_ConflictRetriesExhausted(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	input := &usecase.RedeemInput{
		UserID:     uuid.New(),
		StoreID:    uuid.New(),
		PointsCost: 1,
	}

	fx.expectPair(ctx, input.UserID, input.StoreID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(repository.ErrTxConflict, "serialization failure")).
		Times(fx.config.Loyalty.MaxCommitRetries)

	_, err := fx.service.Redeem(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrConcurrencyConflict)
}

func TestRedemptionService_Redeem_RetriesThenSucceeds(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	input := &usecase.RedeemInput{
		UserID:     uuid.New(),
		StoreID:    uuid.New(),
		PointsCost: 2,
	}

	fx.expectPair(ctx, input.UserID, input.StoreID)

	// First attempt loses the race, second lands.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrTxConflict).
		Once()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.txFactory)
		}).
		Once()
	fx.txFactory.EXPECT().NewLedgerRepository().Return(fx.ledgerRepo)

	fx.ledgerRepo.EXPECT().
		LockBalance(ctx, input.UserID, input.StoreID).
		Return(&entity.PointBalance{UserID: input.UserID, StoreID: input.StoreID, Balance: 8}, nil)

	fx.ledgerRepo.EXPECT().
		SumDeltasByUserAndStore(ctx, input.UserID, input.StoreID).
		Return(8, nil)

	fx.ledgerRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.LedgerEntry")).
		Return(nil)

	fx.ledgerRepo.EXPECT().
		UpdateBalance(ctx, mock.AnythingOfType("*entity.PointBalance")).
		Return(nil)

	result, err := fx.service.Redeem(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(6), result.Balance)
}
