package impl

import (
	"context"
	"log/slog"
	"time"

	deliveryctx "stamply/internal/delivery/context"
	"stamply/internal/domain/entity"
	domainerrors "stamply/internal/domain/errors"
	"stamply/internal/domain/repository"
	"stamply/internal/domain/service"
	"stamply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type ledgerService struct {
	txManager  repository.TransactionManager
	ledgerRepo repository.LedgerRepository
	storeRepo  repository.StoreRepository
	userRepo   repository.UserRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// NewLedgerService creates a new ledger service instance
func NewLedgerService(
	txManager repository.TransactionManager,
	ledgerRepo repository.LedgerRepository,
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.LedgerUsecase {
	return &ledgerService{
		txManager:  txManager,
		ledgerRepo: ledgerRepo,
		storeRepo:  storeRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// GetBalance folds the ledger for a (user, store) pair into a balance.
func (s *ledgerService) GetBalance(ctx context.Context, userID, storeID uuid.UUID) (*usecase.BalanceResult, error) {
	if err := s.checkPair(ctx, userID, storeID); err != nil {
		return nil, err
	}

	balance, err := s.ledgerRepo.SumDeltasByUserAndStore(ctx, userID, storeID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to sum ledger deltas")
	}

	return &usecase.BalanceResult{
		UserID:  userID,
		StoreID: storeID,
		Balance: balance,
	}, nil
}

// GetHistory lists the pair's ledger entries, newest first.
func (s *ledgerService) GetHistory(ctx context.Context, userID, storeID uuid.UUID, limit, offset int) ([]*entity.LedgerEntry, error) {
	if err := s.checkPair(ctx, userID, storeID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.ledgerRepo.FindEntriesByUserAndStore(ctx, userID, storeID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find ledger entries")
	}

	return entries, nil
}

// AppendManualEntry appends an operator-issued bonus or adjustment entry.
// Negative adjustments are refused when they would take the balance below
// zero, preserving the no-negative-balance invariant.
func (s *ledgerService) AppendManualEntry(ctx context.Context, input *usecase.ManualEntryInput) (*entity.LedgerEntry, error) {
	if input.Type != entity.EntryTypeBonus && input.Type != entity.EntryTypeAdjustment {
		return nil, domainerrors.ErrInvalidEntryType
	}
	if input.Delta == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("delta must be non-zero")
	}
	if input.Type == entity.EntryTypeBonus && input.Delta < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("bonus delta must be positive")
	}

	if err := s.checkPair(ctx, input.UserID, input.StoreID); err != nil {
		return nil, err
	}

	entry := &entity.LedgerEntry{
		ID:        uuid.New(),
		UserID:    input.UserID,
		StoreID:   input.StoreID,
		Delta:     input.Delta,
		Type:      input.Type,
		Note:      input.Note,
		CreatedAt: time.Now(),
	}

	err := s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		ledgerRepo := txRepo.NewLedgerRepository()

		balance, err := ledgerRepo.LockBalance(ctx, input.UserID, input.StoreID)
		if err != nil {
			return err
		}

		current, err := ledgerRepo.SumDeltasByUserAndStore(ctx, input.UserID, input.StoreID)
		if err != nil {
			return err
		}

		if current+input.Delta < 0 {
			return domainerrors.ErrInsufficientBalance
		}

		if err := ledgerRepo.CreateEntry(ctx, entry); err != nil {
			return err
		}

		balance.Balance = current + input.Delta
		balance.UpdatedAt = time.Now()

		return ledgerRepo.UpdateBalance(ctx, balance)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInsufficientBalance) {
			return nil, domainerrors.ErrInsufficientBalance
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to append manual entry")
	}

	s.publishAudit(ctx, &service.AuditEvent{
		Kind:     service.AuditLedgerAdjusted,
		UserID:   input.UserID.String(),
		StoreID:  input.StoreID.String(),
		RecordID: entry.ID.String(),
		Points:   input.Delta,
		Detail:   input.Note,
	})

	return entry, nil
}

// ReconcileBalance recomputes the cached counter from the ledger fold and
// repairs it when they disagree. Safe to run at any time; the fold is the
// source of truth.
func (s *ledgerService) ReconcileBalance(ctx context.Context, userID, storeID uuid.UUID) (*usecase.ReconcileResult, error) {
	result := &usecase.ReconcileResult{
		UserID:  userID,
		StoreID: storeID,
	}

	err := s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		ledgerRepo := txRepo.NewLedgerRepository()

		balance, err := ledgerRepo.LockBalance(ctx, userID, storeID)
		if err != nil {
			return err
		}
		result.Counter = balance.Balance

		computed, err := ledgerRepo.SumDeltasByUserAndStore(ctx, userID, storeID)
		if err != nil {
			return err
		}
		result.Computed = computed

		if computed == balance.Balance {
			return nil
		}

		result.Repaired = true
		balance.Balance = computed
		balance.UpdatedAt = time.Now()

		return ledgerRepo.UpdateBalance(ctx, balance)
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to reconcile balance")
	}

	if result.Repaired {
		s.logger.Warn("repaired drifted balance counter",
			"user_id", userID.String(),
			"store_id", storeID.String(),
			"counter", result.Counter,
			"computed", result.Computed,
		)
	}

	return result, nil
}

// checkPair verifies both sides of a (user, store) pair exist.
func (s *ledgerService) checkPair(ctx context.Context, userID, storeID uuid.UUID) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find user by ID")
	}

	if _, err := s.storeRepo.FindStoreByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find store by ID")
	}

	return nil
}

func (s *ledgerService) publishAudit(ctx context.Context, event *service.AuditEvent) {
	event.EventID = uuid.New().String()
	event.RequestID = deliveryctx.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now()

	if err := s.publisher.PublishAuditEvent(ctx, event); err != nil {
		deliveryctx.GetLoggerOrDefault(ctx, s.logger).Warn("failed to publish audit event",
			"kind", event.Kind,
			"error", err.Error(),
		)
	}
}
