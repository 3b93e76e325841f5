package impl

import (
	"context"
	"log/slog"
	"time"

	"stamply/config"
	deliveryctx "stamply/internal/delivery/context"
	"stamply/internal/domain/entity"
	domainerrors "stamply/internal/domain/errors"
	"stamply/internal/domain/repository"
	"stamply/internal/domain/service"
	"stamply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type redemptionService struct {
	txManager repository.TransactionManager
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
	publisher service.EventPublisher
	loyalty   *config.LoyaltyConfig
	logger    *slog.Logger
}

// NewRedemptionService creates a new redemption service instance
func NewRedemptionService(
	txManager repository.TransactionManager,
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RedemptionUsecase {
	return &redemptionService{
		txManager: txManager,
		storeRepo: storeRepo,
		userRepo:  userRepo,
		publisher: publisher,
		loyalty:   cfg.LoyaltyOrDefault(),
		logger:    logger,
	}
}

// Redeem atomically checks the balance and appends the debit entry. The
// cached balance row is locked first, so concurrent redemptions against the
// same (user, store) pair serialize and the balance can never go negative.
func (s *redemptionService) Redeem(ctx context.Context, input *usecase.RedeemInput) (*usecase.RedeemResult, error) {
	if input.PointsCost <= 0 {
		return nil, domainerrors.ErrInvalidPointsCost
	}

	if _, err := s.userRepo.FindUserByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by ID")
	}

	if _, err := s.storeRepo.FindStoreByID(ctx, input.StoreID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find store by ID")
	}

	entryID := uuid.New()
	var remaining int64

	execute := func() error {
		return s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
			ledgerRepo := txRepo.NewLedgerRepository()

			balance, err := ledgerRepo.LockBalance(ctx, input.UserID, input.StoreID)
			if err != nil {
				return err
			}

			// The ledger fold is the source of truth; the locked counter
			// only serializes writers for the pair.
			current, err := ledgerRepo.SumDeltasByUserAndStore(ctx, input.UserID, input.StoreID)
			if err != nil {
				return err
			}

			if current < input.PointsCost {
				return domainerrors.ErrInsufficientBalance
			}

			entry := &entity.LedgerEntry{
				ID:          entryID,
				UserID:      input.UserID,
				StoreID:     input.StoreID,
				Delta:       -input.PointsCost,
				Type:        entity.EntryTypeRedeem,
				RewardTitle: input.RewardTitle,
				CreatedAt:   time.Now(),
			}
			if err := ledgerRepo.CreateEntry(ctx, entry); err != nil {
				return err
			}

			remaining = current - input.PointsCost
			balance.Balance = remaining
			balance.UpdatedAt = time.Now()

			return ledgerRepo.UpdateBalance(ctx, balance)
		})
	}

	if err := s.executeWithRetry(ctx, execute); err != nil {
		if errors.Is(err, domainerrors.ErrInsufficientBalance) {
			s.publishAudit(ctx, &service.AuditEvent{
				Kind:    service.AuditRedemptionRejected,
				UserID:  input.UserID.String(),
				StoreID: input.StoreID.String(),
				Points:  -input.PointsCost,
				Detail:  "insufficient balance for " + input.RewardTitle,
			})

			return nil, domainerrors.ErrInsufficientBalance
		}

		return nil, err
	}

	s.publishAudit(ctx, &service.AuditEvent{
		Kind:     service.AuditRedemptionCompleted,
		UserID:   input.UserID.String(),
		StoreID:  input.StoreID.String(),
		RecordID: entryID.String(),
		Points:   -input.PointsCost,
		Detail:   input.RewardTitle,
	})

	return &usecase.RedeemResult{
		LedgerEntryID: entryID,
		PointsSpent:   input.PointsCost,
		Balance:       remaining,
	}, nil
}

func (s *redemptionService) executeWithRetry(ctx context.Context, fn func() error) error {
	maxRetries := s.loyalty.MaxCommitRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, repository.ErrTxConflict) {
			return err
		}

		if ctx.Err() != nil {
			return errors.Wrap(ctx.Err(), "redemption transaction canceled")
		}
	}

	return domainerrors.ErrConcurrencyConflict
}

func (s *redemptionService) publishAudit(ctx context.Context, event *service.AuditEvent) {
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
