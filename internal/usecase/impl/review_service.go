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

type reviewService struct {
	txManager      repository.TransactionManager
	storeRepo      repository.StoreRepository
	pendingRepo    repository.PendingScanRepository
	suspiciousRepo repository.SuspiciousScanRepository
	publisher      service.EventPublisher
	loyalty        *config.LoyaltyConfig
	logger         *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(
	txManager repository.TransactionManager,
	storeRepo repository.StoreRepository,
	pendingRepo repository.PendingScanRepository,
	suspiciousRepo repository.SuspiciousScanRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager:      txManager,
		storeRepo:      storeRepo,
		pendingRepo:    pendingRepo,
		suspiciousRepo: suspiciousRepo,
		publisher:      publisher,
		loyalty:        cfg.LoyaltyOrDefault(),
		logger:         logger,
	}
}

// ListPendingScans retrieves pending scans matching the filter.
func (s *reviewService) ListPendingScans(ctx context.Context, input *usecase.PendingScanListInput) ([]*entity.PendingScan, error) {
	scans, err := s.pendingRepo.ListPendingScans(ctx, repository.PendingScanFilter{
		StoreID: input.StoreID,
		Status:  input.Status,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list pending scans")
	}

	return scans, nil
}

// ApprovePendingScan approves a pending scan and credits the points it
// withheld. The credit lands at approval time even if the scan day has
// passed; approval is the operator saying the scan was genuine. Approving an
// already-approved record is a no-op so duplicate clicks never double credit.
func (s *reviewService) ApprovePendingScan(ctx context.Context, id uuid.UUID) (*usecase.ApproveResult, error) {
	result := &usecase.ApproveResult{}
	var scan *entity.PendingScan

	err := s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		pendingRepo := txRepo.NewPendingScanRepository()

		var err error
		scan, err = pendingRepo.FindPendingScanByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		changed, err := scan.Approve(time.Now())
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		result.Changed = true

		store, err := s.storeRepo.FindStoreByID(ctx, scan.StoreID)
		if err != nil {
			return err
		}
		points := effectivePointValue(store, s.loyalty)

		ledgerRepo := txRepo.NewLedgerRepository()
		entry := &entity.LedgerEntry{
			ID:        uuid.New(),
			UserID:    scan.UserID,
			StoreID:   scan.StoreID,
			Delta:     points,
			Type:      entity.EntryTypeScan,
			Note:      "approved from pending review",
			CreatedAt: time.Now(),
		}
		if err := ledgerRepo.CreateEntry(ctx, entry); err != nil {
			return err
		}

		balance, err := ledgerRepo.LockBalance(ctx, scan.UserID, scan.StoreID)
		if err != nil {
			return err
		}
		balance.Balance += points
		balance.UpdatedAt = time.Now()
		if err := ledgerRepo.UpdateBalance(ctx, balance); err != nil {
			return err
		}

		result.LedgerEntryID = &entry.ID
		result.PointsEarned = points

		return pendingRepo.UpdatePendingScanStatus(ctx, scan)
	})
	if err != nil {
		return nil, s.mapReviewError(err, "failed to approve pending scan")
	}

	if result.Changed {
		s.publishAudit(ctx, &service.AuditEvent{
			Kind:     service.AuditPendingApproved,
			UserID:   scan.UserID.String(),
			StoreID:  scan.StoreID.String(),
			RecordID: scan.ID.String(),
			Points:   result.PointsEarned,
		})
	}

	return result, nil
}

// RejectPendingScan rejects a pending scan without ledger effect.
func (s *reviewService) RejectPendingScan(ctx context.Context, id uuid.UUID) error {
	var scan *entity.PendingScan
	var changed bool

	err := s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		pendingRepo := txRepo.NewPendingScanRepository()

		var err error
		scan, err = pendingRepo.FindPendingScanByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		changed, err = scan.Reject(time.Now())
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}

		return pendingRepo.UpdatePendingScanStatus(ctx, scan)
	})
	if err != nil {
		return s.mapReviewError(err, "failed to reject pending scan")
	}

	if changed {
		s.publishAudit(ctx, &service.AuditEvent{
			Kind:     service.AuditPendingRejected,
			UserID:   scan.UserID.String(),
			StoreID:  scan.StoreID.String(),
			RecordID: scan.ID.String(),
		})
	}

	return nil
}

// ListSuspiciousScans retrieves suspicious scans matching the filter.
func (s *reviewService) ListSuspiciousScans(ctx context.Context, input *usecase.SuspiciousScanListInput) ([]*entity.SuspiciousScan, error) {
	scans, err := s.suspiciousRepo.ListSuspiciousScans(ctx, repository.SuspiciousScanFilter{
		StoreID: input.StoreID,
		Status:  input.Status,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list suspicious scans")
	}

	return scans, nil
}

// MarkSuspiciousScanReviewed moves a suspicious scan from new to reviewed.
func (s *reviewService) MarkSuspiciousScanReviewed(ctx context.Context, id uuid.UUID) error {
	return s.transitionSuspicious(ctx, id, service.AuditSuspiciousReviewed,
		func(scan *entity.SuspiciousScan, now time.Time) (bool, error) {
			return scan.MarkReviewed(now)
		})
}

// DismissSuspiciousScan closes a suspicious scan as harmless. Dismissal never
// credits points; operators issue a manual adjustment when credit is due.
func (s *reviewService) DismissSuspiciousScan(ctx context.Context, id uuid.UUID) error {
	return s.transitionSuspicious(ctx, id, service.AuditSuspiciousDismissed,
		func(scan *entity.SuspiciousScan, now time.Time) (bool, error) {
			return scan.Dismiss(now)
		})
}

// BlockSuspiciousScan closes a suspicious scan as fraudulent. The user and
// device fingerprint enter the deny-list consulted on future scans.
func (s *reviewService) BlockSuspiciousScan(ctx context.Context, id uuid.UUID) error {
	return s.transitionSuspicious(ctx, id, service.AuditSuspiciousBlocked,
		func(scan *entity.SuspiciousScan, now time.Time) (bool, error) {
			return scan.Block(now)
		})
}

// transitionSuspicious applies a status transition under a row lock.
func (s *reviewService) transitionSuspicious(
	ctx context.Context,
	id uuid.UUID,
	auditKind string,
	transition func(*entity.SuspiciousScan, time.Time) (bool, error),
) error {
	var scan *entity.SuspiciousScan
	var changed bool

	err := s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		suspiciousRepo := txRepo.NewSuspiciousScanRepository()

		var err error
		scan, err = suspiciousRepo.FindSuspiciousScanByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		changed, err = transition(scan, time.Now())
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}

		return suspiciousRepo.UpdateSuspiciousScanStatus(ctx, scan)
	})
	if err != nil {
		return s.mapReviewError(err, "failed to update suspicious scan")
	}

	if changed {
		s.publishAudit(ctx, &service.AuditEvent{
			Kind:        auditKind,
			UserID:      scan.UserID.String(),
			StoreID:     scan.StoreID.String(),
			Fingerprint: scan.DeviceFingerprint,
			RecordID:    scan.ID.String(),
		})
	}

	return nil
}

// mapReviewError translates storage and transition errors to API errors.
func (s *reviewService) mapReviewError(err error, details string) error {
	switch {
	case errors.Is(err, repository.ErrPendingScanNotFound),
		errors.Is(err, repository.ErrSuspiciousScanNotFound):
		return domainerrors.ErrReviewRecordNotFound
	case errors.Is(err, repository.ErrStoreNotFound):
		return domainerrors.ErrStoreNotFound
	case errors.Is(err, entity.ErrInvalidTransition):
		return domainerrors.ErrReviewStateConflict
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func (s *reviewService) publishAudit(ctx context.Context, event *service.AuditEvent) {
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
