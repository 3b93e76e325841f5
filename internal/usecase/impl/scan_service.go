package impl

import (
	"context"
	"log/slog"
	"math"
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

type scanService struct {
	txManager      repository.TransactionManager
	storeRepo      repository.StoreRepository
	userRepo       repository.UserRepository
	deviceRepo     repository.DeviceRepository
	ledgerRepo     repository.LedgerRepository
	dedupRepo      repository.ScanDedupRepository
	suspiciousRepo repository.SuspiciousScanRepository
	qrService      service.QRCodeService
	publisher      service.EventPublisher
	loyalty        *config.LoyaltyConfig
	logger         *slog.Logger
}

// NewScanService creates a new scan service instance
func NewScanService(
	txManager repository.TransactionManager,
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	deviceRepo repository.DeviceRepository,
	ledgerRepo repository.LedgerRepository,
	dedupRepo repository.ScanDedupRepository,
	suspiciousRepo repository.SuspiciousScanRepository,
	qrService service.QRCodeService,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ScanUsecase {
	return &scanService{
		txManager:      txManager,
		storeRepo:      storeRepo,
		userRepo:       userRepo,
		deviceRepo:     deviceRepo,
		ledgerRepo:     ledgerRepo,
		dedupRepo:      dedupRepo,
		suspiciousRepo: suspiciousRepo,
		qrService:      qrService,
		publisher:      publisher,
		loyalty:        cfg.LoyaltyOrDefault(),
		logger:         logger,
	}
}

// ProcessScan validates a reported scan and routes it to exactly one outcome.
func (s *scanService) ProcessScan(ctx context.Context, input *usecase.ScanInput) (*usecase.ScanResult, error) {
	if !isValidCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	occurredAt := input.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	event := &entity.ScanEvent{
		UserID:            input.UserID,
		StoreID:           input.StoreID,
		DeviceFingerprint: input.DeviceFingerprint,
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
		OccurredAt:        occurredAt,
	}

	store, err := s.resolveParticipants(ctx, event)
	if err != nil {
		return nil, err
	}

	// Dedup fast path: a marker means the pair already earned today.
	day := entity.ScanDay(occurredAt)
	if _, err := s.dedupRepo.FindMarker(ctx, input.UserID, input.StoreID, day); err == nil {
		return s.handleDuplicate(ctx, event, day)
	} else if !errors.Is(err, repository.ErrMarkerNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check scan dedup marker")
	}

	denied, err := s.suspiciousRepo.HasBlockedScan(ctx, input.UserID, input.DeviceFingerprint)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check deny-list")
	}

	impliedSpeed, err := s.impliedSpeedKmh(ctx, event)
	if err != nil {
		return nil, err
	}

	verdict := classifyScan(event, store, s.loyalty, denied, impliedSpeed)

	switch verdict.class {
	case classAccept:
		return s.acceptScan(ctx, event, store, day, verdict)
	case classPending:
		return s.parkPending(ctx, event, verdict)
	default:
		return s.flagSuspicious(ctx, event, store, verdict)
	}
}

// ResolveScanTarget parses a QR payload into the store it identifies.
func (s *scanService) ResolveScanTarget(ctx context.Context, qrData string) (*entity.Store, error) {
	storeID, err := s.qrService.ParseStoreQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find store by ID")
	}

	return store, nil
}

// resolveParticipants loads and checks the user, store and device of a scan.
func (s *scanService) resolveParticipants(ctx context.Context, event *entity.ScanEvent) (*entity.Store, error) {
	user, err := s.userRepo.FindUserByID(ctx, event.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by ID")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserNotFound
	}

	store, err := s.storeRepo.FindStoreByID(ctx, event.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find store by ID")
	}
	if !store.IsActive {
		return nil, domainerrors.ErrStoreInactive
	}

	device, err := s.deviceRepo.FindDeviceByFingerprint(ctx, event.DeviceFingerprint)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device by fingerprint")
	}
	if !device.IsActive {
		return nil, domainerrors.ErrDeviceNotFound
	}
	if device.StoreID != event.StoreID {
		return nil, domainerrors.ErrDeviceStoreMismatch
	}

	return store, nil
}

// impliedSpeedKmh computes the travel speed implied by the user's previous
// scan credit. Returns 0 when there is no previous scan to compare against.
func (s *scanService) impliedSpeedKmh(ctx context.Context, event *entity.ScanEvent) (float64, error) {
	last, err := s.ledgerRepo.FindLastScanEntryByUser(ctx, event.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrLedgerEntryNotFound) {
			return 0, nil
		}

		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to find last scan entry")
	}

	prevStore, err := s.storeRepo.FindStoreByID(ctx, last.StoreID)
	if err != nil {
		// The previous store may have been removed from the directory;
		// skip the heuristic rather than fail the scan.
		if errors.Is(err, repository.ErrStoreNotFound) {
			return 0, nil
		}

		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to find previous scan store")
	}

	distanceKm := haversineMeters(prevStore.Latitude, prevStore.Longitude, event.Latitude, event.Longitude) / 1000
	hours := event.OccurredAt.Sub(last.CreatedAt).Hours()
	if hours <= 0 {
		// Same instant or clock skew: any displacement is implausible.
		if distanceKm > 1 {
			return math.Inf(1), nil
		}

		return 0, nil
	}

	return distanceKm / hours, nil
}

// handleDuplicate bumps the repeat counter and reports the deduped outcome.
// Only the first repeat of the day is published to the audit stream.
func (s *scanService) handleDuplicate(ctx context.Context, event *entity.ScanEvent, day string) (*usecase.ScanResult, error) {
	count, err := s.dedupRepo.IncrementDuplicateCount(ctx, event.UserID, event.StoreID, day)
	if err != nil && !errors.Is(err, repository.ErrMarkerNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count duplicate scan")
	}

	if count == 1 {
		s.publishAudit(ctx, &service.AuditEvent{
			Kind:        service.AuditScanDeduped,
			UserID:      event.UserID.String(),
			StoreID:     event.StoreID.String(),
			Fingerprint: event.DeviceFingerprint,
			Detail:      "repeat scan on already-credited day",
			OccurredAt:  event.OccurredAt,
		})
	}

	return &usecase.ScanResult{
		Outcome: usecase.ScanOutcomeDeduped,
		Reason:  "already earned at this store today",
	}, nil
}

// acceptScan credits the scan atomically: dedup marker, ledger entry, cached
// balance and device touch all land in one transaction. The unique index on
// the marker is the serialization point; a concurrent winner turns this call
// into a deduped outcome.
func (s *scanService) acceptScan(
	ctx context.Context,
	event *entity.ScanEvent,
	store *entity.Store,
	day string,
	verdict classification,
) (*usecase.ScanResult, error) {
	points := effectivePointValue(store, s.loyalty)
	entryID := uuid.New()

	execute := func() error {
		return s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
			marker := &entity.ScanDedupMarker{
				ID:        uuid.New(),
				UserID:    event.UserID,
				StoreID:   event.StoreID,
				Day:       day,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := txRepo.NewScanDedupRepository().CreateMarker(ctx, marker); err != nil {
				return err
			}

			ledgerRepo := txRepo.NewLedgerRepository()
			entry := &entity.LedgerEntry{
				ID:        entryID,
				UserID:    event.UserID,
				StoreID:   event.StoreID,
				Delta:     points,
				Type:      entity.EntryTypeScan,
				CreatedAt: time.Now(),
			}
			if err := ledgerRepo.CreateEntry(ctx, entry); err != nil {
				return err
			}

			balance, err := ledgerRepo.LockBalance(ctx, event.UserID, event.StoreID)
			if err != nil {
				return err
			}
			balance.Balance += points
			balance.UpdatedAt = time.Now()
			if err := ledgerRepo.UpdateBalance(ctx, balance); err != nil {
				return err
			}

			device, err := txRepo.NewDeviceRepository().FindDeviceByFingerprint(ctx, event.DeviceFingerprint)
			if err != nil {
				return err
			}

			return txRepo.NewDeviceRepository().TouchDevice(ctx, device.ID, event.UserID, event.OccurredAt)
		})
	}

	err := s.executeWithRetry(ctx, execute)
	if err != nil {
		// A concurrent scan won the marker insert; this one dedupes.
		if errors.Is(err, repository.ErrDuplicateScan) {
			return s.handleDuplicate(ctx, event, day)
		}

		return nil, err
	}

	s.publishAudit(ctx, &service.AuditEvent{
		Kind:        service.AuditScanAccepted,
		UserID:      event.UserID.String(),
		StoreID:     event.StoreID.String(),
		Fingerprint: event.DeviceFingerprint,
		RecordID:    entryID.String(),
		Points:      points,
		DistanceM:   verdict.distanceM,
		OccurredAt:  event.OccurredAt,
	})

	return &usecase.ScanResult{
		Outcome:       usecase.ScanOutcomeAccepted,
		DistanceM:     verdict.distanceM,
		PointsEarned:  points,
		LedgerEntryID: &entryID,
	}, nil
}

// parkPending records the scan in the pending review queue without moving points.
func (s *scanService) parkPending(ctx context.Context, event *entity.ScanEvent, verdict classification) (*usecase.ScanResult, error) {
	pending := &entity.PendingScan{
		ID:                uuid.New(),
		UserID:            event.UserID,
		StoreID:           event.StoreID,
		DeviceFingerprint: event.DeviceFingerprint,
		Latitude:          event.Latitude,
		Longitude:         event.Longitude,
		DistanceM:         verdict.distanceM,
		Status:            entity.PendingStatusPending,
		OccurredAt:        event.OccurredAt,
		CreatedAt:         time.Now(),
	}

	err := s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		return txRepo.NewPendingScanRepository().CreatePendingScan(ctx, pending)
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create pending scan")
	}

	s.publishAudit(ctx, &service.AuditEvent{
		Kind:        service.AuditScanPending,
		UserID:      event.UserID.String(),
		StoreID:     event.StoreID.String(),
		Fingerprint: event.DeviceFingerprint,
		RecordID:    pending.ID.String(),
		DistanceM:   verdict.distanceM,
		Detail:      verdict.reason,
		OccurredAt:  event.OccurredAt,
	})

	return &usecase.ScanResult{
		Outcome:   usecase.ScanOutcomePending,
		DistanceM: verdict.distanceM,
		RecordID:  &pending.ID,
		Reason:    verdict.reason,
	}, nil
}

// flagSuspicious records the scan in the suspicious queue without moving points.
func (s *scanService) flagSuspicious(ctx context.Context, event *entity.ScanEvent, store *entity.Store, verdict classification) (*usecase.ScanResult, error) {
	suspicious := &entity.SuspiciousScan{
		ID:                uuid.New(),
		UserID:            event.UserID,
		StoreID:           event.StoreID,
		DeviceFingerprint: event.DeviceFingerprint,
		ScanLatitude:      event.Latitude,
		ScanLongitude:     event.Longitude,
		StoreLatitude:     store.Latitude,
		StoreLongitude:    store.Longitude,
		DistanceM:         verdict.distanceM,
		Reason:            verdict.reason,
		Status:            entity.SuspiciousStatusNew,
		OccurredAt:        event.OccurredAt,
		CreatedAt:         time.Now(),
	}

	err := s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		return txRepo.NewSuspiciousScanRepository().CreateSuspiciousScan(ctx, suspicious)
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create suspicious scan")
	}

	s.publishAudit(ctx, &service.AuditEvent{
		Kind:        service.AuditScanSuspicious,
		UserID:      event.UserID.String(),
		StoreID:     event.StoreID.String(),
		Fingerprint: event.DeviceFingerprint,
		RecordID:    suspicious.ID.String(),
		DistanceM:   verdict.distanceM,
		Detail:      verdict.reason,
		OccurredAt:  event.OccurredAt,
	})

	return &usecase.ScanResult{
		Outcome:   usecase.ScanOutcomeSuspicious,
		DistanceM: verdict.distanceM,
		RecordID:  &suspicious.ID,
		Reason:    verdict.reason,
	}, nil
}

// executeWithRetry runs fn, retrying serialization conflicts a bounded number
// of times before surfacing a concurrency conflict to the caller.
func (s *scanService) executeWithRetry(ctx context.Context, fn func() error) error {
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
			return errors.Wrap(ctx.Err(), "scan transaction canceled")
		}
	}

	return domainerrors.ErrConcurrencyConflict
}

// publishAudit publishes best-effort; a broken audit stream never fails the
// transaction it describes.
func (s *scanService) publishAudit(ctx context.Context, event *service.AuditEvent) {
	event.EventID = uuid.New().String()
	event.RequestID = deliveryctx.GetRequestIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	if err := s.publisher.PublishAuditEvent(ctx, event); err != nil {
		deliveryctx.GetLoggerOrDefault(ctx, s.logger).Warn("failed to publish audit event",
			"kind", event.Kind,
			"error", err.Error(),
		)
	}
}
