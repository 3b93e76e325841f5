package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrTxConflict is returned when a transaction loses a serialization race
// (deadlock or serialization failure). Callers retry a bounded number of
// times before surfacing a concurrency conflict.
var ErrTxConflict = errors.New("transaction serialization conflict")

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewLedgerRepository returns a LedgerRepository instance bound to the current transaction.
	NewLedgerRepository() LedgerRepository

	// NewScanDedupRepository returns a ScanDedupRepository instance bound to the current transaction.
	NewScanDedupRepository() ScanDedupRepository

	// NewPendingScanRepository returns a PendingScanRepository instance bound to the current transaction.
	NewPendingScanRepository() PendingScanRepository

	// NewSuspiciousScanRepository returns a SuspiciousScanRepository instance bound to the current transaction.
	NewSuspiciousScanRepository() SuspiciousScanRepository

	// NewDeviceRepository returns a DeviceRepository instance bound to the current transaction.
	NewDeviceRepository() DeviceRepository
}
