package service

import (
	"context"
	"time"
)

// Audit event kinds emitted by the engine. Every point-changing decision and
// review transition is observable through exactly one of these.
const (
	AuditScanAccepted        = "scan.accepted"
	AuditScanPending         = "scan.pending"
	AuditScanSuspicious      = "scan.suspicious"
	AuditScanDeduped         = "scan.deduped"
	AuditRedemptionCompleted = "redemption.completed"
	AuditRedemptionRejected  = "redemption.rejected"
	AuditPendingApproved     = "review.pending.approved"
	AuditPendingRejected     = "review.pending.rejected"
	AuditSuspiciousReviewed  = "review.suspicious.reviewed"
	AuditSuspiciousDismissed = "review.suspicious.dismissed"
	AuditSuspiciousBlocked   = "review.suspicious.blocked"
	AuditLedgerAdjusted      = "ledger.adjusted"
)

// AuditEvent is the record published for every engine transaction so external
// monitoring and notification collaborators can consume outcomes without
// reading the database.
type AuditEvent struct {
	EventID     string    `json:"event_id"`
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	Kind        string    `json:"kind"`
	UserID      string    `json:"user_id,omitempty"`
	StoreID     string    `json:"store_id,omitempty"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	RecordID    string    `json:"record_id,omitempty"` // Pending/suspicious/ledger record the event refers to.
	Points      int64     `json:"points,omitempty"`    // Signed point delta, when the event moved points.
	DistanceM   float64   `json:"distance_m,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing audit events to a message queue
type EventPublisher interface {
	// PublishAuditEvent publishes an audit event for async consumption
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
