package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingScan_ApproveFromPending(t *testing.T) {
	now := time.Now()
	scan := &PendingScan{Status: PendingStatusPending}

	changed, err := scan.Approve(now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, PendingStatusApproved, scan.Status)
	require.NotNil(t, scan.ReviewedAt)
	assert.Equal(t, now, *scan.ReviewedAt)
}

func TestPendingScan_ApproveIsIdempotent(t *testing.T) {
	now := time.Now()
	scan := &PendingScan{Status: PendingStatusPending}

	changed, err := scan.Approve(now)
	require.NoError(t, err)
	assert.True(t, changed)

	later := now.Add(time.Minute)
	changed, err = scan.Approve(later)
	require.NoError(t, err)
	assert.False(t, changed)
	// The original review timestamp is preserved.
	assert.Equal(t, now, *scan.ReviewedAt)
}

func TestPendingScan_ApproveAfterRejectConflicts(t *testing.T) {
	now := time.Now()
	scan := &PendingScan{Status: PendingStatusPending}

	changed, err := scan.Reject(now)
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = scan.Approve(now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, PendingStatusRejected, scan.Status)
}

func TestPendingScan_RejectIsIdempotent(t *testing.T) {
	now := time.Now()
	scan := &PendingScan{Status: PendingStatusRejected}

	changed, err := scan.Reject(now)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, scan.ReviewedAt)
}

func TestSuspiciousScan_ReviewDismissFlow(t *testing.T) {
	now := time.Now()
	scan := &SuspiciousScan{Status: SuspiciousStatusNew}

	changed, err := scan.MarkReviewed(now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, SuspiciousStatusReviewed, scan.Status)

	changed, err = scan.Dismiss(now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, SuspiciousStatusDismissed, scan.Status)

	// Dismissed is terminal: block must conflict, dismiss is a no-op.
	_, err = scan.Block(now)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	changed, err = scan.Dismiss(now)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSuspiciousScan_BlockFromNew(t *testing.T) {
	now := time.Now()
	scan := &SuspiciousScan{Status: SuspiciousStatusNew}

	changed, err := scan.Block(now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, SuspiciousStatusBlocked, scan.Status)

	// Blocking again is a no-op, not an error.
	changed, err = scan.Block(now)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSuspiciousScan_ReviewAfterBlockConflicts(t *testing.T) {
	now := time.Now()
	scan := &SuspiciousScan{Status: SuspiciousStatusBlocked}

	_, err := scan.MarkReviewed(now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestScanDay_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	// 03:00 on the 2nd in UTC+8 is still the 1st in UTC.
	local := time.Date(2025, 6, 2, 3, 0, 0, 0, loc)

	assert.Equal(t, "2025-06-01", ScanDay(local))
}
