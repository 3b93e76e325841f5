package impl

import (
	"math"
	"testing"
	"time"

	"stamply/config"
	"stamply/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testLoyaltyConfig() *config.LoyaltyConfig {
	return &config.LoyaltyConfig{
		DefaultAcceptanceRadiusM: 100,
		DefaultPendingRadiusM:    500,
		DefaultPointValue:        1,
		MaxSpeedKmh:              900,
		MaxCommitRetries:         3,
	}
}

// Taipei 101 as the store anchor for geo tests.
func testStore() *entity.Store {
	return &entity.Store{
		ID:        uuid.New(),
		Name:      "Taipei 101 Branch",
		Latitude:  25.0330,
		Longitude: 121.5654,
		IsActive:  true,
	}
}

func testScanEvent(store *entity.Store, lat, lng float64) *entity.ScanEvent {
	return &entity.ScanEvent{
		UserID:            uuid.New(),
		StoreID:           store.ID,
		DeviceFingerprint: "fp-test",
		Latitude:          lat,
		Longitude:         lng,
		OccurredAt:        time.Now(),
	}
}

func TestHaversineMeters_KnownDistance(t *testing.T) {
	// Taipei Main Station to Taipei 101 is roughly 5km.
	distance := haversineMeters(25.0478, 121.5170, 25.0330, 121.5654)
	assert.InDelta(t, 4900, distance, 600)

	// Zero distance for identical points.
	assert.Zero(t, haversineMeters(25.0330, 121.5654, 25.0330, 121.5654))
}

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, isValidCoordinate(25.0330, 121.5654))
	assert.True(t, isValidCoordinate(-90, 180))
	assert.False(t, isValidCoordinate(91, 0))
	assert.False(t, isValidCoordinate(0, -181))
	assert.False(t, isValidCoordinate(math.NaN(), 0))
	assert.False(t, isValidCoordinate(0, math.Inf(1)))
}

func TestClassifyScan_WithinAcceptanceRadius(t *testing.T) {
	store := testStore()
	// ~50m north of the store.
	event := testScanEvent(store, store.Latitude+0.00045, store.Longitude)

	verdict := classifyScan(event, store, testLoyaltyConfig(), false, 0)

	assert.Equal(t, classAccept, verdict.class)
	assert.Less(t, verdict.distanceM, 100.0)
	assert.Empty(t, verdict.reason)
}

func TestClassifyScan_BetweenRadii(t *testing.T) {
	store := testStore()
	// ~300m north of the store.
	event := testScanEvent(store, store.Latitude+0.0027, store.Longitude)

	verdict := classifyScan(event, store, testLoyaltyConfig(), false, 0)

	assert.Equal(t, classPending, verdict.class)
	assert.Greater(t, verdict.distanceM, 100.0)
	assert.Less(t, verdict.distanceM, 500.0)
	assert.NotEmpty(t, verdict.reason)
}

func TestClassifyScan_OutsidePendingRadius(t *testing.T) {
	store := testStore()
	// ~10km north of the store.
	event := testScanEvent(store, store.Latitude+0.09, store.Longitude)

	verdict := classifyScan(event, store, testLoyaltyConfig(), false, 0)

	assert.Equal(t, classSuspicious, verdict.class)
	assert.Greater(t, verdict.distanceM, 500.0)
	assert.Contains(t, verdict.reason, "pending radius")
}

func TestClassifyScan_AtStoreCoordinate(t *testing.T) {
	store := testStore()
	event := testScanEvent(store, store.Latitude, store.Longitude)

	verdict := classifyScan(event, store, testLoyaltyConfig(), false, 0)

	assert.Equal(t, classAccept, verdict.class)
	assert.Zero(t, verdict.distanceM)
}

func TestClassifyScan_DenyListOverridesDistance(t *testing.T) {
	store := testStore()
	// Standing right at the counter, but on the deny-list.
	event := testScanEvent(store, store.Latitude, store.Longitude)

	verdict := classifyScan(event, store, testLoyaltyConfig(), true, 0)

	assert.Equal(t, classSuspicious, verdict.class)
	assert.Contains(t, verdict.reason, "deny-list")
}

func TestClassifyScan_ImpossibleSpeedOverridesDistance(t *testing.T) {
	store := testStore()
	event := testScanEvent(store, store.Latitude, store.Longitude)

	verdict := classifyScan(event, store, testLoyaltyConfig(), false, 1800)

	assert.Equal(t, classSuspicious, verdict.class)
	assert.Contains(t, verdict.reason, "travel speed")
}

func TestClassifyScan_SpeedCheckDisabledWhenZero(t *testing.T) {
	store := testStore()
	event := testScanEvent(store, store.Latitude, store.Longitude)
	cfg := testLoyaltyConfig()
	cfg.MaxSpeedKmh = 0

	verdict := classifyScan(event, store, cfg, false, 1800)

	assert.Equal(t, classAccept, verdict.class)
}

func TestClassifyScan_StoreOverridesBeatDefaults(t *testing.T) {
	store := testStore()
	store.AcceptanceRadiusM = 1000
	store.PendingRadiusM = 2000
	// ~300m away: pending under defaults, accepted under the override.
	event := testScanEvent(store, store.Latitude+0.0027, store.Longitude)

	verdict := classifyScan(event, store, testLoyaltyConfig(), false, 0)

	assert.Equal(t, classAccept, verdict.class)
}

func TestEffectivePointValue(t *testing.T) {
	store := testStore()
	cfg := testLoyaltyConfig()

	assert.Equal(t, int64(1), effectivePointValue(store, cfg))

	store.PointValue = 5
	assert.Equal(t, int64(5), effectivePointValue(store, cfg))
}
