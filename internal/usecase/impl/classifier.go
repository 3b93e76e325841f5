package impl

import (
	"fmt"

	"stamply/config"
	"stamply/internal/domain/entity"
)

// scanClass is the classifier verdict for a single scan.
type scanClass int

const (
	classAccept scanClass = iota
	classPending
	classSuspicious
)

// classification carries the verdict together with the inputs that produced
// it, so callers can persist and audit the decision without recomputing.
type classification struct {
	class     scanClass
	distanceM float64
	reason    string // Set for pending and suspicious verdicts.
}

// effectiveAcceptanceRadius resolves the store override against the system default.
func effectiveAcceptanceRadius(store *entity.Store, cfg *config.LoyaltyConfig) float64 {
	if store.AcceptanceRadiusM > 0 {
		return store.AcceptanceRadiusM
	}

	return cfg.DefaultAcceptanceRadiusM
}

// effectivePendingRadius resolves the store override against the system default.
func effectivePendingRadius(store *entity.Store, cfg *config.LoyaltyConfig) float64 {
	if store.PendingRadiusM > 0 {
		return store.PendingRadiusM
	}

	return cfg.DefaultPendingRadiusM
}

// effectivePointValue resolves the store override against the system default.
func effectivePointValue(store *entity.Store, cfg *config.LoyaltyConfig) int64 {
	if store.PointValue > 0 {
		return store.PointValue
	}

	return cfg.DefaultPointValue
}

// classifyScan decides the path a scan takes. It is a pure function over its
// inputs; all I/O (deny-list lookup, previous scan lookup) happens before the
// call so the decision itself is deterministic and unit-testable.
//
// Precedence: deny-list beats everything, then the implied-travel-speed
// check, then the distance bands. A denied or impossibly fast scan is
// suspicious even when the reported coordinate sits inside the store.
func classifyScan(
	event *entity.ScanEvent,
	store *entity.Store,
	cfg *config.LoyaltyConfig,
	denied bool,
	impliedSpeedKmh float64,
) classification {
	distanceM := haversineMeters(event.Latitude, event.Longitude, store.Latitude, store.Longitude)

	if denied {
		return classification{
			class:     classSuspicious,
			distanceM: distanceM,
			reason:    "user or device on deny-list from a blocked scan",
		}
	}

	if cfg.MaxSpeedKmh > 0 && impliedSpeedKmh > cfg.MaxSpeedKmh {
		return classification{
			class:     classSuspicious,
			distanceM: distanceM,
			reason: fmt.Sprintf("implied travel speed %.0f km/h exceeds %.0f km/h",
				impliedSpeedKmh, cfg.MaxSpeedKmh),
		}
	}

	acceptanceRadius := effectiveAcceptanceRadius(store, cfg)
	pendingRadius := effectivePendingRadius(store, cfg)

	switch {
	case distanceM <= acceptanceRadius:
		return classification{
			class:     classAccept,
			distanceM: distanceM,
		}
	case distanceM <= pendingRadius:
		return classification{
			class:     classPending,
			distanceM: distanceM,
			reason: fmt.Sprintf("distance %.0fm outside acceptance radius %.0fm",
				distanceM, acceptanceRadius),
		}
	default:
		return classification{
			class:     classSuspicious,
			distanceM: distanceM,
			reason: fmt.Sprintf("distance %.0fm outside pending radius %.0fm",
				distanceM, pendingRadius),
		}
	}
}
