package config

import "testing"

func TestLoyaltyOrDefault_AbsentSection(t *testing.T) {
	cfg := &Config{}

	got := cfg.LoyaltyOrDefault()
	want := DefaultLoyalty()
	if *got != *want {
		t.Fatalf("LoyaltyOrDefault() = %+v, want %+v", got, want)
	}
	if cfg.Loyalty != nil {
		t.Fatal("LoyaltyOrDefault() mutated the config")
	}
}

func TestLoyaltyOrDefault_PartialSectionKeepsRemainingDefaults(t *testing.T) {
	cfg := &Config{Loyalty: &LoyaltyConfig{DefaultAcceptanceRadiusM: 50}}

	got := cfg.LoyaltyOrDefault()
	if got.DefaultAcceptanceRadiusM != 50 {
		t.Fatalf("DefaultAcceptanceRadiusM = %v, want 50", got.DefaultAcceptanceRadiusM)
	}
	if got.DefaultPendingRadiusM != 500 {
		t.Fatalf("DefaultPendingRadiusM = %v, want 500", got.DefaultPendingRadiusM)
	}
	if got.DefaultPointValue != 1 {
		t.Fatalf("DefaultPointValue = %v, want 1", got.DefaultPointValue)
	}
	if got.MaxSpeedKmh != 900 {
		t.Fatalf("MaxSpeedKmh = %v, want 900", got.MaxSpeedKmh)
	}
	if got.MaxCommitRetries != 3 {
		t.Fatalf("MaxCommitRetries = %v, want 3", got.MaxCommitRetries)
	}

	if cfg.Loyalty.DefaultPendingRadiusM != 0 {
		t.Fatal("LoyaltyOrDefault() wrote defaults back into the config")
	}
}

func TestLoyaltyOrDefault_NegativeSpeedDisablesCheck(t *testing.T) {
	cfg := &Config{Loyalty: &LoyaltyConfig{MaxSpeedKmh: -1}}

	if got := cfg.LoyaltyOrDefault(); got.MaxSpeedKmh != -1 {
		t.Fatalf("MaxSpeedKmh = %v, want -1", got.MaxSpeedKmh)
	}
}
