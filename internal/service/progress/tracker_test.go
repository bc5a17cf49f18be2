package progress

import (
	"testing"
	"time"

	"github.com/aquaflow/hydration-engine/internal/domain"
)

func TestTracker_TrackIntake(t *testing.T) {
	tracker := NewTracker()
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	entries := []domain.IntakeEntry{
		{AmountMl: 300, Timestamp: now.Add(-6 * time.Hour)},
		{AmountMl: 500, Timestamp: now.Add(-2 * time.Hour)},
		{AmountMl: 250, Timestamp: now.Add(-10 * time.Minute)},
		// Yesterday's entry must not count.
		{AmountMl: 900, Timestamp: now.Add(-24 * time.Hour)},
		// Tomorrow's entry must not count either.
		{AmountMl: 400, Timestamp: now.Add(10 * time.Hour)},
	}

	summary := tracker.TrackIntake(now, 2100, entries)

	if summary.TotalIntakeMl != 1050 {
		t.Errorf("TotalIntakeMl = %.0f, want 1050", summary.TotalIntakeMl)
	}
	if summary.RemainingMl != 1050 {
		t.Errorf("RemainingMl = %.0f, want 1050", summary.RemainingMl)
	}
	if summary.IsTargetMet {
		t.Error("IsTargetMet = true, want false")
	}
}

func TestTracker_TrackIntake_TargetMet(t *testing.T) {
	tracker := NewTracker()
	now := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)

	entries := []domain.IntakeEntry{
		{AmountMl: 1500, Timestamp: now.Add(-8 * time.Hour)},
		{AmountMl: 900, Timestamp: now.Add(-1 * time.Hour)},
	}

	summary := tracker.TrackIntake(now, 2100, entries)

	if summary.TotalIntakeMl != 2400 {
		t.Errorf("TotalIntakeMl = %.0f, want 2400", summary.TotalIntakeMl)
	}
	// Remaining never goes negative.
	if summary.RemainingMl != 0 {
		t.Errorf("RemainingMl = %.0f, want 0", summary.RemainingMl)
	}
	if !summary.IsTargetMet {
		t.Error("IsTargetMet = false, want true")
	}
}

func TestTracker_TrackIntake_NoEntries(t *testing.T) {
	tracker := NewTracker()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	summary := tracker.TrackIntake(now, 1800, nil)

	if summary.TotalIntakeMl != 0 || summary.RemainingMl != 1800 || summary.IsTargetMet {
		t.Errorf("unexpected summary for empty history: %+v", summary)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name            string
		currentIntakeMl float64
		dailyTargetMl   int
		want            int
	}{
		{name: "zero intake", currentIntakeMl: 0, dailyTargetMl: 2100, want: 0},
		{name: "half way", currentIntakeMl: 1050, dailyTargetMl: 2100, want: 50},
		{name: "rounds to nearest", currentIntakeMl: 800, dailyTargetMl: 2450, want: 33},
		{name: "exactly met", currentIntakeMl: 2100, dailyTargetMl: 2100, want: 100},
		{name: "over-consumption clamps to 100", currentIntakeMl: 3500, dailyTargetMl: 2100, want: 100},
		{name: "degenerate target", currentIntakeMl: 500, dailyTargetMl: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage(tt.currentIntakeMl, tt.dailyTargetMl); got != tt.want {
				t.Errorf("Percentage(%.0f, %d) = %d, want %d", tt.currentIntakeMl, tt.dailyTargetMl, got, tt.want)
			}
		})
	}
}
