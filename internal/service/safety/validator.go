package safety

import (
	"fmt"
	"math"
	"time"

	"github.com/aquaflow/hydration-engine/internal/domain"
)

// Limits hold the safety thresholds. Defaults follow common hydration
// guidance: 1500ml per trailing hour, 130% of the personal target, and
// a 6000ml absolute daily ceiling.
type Limits struct {
	RapidIntakeLimitMl   float64
	RapidIntakeWindow    time.Duration
	ExcessiveDailyFactor float64
	AbsoluteDailyMaxMl   float64
}

func DefaultLimits() Limits {
	return Limits{
		RapidIntakeLimitMl:   1500,
		RapidIntakeWindow:    time.Hour,
		ExcessiveDailyFactor: 1.3,
		AbsoluteDailyMaxMl:   6000,
	}
}

type Validator struct {
	limits Limits
}

func NewValidator(limits Limits) *Validator {
	return &Validator{limits: limits}
}

// RapidWindow reports the trailing window the rapid intake check covers.
// Callers use it to fetch just enough history for CheckSafetyWarnings.
func (v *Validator) RapidWindow() time.Duration {
	return v.limits.RapidIntakeWindow
}

// CheckSafetyWarnings evaluates a proposed intake against the rapid,
// excessive and absolute thresholds. The three checks are independent
// and cumulative; zero to three warnings may fire together. Warnings
// are advisory and never block the write.
func (v *Validator) CheckSafetyWarnings(
	now time.Time,
	currentIntakeMl float64,
	newIntakeMl float64,
	dailyTargetMl int,
	recentHistory []domain.IntakeEntry,
) domain.SafetyCheck {
	warnings := make([]domain.SafetyWarning, 0, 3)

	windowStart := now.Add(-v.limits.RapidIntakeWindow)
	recentTotal := newIntakeMl
	for _, entry := range recentHistory {
		if !entry.Timestamp.Before(windowStart) && !entry.Timestamp.After(now) {
			recentTotal += entry.AmountMl
		}
	}

	if recentTotal > v.limits.RapidIntakeLimitMl {
		warnings = append(warnings, domain.SafetyWarning{
			Kind: domain.WarningRapidIntake,
			Message: fmt.Sprintf(
				"Consuming %.0fml in 1 hour exceeds the safe rapid intake limit (%.0fml/hour). Space out your water intake to avoid water intoxication.",
				recentTotal, v.limits.RapidIntakeLimitMl,
			),
			Severity: domain.SeverityWarning,
		})
	}

	dailyTotal := currentIntakeMl + newIntakeMl

	excessiveThreshold := float64(dailyTargetMl) * v.limits.ExcessiveDailyFactor
	if dailyTotal > excessiveThreshold {
		warnings = append(warnings, domain.SafetyWarning{
			Kind: domain.WarningExcessiveDaily,
			Message: fmt.Sprintf(
				"Total intake of %.0fml exceeds 130%% of your daily target (%.0fml). Excessive water intake may lead to electrolyte imbalance.",
				dailyTotal, math.Round(excessiveThreshold),
			),
			Severity: domain.SeverityWarning,
		})
	}

	if dailyTotal > v.limits.AbsoluteDailyMaxMl {
		warnings = append(warnings, domain.SafetyWarning{
			Kind: domain.WarningExtremeDaily,
			Message: fmt.Sprintf(
				"Intake of %.0fml exceeds the safe daily maximum (%.0fml). This level of consumption requires medical supervision.",
				dailyTotal, v.limits.AbsoluteDailyMaxMl,
			),
			Severity: domain.SeverityWarning,
		})
	}

	return domain.SafetyCheck{
		HasWarning: len(warnings) > 0,
		Warnings:   warnings,
	}
}
