package config

import (
	"os"
	"strconv"
)

const (
	recencySuppressionMinutesEnv = "RECENCY_SUPPRESSION_MINUTES"
	rapidIntakeLimitMlEnv        = "RAPID_INTAKE_LIMIT_ML"
	rapidIntakeWindowMinutesEnv  = "RAPID_INTAKE_WINDOW_MINUTES"
	excessiveDailyPercentEnv     = "EXCESSIVE_DAILY_PERCENT"
	absoluteDailyMaxMlEnv        = "ABSOLUTE_DAILY_MAX_ML"

	defaultRecencySuppressionMinutes = 30
	defaultRapidIntakeLimitMl        = 1500
	defaultRapidIntakeWindowMinutes  = 60
	defaultExcessiveDailyPercent     = 130
	defaultAbsoluteDailyMaxMl        = 6000
)

// HydrationConfig carries the reminder-suppression and safety thresholds.
// Defaults match published hydration guidance; overrides exist for
// experimentation, not for per-user tuning.
type HydrationConfig struct {
	RecencySuppressionMinutes int
	RapidIntakeLimitMl        int
	RapidIntakeWindowMinutes  int
	ExcessiveDailyPercent     int
	AbsoluteDailyMaxMl        int
}

func LoadHydrationConfig() *HydrationConfig {
	return &HydrationConfig{
		RecencySuppressionMinutes: positiveIntFromEnv(recencySuppressionMinutesEnv, defaultRecencySuppressionMinutes),
		RapidIntakeLimitMl:        positiveIntFromEnv(rapidIntakeLimitMlEnv, defaultRapidIntakeLimitMl),
		RapidIntakeWindowMinutes:  positiveIntFromEnv(rapidIntakeWindowMinutesEnv, defaultRapidIntakeWindowMinutes),
		ExcessiveDailyPercent:     positiveIntFromEnv(excessiveDailyPercentEnv, defaultExcessiveDailyPercent),
		AbsoluteDailyMaxMl:        positiveIntFromEnv(absoluteDailyMaxMlEnv, defaultAbsoluteDailyMaxMl),
	}
}

func positiveIntFromEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
