package progress

import (
	"math"
	"time"

	"github.com/aquaflow/hydration-engine/internal/domain"
)

// Summary aggregates one local calendar day of intake entries.
type Summary struct {
	TotalIntakeMl float64 `json:"total_intake_ml"`
	RemainingMl   float64 `json:"remaining_ml"`
	IsTargetMet   bool    `json:"is_target_met"`
}

type Tracker struct{}

func NewTracker() *Tracker {
	return &Tracker{}
}

// TrackIntake sums the entries that fall on the same local calendar day
// as now (midnight-to-midnight) and reports total, remaining and
// target-met status. Entries from other days are ignored, not an error.
func (t *Tracker) TrackIntake(now time.Time, dailyTargetMl int, entries []domain.IntakeEntry) Summary {
	var total float64
	for _, entry := range entries {
		if entry.OnLocalDay(now) {
			total += entry.AmountMl
		}
	}

	return Summary{
		TotalIntakeMl: total,
		RemainingMl:   math.Max(0, float64(dailyTargetMl)-total),
		IsTargetMet:   total >= float64(dailyTargetMl),
	}
}

// Percentage reports display progress, clamped so over-consumption
// never exceeds 100.
func Percentage(currentIntakeMl float64, dailyTargetMl int) int {
	if dailyTargetMl <= 0 {
		return 0
	}

	pct := int(math.Round(currentIntakeMl / float64(dailyTargetMl) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
