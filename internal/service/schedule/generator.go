package schedule

import (
	"github.com/aquaflow/hydration-engine/internal/domain"
	"github.com/aquaflow/hydration-engine/internal/service/interval"
	"github.com/aquaflow/hydration-engine/internal/service/target"
	"github.com/aquaflow/hydration-engine/internal/service/window"
)

// Standard per-reminder volumes in milliliters.
const (
	standardSmallMl  = 150
	standardMediumMl = 200
	standardLargeMl  = 250

	smallCutoffMl  = 175
	mediumCutoffMl = 225
)

type Generator struct {
	targetCalc   *target.Calculator
	windowCalc   *window.Calculator
	intervalCalc *interval.Calculator
}

func NewGenerator(
	targetCalc *target.Calculator,
	windowCalc *window.Calculator,
	intervalCalc *interval.Calculator,
) *Generator {
	return &Generator{
		targetCalc:   targetCalc,
		windowCalc:   windowCalc,
		intervalCalc: intervalCalc,
	}
}

// Generate composes the daily target, active window and reminder interval
// into an ordered reminder schedule starting at wake time. The result is
// a pure function of the profile; identical input yields identical output.
func (g *Generator) Generate(profile *domain.Profile) (*domain.ReminderSchedule, error) {
	dailyTargetMl, err := g.targetCalc.DailyTarget(profile)
	if err != nil {
		return nil, err
	}

	activeMinutes := g.windowCalc.ActiveMinutes(profile.WakeTime, profile.SleepTime)

	intervalMinutes, err := g.intervalCalc.Interval(profile.WeightKg)
	if err != nil {
		return nil, err
	}

	numberOfReminders := activeMinutes / intervalMinutes

	perReminderAmountMl := 0
	reminders := make([]domain.ScheduledReminder, 0, numberOfReminders)

	if numberOfReminders > 0 {
		perReminderAmountMl = roundToStandard(float64(dailyTargetMl) / float64(numberOfReminders))

		for i := 0; i < numberOfReminders; i++ {
			reminders = append(reminders, domain.ScheduledReminder{
				Time:             profile.WakeTime.Add(i * intervalMinutes),
				AmountMl:         perReminderAmountMl,
				CumulativeTarget: (i + 1) * perReminderAmountMl,
			})
		}
	}

	return &domain.ReminderSchedule{
		DailyTargetMl:           dailyTargetMl,
		ActiveMinutes:           activeMinutes,
		ReminderIntervalMinutes: intervalMinutes,
		NumberOfReminders:       numberOfReminders,
		PerReminderAmountMl:     perReminderAmountMl,
		Reminders:               reminders,
	}, nil
}

// roundToStandard snaps a raw per-reminder amount to one of the standard
// volumes. It saturates at 250ml no matter how large the raw amount is,
// so a schedule with few reminders can sum to less than the daily target.
func roundToStandard(amountMl float64) int {
	switch {
	case amountMl <= smallCutoffMl:
		return standardSmallMl
	case amountMl <= mediumCutoffMl:
		return standardMediumMl
	default:
		return standardLargeMl
	}
}
