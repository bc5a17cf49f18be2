package lookup

import "github.com/aquaflow/hydration-engine/internal/domain"

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// NextScheduledReminder scans the ordered reminder sequence and returns
// the first reminder at or after the current label whose cumulative
// target has not been met yet. Nil once the daily target is reached or
// when no reminder matches.
func (s *Service) NextScheduledReminder(
	schedule *domain.ReminderSchedule,
	current domain.TimeOfDay,
	currentIntakeMl float64,
) *domain.ScheduledReminder {
	if currentIntakeMl >= float64(schedule.DailyTargetMl) {
		return nil
	}

	for i := range schedule.Reminders {
		reminder := schedule.Reminders[i]
		if reminder.Time.Minutes() >= current.Minutes() && currentIntakeMl < float64(reminder.CumulativeTarget) {
			return &reminder
		}
	}

	return nil
}

// RemainingReminders returns every reminder strictly after the current
// label whose cumulative target exceeds the current intake, preserving
// schedule order. The result is never nil.
func (s *Service) RemainingReminders(
	schedule *domain.ReminderSchedule,
	current domain.TimeOfDay,
	currentIntakeMl float64,
) []domain.ScheduledReminder {
	remaining := make([]domain.ScheduledReminder, 0, len(schedule.Reminders))

	for _, reminder := range schedule.Reminders {
		if reminder.Time.Minutes() > current.Minutes() && currentIntakeMl < float64(reminder.CumulativeTarget) {
			remaining = append(remaining, reminder)
		}
	}

	return remaining
}
