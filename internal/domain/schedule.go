package domain

// ScheduledReminder is a single time-stamped reminder in a day's schedule.
// CumulativeTarget is the running total expected by this reminder's time.
type ScheduledReminder struct {
	Time             TimeOfDay `json:"time"`
	AmountMl         int       `json:"amount_ml"`
	CumulativeTarget int       `json:"cumulative_target"`
}

// ReminderSchedule is a value object recomputed on demand and never
// mutated in place. Reminders are ordered chronologically from wake time.
type ReminderSchedule struct {
	DailyTargetMl           int                 `json:"daily_target_ml"`
	ActiveMinutes           int                 `json:"active_minutes"`
	ReminderIntervalMinutes int                 `json:"reminder_interval_minutes"`
	NumberOfReminders       int                 `json:"number_of_reminders"`
	PerReminderAmountMl     int                 `json:"per_reminder_amount_ml"`
	Reminders               []ScheduledReminder `json:"reminders"`
}
