package domain

// SuppressReason explains why a reminder was withheld.
type SuppressReason string

const (
	ReasonRecentIntake  SuppressReason = "recent_intake"
	ReasonTargetReached SuppressReason = "target_reached"
	ReasonOutsideWindow SuppressReason = "outside_window"
)

func (r SuppressReason) String() string {
	return string(r)
}

// ReminderDecision is the outcome of a single evaluation tick.
// NextEligibleTime is populated only for recent_intake suppression.
type ReminderDecision struct {
	ShouldSend       bool           `json:"should_send"`
	Reason           SuppressReason `json:"reason,omitempty"`
	NextEligibleTime *TimeOfDay     `json:"next_eligible_time,omitempty"`
}
