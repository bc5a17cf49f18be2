package policy

import (
	"time"

	"github.com/aquaflow/hydration-engine/internal/domain"
	"github.com/aquaflow/hydration-engine/internal/service/window"
)

// DefaultRecencyWindow suppresses reminders for 30 minutes after intake.
const DefaultRecencyWindow = 30 * time.Minute

type Service struct {
	gate          *window.Gate
	clock         domain.Clock
	recencyWindow time.Duration
}

func NewService(gate *window.Gate, clock domain.Clock, recencyWindow time.Duration) *Service {
	if recencyWindow <= 0 {
		recencyWindow = DefaultRecencyWindow
	}
	return &Service{
		gate:          gate,
		clock:         clock,
		recencyWindow: recencyWindow,
	}
}

// ShouldSendReminder decides whether a reminder fires at the given
// wall-clock label. Checks run in precedence order and the first match
// wins: target reached, outside active window, recent intake, send.
// The recency check measures against the injected clock, not the
// caller-supplied label.
func (s *Service) ShouldSendReminder(
	current, wake, sleep domain.TimeOfDay,
	lastIntake *time.Time,
	currentIntakeMl float64,
	dailyTargetMl int,
) domain.ReminderDecision {
	if currentIntakeMl >= float64(dailyTargetMl) {
		return domain.ReminderDecision{
			ShouldSend: false,
			Reason:     domain.ReasonTargetReached,
		}
	}

	if !s.gate.Contains(current, wake, sleep) {
		return domain.ReminderDecision{
			ShouldSend: false,
			Reason:     domain.ReasonOutsideWindow,
		}
	}

	if lastIntake != nil {
		sinceIntake := s.clock.Now().Sub(*lastIntake)
		if sinceIntake < s.recencyWindow {
			nextEligible := domain.TimeOfDayFrom(lastIntake.Add(s.recencyWindow))
			return domain.ReminderDecision{
				ShouldSend:       false,
				Reason:           domain.ReasonRecentIntake,
				NextEligibleTime: &nextEligible,
			}
		}
	}

	return domain.ReminderDecision{ShouldSend: true}
}
