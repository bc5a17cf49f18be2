package window

import "github.com/aquaflow/hydration-engine/internal/domain"

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// ActiveMinutes returns the length of the daily active window in minutes.
// A window that crosses midnight (wake 22:00, sleep 06:00) is measured
// across the boundary; wake == sleep means the full day.
func (c *Calculator) ActiveMinutes(wake, sleep domain.TimeOfDay) int {
	raw := sleep.Minutes() - wake.Minutes()
	if raw < 0 {
		raw += domain.MinutesPerDay
	}
	if raw == 0 {
		raw = domain.MinutesPerDay
	}
	return raw
}

// Gate answers the point-in-time question: is a wall-clock label inside
// the active window.
type Gate struct{}

func NewGate() *Gate {
	return &Gate{}
}

// Contains uses the same-day rule (wake <= t < sleep) when wake < sleep,
// and the overnight rule (t >= wake or t < sleep) when the window wraps.
// The asymmetry is required so wake=22:00/sleep=06:00 includes 23:30 and
// 02:00 but excludes 10:00.
func (g *Gate) Contains(current, wake, sleep domain.TimeOfDay) bool {
	if wake.Minutes() < sleep.Minutes() {
		return current.Minutes() >= wake.Minutes() && current.Minutes() < sleep.Minutes()
	}
	return current.Minutes() >= wake.Minutes() || current.Minutes() < sleep.Minutes()
}
