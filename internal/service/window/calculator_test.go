package window

import (
	"testing"

	"github.com/aquaflow/hydration-engine/internal/domain"
)

func TestCalculator_ActiveMinutes(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name  string
		wake  string
		sleep string
		want  int
	}{
		{name: "same-day window", wake: "07:00", sleep: "23:00", want: 960},
		{name: "overnight window", wake: "22:00", sleep: "06:00", want: 480},
		{name: "wake equals sleep is full day", wake: "08:00", sleep: "08:00", want: 1440},
		{name: "one-minute window", wake: "09:00", sleep: "09:01", want: 1},
		{name: "almost full day overnight", wake: "00:01", sleep: "00:00", want: 1439},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ActiveMinutes(domain.MustTimeOfDay(tt.wake), domain.MustTimeOfDay(tt.sleep))
			if got != tt.want {
				t.Errorf("ActiveMinutes(%s, %s) = %d, want %d", tt.wake, tt.sleep, got, tt.want)
			}
		})
	}
}

func TestGate_Contains_SameDayWindow(t *testing.T) {
	gate := NewGate()
	wake := domain.MustTimeOfDay("07:00")
	sleep := domain.MustTimeOfDay("23:00")

	tests := []struct {
		current string
		want    bool
	}{
		{current: "07:00", want: true},  // wake boundary is inclusive
		{current: "12:00", want: true},
		{current: "22:59", want: true},
		{current: "23:00", want: false}, // sleep boundary is exclusive
		{current: "06:59", want: false},
		{current: "02:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			got := gate.Contains(domain.MustTimeOfDay(tt.current), wake, sleep)
			if got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.current, got, tt.want)
			}
		})
	}
}

func TestGate_Contains_OvernightWindow(t *testing.T) {
	gate := NewGate()
	wake := domain.MustTimeOfDay("22:00")
	sleep := domain.MustTimeOfDay("06:00")

	tests := []struct {
		current string
		want    bool
	}{
		{current: "23:30", want: true},
		{current: "02:00", want: true},
		{current: "22:00", want: true},
		{current: "05:59", want: true},
		{current: "06:00", want: false},
		{current: "10:00", want: false},
		{current: "21:59", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			got := gate.Contains(domain.MustTimeOfDay(tt.current), wake, sleep)
			if got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.current, got, tt.want)
			}
		})
	}
}

func TestGate_Contains_WakeEqualsSleep(t *testing.T) {
	gate := NewGate()
	point := domain.MustTimeOfDay("08:00")

	// wake == sleep takes the overnight branch, which covers every
	// wall-clock label: the person is treated as continuously awake.
	for _, current := range []string{"08:00", "00:00", "12:00", "23:59"} {
		if !gate.Contains(domain.MustTimeOfDay(current), point, point) {
			t.Errorf("Contains(%s) = false, want true for full-day window", current)
		}
	}
}
