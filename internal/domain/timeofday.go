package domain

import (
	"fmt"
	"time"
)

const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock label expressed as minutes since midnight.
// Schedules hold labels only, not dates; callers match them against the
// current day's wall clock.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	// All four digit positions must be ASCII digits; no spaces or signs.
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
	}

	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')

	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return TimeOfDay(hours*60 + minutes), nil
}

// MustTimeOfDay panics on malformed input. Intended for tests and constants.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFrom extracts the wall-clock label of an instant in its location.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Add shifts the label by the given number of minutes, wrapping past
// midnight with 24-hour modular arithmetic.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	shifted := (int(t) + minutes) % MinutesPerDay
	if shifted < 0 {
		shifted += MinutesPerDay
	}
	return TimeOfDay(shifted)
}

func (t TimeOfDay) String() string {
	normalized := int(t) % MinutesPerDay
	if normalized < 0 {
		normalized += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", normalized/60, normalized%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidTimeOfDay, data)
	}

	parsed, err := ParseTimeOfDay(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
