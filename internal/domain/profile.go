package domain

import "fmt"

// ActivityLevel scales the daily water target for physical activity.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHigh      ActivityLevel = "high"
)

func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityModerate, ActivityHigh:
		return true
	}
	return false
}

func (a ActivityLevel) String() string {
	return string(a)
}

// Climate scales the daily water target for ambient conditions.
type Climate string

const (
	ClimateTemperate Climate = "temperate"
	ClimateHot       Climate = "hot"
)

func (c Climate) IsValid() bool {
	switch c {
	case ClimateTemperate, ClimateHot:
		return true
	}
	return false
}

func (c Climate) String() string {
	return string(c)
}

// Profile is the physiological input the engine computes schedules from.
// It is read-only inside the engine; persistence is the caller's concern.
type Profile struct {
	WeightKg      float64
	WakeTime      TimeOfDay
	SleepTime     TimeOfDay
	ActivityLevel ActivityLevel
	Climate       Climate
}

// NewProfile validates and builds a profile. Empty activity level and
// climate default to sedentary and temperate.
func NewProfile(weightKg float64, wakeTime, sleepTime string, activity ActivityLevel, climate Climate) (*Profile, error) {
	if weightKg <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive, got %.1f", ErrInvalidProfile, weightKg)
	}

	wake, err := ParseTimeOfDay(wakeTime)
	if err != nil {
		return nil, fmt.Errorf("%w: wake time: %v", ErrInvalidProfile, err)
	}

	sleep, err := ParseTimeOfDay(sleepTime)
	if err != nil {
		return nil, fmt.Errorf("%w: sleep time: %v", ErrInvalidProfile, err)
	}

	if activity == "" {
		activity = ActivitySedentary
	}
	if !activity.IsValid() {
		return nil, fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, activity)
	}

	if climate == "" {
		climate = ClimateTemperate
	}
	if !climate.IsValid() {
		return nil, fmt.Errorf("%w: unknown climate %q", ErrInvalidProfile, climate)
	}

	return &Profile{
		WeightKg:      weightKg,
		WakeTime:      wake,
		SleepTime:     sleep,
		ActivityLevel: activity,
		Climate:       climate,
	}, nil
}
