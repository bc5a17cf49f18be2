package domain

import "time"

// Clock supplies the current instant. Engine code never reads the wall
// clock through a global; callers inject a Clock so recency checks and
// day boundaries stay deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func SystemClock() Clock {
	return systemClock{}
}
