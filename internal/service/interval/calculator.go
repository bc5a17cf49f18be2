package interval

import (
	"fmt"
	"math"

	"github.com/aquaflow/hydration-engine/internal/domain"
)

const (
	lightWeightThresholdKg  = 60.0
	mediumWeightThresholdKg = 80.0

	lightWeightIntervalMinutes  = 60
	mediumWeightIntervalMinutes = 45

	// Above 80kg the interval interpolates linearly from 40 minutes at
	// 81kg down to the 30-minute floor, reached at 111kg and held.
	interpolationStartKg   = 81.0
	interpolationRangeKg   = 30.0
	interpolationTopMin    = 40.0
	interpolationSpreadMin = 10.0
)

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Interval returns the reminder spacing in minutes for a body weight.
func (c *Calculator) Interval(weightKg float64) (int, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("%w: weight must be positive", domain.ErrInvalidProfile)
	}

	switch {
	case weightKg <= lightWeightThresholdKg:
		return lightWeightIntervalMinutes, nil
	case weightKg <= mediumWeightThresholdKg:
		return mediumWeightIntervalMinutes, nil
	default:
		normalized := math.Min((weightKg-interpolationStartKg)/interpolationRangeKg, 1)
		return int(math.Round(interpolationTopMin - normalized*interpolationSpreadMin)), nil
	}
}
