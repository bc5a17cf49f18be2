package target

import (
	"fmt"
	"math"

	"github.com/aquaflow/hydration-engine/internal/domain"
)

const (
	mlPerKg = 35.0

	moderateActivityMultiplier = 1.10
	highActivityMultiplier     = 1.20
	hotClimateMultiplier       = 1.15

	// MinDailyTargetMl and MaxDailyTargetMl bound every computed target.
	MinDailyTargetMl = 1800
	MaxDailyTargetMl = 6000
)

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// DailyTarget computes the daily water target in milliliters from body
// weight and the optional activity/climate modifiers. The clamp to
// [MinDailyTargetMl, MaxDailyTargetMl] is applied after rounding.
func (c *Calculator) DailyTarget(profile *domain.Profile) (int, error) {
	if profile == nil || profile.WeightKg <= 0 {
		return 0, fmt.Errorf("%w: weight must be positive", domain.ErrInvalidProfile)
	}

	target := profile.WeightKg * mlPerKg

	switch profile.ActivityLevel {
	case domain.ActivityModerate:
		target *= moderateActivityMultiplier
	case domain.ActivityHigh:
		target *= highActivityMultiplier
	}

	if profile.Climate == domain.ClimateHot {
		target *= hotClimateMultiplier
	}

	rounded := int(math.Round(target))

	if rounded < MinDailyTargetMl {
		return MinDailyTargetMl, nil
	}
	if rounded > MaxDailyTargetMl {
		return MaxDailyTargetMl, nil
	}
	return rounded, nil
}
