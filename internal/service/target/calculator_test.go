package target

import (
	"errors"
	"testing"

	"github.com/aquaflow/hydration-engine/internal/domain"
)

func TestCalculator_DailyTarget(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name     string
		weightKg float64
		activity domain.ActivityLevel
		climate  domain.Climate
		want     int
	}{
		{
			name:     "60kg sedentary temperate",
			weightKg: 60,
			activity: domain.ActivitySedentary,
			climate:  domain.ClimateTemperate,
			want:     2100,
		},
		{
			name:     "70kg sedentary temperate",
			weightKg: 70,
			activity: domain.ActivitySedentary,
			climate:  domain.ClimateTemperate,
			want:     2450,
		},
		{
			name:     "moderate activity adds 10 percent",
			weightKg: 70,
			activity: domain.ActivityModerate,
			climate:  domain.ClimateTemperate,
			want:     2695,
		},
		{
			name:     "high activity adds 20 percent",
			weightKg: 70,
			activity: domain.ActivityHigh,
			climate:  domain.ClimateTemperate,
			want:     2940,
		},
		{
			name:     "hot climate adds 15 percent",
			weightKg: 70,
			activity: domain.ActivitySedentary,
			climate:  domain.ClimateHot,
			want:     2818, // 2450 * 1.15 = 2817.5, rounds up
		},
		{
			name:     "modifiers compound",
			weightKg: 70,
			activity: domain.ActivityHigh,
			climate:  domain.ClimateHot,
			want:     3381,
		},
		{
			name:     "floor enforced for light weight",
			weightKg: 45,
			activity: domain.ActivitySedentary,
			climate:  domain.ClimateTemperate,
			want:     1800,
		},
		{
			name:     "ceiling enforced for heavy weight",
			weightKg: 180,
			activity: domain.ActivitySedentary,
			climate:  domain.ClimateTemperate,
			want:     6000,
		},
		{
			name:     "modifiers cannot push past ceiling",
			weightKg: 150,
			activity: domain.ActivityHigh,
			climate:  domain.ClimateHot,
			want:     6000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &domain.Profile{
				WeightKg:      tt.weightKg,
				ActivityLevel: tt.activity,
				Climate:       tt.climate,
			}

			got, err := calc.DailyTarget(profile)
			if err != nil {
				t.Fatalf("DailyTarget() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DailyTarget() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculator_DailyTarget_ClampAfterRound(t *testing.T) {
	calc := NewCalculator()

	// 51.42kg * 35 = 1799.7: rounds to 1800 before clamping, so the floor
	// is reached by rounding, not forced below it.
	profile := &domain.Profile{
		WeightKg:      51.42,
		ActivityLevel: domain.ActivitySedentary,
		Climate:       domain.ClimateTemperate,
	}

	got, err := calc.DailyTarget(profile)
	if err != nil {
		t.Fatalf("DailyTarget() unexpected error: %v", err)
	}
	if got != 1800 {
		t.Errorf("DailyTarget() = %d, want 1800", got)
	}
}

func TestCalculator_DailyTarget_InvalidWeight(t *testing.T) {
	calc := NewCalculator()

	for _, weight := range []float64{0, -5} {
		profile := &domain.Profile{WeightKg: weight}
		if _, err := calc.DailyTarget(profile); !errors.Is(err, domain.ErrInvalidProfile) {
			t.Errorf("DailyTarget(weight=%.0f) error = %v, want ErrInvalidProfile", weight, err)
		}
	}
}
