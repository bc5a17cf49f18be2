package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const hydrationMeterName = "hydration.engine"

type HydrationMetrics struct {
	schedulesGenerated metric.Int64Counter
	decisions          metric.Int64Counter
	safetyWarnings     metric.Int64Counter
	intakeLogged       metric.Float64Counter
	evaluationDuration metric.Float64Histogram
}

func NewHydrationMetrics() (*HydrationMetrics, error) {
	meter := otel.Meter(hydrationMeterName)

	schedulesGenerated, err := meter.Int64Counter(
		"hydration_schedules_generated_total",
		metric.WithDescription("Total number of reminder schedules generated"),
		metric.WithUnit("{schedule}"),
	)
	if err != nil {
		return nil, err
	}

	decisions, err := meter.Int64Counter(
		"hydration_reminder_decisions_total",
		metric.WithDescription("Reminder evaluation outcomes by suppression reason"),
		metric.WithUnit("{decision}"),
	)
	if err != nil {
		return nil, err
	}

	safetyWarnings, err := meter.Int64Counter(
		"hydration_safety_warnings_total",
		metric.WithDescription("Safety warnings raised by kind"),
		metric.WithUnit("{warning}"),
	)
	if err != nil {
		return nil, err
	}

	intakeLogged, err := meter.Float64Counter(
		"hydration_intake_logged_ml_total",
		metric.WithDescription("Total milliliters of logged intake"),
		metric.WithUnit("ml"),
	)
	if err != nil {
		return nil, err
	}

	evaluationDuration, err := meter.Float64Histogram(
		"hydration_evaluation_duration_seconds",
		metric.WithDescription("Time spent evaluating a reminder tick"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	return &HydrationMetrics{
		schedulesGenerated: schedulesGenerated,
		decisions:          decisions,
		safetyWarnings:     safetyWarnings,
		intakeLogged:       intakeLogged,
		evaluationDuration: evaluationDuration,
	}, nil
}

func (m *HydrationMetrics) RecordScheduleGenerated(ctx context.Context) {
	m.schedulesGenerated.Add(ctx, 1)
}

func (m *HydrationMetrics) RecordDecision(ctx context.Context, shouldSend bool, reason string) {
	if reason == "" {
		reason = "send"
	}
	m.decisions.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("should_send", shouldSend),
		attribute.String("reason", reason),
	))
}

func (m *HydrationMetrics) RecordSafetyWarning(ctx context.Context, kind string) {
	m.safetyWarnings.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *HydrationMetrics) RecordIntakeLogged(ctx context.Context, amountMl float64) {
	m.intakeLogged.Add(ctx, amountMl)
}

func (m *HydrationMetrics) RecordEvaluationDuration(ctx context.Context, duration time.Duration) {
	m.evaluationDuration.Record(ctx, duration.Seconds())
}
