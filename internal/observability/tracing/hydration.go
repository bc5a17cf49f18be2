package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const hydrationTracerName = "github.com/aquaflow/hydration-engine/internal/service"

func HydrationTracer() trace.Tracer {
	return otel.Tracer(hydrationTracerName)
}

func StartScheduleGenerationSpan(ctx context.Context, userID string, weightKg float64) (context.Context, trace.Span) {
	return HydrationTracer().Start(ctx, "hydration.schedule_generation",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.Float64("profile.weight_kg", weightKg),
		),
	)
}

func StartReminderEvaluationSpan(ctx context.Context, userID, currentTime string) (context.Context, trace.Span) {
	return HydrationTracer().Start(ctx, "hydration.reminder_evaluation",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.String("evaluation.current_time", currentTime),
		),
	)
}

func StartIntakeValidationSpan(ctx context.Context, userID string, amountMl float64) (context.Context, trace.Span) {
	return HydrationTracer().Start(ctx, "hydration.intake_validation",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.Float64("intake.amount_ml", amountMl),
		),
	)
}

func RecordScheduleGenerationResult(span trace.Span, dailyTargetMl, reminderCount, intervalMinutes int, err error) {
	span.SetAttributes(
		attribute.Int("schedule.daily_target_ml", dailyTargetMl),
		attribute.Int("schedule.reminder_count", reminderCount),
		attribute.Int("schedule.interval_minutes", intervalMinutes),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordReminderEvaluationResult(span trace.Span, shouldSend bool, reason string, err error) {
	span.SetAttributes(
		attribute.Bool("decision.should_send", shouldSend),
	)
	if reason != "" {
		span.SetAttributes(attribute.String("decision.reason", reason))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func StartProgressQuerySpan(ctx context.Context, userID string) (context.Context, trace.Span) {
	return HydrationTracer().Start(ctx, "hydration.progress_query",
		trace.WithAttributes(
			attribute.String("user_id", userID),
		),
	)
}

func RecordProgressQueryResult(span trace.Span, totalIntakeMl float64, percentage int, err error) {
	span.SetAttributes(
		attribute.Float64("progress.total_intake_ml", totalIntakeMl),
		attribute.Int("progress.percentage", percentage),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordIntakeValidationResult(span trace.Span, warningCount int, err error) {
	span.SetAttributes(
		attribute.Int("intake.warning_count", warningCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
