package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aquaflow/hydration-engine/internal/domain"
	"github.com/aquaflow/hydration-engine/internal/observability/metrics"
	"github.com/aquaflow/hydration-engine/internal/observability/tracing"
	"github.com/aquaflow/hydration-engine/internal/service/schedule"
)

type ScheduleHandler struct {
	repo             domain.IntakeRepository
	generator        *schedule.Generator
	hydrationMetrics *metrics.HydrationMetrics
}

func NewScheduleHandler(
	repo domain.IntakeRepository,
	generator *schedule.Generator,
	hydrationMetrics *metrics.HydrationMetrics,
) *ScheduleHandler {
	return &ScheduleHandler{
		repo:             repo,
		generator:        generator,
		hydrationMetrics: hydrationMetrics,
	}
}

type scheduleRequest struct {
	UserID        string  `json:"user_id" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required"`
	WakeTime      string  `json:"wake_time" binding:"required"`
	SleepTime     string  `json:"sleep_time" binding:"required"`
	ActivityLevel string  `json:"activity_level"`
	Climate       string  `json:"climate"`
}

type scheduleResponse struct {
	UserID   string                   `json:"user_id"`
	Schedule *domain.ReminderSchedule `json:"schedule"`
}

// HandleGenerateSchedule validates the submitted profile, stores it and
// returns the freshly computed reminder schedule.
func (h *ScheduleHandler) HandleGenerateSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "schedule request bind failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	profile, err := domain.NewProfile(
		req.WeightKg,
		req.WakeTime,
		req.SleepTime,
		domain.ActivityLevel(req.ActivityLevel),
		domain.Climate(req.Climate),
	)
	if err != nil {
		slog.WarnContext(ctx, "profile validation failed",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	spanCtx, span := tracing.StartScheduleGenerationSpan(ctx, req.UserID, profile.WeightKg)
	defer span.End()

	generated, err := h.generator.Generate(profile)
	if err != nil {
		tracing.RecordScheduleGenerationResult(span, 0, 0, 0, err)
		if errors.Is(err, domain.ErrInvalidProfile) {
			respondError(c, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
		slog.ErrorContext(spanCtx, "schedule generation failed",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to generate schedule")
		return
	}

	if err := h.repo.SaveProfile(spanCtx, req.UserID, profile); err != nil {
		tracing.RecordScheduleGenerationResult(span, generated.DailyTargetMl, generated.NumberOfReminders, generated.ReminderIntervalMinutes, err)
		slog.ErrorContext(spanCtx, "failed to save profile",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to save profile")
		return
	}

	tracing.RecordScheduleGenerationResult(span, generated.DailyTargetMl, generated.NumberOfReminders, generated.ReminderIntervalMinutes, nil)
	if h.hydrationMetrics != nil {
		h.hydrationMetrics.RecordScheduleGenerated(spanCtx)
	}

	slog.InfoContext(spanCtx, "schedule generated",
		slog.String("user_id", req.UserID),
		slog.Int("daily_target_ml", generated.DailyTargetMl),
		slog.Int("reminder_count", generated.NumberOfReminders),
		slog.Int("interval_minutes", generated.ReminderIntervalMinutes),
	)

	c.JSON(http.StatusOK, scheduleResponse{
		UserID:   req.UserID,
		Schedule: generated,
	})
}
