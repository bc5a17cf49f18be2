package handler

import (
	"errors"
	"log/slog"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aquaflow/hydration-engine/internal/domain"
	"github.com/aquaflow/hydration-engine/internal/observability/metrics"
	"github.com/aquaflow/hydration-engine/internal/observability/tracing"
	"github.com/aquaflow/hydration-engine/internal/service/progress"
	"github.com/aquaflow/hydration-engine/internal/service/safety"
	"github.com/aquaflow/hydration-engine/internal/service/schedule"
)

type IntakeHandler struct {
	repo             domain.IntakeRepository
	generator        *schedule.Generator
	validator        *safety.Validator
	tracker          *progress.Tracker
	clock            domain.Clock
	hydrationMetrics *metrics.HydrationMetrics
}

func NewIntakeHandler(
	repo domain.IntakeRepository,
	generator *schedule.Generator,
	validator *safety.Validator,
	tracker *progress.Tracker,
	clock domain.Clock,
	hydrationMetrics *metrics.HydrationMetrics,
) *IntakeHandler {
	return &IntakeHandler{
		repo:             repo,
		generator:        generator,
		validator:        validator,
		tracker:          tracker,
		clock:            clock,
		hydrationMetrics: hydrationMetrics,
	}
}

type intakeRequest struct {
	UserID   string  `json:"user_id" binding:"required"`
	AmountMl float64 `json:"amount_ml" binding:"required"`
}

type intakeResponse struct {
	UserID   string             `json:"user_id"`
	Accepted bool               `json:"accepted"`
	Safety   domain.SafetyCheck `json:"safety"`
	Progress progressView       `json:"progress"`
}

// HandleLogIntake records one drink. Safety checks run before the write
// but never reject it; warnings ride along in the response.
func (h *IntakeHandler) HandleLogIntake(c *gin.Context) {
	ctx := c.Request.Context()

	var req intakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "intake request bind failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if req.AmountMl <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "amount_ml must be positive")
		return
	}

	spanCtx, span := tracing.StartIntakeValidationSpan(ctx, req.UserID, req.AmountMl)
	defer span.End()

	profile, err := h.repo.GetProfile(spanCtx, req.UserID)
	if err != nil {
		tracing.RecordIntakeValidationResult(span, 0, err)
		if errors.Is(err, domain.ErrProfileNotFound) {
			respondError(c, http.StatusNotFound, "not_found", "no profile for user")
			return
		}
		slog.ErrorContext(spanCtx, "failed to load profile",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load profile")
		return
	}

	generated, err := h.generator.Generate(profile)
	if err != nil {
		tracing.RecordIntakeValidationResult(span, 0, err)
		slog.ErrorContext(spanCtx, "schedule generation failed",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to compute daily target")
		return
	}

	now := h.clock.Now()

	dayEntries, err := h.repo.GetIntakeForDay(spanCtx, req.UserID, now)
	if err != nil {
		tracing.RecordIntakeValidationResult(span, 0, err)
		slog.ErrorContext(spanCtx, "failed to load intake history",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load intake history")
		return
	}

	recentHistory, err := h.repo.GetIntakeSince(spanCtx, req.UserID, now.Add(-h.validator.RapidWindow()))
	if err != nil {
		tracing.RecordIntakeValidationResult(span, 0, err)
		slog.ErrorContext(spanCtx, "failed to load recent intake",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load recent intake")
		return
	}

	before := h.tracker.TrackIntake(now, generated.DailyTargetMl, dayEntries)

	check := h.validator.CheckSafetyWarnings(now, before.TotalIntakeMl, req.AmountMl, generated.DailyTargetMl, recentHistory)

	entry := domain.IntakeEntry{
		AmountMl:  req.AmountMl,
		Timestamp: now,
	}
	if err := h.repo.AppendIntake(spanCtx, req.UserID, entry); err != nil {
		tracing.RecordIntakeValidationResult(span, len(check.Warnings), err)
		slog.ErrorContext(spanCtx, "failed to append intake",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to save intake")
		return
	}

	tracing.RecordIntakeValidationResult(span, len(check.Warnings), nil)
	if h.hydrationMetrics != nil {
		h.hydrationMetrics.RecordIntakeLogged(spanCtx, req.AmountMl)
		for _, warning := range check.Warnings {
			h.hydrationMetrics.RecordSafetyWarning(spanCtx, warning.Kind.String())
		}
	}

	dailyTotal := before.TotalIntakeMl + req.AmountMl
	after := progressView{
		TotalIntakeMl: dailyTotal,
		RemainingMl:   math.Max(0, float64(generated.DailyTargetMl)-dailyTotal),
		IsTargetMet:   dailyTotal >= float64(generated.DailyTargetMl),
		Percentage:    progress.Percentage(dailyTotal, generated.DailyTargetMl),
	}

	slog.InfoContext(spanCtx, "intake logged",
		slog.String("user_id", req.UserID),
		slog.Float64("amount_ml", req.AmountMl),
		slog.Bool("has_warning", check.HasWarning),
		slog.Int("warning_count", len(check.Warnings)),
	)

	c.JSON(http.StatusOK, intakeResponse{
		UserID:   req.UserID,
		Accepted: true,
		Safety:   check,
		Progress: after,
	})
}
