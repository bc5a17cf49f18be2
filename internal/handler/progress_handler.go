package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aquaflow/hydration-engine/internal/domain"
	"github.com/aquaflow/hydration-engine/internal/observability/tracing"
	"github.com/aquaflow/hydration-engine/internal/service/progress"
	"github.com/aquaflow/hydration-engine/internal/service/schedule"
)

type ProgressHandler struct {
	repo      domain.IntakeRepository
	generator *schedule.Generator
	tracker   *progress.Tracker
	clock     domain.Clock
}

func NewProgressHandler(
	repo domain.IntakeRepository,
	generator *schedule.Generator,
	tracker *progress.Tracker,
	clock domain.Clock,
) *ProgressHandler {
	return &ProgressHandler{
		repo:      repo,
		generator: generator,
		tracker:   tracker,
		clock:     clock,
	}
}

type progressResponse struct {
	UserID        string       `json:"user_id"`
	DailyTargetMl int          `json:"daily_target_ml"`
	Progress      progressView `json:"progress"`
}

// HandleGetProgress reports the current day's intake against the target.
func (h *ProgressHandler) HandleGetProgress(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "user_id query parameter is required")
		return
	}

	spanCtx, span := tracing.StartProgressQuerySpan(ctx, userID)
	defer span.End()

	profile, err := h.repo.GetProfile(spanCtx, userID)
	if err != nil {
		tracing.RecordProgressQueryResult(span, 0, 0, err)
		if errors.Is(err, domain.ErrProfileNotFound) {
			respondError(c, http.StatusNotFound, "not_found", "no profile for user")
			return
		}
		slog.ErrorContext(spanCtx, "failed to load profile",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load profile")
		return
	}

	generated, err := h.generator.Generate(profile)
	if err != nil {
		tracing.RecordProgressQueryResult(span, 0, 0, err)
		slog.ErrorContext(spanCtx, "schedule generation failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to compute daily target")
		return
	}

	now := h.clock.Now()
	entries, err := h.repo.GetIntakeForDay(spanCtx, userID, now)
	if err != nil {
		tracing.RecordProgressQueryResult(span, 0, 0, err)
		slog.ErrorContext(spanCtx, "failed to load intake history",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load intake history")
		return
	}

	summary := h.tracker.TrackIntake(now, generated.DailyTargetMl, entries)
	percentage := progress.Percentage(summary.TotalIntakeMl, generated.DailyTargetMl)

	tracing.RecordProgressQueryResult(span, summary.TotalIntakeMl, percentage, nil)

	c.JSON(http.StatusOK, progressResponse{
		UserID:        userID,
		DailyTargetMl: generated.DailyTargetMl,
		Progress: progressView{
			TotalIntakeMl: summary.TotalIntakeMl,
			RemainingMl:   summary.RemainingMl,
			IsTargetMet:   summary.IsTargetMet,
			Percentage:    percentage,
		},
	})
}
