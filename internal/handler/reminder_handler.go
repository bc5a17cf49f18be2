package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aquaflow/hydration-engine/internal/domain"
	"github.com/aquaflow/hydration-engine/internal/observability/metrics"
	"github.com/aquaflow/hydration-engine/internal/observability/tracing"
	"github.com/aquaflow/hydration-engine/internal/service/lookup"
	"github.com/aquaflow/hydration-engine/internal/service/policy"
	"github.com/aquaflow/hydration-engine/internal/service/progress"
	"github.com/aquaflow/hydration-engine/internal/service/schedule"
)

type ReminderHandler struct {
	repo             domain.IntakeRepository
	generator        *schedule.Generator
	policy           *policy.Service
	lookup           *lookup.Service
	tracker          *progress.Tracker
	clock            domain.Clock
	recorder         domain.DecisionRecorder
	hydrationMetrics *metrics.HydrationMetrics
}

func NewReminderHandler(
	repo domain.IntakeRepository,
	generator *schedule.Generator,
	policyService *policy.Service,
	lookupService *lookup.Service,
	tracker *progress.Tracker,
	clock domain.Clock,
	recorder domain.DecisionRecorder,
	hydrationMetrics *metrics.HydrationMetrics,
) *ReminderHandler {
	return &ReminderHandler{
		repo:             repo,
		generator:        generator,
		policy:           policyService,
		lookup:           lookupService,
		tracker:          tracker,
		clock:            clock,
		recorder:         recorder,
		hydrationMetrics: hydrationMetrics,
	}
}

type reminderCheckRequest struct {
	UserID string `json:"user_id" binding:"required"`
	// At is an optional HH:MM wall-clock label. When set, the evaluation
	// runs against that label instead of the current clock reading.
	At string `json:"at"`
}

type progressView struct {
	TotalIntakeMl float64 `json:"total_intake_ml"`
	RemainingMl   float64 `json:"remaining_ml"`
	IsTargetMet   bool    `json:"is_target_met"`
	Percentage    int     `json:"percentage"`
}

type reminderCheckResponse struct {
	UserID             string                     `json:"user_id"`
	EvaluatedAt        domain.TimeOfDay           `json:"evaluated_at"`
	Decision           domain.ReminderDecision    `json:"decision"`
	NextReminder       *domain.ScheduledReminder  `json:"next_reminder"`
	RemainingReminders []domain.ScheduledReminder `json:"remaining_reminders"`
	Progress           progressView               `json:"progress"`
}

// HandleReminderCheck evaluates one reminder tick for a user: suppression
// policy first, then next and remaining reminder lookup against the
// schedule, plus the current progress summary.
func (h *ReminderHandler) HandleReminderCheck(c *gin.Context) {
	ctx := c.Request.Context()

	var req reminderCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "reminder check bind failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	now := h.clock.Now()
	current := domain.TimeOfDayFrom(now)
	if req.At != "" {
		parsed, err := domain.ParseTimeOfDay(req.At)
		if err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid at time, expected HH:MM")
			return
		}
		current = parsed
		slog.InfoContext(ctx, "using virtual evaluation time",
			slog.String("user_id", req.UserID),
			slog.String("at", current.String()),
		)
	}

	spanCtx, span := tracing.StartReminderEvaluationSpan(ctx, req.UserID, current.String())
	defer span.End()
	evalStart := time.Now()

	profile, err := h.repo.GetProfile(spanCtx, req.UserID)
	if err != nil {
		tracing.RecordReminderEvaluationResult(span, false, "", err)
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
		tracing.RecordReminderEvaluationResult(span, false, "", err)
		slog.ErrorContext(spanCtx, "schedule generation failed",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to generate schedule")
		return
	}

	entries, err := h.repo.GetIntakeForDay(spanCtx, req.UserID, now)
	if err != nil {
		tracing.RecordReminderEvaluationResult(span, false, "", err)
		slog.ErrorContext(spanCtx, "failed to load intake history",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load intake history")
		return
	}

	lastIntake, err := h.repo.GetLastIntakeTime(spanCtx, req.UserID)
	if err != nil {
		tracing.RecordReminderEvaluationResult(span, false, "", err)
		slog.ErrorContext(spanCtx, "failed to load last intake time",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load last intake time")
		return
	}

	summary := h.tracker.TrackIntake(now, generated.DailyTargetMl, entries)

	decision := h.policy.ShouldSendReminder(
		current,
		profile.WakeTime,
		profile.SleepTime,
		lastIntake,
		summary.TotalIntakeMl,
		generated.DailyTargetMl,
	)

	next := h.lookup.NextScheduledReminder(generated, current, summary.TotalIntakeMl)
	remaining := h.lookup.RemainingReminders(generated, current, summary.TotalIntakeMl)

	tracing.RecordReminderEvaluationResult(span, decision.ShouldSend, decision.Reason.String(), nil)
	if h.hydrationMetrics != nil {
		h.hydrationMetrics.RecordDecision(spanCtx, decision.ShouldSend, decision.Reason.String())
		h.hydrationMetrics.RecordEvaluationDuration(spanCtx, time.Since(evalStart))
	}

	if h.recorder != nil {
		record := domain.DecisionRecord{
			UserID:          req.UserID,
			EvaluatedAt:     now,
			ShouldSend:      decision.ShouldSend,
			Reason:          decision.Reason.String(),
			CurrentIntakeMl: summary.TotalIntakeMl,
			DailyTargetMl:   generated.DailyTargetMl,
		}
		if err := h.recorder.RecordDecision(spanCtx, record); err != nil {
			slog.WarnContext(spanCtx, "failed to record decision",
				slog.String("user_id", req.UserID),
				slog.String("error", err.Error()),
			)
		}
	}

	slog.InfoContext(spanCtx, "reminder evaluated",
		slog.String("user_id", req.UserID),
		slog.String("at", current.String()),
		slog.Bool("should_send", decision.ShouldSend),
		slog.String("reason", decision.Reason.String()),
	)

	c.JSON(http.StatusOK, reminderCheckResponse{
		UserID:             req.UserID,
		EvaluatedAt:        current,
		Decision:           decision,
		NextReminder:       next,
		RemainingReminders: remaining,
		Progress: progressView{
			TotalIntakeMl: summary.TotalIntakeMl,
			RemainingMl:   summary.RemainingMl,
			IsTargetMet:   summary.IsTargetMet,
			Percentage:    progress.Percentage(summary.TotalIntakeMl, generated.DailyTargetMl),
		},
	})
}
