package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/aquaflow/hydration-engine/internal/config"
	"github.com/aquaflow/hydration-engine/internal/domain"
	"github.com/aquaflow/hydration-engine/internal/handler"
	"github.com/aquaflow/hydration-engine/internal/health"
	"github.com/aquaflow/hydration-engine/internal/infra/decisionrecorder"
	"github.com/aquaflow/hydration-engine/internal/infra/repository"
	"github.com/aquaflow/hydration-engine/internal/observability"
	"github.com/aquaflow/hydration-engine/internal/observability/logging"
	"github.com/aquaflow/hydration-engine/internal/observability/metrics"
	"github.com/aquaflow/hydration-engine/internal/observability/middleware"
	"github.com/aquaflow/hydration-engine/internal/service/interval"
	"github.com/aquaflow/hydration-engine/internal/service/lookup"
	"github.com/aquaflow/hydration-engine/internal/service/policy"
	"github.com/aquaflow/hydration-engine/internal/service/progress"
	"github.com/aquaflow/hydration-engine/internal/service/safety"
	"github.com/aquaflow/hydration-engine/internal/service/schedule"
	"github.com/aquaflow/hydration-engine/internal/service/target"
	"github.com/aquaflow/hydration-engine/internal/service/window"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	hydrationMetrics, err := metrics.NewHydrationMetrics()
	if err != nil {
		slog.Error("failed to initialize hydration metrics", slog.String("error", err.Error()))
		return 1
	}

	recorderCfg := decisionrecorder.LoadConfig()
	recorder, err := decisionrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize decision recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close decision recorder", slog.String("error", err.Error()))
		}
	}()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	intakeRepo := repository.NewIntakeRepository(redisClient)
	clock := domain.SystemClock()

	generator := schedule.NewGenerator(
		target.NewCalculator(),
		window.NewCalculator(),
		interval.NewCalculator(),
	)
	policyService := policy.NewService(
		window.NewGate(),
		clock,
		time.Duration(cfg.Hydration.RecencySuppressionMinutes)*time.Minute,
	)
	lookupService := lookup.NewService()
	tracker := progress.NewTracker()
	validator := safety.NewValidator(safety.Limits{
		RapidIntakeLimitMl:   float64(cfg.Hydration.RapidIntakeLimitMl),
		RapidIntakeWindow:    time.Duration(cfg.Hydration.RapidIntakeWindowMinutes) * time.Minute,
		ExcessiveDailyFactor: float64(cfg.Hydration.ExcessiveDailyPercent) / 100,
		AbsoluteDailyMaxMl:   float64(cfg.Hydration.AbsoluteDailyMaxMl),
	})

	scheduleHandler := handler.NewScheduleHandler(intakeRepo, generator, hydrationMetrics)
	reminderHandler := handler.NewReminderHandler(
		intakeRepo, generator, policyService, lookupService, tracker, clock, recorder, hydrationMetrics,
	)
	intakeHandler := handler.NewIntakeHandler(intakeRepo, generator, validator, tracker, clock, hydrationMetrics)
	progressHandler := handler.NewProgressHandler(intakeRepo, generator, tracker, clock)

	r := gin.New()
	r.Use(middleware.RequestLogging(obs.Logger()))
	r.Use(middleware.RequestMetrics(httpMetrics))
	r.Use(middleware.PanicRecovery(obs.Logger()))

	healthChecker := health.NewChecker(redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/schedule", scheduleHandler.HandleGenerateSchedule)
		v1.POST("/reminder/check", reminderHandler.HandleReminderCheck)
		v1.POST("/intake", intakeHandler.HandleLogIntake)
		v1.GET("/progress", progressHandler.HandleGetProgress)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("recency_suppression_minutes", cfg.Hydration.RecencySuppressionMinutes),
			slog.Int("rapid_intake_limit_ml", cfg.Hydration.RapidIntakeLimitMl),
			slog.Int("absolute_daily_max_ml", cfg.Hydration.AbsoluteDailyMaxMl),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "hydration-engine"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: observability.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment:   env,
		LogLevel:      cfg.LogLevel,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("hydration-engine"),
	})
}
