package decisionrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/aquaflow/hydration-engine/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

// NewRecorder returns an InfluxDB-backed recorder, or a noop recorder
// when recording is disabled or not configured. Evaluation decisions
// are observability data: a write failure is logged, never surfaced.
func NewRecorder(ctx context.Context, cfg *Config) (domain.DecisionRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "decision recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, decision recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "decision recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordDecision(ctx context.Context, record domain.DecisionRecord) error {
	reason := record.Reason
	if reason == "" {
		reason = "send"
	}

	point := influxdb2.NewPoint(
		"reminder_decision",
		map[string]string{
			"user_id": record.UserID,
			"reason":  reason,
		},
		map[string]any{
			"should_send":       record.ShouldSend,
			"current_intake_ml": record.CurrentIntakeMl,
			"daily_target_ml":   record.DailyTargetMl,
			"evaluated_unix":    record.EvaluatedAt.Unix(),
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write reminder decision to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID),
			slog.String("reason", reason),
		)
	}

	return nil
}

func (r *influxDBRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
