package domain

import (
	"context"
	"time"
)

// DecisionRecord captures one reminder evaluation for offline analysis.
type DecisionRecord struct {
	UserID          string
	EvaluatedAt     time.Time
	ShouldSend      bool
	Reason          string
	CurrentIntakeMl float64
	DailyTargetMl   int
}

type DecisionRecorder interface {
	RecordDecision(ctx context.Context, record DecisionRecord) error
	Flush(ctx context.Context) error
	Close() error
}
