package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=intake_repository.go -destination=intake_repository_mock.go -package=domain

// IntakeRepository is the persistence collaborator. The engine itself is
// pure; handlers read profiles and intake history through this interface
// and pass plain values into the engine packages.
type IntakeRepository interface {
	SaveProfile(ctx context.Context, userID string, profile *Profile) error
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	AppendIntake(ctx context.Context, userID string, entry IntakeEntry) error
	GetIntakeForDay(ctx context.Context, userID string, day time.Time) ([]IntakeEntry, error)
	GetIntakeSince(ctx context.Context, userID string, since time.Time) ([]IntakeEntry, error)
	GetLastIntakeTime(ctx context.Context, userID string) (*time.Time, error)
}
