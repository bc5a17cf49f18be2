package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/aquaflow/hydration-engine/internal/domain"
)

const (
	profileKeyPrefix    = "hydration:profile:"
	intakeKeyPrefix     = "hydration:intake:"
	lastIntakeKeyPrefix = "hydration:lastintake:"

	// Intake history only matters for the current day plus the trailing
	// rapid-intake window, so two days of retention is plenty.
	intakeTTL     = 48 * time.Hour
	lastIntakeTTL = 48 * time.Hour
)

type profileRecord struct {
	WeightKg      float64 `json:"weight_kg"`
	WakeTime      string  `json:"wake_time"`
	SleepTime     string  `json:"sleep_time"`
	ActivityLevel string  `json:"activity_level"`
	Climate       string  `json:"climate"`
}

type intakeRecord struct {
	ID        string    `json:"id"`
	AmountMl  float64   `json:"amount_ml"`
	Timestamp time.Time `json:"timestamp"`
}

type intakeRepository struct {
	client *redis.Client
}

func NewIntakeRepository(client *redis.Client) domain.IntakeRepository {
	return &intakeRepository{
		client: client,
	}
}

// DayKey is the per-day list suffix, derived from the instant's local
// calendar date.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func (r *intakeRepository) SaveProfile(ctx context.Context, userID string, profile *domain.Profile) error {
	if profile == nil {
		return ErrInvalidProfileData
	}

	record := profileRecord{
		WeightKg:      profile.WeightKg,
		WakeTime:      profile.WakeTime.String(),
		SleepTime:     profile.SleepTime.String(),
		ActivityLevel: profile.ActivityLevel.String(),
		Climate:       profile.Climate.String(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidProfileData
	}

	return r.client.Set(ctx, profileKeyPrefix+userID, data, 0).Err()
}

func (r *intakeRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	data, err := r.client.Get(ctx, profileKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	var record profileRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidProfileData
	}

	profile, err := domain.NewProfile(
		record.WeightKg,
		record.WakeTime,
		record.SleepTime,
		domain.ActivityLevel(record.ActivityLevel),
		domain.Climate(record.Climate),
	)
	if err != nil {
		return nil, ErrInvalidProfileData
	}

	return profile, nil
}

func (r *intakeRepository) AppendIntake(ctx context.Context, userID string, entry domain.IntakeEntry) error {
	if entry.AmountMl <= 0 {
		return ErrInvalidIntakeData
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	data, err := json.Marshal(intakeRecord{
		ID:        entry.ID,
		AmountMl:  entry.AmountMl,
		Timestamp: entry.Timestamp,
	})
	if err != nil {
		return ErrInvalidIntakeData
	}

	dayKey := intakeKeyPrefix + userID + ":" + DayKey(entry.Timestamp)

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, dayKey, data)
	pipe.Expire(ctx, dayKey, intakeTTL)
	pipe.Set(ctx, lastIntakeKeyPrefix+userID, entry.Timestamp.Format(time.RFC3339Nano), lastIntakeTTL)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *intakeRepository) GetIntakeForDay(ctx context.Context, userID string, day time.Time) ([]domain.IntakeEntry, error) {
	key := intakeKeyPrefix + userID + ":" + DayKey(day)

	values, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	entries := make([]domain.IntakeEntry, 0, len(values))
	for _, value := range values {
		var record intakeRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			return nil, ErrInvalidIntakeData
		}
		entries = append(entries, domain.IntakeEntry{
			ID:        record.ID,
			AmountMl:  record.AmountMl,
			Timestamp: record.Timestamp,
		})
	}

	return entries, nil
}

// GetIntakeSince reads the day lists that can overlap the cutoff (the
// cutoff's own day and the day after, when they differ) and filters by
// timestamp.
func (r *intakeRepository) GetIntakeSince(ctx context.Context, userID string, since time.Time) ([]domain.IntakeEntry, error) {
	days := []time.Time{since}
	if next := since.Add(24 * time.Hour); DayKey(next) != DayKey(since) {
		days = append(days, next)
	}

	entries := make([]domain.IntakeEntry, 0)
	for _, day := range days {
		dayEntries, err := r.GetIntakeForDay(ctx, userID, day)
		if err != nil {
			return nil, err
		}
		for _, entry := range dayEntries {
			if !entry.Timestamp.Before(since) {
				entries = append(entries, entry)
			}
		}
	}

	return entries, nil
}

func (r *intakeRepository) GetLastIntakeTime(ctx context.Context, userID string) (*time.Time, error) {
	value, err := r.client.Get(ctx, lastIntakeKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil, ErrInvalidIntakeData
	}

	return &parsed, nil
}
