package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/soundministry/escala/pkg/core/model"
	"github.com/soundministry/escala/pkg/db"
)

// PublishScheduleStore defines the database operations needed to publish
// a schedule
type PublishScheduleStore interface {
	GetSchedule(ctx context.Context, id string) (*db.Schedule, error)
	UpdateScheduleStatus(ctx context.Context, id, status string) error
}

// PublishSchedule transitions a draft schedule to PUBLISHED. Only published
// schedules count toward future fairness history and adjacency seeding.
func PublishSchedule(ctx context.Context, store PublishScheduleStore, logger *zap.Logger, id string) error {
	schedule, err := store.GetSchedule(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if schedule == nil {
		return fmt.Errorf("schedule %s not found", id)
	}
	if schedule.Status == string(model.StatusPublished) {
		return fmt.Errorf("schedule %s is already published", id)
	}

	if err := store.UpdateScheduleStatus(ctx, id, string(model.StatusPublished)); err != nil {
		return fmt.Errorf("failed to publish schedule: %w", err)
	}

	logger.Info("Schedule published",
		zap.String("schedule_id", id),
		zap.Int("month", schedule.Month),
		zap.Int("year", schedule.Year))
	return nil
}

// DeleteScheduleStore defines the database operations needed to delete
// a schedule
type DeleteScheduleStore interface {
	GetSchedule(ctx context.Context, id string) (*db.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error
}

// DeleteSchedule discards a schedule along with its events and assignments.
// This is the recovery path after a partially failed generation run.
func DeleteSchedule(ctx context.Context, store DeleteScheduleStore, logger *zap.Logger, id string) error {
	schedule, err := store.GetSchedule(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if schedule == nil {
		return fmt.Errorf("schedule %s not found", id)
	}

	if err := store.DeleteSchedule(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	logger.Info("Schedule deleted",
		zap.String("schedule_id", id),
		zap.Int("month", schedule.Month),
		zap.Int("year", schedule.Year))
	return nil
}
