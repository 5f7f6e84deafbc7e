package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/soundministry/escala/pkg/db"
)

// ViewScheduleStore defines the read operations for displaying schedules
type ViewScheduleStore interface {
	GetSchedule(ctx context.Context, id string) (*db.Schedule, error)
	GetScheduleEvents(ctx context.Context, scheduleID string) ([]db.EventWithAssignments, error)
	ListSchedules(ctx context.Context) ([]db.Schedule, error)
}

// ScheduleView is a schedule with its events and assignments resolved
type ScheduleView struct {
	Schedule db.Schedule
	Events   []db.EventWithAssignments
}

// ViewSchedule loads one schedule with its events and assigned operator names
func ViewSchedule(ctx context.Context, store ViewScheduleStore, logger *zap.Logger, id string) (*ScheduleView, error) {
	schedule, err := store.GetSchedule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule %s not found", id)
	}

	events, err := store.GetScheduleEvents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule events: %w", err)
	}

	logger.Debug("Schedule loaded",
		zap.String("schedule_id", id),
		zap.Int("events", len(events)))

	return &ScheduleView{Schedule: *schedule, Events: events}, nil
}

// ListSchedules returns all schedules, most recent first
func ListSchedules(ctx context.Context, store ViewScheduleStore, logger *zap.Logger) ([]db.Schedule, error) {
	schedules, err := store.ListSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	logger.Debug("Schedules listed", zap.Int("count", len(schedules)))
	return schedules, nil
}
