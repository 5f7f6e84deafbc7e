package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/soundministry/escala/pkg/db"
)

// GetScheduleByMonthYear retrieves the schedule for a month and year.
// Returns (nil, nil) when none exists.
func (d *DB) GetScheduleByMonthYear(ctx context.Context, month, year int) (*db.Schedule, error) {
	var s db.Schedule
	err := d.pool.QueryRow(ctx, `
		SELECT id, month, year, status
		FROM schedule
		WHERE month = $1 AND year = $2
	`, month, year).Scan(&s.ID, &s.Month, &s.Year, &s.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}
	return &s, nil
}

// GetSchedule retrieves a schedule by ID. Returns (nil, nil) when not found.
func (d *DB) GetSchedule(ctx context.Context, id string) (*db.Schedule, error) {
	var s db.Schedule
	err := d.pool.QueryRow(ctx, `
		SELECT id, month, year, status
		FROM schedule
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Month, &s.Year, &s.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}
	return &s, nil
}

// ListSchedules retrieves all schedules, most recent month first
func (d *DB) ListSchedules(ctx context.Context) ([]db.Schedule, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, month, year, status
		FROM schedule
		ORDER BY year DESC, month DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	var schedules []db.Schedule
	for rows.Next() {
		var s db.Schedule
		if err := rows.Scan(&s.ID, &s.Month, &s.Year, &s.Status); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedules: %w", err)
	}
	return schedules, nil
}

// InsertSchedule inserts a new schedule row. The UNIQUE(month, year)
// constraint is the arbiter against concurrent duplicate generations.
func (d *DB) InsertSchedule(ctx context.Context, s *db.Schedule) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO schedule (id, month, year, status)
		VALUES ($1, $2, $3, $4)
	`, s.ID, s.Month, s.Year, s.Status)
	if err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

// UpdateScheduleStatus sets the status of a schedule
func (d *DB) UpdateScheduleStatus(ctx context.Context, id, status string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE schedule SET status = $2 WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update schedule status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s not found", id)
	}
	return nil
}

// DeleteSchedule removes a schedule; events and assignments cascade
func (d *DB) DeleteSchedule(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `
		DELETE FROM schedule WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s not found", id)
	}
	return nil
}

// InsertEvent inserts a schedule event row
func (d *DB) InsertEvent(ctx context.Context, e *db.ScheduleEvent) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO schedule_event (id, schedule_id, date, name, min_operators, max_operators)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.ID, e.ScheduleID, e.Date, e.Name, e.MinOperators, e.MaxOperators)
	if err != nil {
		return fmt.Errorf("failed to insert schedule event: %w", err)
	}
	return nil
}

// GetScheduleEvents retrieves a schedule's events with their assignments and
// operator names, ordered by date
func (d *DB) GetScheduleEvents(ctx context.Context, scheduleID string) ([]db.EventWithAssignments, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, schedule_id, date, name, min_operators, max_operators
		FROM schedule_event
		WHERE schedule_id = $1
		ORDER BY date, name
	`, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule events: %w", err)
	}
	defer rows.Close()

	var events []db.EventWithAssignments
	for rows.Next() {
		var e db.ScheduleEvent
		if err := rows.Scan(&e.ID, &e.ScheduleID, &e.Date, &e.Name, &e.MinOperators, &e.MaxOperators); err != nil {
			return nil, fmt.Errorf("failed to scan schedule event: %w", err)
		}
		events = append(events, db.EventWithAssignments{Event: e})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule events: %w", err)
	}

	for i := range events {
		assignments, err := d.getEventAssignments(ctx, events[i].Event.ID)
		if err != nil {
			return nil, err
		}
		events[i].Assignments = assignments
	}

	return events, nil
}

func (d *DB) getEventAssignments(ctx context.Context, eventID string) ([]db.AssignmentWithName, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT a.id, a.event_id, a.operator_id, a.is_manual, o.name
		FROM schedule_assignment a
		JOIN sound_operator o ON o.id = a.operator_id
		WHERE a.event_id = $1
		ORDER BY o.name
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.AssignmentWithName
	for rows.Next() {
		var a db.AssignmentWithName
		if err := rows.Scan(&a.Assignment.ID, &a.Assignment.EventID, &a.Assignment.OperatorID, &a.Assignment.IsManual, &a.OperatorName); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}
	return assignments, nil
}
