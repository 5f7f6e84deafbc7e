package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/soundministry/escala/pkg/db"
)

// GetPublishedAssignments retrieves assignments belonging to published
// schedules whose event date falls in [from, to)
func (d *DB) GetPublishedAssignments(ctx context.Context, from, to time.Time) ([]db.HistoricalAssignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT a.operator_id, e.date
		FROM schedule_assignment a
		JOIN schedule_event e ON e.id = a.event_id
		JOIN schedule s ON s.id = e.schedule_id
		WHERE s.status = 'PUBLISHED'
		  AND e.date >= $1 AND e.date < $2
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query published assignments: %w", err)
	}
	defer rows.Close()

	var history []db.HistoricalAssignment
	for rows.Next() {
		var h db.HistoricalAssignment
		if err := rows.Scan(&h.OperatorID, &h.EventDate); err != nil {
			return nil, fmt.Errorf("failed to scan historical assignment: %w", err)
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating historical assignments: %w", err)
	}
	return history, nil
}

// InsertAssignment inserts a single assignment row. Each write commits
// independently; a failed run leaves earlier rows in place.
func (d *DB) InsertAssignment(ctx context.Context, a *db.Assignment) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO schedule_assignment (id, event_id, operator_id, is_manual)
		VALUES ($1, $2, $3, $4)
	`, a.ID, a.EventID, a.OperatorID, a.IsManual)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

// GetAssignmentByEventOperator retrieves the assignment binding an operator
// to an event. Returns (nil, nil) when none exists.
func (d *DB) GetAssignmentByEventOperator(ctx context.Context, eventID, operatorID string) (*db.Assignment, error) {
	var a db.Assignment
	err := d.pool.QueryRow(ctx, `
		SELECT id, event_id, operator_id, is_manual
		FROM schedule_assignment
		WHERE event_id = $1 AND operator_id = $2
	`, eventID, operatorID).Scan(&a.ID, &a.EventID, &a.OperatorID, &a.IsManual)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query assignment: %w", err)
	}
	return &a, nil
}

// DeleteAssignment removes an assignment row by ID
func (d *DB) DeleteAssignment(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `
		DELETE FROM schedule_assignment WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("assignment %s not found", id)
	}
	return nil
}
