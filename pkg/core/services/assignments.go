package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/soundministry/escala/pkg/db"
	"github.com/soundministry/escala/pkg/metrics"
)

// AssignmentStore defines the database operations for manual assignment edits
type AssignmentStore interface {
	GetAssignmentByEventOperator(ctx context.Context, eventID, operatorID string) (*db.Assignment, error)
	InsertAssignment(ctx context.Context, a *db.Assignment) error
	DeleteAssignment(ctx context.Context, id string) error
}

// AddAssignment manually assigns an operator to an event after generation.
// An operator may appear at most once per event.
func AddAssignment(ctx context.Context, store AssignmentStore, logger *zap.Logger, eventID, operatorID string) (*db.Assignment, error) {
	if eventID == "" || operatorID == "" {
		return nil, fmt.Errorf("event ID and operator ID are required")
	}

	existing, err := store.GetAssignmentByEventOperator(ctx, eventID, operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("operator %s is already assigned to event %s", operatorID, eventID)
	}

	assignment := &db.Assignment{
		ID:         uuid.New().String(),
		EventID:    eventID,
		OperatorID: operatorID,
		IsManual:   true,
	}
	if err := store.InsertAssignment(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to insert assignment: %w", err)
	}
	metrics.AssignmentsCreated.WithLabelValues("manual").Inc()

	logger.Info("Manual assignment created",
		zap.String("assignment_id", assignment.ID),
		zap.String("event_id", eventID),
		zap.String("operator_id", operatorID))
	return assignment, nil
}

// RemoveAssignment removes an assignment by ID
func RemoveAssignment(ctx context.Context, store AssignmentStore, logger *zap.Logger, id string) error {
	if id == "" {
		return fmt.Errorf("assignment ID is required")
	}

	if err := store.DeleteAssignment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	logger.Info("Assignment removed", zap.String("assignment_id", id))
	return nil
}
