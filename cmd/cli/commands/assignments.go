package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soundministry/escala/pkg/core/services"
)

// AddAssignmentCmd creates the addAssignment command
func AddAssignmentCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addAssignment <event_id> <operator_id>",
		Short: "Manually assign an operator to an event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, operatorID := args[0], args[1]
			app.Logger.Debug("addAssignment command",
				zap.String("event_id", eventID),
				zap.String("operator_id", operatorID))

			assignment, err := services.AddAssignment(app.Ctx, app.Database, app.Logger, eventID, operatorID)
			if err != nil {
				return err
			}

			fmt.Printf("✅ Assignment created: %s\n", assignment.ID)
			return nil
		},
	}
}

// RemoveAssignmentCmd creates the removeAssignment command
func RemoveAssignmentCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeAssignment <assignment_id>",
		Short: "Remove an assignment from an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			app.Logger.Debug("removeAssignment command", zap.String("assignment_id", id))

			if err := services.RemoveAssignment(app.Ctx, app.Database, app.Logger, id); err != nil {
				return err
			}

			fmt.Printf("✅ Assignment %s removed\n", id)
			return nil
		},
	}
}
