package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soundministry/escala/pkg/core/services"
)

// PublishScheduleCmd creates the publishSchedule command
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishSchedule <schedule_id>",
		Short: "Publish a draft schedule",
		Long:  "Mark a draft schedule as published; published schedules count toward future fairness history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			app.Logger.Debug("publishSchedule command", zap.String("schedule_id", id))

			if err := services.PublishSchedule(app.Ctx, app.Database, app.Logger, id); err != nil {
				return err
			}

			fmt.Printf("✅ Schedule %s published\n", id)
			return nil
		},
	}
}

// DeleteScheduleCmd creates the deleteSchedule command
func DeleteScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteSchedule <schedule_id>",
		Short: "Delete a schedule and all its events and assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			app.Logger.Debug("deleteSchedule command", zap.String("schedule_id", id))

			if err := services.DeleteSchedule(app.Ctx, app.Database, app.Logger, id); err != nil {
				return err
			}

			fmt.Printf("✅ Schedule %s deleted\n", id)
			return nil
		},
	}
}
