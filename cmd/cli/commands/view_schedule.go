package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soundministry/escala/pkg/core/services"
)

// ListSchedulesCmd creates the listSchedules command
func ListSchedulesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listSchedules",
		Short: "List all schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schedules, err := services.ListSchedules(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if len(schedules) == 0 {
				fmt.Println("No schedules found.")
				return nil
			}

			fmt.Printf("\nFound %d schedules:\n\n", len(schedules))
			for _, s := range schedules {
				fmt.Printf("  %02d/%d  %-10s  %s\n", s.Month, s.Year, s.Status, s.ID)
			}
			fmt.Println()
			return nil
		},
	}
}

// ViewScheduleCmd creates the viewSchedule command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewSchedule <schedule_id>",
		Short: "Display a schedule's events and assigned operators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			app.Logger.Debug("viewSchedule command", zap.String("schedule_id", id))

			view, err := services.ViewSchedule(app.Ctx, app.Database, app.Logger, id)
			if err != nil {
				return err
			}

			fmt.Printf("\n📅 Schedule %02d/%d (%s)\n\n", view.Schedule.Month, view.Schedule.Year, view.Schedule.Status)

			for _, ev := range view.Events {
				names := make([]string, 0, len(ev.Assignments))
				for _, a := range ev.Assignments {
					name := a.OperatorName
					if a.Assignment.IsManual {
						name += " (manual)"
					}
					names = append(names, name)
				}

				assigned := "—"
				if len(names) > 0 {
					assigned = strings.Join(names, ", ")
				}

				marker := " "
				if len(ev.Assignments) < ev.Event.MinOperators {
					marker = "⚠"
				}
				fmt.Printf("  %s %s  %-20s %d/%d  %s\n",
					marker,
					ev.Event.Date.Format("2006-01-02"),
					ev.Event.Name,
					len(ev.Assignments),
					ev.Event.MaxOperators,
					assigned)
			}
			fmt.Println()
			return nil
		},
	}
}
