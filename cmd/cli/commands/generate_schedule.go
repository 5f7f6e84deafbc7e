package commands

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soundministry/escala/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateSchedule <month> <year>",
		Short: "Generate the monthly schedule for the given month and year",
		Long:  "Run the allocation algorithm to assign sound operators to the month's service events",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := strconv.Atoi(args[0])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("month must be a number between 1 and 12")
			}
			year, err := strconv.Atoi(args[1])
			if err != nil || year < 2024 {
				return fmt.Errorf("year must be a number no earlier than 2024")
			}

			locale, _ := cmd.Flags().GetString("locale")
			if locale == "" {
				locale = app.Cfg.DefaultLocale
			}

			opts := services.GenerateOptions{
				Month:         month,
				Year:          year,
				Locale:        locale,
				HistoryMonths: app.Cfg.HistoryLookbackMonths,
				AdjacencyDays: app.Cfg.AdjacencyLookbackDays,
			}
			if app.Cfg.RandomSeed != nil {
				opts.Rand = rand.New(rand.NewSource(*app.Cfg.RandomSeed))
			}

			app.Logger.Debug("generateSchedule command",
				zap.Int("month", month),
				zap.Int("year", year),
				zap.String("locale", locale))

			result, err := services.GenerateSchedule(app.Ctx, app.Database, app.Logger, opts)
			if result != nil {
				fmt.Println()
				for _, line := range result.Logs {
					fmt.Println(line)
				}
				fmt.Println()
			}
			if err != nil {
				if errors.Is(err, services.ErrScheduleExists) {
					return fmt.Errorf("schedule for %d/%d already exists", month, year)
				}
				return err
			}

			if result.Success {
				fmt.Printf("✅ Schedule created: %s\n", result.ScheduleID)
			} else {
				fmt.Printf("❌ Generation failed: %s\n", result.Err)
				if result.ScheduleID != "" {
					fmt.Printf("💡 Partial rows remain; delete schedule %s to discard them.\n", result.ScheduleID)
				}
			}

			return nil
		},
	}

	cmd.Flags().String("locale", "", "Locale for generation logs (defaults to config)")

	return cmd
}
