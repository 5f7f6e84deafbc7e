package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soundministry/escala/cmd/cli/commands"
	"github.com/soundministry/escala/internal/config"
	"github.com/soundministry/escala/pkg/postgres"
	"github.com/soundministry/escala/pkg/utils/logging"
)

var (
	verbose bool
	app     *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "escala",
		Short: "Escala CLI - Generate and manage monthly sound-operator schedules",
		Long:  `A CLI tool for generating monthly sound-operator schedules and managing the resulting events and assignments.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Logger != nil {
					app.Logger.Sync()
				}
				if app.Database != nil {
					app.Database.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output on the console")

	rootCmd.AddCommand(commands.GenerateScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.PublishScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.DeleteScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.ListSchedulesCmd(appRef()))
	rootCmd.AddCommand(commands.ViewScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.AddAssignmentCmd(appRef()))
	rootCmd.AddCommand(commands.RemoveAssignmentCmd(appRef()))
	rootCmd.AddCommand(commands.MigrateCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext. It is populated by initApp before
// any command runs.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config and database
func initApp() error {
	appRef()
	app.Ctx = context.Background()

	var err error
	app.Logger, err = logging.InitLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded")

	app.Database, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.Logger.Debug("Database connected")

	return nil
}
