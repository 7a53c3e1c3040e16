// Package root contains the root command for the application
package root

import (
	"fjacquet/expense-parse/internal/config"
	"fjacquet/expense-parse/internal/container"
	"fjacquet/expense-parse/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-parse",
		Short: "A CLI tool to turn natural-language expense sentences into structured records.",
		Long: `expense-parse extracts structured expense records (amount, payer,
participants, date, description) from free-form sentences like
"Alice paid 450 for dinner with Bob and Carol yesterday".`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-parse!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			appConfig = cfg

			c, err := container.NewContainer(cmd.Context(), cfg)
			if err != nil {
				Log.Fatalf("Failed to initialize dependencies: %v", err)
			}
			appContainer = c
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appContainer != nil {
				if err := appContainer.Close(); err != nil {
					Log.Warnf("Failed to close container: %v", err)
				}
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	appConfig    *config.Config
	appContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// GetConfig returns the loaded application configuration.
func GetConfig() *config.Config {
	return appConfig
}

// GetContainer returns the wired dependency container.
func GetContainer() *container.Container {
	return appContainer
}

// GetLogrusAdapter returns the shared logger wrapped in the Logger interface.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
