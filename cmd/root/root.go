// Package root contains the root command for the application
package root

import (
	"fauzan/catat-duit/internal/amount"
	"fauzan/catat-duit/internal/config"
	"fauzan/catat-duit/internal/export"
	"fauzan/catat-duit/internal/logging"
	"fauzan/catat-duit/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	Categories string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "catat-duit",
		Short: "A CLI tool to record Indonesian expense notes into yearly spreadsheets.",
		Long: `catat-duit turns colloquial Indonesian expense text and receipt photos
into normalized transaction records and appends them to a Google Sheets
worksheet per year, or to a local CSV file.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to catat-duit!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Push the configured logger into the packages that keep one
			amount.SetLogger(Log)
			store.SetLogger(Log)
			export.SetLogger(logging.NewLogrusAdapterFromLogger(Log))
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (batch text, CSV, or receipt image)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Write records to this CSV file instead of Google Sheets")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Categories, "categories", "c", "", "Category keyword YAML file (default: categories.yaml)")
}
