// Package export handles uploading an offline CSV into the spreadsheet
package export

import (
	"context"
	"fmt"

	"fauzan/catat-duit/cmd/root"
	"fauzan/catat-duit/internal/config"
	"fauzan/catat-duit/internal/export"
	"fauzan/catat-duit/internal/logging"
	"fauzan/catat-duit/internal/models"
	"fauzan/catat-duit/internal/sheets"
	"fauzan/catat-duit/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Upload a CSV of records into the yearly worksheets",
	Long: `Read records from a CSV previously written with --output and append
them to the configured Google Sheets spreadsheet, one worksheet per year:
  catat-duit export -i expenses.csv`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No CSV given; pass the file with --input")
	}

	records, err := export.ReadRecordsFromCSV(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading CSV: %v", err)
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		root.Log.Fatalf("Error loading configuration: %v", err)
	}
	root.Log = config.ConfigureLoggingFromConfig(cfg)
	if cfg.Sheets.SpreadsheetID == "" {
		root.Log.Fatal("SPREADSHEET_ID is not set")
	}

	log := logging.NewLogrusAdapterFromLogger(root.Log)
	sink, err := sheets.NewSheetsSink(cmd.Context(), cfg.Sheets.CredentialsPath, cfg.Sheets.SpreadsheetID, log)
	if err != nil {
		root.Log.Fatalf("Error connecting to spreadsheet: %v", err)
	}

	uploaded, skipped, err := upload(cmd.Context(), sink, records)
	if err != nil {
		root.Log.Fatalf("Error uploading records: %v", err)
	}
	if skipped > 0 {
		root.Log.Warnf("%d record(s) failed validation and were skipped", skipped)
	}
	fmt.Printf("Uploaded %d record(s)\n", uploaded)
}

// upload appends the valid records in file order, skipping the invalid
// ones; the first append failure aborts the rest.
func upload(ctx context.Context, sink sheets.Sink, records []models.Record) (int, int, error) {
	uploaded, skipped := 0, 0
	for i := range records {
		if !validation.IsValid(&records[i]) {
			skipped++
			continue
		}
		if err := sink.Append(ctx, records[i].Year(), records[i].Row()); err != nil {
			return uploaded, skipped, err
		}
		uploaded++
	}
	return uploaded, skipped, nil
}
