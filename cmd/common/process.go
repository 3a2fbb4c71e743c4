// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"time"

	"fauzan/catat-duit/cmd/root"
	"fauzan/catat-duit/internal/categorizer"
	"fauzan/catat-duit/internal/config"
	"fauzan/catat-duit/internal/export"
	"fauzan/catat-duit/internal/logging"
	"fauzan/catat-duit/internal/oracle"
	"fauzan/catat-duit/internal/sheets"
	"fauzan/catat-duit/internal/store"
	"fauzan/catat-duit/internal/tracker"
)

// Deps bundles everything a command handler needs to run the pipeline.
// Close releases the oracle client and flushes the sink; call it when the
// command is done regardless of outcome.
type Deps struct {
	Tracker *tracker.Tracker
	Sink    sheets.Sink
	Timeout time.Duration
	Logger  logging.Logger

	closers []func() error
}

// Setup builds the tracker and its collaborators from the loaded
// configuration and the shared command flags. Commands that never consult
// the oracle (the plain text parse) pass needOracle=false so they work
// without an API key.
func Setup(ctx context.Context, needOracle bool) (*Deps, error) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	// Re-apply log settings now that the config file has been resolved.
	root.Log = config.ConfigureLoggingFromConfig(cfg)
	log := logging.NewLogrusAdapterFromLogger(root.Log)
	deps := &Deps{
		Timeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		Logger:  log,
	}

	var client oracle.Client
	if needOracle {
		if cfg.AI.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		gemini, err := oracle.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, log)
		if err != nil {
			return nil, fmt.Errorf("creating oracle client: %w", err)
		}
		client = gemini
		deps.closers = append(deps.closers, gemini.Close)
	}

	sink, err := buildSink(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	deps.Sink = sink
	if csvSink, ok := sink.(*export.CSVSink); ok {
		deps.closers = append(deps.closers, csvSink.Flush)
	}

	categoriesFile := root.SharedFlags.Categories
	if categoriesFile == "" {
		categoriesFile = cfg.Categories.File
	}
	cat := categorizer.NewCategorizer(store.NewCategoryStore(categoriesFile), log)

	deps.Tracker = tracker.New(client, sink, cat, log)
	return deps, nil
}

// buildSink picks the persistence backend: a local CSV file when --output is
// given, the configured Google Sheets spreadsheet otherwise.
func buildSink(ctx context.Context, cfg *config.Config, log logging.Logger) (sheets.Sink, error) {
	if root.SharedFlags.Output != "" {
		return export.NewCSVSink(root.SharedFlags.Output), nil
	}
	if cfg.Sheets.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID is not set; pass --output to write a CSV instead")
	}
	return sheets.NewSheetsSink(ctx, cfg.Sheets.CredentialsPath, cfg.Sheets.SpreadsheetID, log)
}

// Close runs the registered cleanups in order and returns the first error.
func (d *Deps) Close() error {
	var first error
	for _, closeFn := range d.closers {
		if err := closeFn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Report prints the confirmation text for a finished run and logs the
// rejected count when any candidate failed validation.
func Report(result *tracker.Result) {
	if result.Reply != "" {
		fmt.Println(result.Reply)
	}
	if result.Rejected > 0 {
		root.Log.Warnf("%d candidate(s) failed validation and were skipped", result.Rejected)
	}
	if len(result.Records) == 0 && result.Rejected == 0 {
		root.Log.Info("Nothing to record")
	}
}
