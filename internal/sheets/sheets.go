// Package sheets provides the append-only persistence sink for validated
// records. Records land in a Google Sheets spreadsheet with one worksheet
// per year; ordering and durability are the spreadsheet's concern, not ours.
package sheets

import (
	"context"
	"fmt"

	"fauzan/catat-duit/internal/logging"
	"fauzan/catat-duit/internal/parsererror"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// headerRow is written once when a year worksheet is first created.
var headerRow = []string{"Tanggal", "Deskripsi", "Jumlah", "Kategori", "Sumber"}

// Sink is the append-only persistence interface consumed by the tracker.
// The year key selects the destination worksheet; "Unknown" is a valid
// bucket for records without a usable timestamp.
type Sink interface {
	Append(ctx context.Context, year string, row []string) error
}

// SheetsSink implements Sink against the Google Sheets API.
type SheetsSink struct {
	service       *sheets.Service
	spreadsheetID string
	logger        logging.Logger

	// ensured caches worksheet titles already known to exist so a batch of
	// records for one year costs a single metadata lookup.
	ensured map[string]bool
}

// NewSheetsSink creates a sink writing to the given spreadsheet using a
// service-account credentials file.
func NewSheetsSink(ctx context.Context, credentialsPath, spreadsheetID string, logger logging.Logger) (*SheetsSink, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID environment variable not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &SheetsSink{
		service:       service,
		spreadsheetID: spreadsheetID,
		logger:        logger,
		ensured:       make(map[string]bool),
	}, nil
}

// Append writes one row to the worksheet named after year, creating the
// worksheet (with its header row) on first use.
func (s *SheetsSink) Append(ctx context.Context, year string, row []string) error {
	if err := s.ensureWorksheet(ctx, year); err != nil {
		return &parsererror.SinkError{Year: year, Err: err}
	}

	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, worksheetRange(year), &sheets.ValueRange{
			Values: [][]interface{}{values},
		}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return &parsererror.SinkError{Year: year, Err: err}
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldSheet, Value: year},
	).Debug("Appended record to sheet")
	return nil
}

// ensureWorksheet makes sure a worksheet for the year exists, adding it with
// the header row when missing.
func (s *SheetsSink) ensureWorksheet(ctx context.Context, year string) error {
	if s.ensured[year] {
		return nil
	}

	spreadsheet, err := s.service.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("loading spreadsheet metadata: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == year {
			s.ensured[year] = true
			return nil
		}
	}

	_, err = s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: year},
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("creating worksheet %s: %w", year, err)
	}

	header := make([]interface{}, len(headerRow))
	for i, cell := range headerRow {
		header[i] = cell
	}
	_, err = s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, worksheetRange(year), &sheets.ValueRange{
			Values: [][]interface{}{header},
		}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("writing header row for %s: %w", year, err)
	}

	s.logger.WithField(logging.FieldSheet, year).Info("Created year worksheet")
	s.ensured[year] = true
	return nil
}

func worksheetRange(year string) string {
	return fmt.Sprintf("'%s'!A1", year)
}
