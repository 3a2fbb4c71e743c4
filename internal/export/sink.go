package export

import (
	"context"
	"fmt"
	"strconv"

	"fauzan/catat-duit/internal/models"
)

// CSVSink is an offline persistence sink that buffers appended rows and
// writes them to a single CSV file on Flush. It satisfies the same Append
// contract as the spreadsheet sink; the year bucket is kept in each row's
// date column rather than as a separate sheet.
type CSVSink struct {
	path    string
	records []models.Record
}

// NewCSVSink creates a sink that will write to the given file path.
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

// Append buffers one [Tanggal, Deskripsi, Jumlah, Kategori, Sumber] row.
func (s *CSVSink) Append(_ context.Context, _ string, row []string) error {
	if len(row) != 5 {
		return fmt.Errorf("expected 5 columns, got %d", len(row))
	}
	value, err := strconv.ParseInt(row[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount column %q: %w", row[2], err)
	}
	s.records = append(s.records, models.Record{
		Date:        row[0],
		Description: row[1],
		Amount:      value,
		Category:    row[3],
		Source:      models.Source(row[4]),
	})
	return nil
}

// Flush writes the buffered records to the CSV file. Flushing an empty sink
// is a no-op so a run that rejected everything leaves no file behind.
func (s *CSVSink) Flush() error {
	if len(s.records) == 0 {
		return nil
	}
	return WriteRecordsToCSV(s.records, s.path)
}
