// Package export writes batches of records to CSV files, the offline
// counterpart of the spreadsheet sink.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"fauzan/catat-duit/internal/logging"
	"fauzan/catat-duit/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteRecordsToCSV writes records to a CSV file in the standard
// [Tanggal, Deskripsi, Jumlah, Kategori, Sumber] column layout.
func WriteRecordsToCSV(records []models.Record, csvFile string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	log.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
	).Info("Writing records to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

// ReadRecordsFromCSV reads a previously exported CSV back into records.
func ReadRecordsFromCSV(csvFile string) ([]models.Record, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var records []models.Record
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	return records, nil
}
