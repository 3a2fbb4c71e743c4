package export

import (
	"context"
	"errors"
	"testing"

	"fauzan/catat-duit/internal/models"
	"fauzan/catat-duit/internal/sheets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "export", Cmd.Use)
	assert.Contains(t, Cmd.Short, "yearly worksheets")
	assert.NotNil(t, Cmd.Run)
}

func TestUpload_SkipsInvalidRecords(t *testing.T) {
	sink := sheets.NewMockSink()
	records := []models.Record{
		{Date: "2025-04-13 00:00:00", Description: "makan warteg", Amount: 15000, Category: "makanan", Source: models.SourceBatch},
		{Date: "2025-04-13 00:00:00", Description: "Unknown", Amount: 5000, Category: "makanan", Source: models.SourceBatch},
		{Date: "2024-12-01 09:00:00", Description: "bensin", Amount: 20000, Category: "transportasi", Source: models.SourceManual},
	}

	uploaded, skipped, err := upload(context.Background(), sink, records)
	require.NoError(t, err)
	assert.Equal(t, 2, uploaded)
	assert.Equal(t, 1, skipped)
	assert.Len(t, sink.Rows["2025"], 1)
	assert.Len(t, sink.Rows["2024"], 1)
}

func TestUpload_StopsOnSinkError(t *testing.T) {
	sink := sheets.NewMockSink()
	sink.Err = errors.New("quota")
	records := []models.Record{
		{Date: "2025-04-13 00:00:00", Description: "makan", Amount: 15000, Category: "makanan", Source: models.SourceManual},
	}

	uploaded, _, err := upload(context.Background(), sink, records)
	assert.Error(t, err)
	assert.Zero(t, uploaded)
}
