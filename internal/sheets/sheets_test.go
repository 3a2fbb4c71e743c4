package sheets

import (
	"context"
	"testing"

	"fauzan/catat-duit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorksheetRange(t *testing.T) {
	assert.Equal(t, "'2025'!A1", worksheetRange("2025"))
	assert.Equal(t, "'Unknown'!A1", worksheetRange("Unknown"))
}

func TestRecordRowMatchesHeader(t *testing.T) {
	r := models.Record{
		Date:        "2025-04-13 00:00:00",
		Description: "beli bensin",
		Amount:      50000,
		Category:    models.CategoryTransport,
		Source:      models.SourceManual,
	}
	row := r.Row()
	require.Len(t, row, len(headerRow))
	assert.Equal(t, []string{"2025-04-13 00:00:00", "beli bensin", "50000", "transportasi", "manual"}, row)
}

func TestMockSinkBuckets(t *testing.T) {
	sink := NewMockSink()
	ctx := context.Background()

	require.NoError(t, sink.Append(ctx, "2025", []string{"a"}))
	require.NoError(t, sink.Append(ctx, "2025", []string{"b"}))
	require.NoError(t, sink.Append(ctx, "Unknown", []string{"c"}))

	assert.Len(t, sink.Rows["2025"], 2)
	assert.Len(t, sink.Rows["Unknown"], 1)
	assert.Equal(t, 3, sink.Count())
}
