package validation

import (
	"testing"

	"fauzan/catat-duit/internal/models"
	"fauzan/catat-duit/internal/parsererror"

	"github.com/stretchr/testify/assert"
)

func validRecord() models.Record {
	return models.Record{
		Date:        "2025-04-13 00:00:00",
		Description: "beli bensin",
		Amount:      50000,
		Category:    models.CategoryTransport,
		Source:      models.SourceManual,
	}
}

func TestValidateAcceptsGoodRecord(t *testing.T) {
	r := validRecord()
	assert.NoError(t, Validate(&r))
	assert.True(t, IsValid(&r))
}

func TestValidateRejectsSentinels(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*models.Record)
	}{
		{"Unknown description", func(r *models.Record) { r.Description = models.SentinelUnknown }},
		{"Empty description", func(r *models.Record) { r.Description = "" }},
		{"Placeholder description", func(r *models.Record) { r.Description = models.Placeholder }},
		{"Unknown category", func(r *models.Record) { r.Category = models.SentinelUnknown }},
		{"Empty category", func(r *models.Record) { r.Category = "" }},
		{"Placeholder category", func(r *models.Record) { r.Category = models.Placeholder }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecord()
			tc.mutate(&r)
			err := Validate(&r)
			assert.Error(t, err)
			var verr *parsererror.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestValidateRejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []int64{0, -1, -50000} {
		r := validRecord()
		r.Amount = amount
		assert.Error(t, Validate(&r))
	}
}

func TestUnknownDescriptionNeverValid(t *testing.T) {
	// Regardless of any other field combination.
	for _, amt := range []int64{0, 1, 100000} {
		for _, cat := range []string{models.CategoryFood, models.SentinelUnknown, ""} {
			r := models.Record{
				Description: models.SentinelUnknown,
				Amount:      amt,
				Category:    cat,
				Date:        "2025-01-01 00:00:00",
			}
			assert.False(t, IsValid(&r))
		}
	}
}
