package categorizer

import (
	"errors"
	"testing"

	"fauzan/catat-duit/internal/logging"
	"fauzan/catat-duit/internal/models"
	"fauzan/catat-duit/internal/store"

	"github.com/stretchr/testify/assert"
)

func newTestCategorizer() *Categorizer {
	return NewCategorizer(nil, &logging.MockLogger{})
}

func TestClassify(t *testing.T) {
	c := newTestCategorizer()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Fuel purchase",
			input:    "beli bensin Rp50.000",
			expected: models.CategoryTransport,
		},
		{
			name:     "Food stall",
			input:    "makan siang di warteg",
			expected: models.CategoryFood,
		},
		{
			name:     "Convenience store",
			input:    "belanja Indomaret 35rb",
			expected: models.CategoryShopping,
		},
		{
			name:     "Electricity bill",
			input:    "bayar listrik bulan ini",
			expected: models.CategoryBills,
		},
		{
			name:     "Keyword inside a longer word",
			input:    "isi bensinnya full",
			expected: models.CategoryTransport,
		},
		{
			name:     "Mixed case",
			input:    "GOJEK ke kantor",
			expected: models.CategoryTransport,
		},
		{
			name:     "Nothing matches",
			input:    "nonton bioskop",
			expected: models.CategoryOther,
		},
		{
			name:     "Empty description",
			input:    "",
			expected: models.CategoryOther,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Classify(tc.input))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := newTestCategorizer()
	tokens := Tokenize("gojek ke warteg deket kantor")
	first := c.ClassifyTokens(tokens)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.ClassifyTokens(tokens))
	}
	// First matching token wins: "gojek" precedes "warteg".
	assert.Equal(t, models.CategoryTransport, first)
}

func TestNewCategorizerUsesStore(t *testing.T) {
	mockStore := &store.MockCategoryStore{
		Categories: []models.CategoryConfig{
			{Name: "kopi", Keywords: []string{"latte"}},
		},
	}
	c := NewCategorizer(mockStore, &logging.MockLogger{})
	assert.Equal(t, "kopi", c.Classify("beli latte"))
	// Built-in map was replaced wholesale.
	assert.Equal(t, models.CategoryOther, c.Classify("beli bensin"))
}

func TestNewCategorizerFallsBackOnStoreError(t *testing.T) {
	mockStore := &store.MockCategoryStore{
		LoadCategoriesError: errors.New("disk on fire"),
	}
	logger := &logging.MockLogger{}
	c := NewCategorizer(mockStore, logger)
	assert.Equal(t, models.CategoryTransport, c.Classify("beli bensin"))
}

func TestIsKnown(t *testing.T) {
	c := newTestCategorizer()
	assert.True(t, c.IsKnown(models.CategoryFood))
	assert.True(t, c.IsKnown(models.CategoryOther))
	assert.True(t, c.IsKnown("Makanan")) // case-insensitive
	assert.False(t, c.IsKnown("Unknown"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"beli", "bensin", "rp50", "pagi"},
		Tokenize("Beli bensin, Rp50.000 pagi!"))
	assert.Equal(t, []string{"2x", "kopi"}, Tokenize("2x kopi 30000"))
	assert.Empty(t, Tokenize("12345 ..."))
}
