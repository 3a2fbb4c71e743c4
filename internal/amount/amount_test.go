package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDelimited(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int64
		found    bool
	}{
		{
			name:     "Simple thousands",
			input:    "Rp150.000",
			expected: 150000,
			found:    true,
		},
		{
			name:     "Millions with two groups",
			input:    "Rp1.250.000",
			expected: 1250000,
			found:    true,
		},
		{
			name:     "Decimal remainder is truncated",
			input:    "Rp1.250.000,50",
			expected: 1250000,
			found:    true,
		},
		{
			name:     "Lowercase marker with space",
			input:    "beli bensin rp 50.000 tadi pagi",
			expected: 50000,
			found:    true,
		},
		{
			name:     "Marker with dot",
			input:    "rp.25.000",
			expected: 25000,
			found:    true,
		},
		{
			name:     "First marker wins",
			input:    "Rp10.000 lalu Rp99.000",
			expected: 10000,
			found:    true,
		},
		{
			name:     "No marker",
			input:    "beli kopi lima belas ribu",
			expected: 0,
			found:    false,
		},
		{
			name:     "Plain digits without grouping",
			input:    "Rp50000",
			expected: 50000,
			found:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, ok := NormalizeDelimited(tc.input)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestNormalizeShorthand(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int64
		found    bool
	}{
		{name: "Thousands with rb", input: "15rb", expected: 15000, found: true},
		{name: "Thousands with k", input: "15k", expected: 15000, found: true},
		{name: "Millions with comma fraction", input: "1,5jt", expected: 1500000, found: true},
		{name: "Millions with dot fraction", input: "1.5jt", expected: 1500000, found: true},
		{name: "Inside a sentence", input: "bayar listrik 200rb kemarin", expected: 200000, found: true},
		{name: "Uppercase suffix", input: "2JT", expected: 2000000, found: true},
		{name: "No shorthand", input: "bayar listrik", expected: 0, found: false},
		{name: "Suffix must terminate the token", input: "15rbx", expected: 0, found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, ok := NormalizeShorthand(tc.input)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestNormalize(t *testing.T) {
	// Delimited form wins over shorthand when both are present.
	assert.Equal(t, int64(50000), Normalize("beli bensin Rp50.000 atau 15rb"))
	// Falls back to shorthand.
	assert.Equal(t, int64(15000), Normalize("kopi 15rb"))
	// Nothing recognizable defaults to zero.
	assert.Equal(t, int64(0), Normalize("jalan-jalan sore"))
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp150.000", FormatRupiah(150000))
	assert.Equal(t, "Rp1.250.000", FormatRupiah(1250000))
	assert.Equal(t, "Rp500", FormatRupiah(500))
	assert.Equal(t, "Rp0", FormatRupiah(0))
	assert.Equal(t, "-Rp5.000", FormatRupiah(-5000))
}
