// Package amount provides normalization of Indonesian currency strings into
// integer Rupiah. It understands the delimited form emitted by the oracle
// ("Rp150.000", "Rp1.250.000,50") and the colloquial shorthand users type
// ("15rb", "15k", "1,5jt").
package amount

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var (
	// Delimited form: currency marker, optional space or dot, then a digit
	// group using '.' as thousands separator and ',' as decimal separator.
	rupiahPattern = regexp.MustCompile(`(?i)rp[\s.]?\s*([0-9][0-9.,]*)`)

	// Shorthand form: number with optional ',' or '.' fraction, then a
	// multiplier suffix. "rb" and "k" mean thousands, "jt" millions.
	shorthandPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(rb|jt|k)\b`)

	nonDigit = regexp.MustCompile(`[^0-9]`)
)

// Normalize converts a free-form currency string to integer Rupiah.
// The delimited "Rp" form wins over shorthand when both appear. Returns 0
// when no recognizable amount is found; extraction never raises.
func Normalize(text string) int64 {
	if v, ok := NormalizeDelimited(text); ok {
		return v
	}
	if v, ok := NormalizeShorthand(text); ok {
		return v
	}
	return 0
}

// NormalizeDelimited extracts the first "Rp"-marked amount from text.
// Thousands separators are removed, any decimal remainder after ',' is
// truncated: "Rp1.250.000,50" -> 1250000. Malformed digit groups degrade to
// a best-effort strip of every non-digit before the decimal separator.
func NormalizeDelimited(text string) (int64, bool) {
	match := rupiahPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	group := match[1]

	// Everything after the decimal separator is the fractional remainder.
	if idx := strings.Index(group, ","); idx != -1 {
		group = group[:idx]
	}

	digits := nonDigit.ReplaceAllString(group, "")
	if digits == "" {
		return 0, false
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		log.WithField("amount", match[1]).Warnf("Failed to parse delimited amount: %v", err)
		return 0, false
	}
	return value, true
}

// NormalizeShorthand extracts the first shorthand amount from text.
// "15rb" and "15k" are thousands, "1,5jt" is 1 500 000. Either ',' or '.'
// acts as the fractional separator inside the shorthand number.
func NormalizeShorthand(text string) (int64, bool) {
	match := shorthandPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	numStr := strings.ReplaceAll(match[1], ",", ".")
	num, err := decimal.NewFromString(numStr)
	if err != nil {
		log.WithField("amount", match[1]).Warnf("Failed to parse shorthand amount: %v", err)
		return 0, false
	}

	var multiplier decimal.Decimal
	switch strings.ToLower(match[2]) {
	case "jt":
		multiplier = decimal.NewFromInt(1_000_000)
	default: // "rb" or "k"
		multiplier = decimal.NewFromInt(1_000)
	}

	return num.Mul(multiplier).IntPart(), true
}

// FormatRupiah renders an integer amount in the Indonesian convention with
// '.' as thousands separator, e.g. 1250000 -> "Rp1.250.000".
func FormatRupiah(value int64) string {
	digits := strconv.FormatInt(value, 10)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := "Rp" + strings.Join(groups, ".")
	if negative {
		out = "-" + out
	}
	return out
}
