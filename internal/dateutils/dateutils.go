// Package dateutils provides normalization of Indonesian free-text dates into
// the canonical "YYYY-MM-DD HH:MM:SS" timestamp used across the application.
// All timestamps are anchored to WIB (Asia/Jakarta); normalization is lenient
// and never returns an error to the caller.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutCanonical = "2006-01-02 15:04:05"
	DateLayoutISO       = "2006-01-02"
)

// freeTextPattern matches "<day> <month-name> <year>" with an optional
// "<hour>:<minute>" tail, e.g. "13 Apr 2025" or "1 agustus 25 14:30".
var freeTextPattern = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+)\s+(\d{2,4})(?:\s+(\d{1,2})[:.](\d{2}))?$`)

var canonicalPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(?: \d{2}:\d{2}:\d{2})?$`)

// monthNames maps Indonesian month names and their common abbreviations to
// month numbers. English abbreviations are included because receipt OCR often
// mixes them in.
var monthNames = map[string]int{
	"januari": 1, "jan": 1,
	"februari": 2, "feb": 2, "peb": 2, "pebruari": 2,
	"maret": 3, "mar": 3,
	"april": 4, "apr": 4,
	"mei": 5, "may": 5,
	"juni": 6, "jun": 6,
	"juli": 7, "jul": 7,
	"agustus": 8, "agu": 8, "ags": 8, "agt": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"oktober": 10, "okt": 10, "oct": 10,
	"november": 11, "nov": 11, "nop": 11, "nopember": 11,
	"desember": 12, "des": 12, "dec": 12,
}

// wib is initialized via a var initializer (not init()) so that other
// package-level vars depending on WIB() are ordered after it.
var wib = loadWIB()

func loadWIB() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		// No tzdata available; WIB is a fixed UTC+7 offset year-round.
		loc = time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// WIB returns the fixed application timezone (Asia/Jakarta).
func WIB() *time.Location {
	return wib
}

// Now returns the current wall-clock time in WIB, canonically formatted.
func Now() string {
	return time.Now().In(wib).Format(DateLayoutCanonical)
}

// Normalize converts a free-text Indonesian date into the canonical format.
// Anything that cannot be resolved falls back to "now" in WIB.
func Normalize(raw string) string {
	return NormalizeAt(raw, time.Now())
}

// NormalizeAt is Normalize with an explicit reference time for the fallback,
// which keeps the function deterministic in tests.
//
// Accepted inputs:
//   - already-canonical "YYYY-MM-DD[ HH:MM:SS]" strings (returned unchanged,
//     a bare date gains a midnight time) so re-normalizing is idempotent
//   - "<day> <month-name> <year>[ <hour>:<minute>]" with the Indonesian
//     month table; two-digit years are expanded by prefixing "20", an
//     unrecognized month name degrades to January rather than failing
func NormalizeAt(raw string, now time.Time) string {
	cleaned := CleanDateString(raw)
	if cleaned == "" {
		return now.In(wib).Format(DateLayoutCanonical)
	}

	if canonicalPattern.MatchString(cleaned) {
		if len(cleaned) == len(DateLayoutISO) {
			return cleaned + " 00:00:00"
		}
		return cleaned
	}

	match := freeTextPattern.FindStringSubmatch(cleaned)
	if match == nil {
		return now.In(wib).Format(DateLayoutCanonical)
	}

	day, _ := strconv.Atoi(match[1])
	if day < 1 || day > 31 {
		return now.In(wib).Format(DateLayoutCanonical)
	}

	month, ok := monthNames[strings.ToLower(match[2])]
	if !ok {
		// Lenient fallback: an unknown month name resolves to January.
		month = 1
	}

	yearStr := match[3]
	if len(yearStr) == 2 {
		yearStr = "20" + yearStr
	}
	year, _ := strconv.Atoi(yearStr)

	hour, minute := 0, 0
	if match[4] != "" {
		hour, _ = strconv.Atoi(match[4])
		minute, _ = strconv.Atoi(match[5])
		if hour > 23 || minute > 59 {
			hour, minute = 0, 0
		}
	}

	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:00", year, month, day, hour, minute)
}

// CleanDateString trims and collapses internal whitespace in a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	re := regexp.MustCompile(`\s+`)
	return re.ReplaceAllString(dateStr, " ")
}

// ExtractYear returns the 4-digit year prefix of a canonical timestamp,
// or an empty string when the input is too short to hold one.
func ExtractYear(canonical string) string {
	if len(canonical) < 4 {
		return ""
	}
	return canonical[:4]
}
