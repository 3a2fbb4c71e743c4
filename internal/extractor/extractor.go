// Package extractor pulls the four canonical transaction fields out of one
// labeled text chunk produced by the oracle. Every label is optional; a
// missing label degrades to its documented sentinel default instead of
// failing.
package extractor

import (
	"regexp"
	"strings"

	"fauzan/catat-duit/internal/amount"
	"fauzan/catat-duit/internal/models"
)

// DateKind distinguishes the three states a chunk's date can be in. The
// oracle writes "-" when a receipt carries no date; that placeholder triggers
// carry-forward, whereas a missing label means the chunk never mentioned a
// date at all.
type DateKind int

const (
	// DateAbsent means the "Tanggal:" label did not appear in the chunk.
	DateAbsent DateKind = iota
	// DatePlaceholder means the label was present with the "-" placeholder.
	DatePlaceholder
	// DateValue means the label carried an actual date string.
	DateValue
)

// DateField is the extracted date with its presence state.
type DateField struct {
	Kind  DateKind
	Value string // raw text, only meaningful when Kind == DateValue
}

// Fields holds the raw extraction result for one chunk, before date
// normalization and validation.
type Fields struct {
	Description string
	Amount      int64
	Category    string
	Date        DateField
}

// Labeled-line patterns for the oracle's output grammar. The amount line is
// captured loosely and handed to the amount normalizer so malformed digit
// groups still resolve best-effort.
var (
	descriptionPattern = regexp.MustCompile(`(?m)^\s*Deskripsi:\s*(.+)$`)
	amountPattern      = regexp.MustCompile(`(?m)^\s*Jumlah:\s*(.+)$`)
	categoryPattern    = regexp.MustCompile(`(?m)^\s*Kategori:\s*(.+)$`)
	datePattern        = regexp.MustCompile(`(?m)^\s*Tanggal:\s*(.+)$`)
)

// Extract applies the four labeled-line patterns to a chunk.
// Defaults when a label is missing: description and category resolve to the
// "Unknown" sentinel, amount to 0, date to DateAbsent.
func Extract(chunk string) Fields {
	fields := Fields{
		Description: models.SentinelUnknown,
		Category:    models.SentinelUnknown,
		Date:        DateField{Kind: DateAbsent},
	}

	if m := descriptionPattern.FindStringSubmatch(chunk); m != nil {
		fields.Description = strings.TrimSpace(m[1])
	}

	if m := amountPattern.FindStringSubmatch(chunk); m != nil {
		fields.Amount = amount.Normalize(m[1])
	}

	if m := categoryPattern.FindStringSubmatch(chunk); m != nil {
		fields.Category = strings.TrimSpace(m[1])
	}

	if m := datePattern.FindStringSubmatch(chunk); m != nil {
		value := strings.TrimSpace(m[1])
		if value == models.Placeholder {
			fields.Date = DateField{Kind: DatePlaceholder}
		} else {
			fields.Date = DateField{Kind: DateValue, Value: value}
		}
	}

	return fields
}
