// Package segmenter splits a blob of oracle- or user-supplied text into one
// chunk per transaction and tracks the carry-forward date across a batch.
package segmenter

import (
	"regexp"
	"strings"
	"time"

	"fauzan/catat-duit/internal/dateutils"
	"fauzan/catat-duit/internal/extractor"
)

var blankLine = regexp.MustCompile(`\r?\n\s*\r?\n`)

// SplitParagraphs splits oracle-generated multi-transaction text on
// blank-line boundaries, one chunk per transaction. Chunks that are empty
// after trimming are dropped.
func SplitParagraphs(text string) []string {
	parts := blankLine.Split(text, -1)
	chunks := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			chunks = append(chunks, part)
		}
	}
	return chunks
}

// SplitLines splits a user-typed batch message on single newlines, one chunk
// per line. Blank lines are dropped.
func SplitLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	chunks := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			chunks = append(chunks, line)
		}
	}
	return chunks
}

// Batch holds the single piece of mutable state shared by the chunks of one
// inbound message: the most recent explicit date. A Batch must not be reused
// across messages; carry-forward never crosses a batch boundary.
type Batch struct {
	lastSeenDate string
	now          time.Time
}

// NewBatch starts a fresh carry-forward scope anchored at the given wall
// clock, which is the fallback when no chunk ever supplies a date.
func NewBatch(now time.Time) *Batch {
	return &Batch{now: now}
}

// Resolve turns an extracted date field into a canonical timestamp.
// An explicit value is normalized and becomes the new carry-forward date for
// later chunks; the "-" placeholder and an absent label both inherit the
// last explicit date, or "now" in WIB when the batch has not seen one yet.
// Carry-forward moves strictly forward through the batch, never backward.
func (b *Batch) Resolve(date extractor.DateField) string {
	if date.Kind == extractor.DateValue {
		normalized := dateutils.NormalizeAt(date.Value, b.now)
		b.lastSeenDate = normalized
		return normalized
	}

	if b.lastSeenDate != "" {
		return b.lastSeenDate
	}
	return b.now.In(dateutils.WIB()).Format(dateutils.DateLayoutCanonical)
}

// LastSeenDate exposes the current carry-forward date, empty until the first
// explicit date resolves.
func (b *Batch) LastSeenDate() string {
	return b.lastSeenDate
}
