// Package models provides the data structures used throughout the application.
package models

import "strconv"

// Source identifies where a transaction record originated.
type Source string

const (
	// SourceManual marks a record typed directly by the user.
	SourceManual Source = "manual"
	// SourceReceipt marks a record extracted from a receipt image.
	SourceReceipt Source = "gambar"
	// SourceBatch marks a record from a multi-line batch message.
	SourceBatch Source = "batch"
)

// Sentinel values used to mark fields that could not be resolved.
// A record carrying one of these in its description or category is
// invalid and must never reach persistence.
const (
	// SentinelUnknown is the default for a labeled field that was absent.
	SentinelUnknown = "Unknown"
	// Placeholder is what the oracle emits for "no value given".
	Placeholder = "-"
)

// Category labels for the fixed spending taxonomy.
const (
	CategoryFood      = "makanan"
	CategoryShopping  = "belanja"
	CategoryTransport = "transportasi"
	CategoryBills     = "tagihan"
	CategoryOther     = "lainnya"
)

// Record represents one normalized financial transaction.
type Record struct {
	Date        string `csv:"Tanggal"`   // Canonical YYYY-MM-DD HH:MM:SS in WIB
	Description string `csv:"Deskripsi"` // Free-form description, may keep a "2x" multiplier token
	Amount      int64  `csv:"Jumlah"`    // Integer Rupiah, must be > 0 to be valid
	Category    string `csv:"Kategori"`  // One of the category labels above
	Source      Source `csv:"Sumber"`    // Provenance tag, informational only
}

// Year returns the 4-digit year bucket this record belongs to,
// or SentinelUnknown when the record has no usable date.
func (r *Record) Year() string {
	if len(r.Date) < 4 {
		return SentinelUnknown
	}
	return r.Date[:4]
}

// Row returns the record as the persisted sheet row
// [Tanggal, Deskripsi, Jumlah, Kategori, Sumber].
func (r *Record) Row() []string {
	return []string{
		r.Date,
		r.Description,
		strconv.FormatInt(r.Amount, 10),
		r.Category,
		string(r.Source),
	}
}

// IsSentinel reports whether a field value is one of the reserved
// "not resolved" markers.
func IsSentinel(value string) bool {
	return value == "" || value == Placeholder || value == SentinelUnknown
}
