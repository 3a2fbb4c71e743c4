// Package validation filters candidate records before persistence.
package validation

import (
	"fauzan/catat-duit/internal/models"
	"fauzan/catat-duit/internal/parsererror"
)

// Validate checks a candidate record against the persistence rules:
// description and category must not be sentinels and the amount must be
// strictly positive. The amount rule applies uniformly to every extraction
// path; zero-amount candidates are never persisted.
// Returns nil when the record is valid.
func Validate(record *models.Record) error {
	if models.IsSentinel(record.Description) {
		return &parsererror.ValidationError{
			Field:  "deskripsi",
			Reason: "unresolved description",
		}
	}
	if models.IsSentinel(record.Category) {
		return &parsererror.ValidationError{
			Field:  "kategori",
			Reason: "unresolved category",
		}
	}
	if record.Amount <= 0 {
		return &parsererror.ValidationError{
			Field:  "jumlah",
			Reason: "amount must be positive",
		}
	}
	return nil
}

// IsValid is a convenience wrapper for call sites that only need the verdict.
func IsValid(record *models.Record) bool {
	return Validate(record) == nil
}
