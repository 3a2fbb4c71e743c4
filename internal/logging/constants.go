package logging

// Standardized field names for structured logging.
// These constants keep the log output consistent across packages so the
// records are easy to filter when debugging extraction runs.
const (
	FieldOperation = "operation"
	FieldSource    = "source"
	FieldCategory  = "category"
	FieldKeyword   = "keyword"
	FieldAmount    = "amount"
	FieldDate      = "date"
	FieldYear      = "year"
	FieldCount     = "count"
	FieldRejected  = "rejected"
	FieldChunk     = "chunk"
	FieldReason    = "reason"
	FieldSheet     = "sheet"
	FieldModel     = "model"
)
