// Package parsererror defines the typed errors of the extraction pipeline.
// Everything here is recoverable: the message-handling boundary converts
// these into user-facing replies, never into process termination.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrOracleEmpty signals that the oracle returned empty or whitespace-only
// text. No records are persisted when this is raised.
var ErrOracleEmpty = errors.New("oracle returned empty response")

// OracleError wraps a failed call to the text-generation oracle
// (network, auth, quota). The underlying failure detail is preserved for
// the user-facing reply.
type OracleError struct {
	Operation string
	Err       error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle call failed during %s: %v", e.Operation, e.Err)
}

func (e *OracleError) Unwrap() error {
	return e.Err
}

// ValidationError marks a candidate record that failed the persistence
// rules. These are excluded silently from the batch result, they never
// abort processing of sibling candidates.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record: %s (%s)", e.Reason, e.Field)
}

// SinkError wraps a failed append to the persistence sink.
type SinkError struct {
	Year string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("failed to append record to sheet %s: %v", e.Year, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
