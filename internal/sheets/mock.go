package sheets

import (
	"context"
)

// MockSink captures appended rows per year bucket for tests.
type MockSink struct {
	Rows map[string][][]string
	Err  error
}

// NewMockSink creates an empty in-memory sink.
func NewMockSink() *MockSink {
	return &MockSink{Rows: make(map[string][][]string)}
}

// Append records the row under its year bucket, or fails with Err when set.
func (m *MockSink) Append(_ context.Context, year string, row []string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Rows[year] = append(m.Rows[year], row)
	return nil
}

// Count returns the total number of appended rows across all years.
func (m *MockSink) Count() int {
	total := 0
	for _, rows := range m.Rows {
		total += len(rows)
	}
	return total
}
