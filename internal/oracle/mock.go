package oracle

import (
	"context"
)

// MockClient is a canned-response oracle for tests. Replies are consumed in
// order; when they run out the last one repeats.
type MockClient struct {
	Replies []string
	Err     error

	// FailFrom is the zero-based call index at which Err starts being
	// returned. With the default of 0, a set Err fails every call; a
	// positive value lets the first calls succeed before the failure.
	FailFrom int

	// Prompts records every prompt received, for assertions.
	Prompts []string

	calls int
}

func (m *MockClient) next() (string, error) {
	idx := m.calls
	m.calls++

	if m.Err != nil && idx >= m.FailFrom {
		return "", m.Err
	}
	if len(m.Replies) == 0 {
		return "", nil
	}
	if idx >= len(m.Replies) {
		idx = len(m.Replies) - 1
	}
	return m.Replies[idx], nil
}

// Generate returns the next canned reply.
func (m *MockClient) Generate(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	return m.next()
}

// GenerateVision returns the next canned reply.
func (m *MockClient) GenerateVision(_ context.Context, prompt string, _ []byte, _ string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	return m.next()
}
