package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{
			name:        "debug level with text format",
			level:       "debug",
			format:      "text",
			expectLevel: logrus.DebugLevel,
		},
		{
			name:        "info level with json format",
			level:       "info",
			format:      "json",
			expectLevel: logrus.InfoLevel,
		},
		{
			name:        "invalid level defaults to info",
			level:       "shouting",
			format:      "text",
			expectLevel: logrus.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)
		})
	}
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	underlying := logrus.New()
	underlying.SetLevel(logrus.WarnLevel)

	logger := NewLogrusAdapterFromLogger(underlying)
	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Same(t, underlying, adapter.logger)

	assert.NotNil(t, NewLogrusAdapterFromLogger(nil))
}

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("processing started", Field{Key: FieldCount, Value: 3})
	mock.Warn("candidate rejected", Field{Key: FieldReason, Value: "amount"})

	assert.True(t, mock.HasEntry("INFO", "processing started"))
	assert.True(t, mock.HasEntry("WARN", "candidate rejected"))
	assert.False(t, mock.HasEntry("DEBUG", "processing started"))
}

func TestMockLoggerWithErrorAttachesError(t *testing.T) {
	mock := &MockLogger{}

	child, ok := mock.WithError(errors.New("boom")).(*MockLogger)
	require.True(t, ok)
	child.Error("append failed")

	require.Len(t, child.Entries, 1)
	assert.EqualError(t, child.Entries[0].Error, "boom")
}
