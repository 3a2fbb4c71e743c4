package batch

import (
	"os"
	"path/filepath"
	"testing"

	"fauzan/catat-duit/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommand_Metadata(t *testing.T) {
	assert.Equal(t, "batch [lines...]", Cmd.Use)
	assert.Contains(t, Cmd.Short, "one per line")
	assert.NotNil(t, Cmd.Run)
}

func TestBatchText_FromArgs(t *testing.T) {
	originalInput := root.SharedFlags.Input
	defer func() { root.SharedFlags.Input = originalInput }()
	root.SharedFlags.Input = ""

	text, err := batchText([]string{"makan warteg 15rb", "bensin 20rb"})
	require.NoError(t, err)
	assert.Equal(t, "makan warteg 15rb\nbensin 20rb", text)
}

func TestBatchText_FromFile(t *testing.T) {
	originalInput := root.SharedFlags.Input
	defer func() { root.SharedFlags.Input = originalInput }()

	path := filepath.Join(t.TempDir(), "expenses.txt")
	require.NoError(t, os.WriteFile(path, []byte("listrik 100rb\n"), 0600))
	root.SharedFlags.Input = path

	text, err := batchText(nil)
	require.NoError(t, err)
	assert.Equal(t, "listrik 100rb\n", text)
}

func TestBatchText_MissingFile(t *testing.T) {
	originalInput := root.SharedFlags.Input
	defer func() { root.SharedFlags.Input = originalInput }()
	root.SharedFlags.Input = filepath.Join(t.TempDir(), "nope.txt")

	_, err := batchText(nil)
	assert.Error(t, err)
}
