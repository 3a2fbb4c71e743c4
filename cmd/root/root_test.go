package root_test

import (
	"testing"

	"fauzan/catat-duit/cmd/root"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "catat-duit", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "expense notes")
	assert.Contains(t, root.Cmd.Long, "Google Sheets")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	if assert.NotNil(t, inputFlag) {
		assert.Equal(t, "i", inputFlag.Shorthand)
	}

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	if assert.NotNil(t, outputFlag) {
		assert.Equal(t, "o", outputFlag.Shorthand)
	}

	categoriesFlag := root.Cmd.PersistentFlags().Lookup("categories")
	if assert.NotNil(t, categoriesFlag) {
		assert.Equal(t, "c", categoriesFlag.Shorthand)
	}
}
