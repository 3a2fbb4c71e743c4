// Package parse handles the single-transaction text command
package parse

import (
	"context"
	"strings"

	"fauzan/catat-duit/cmd/common"
	"fauzan/catat-duit/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Record one expense from plain text",
	Long: `Record a single expense typed in colloquial Indonesian, for example:
  catat-duit parse "makan siang di warteg Rp25.000"
The amount, category, and timestamp are resolved locally without any
external model call.`,
	Args: cobra.MinimumNArgs(1),
	Run:  parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	text := strings.Join(args, " ")

	deps, err := common.Setup(cmd.Context(), false)
	if err != nil {
		root.Log.Fatalf("Error setting up: %v", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			root.Log.Warnf("Cleanup failed: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), deps.Timeout)
	defer cancel()

	result, err := deps.Tracker.ParseText(ctx, text)
	if err != nil {
		root.Log.Fatalf("Error recording expense: %v", err)
	}
	common.Report(result)
}
