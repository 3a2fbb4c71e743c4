// Package batch handles the multi-line expense command
package batch

import (
	"context"
	"os"
	"strings"

	"fauzan/catat-duit/cmd/common"
	"fauzan/catat-duit/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch [lines...]",
	Short: "Record several expenses, one per line",
	Long: `Record a batch of expense lines. Each line is structured by the model
independently; lines without a date inherit the most recent explicit one.
Lines come from the arguments, or from a file via --input:
  catat-duit batch "makan warteg 15rb" "bensin 20rb"
  catat-duit batch -i expenses.txt`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	text, err := batchText(args)
	if err != nil {
		root.Log.Fatalf("Error reading batch input: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		root.Log.Fatal("No expense lines given; pass lines as arguments or with --input")
	}

	deps, err := common.Setup(cmd.Context(), true)
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

	result, err := deps.Tracker.ParseBatch(ctx, text)
	if err != nil {
		root.Log.Fatalf("Error recording batch: %v", err)
	}
	common.Report(result)
}

func batchText(args []string) (string, error) {
	if root.SharedFlags.Input != "" {
		data, err := os.ReadFile(root.SharedFlags.Input)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return strings.Join(args, "\n"), nil
}
