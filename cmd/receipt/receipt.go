// Package receipt handles the receipt image command
package receipt

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"fauzan/catat-duit/cmd/common"
	"fauzan/catat-duit/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the receipt command
var Cmd = &cobra.Command{
	Use:   "receipt",
	Short: "Record expenses from a receipt photo",
	Long: `Send a receipt image through the vision model and record every
transaction it finds:
  catat-duit receipt -i struk.jpg`,
	Run: receiptFunc,
}

func receiptFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No image given; pass the receipt photo with --input")
	}

	image, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading image: %v", err)
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

	result, err := deps.Tracker.ParseReceipt(ctx, image, imageMIME(root.SharedFlags.Input))
	if err != nil {
		root.Log.Fatalf("Error processing receipt: %v", err)
	}
	common.Report(result)
}

// imageMIME guesses the MIME type from the file extension, defaulting to
// JPEG since that is what phone cameras produce.
func imageMIME(path string) string {
	if mimeType := mime.TypeByExtension(filepath.Ext(path)); strings.HasPrefix(mimeType, "image/") {
		return mimeType
	}
	return "image/jpeg"
}
