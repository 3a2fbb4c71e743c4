// Package oracle abstracts the external text/vision generation service the
// extraction pipeline consults. The service is treated as an opaque oracle:
// it receives a prompt (and optionally an image) and returns unstructured
// text believed to contain labeled transaction fields.
package oracle

import (
	"context"
)

// Client is the oracle interface consumed by the tracker. It allows the
// pipeline to be tested without live API credentials.
type Client interface {
	// Generate sends a text prompt and returns the raw model output.
	Generate(ctx context.Context, prompt string) (string, error)

	// GenerateVision sends a prompt together with an image (receipt photo).
	// mime is the image MIME type, e.g. "image/jpeg".
	GenerateVision(ctx context.Context, prompt string, image []byte, mime string) (string, error)
}
