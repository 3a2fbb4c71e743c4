package oracle

import (
	"context"
	"fmt"
	"strings"

	"fauzan/catat-duit/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements the Client interface against the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiClient creates a Gemini-backed oracle client. The same model
// handles both text structuring and receipt vision calls.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Debug("Gemini oracle client created",
		logging.Field{Key: logging.FieldModel, Value: modelName})

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// Generate sends a text prompt to the model and returns the flattened reply.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	c.logger.WithField(logging.FieldOperation, "generate").Debug("Calling Gemini model")

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return flattenResponse(resp), nil
}

// GenerateVision sends a prompt plus an image to the model.
func (c *GeminiClient) GenerateVision(ctx context.Context, prompt string, image []byte, mime string) (string, error) {
	c.logger.WithField(logging.FieldOperation, "generate_vision").Debug("Calling Gemini model with image")

	format := strings.TrimPrefix(mime, "image/")
	if format == "" {
		format = "jpeg"
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt), genai.ImageData(format, image))
	if err != nil {
		return "", fmt.Errorf("gemini generate vision: %w", err)
	}
	return flattenResponse(resp), nil
}

// flattenResponse concatenates the text parts of the first candidate.
// Non-text parts are ignored.
func flattenResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
