package oracle

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fauzan/catat-duit/internal/logging"
)

func TestFlattenResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{
						genai.Text("Deskripsi: makan warteg\n"),
						genai.Text("Jumlah: Rp15.000"),
					},
				},
			},
		},
	}
	assert.Equal(t, "Deskripsi: makan warteg\nJumlah: Rp15.000", flattenResponse(resp))
}

func TestFlattenResponseEmptyCases(t *testing.T) {
	assert.Empty(t, flattenResponse(nil))
	assert.Empty(t, flattenResponse(&genai.GenerateContentResponse{}))
	assert.Empty(t, flattenResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}))
}

func TestNewGeminiClientRequiresAPIKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "", "gemini-1.5-flash", nil)
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestNewGeminiClientLogsModel(t *testing.T) {
	mock := &logging.MockLogger{}
	client, err := NewGeminiClient(context.Background(), "test-key", "gemini-1.5-flash", mock)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.True(t, mock.HasEntry("DEBUG", "Gemini oracle client created"))
	require.Len(t, mock.Entries, 1)
	require.Len(t, mock.Entries[0].Fields, 1)
	assert.Equal(t, logging.FieldModel, mock.Entries[0].Fields[0].Key)
	assert.Equal(t, "gemini-1.5-flash", mock.Entries[0].Fields[0].Value)
}

func TestMockClientFailFrom(t *testing.T) {
	mock := &MockClient{
		Replies:  []string{"ok"},
		Err:      context.DeadlineExceeded,
		FailFrom: 1,
	}

	got, err := mock.Generate(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)

	_, err = mock.Generate(context.Background(), "p2")
	assert.Error(t, err)
}

func TestMockClientReplaysRepliesInOrder(t *testing.T) {
	mock := &MockClient{Replies: []string{"first", "second"}}

	got, err := mock.Generate(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = mock.Generate(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	// Exhausted replies repeat the last one.
	got, err = mock.GenerateVision(context.Background(), "p3", []byte{1}, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	assert.Equal(t, []string{"p1", "p2", "p3"}, mock.Prompts)
}
