package google

import (
	"context"
	"io"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-rag-qa/generator"
)

func response(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: parts}},
		},
	}
}

func TestNewGenerator_MissingApiKey(t *testing.T) {
	_, err := NewGenerator(context.Background(), generator.WithModel(DefaultModel))
	require.ErrorIs(t, err, generator.ErrMissingApiKey)
}

func TestNewGenerator_Closable(t *testing.T) {
	g, err := NewGenerator(context.Background(), generator.WithApiKey("k"))
	require.NoError(t, err)

	closer, ok := g.(io.Closer)
	require.True(t, ok)
	assert.NoError(t, closer.Close())
}

func TestResponseText_JoinsTextParts(t *testing.T) {
	got, err := responseText(response(genai.Text("Go "), genai.FunctionCall{Name: "lookup"}, genai.Text("rocks.")))
	require.NoError(t, err)
	assert.Equal(t, "Go rocks.", got)
}

func TestResponseText_NoTextIsAnError(t *testing.T) {
	_, err := responseText(response(genai.FunctionCall{Name: "lookup"}))
	require.ErrorIs(t, err, generator.ErrGeneration)

	_, err = responseText(response(genai.Text("")))
	require.ErrorIs(t, err, generator.ErrGeneration)
}

func TestResponseText_NoCandidates(t *testing.T) {
	for _, rsp := range []*genai.GenerateContentResponse{
		nil,
		{},
		{Candidates: []*genai.Candidate{{}}},
		response(),
	} {
		_, err := responseText(rsp)
		require.ErrorIs(t, err, generator.ErrGeneration)
	}
}
