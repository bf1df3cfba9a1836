package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-rag-qa/generator"
)

func TestNewGenerator_MissingApiKey(t *testing.T) {
	_, err := NewGenerator()
	require.ErrorIs(t, err, generator.ErrMissingApiKey)
}

func TestGenerate_ReturnsCompletion(t *testing.T) {
	var body struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"m",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Gophers."}}]}`))
	}))
	defer srv.Close()

	g, err := NewGenerator(
		generator.WithApiKey("test-key"),
		generator.WithBaseURL(srv.URL+"/"),
	)
	require.NoError(t, err)

	answer, err := g.Generate(context.Background(), "Context:\nx\n\nQuestion: who?\nAnswer:")
	require.NoError(t, err)
	assert.Equal(t, "Gophers.", answer)

	assert.Equal(t, DefaultModel, body.Model)
	require.Len(t, body.Messages, 1)
	assert.Equal(t, "user", body.Messages[0].Role)
	assert.Equal(t, "Context:\nx\n\nQuestion: who?\nAnswer:", body.Messages[0].Content)
}

func TestGenerate_ErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
	}))
	defer srv.Close()

	g, err := NewGenerator(generator.WithApiKey("k"), generator.WithBaseURL(srv.URL+"/"))
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, generator.ErrGeneration)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGenerate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer srv.Close()

	g, err := NewGenerator(generator.WithApiKey("k"), generator.WithBaseURL(srv.URL+"/"))
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, generator.ErrGeneration)
}
