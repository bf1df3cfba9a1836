package google

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/generative-ai-go/genai"
	genaiopt "google.golang.org/api/option"

	"go-rag-qa/generator"
)

const DefaultModel = "gemini-1.5-flash"

var _ io.Closer = (*googleGenerator)(nil)

type googleGenerator struct {
	options generator.Options
	client  *genai.Client
}

func (g *googleGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.options.Model)
	model.SetMaxOutputTokens(int32(g.options.MaxTokens))
	model.SetTemperature(float32(g.options.Temperature))

	rsp, err := model.GenerateContent(ctx, genai.Text(g.options.FullPrompt(prompt)))
	if err != nil {
		return "", fmt.Errorf("%w: google: %w", generator.ErrGeneration, err)
	}

	return responseText(rsp)
}

// Close releases the underlying API client.
func (g *googleGenerator) Close() error {
	return g.client.Close()
}

// responseText joins the text parts of the first candidate. Non-text parts
// such as function calls are skipped, and an answer with no text is an error.
func responseText(rsp *genai.GenerateContentResponse) (string, error) {
	if rsp == nil || len(rsp.Candidates) == 0 || rsp.Candidates[0].Content == nil || len(rsp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: %w", generator.ErrGeneration, errors.New("no response from Google"))
	}

	var b strings.Builder
	for _, part := range rsp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	result := b.String()
	if len(result) == 0 {
		return "", fmt.Errorf("%w: %w", generator.ErrGeneration, errors.New("no text in Google response"))
	}

	return result, nil
}

// NewGenerator dials the Gemini API. The client is bound to ctx and the
// returned generator implements io.Closer.
func NewGenerator(ctx context.Context, opts ...generator.Option) (generator.Generator, error) {
	options := generator.NewOptions(opts...)
	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("google: %w", err)
	}
	if len(options.Model) == 0 {
		options.Model = DefaultModel
	}

	clientOpts := []genaiopt.ClientOption{genaiopt.WithAPIKey(options.ApiKey)}
	if len(options.BaseURL) > 0 {
		clientOpts = append(clientOpts, genaiopt.WithEndpoint(options.BaseURL))
	}

	client, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("google: %w", err)
	}

	g := &googleGenerator{
		options: options,
		client:  client,
	}

	return g, nil
}
