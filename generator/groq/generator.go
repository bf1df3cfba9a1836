package groq

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"go-rag-qa/generator"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1/"
	DefaultModel   = "llama-3.1-8b-instant"
)

type groqGenerator struct {
	options generator.Options
	client  openai.Client
}

func (g *groqGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.options.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(g.options.FullPrompt(prompt)),
		},
		MaxTokens:   openai.Int(int64(g.options.MaxTokens)),
		Temperature: openai.Float(g.options.Temperature),
	}

	rsp, err := g.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: groq: %w", generator.ErrGeneration, err)
	}

	if len(rsp.Choices) == 0 || len(rsp.Choices[0].Message.Content) == 0 {
		return "", fmt.Errorf("%w: %w", generator.ErrGeneration, errors.New("no response from Groq"))
	}

	return rsp.Choices[0].Message.Content, nil
}

// NewGenerator talks to Groq's OpenAI-compatible chat completions endpoint.
func NewGenerator(opts ...generator.Option) (generator.Generator, error) {
	options := generator.NewOptions(opts...)
	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("groq: %w", err)
	}
	if len(options.Model) == 0 {
		options.Model = DefaultModel
	}
	if len(options.BaseURL) == 0 {
		options.BaseURL = DefaultBaseURL
	}

	g := &groqGenerator{
		options: options,
		client: openai.NewClient(
			option.WithAPIKey(options.ApiKey),
			option.WithBaseURL(options.BaseURL),
			option.WithMaxRetries(0),
		),
	}

	return g, nil
}
