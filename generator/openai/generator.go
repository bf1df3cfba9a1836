package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"go-rag-qa/generator"
)

const DefaultModel = openai.GPT4oMini

type openAIGenerator struct {
	options generator.Options
	client  *openai.Client
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.options.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: g.options.FullPrompt(prompt),
			},
		},
		MaxTokens:   g.options.MaxTokens,
		Temperature: float32(g.options.Temperature),
	}

	rsp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: openai: %w", generator.ErrGeneration, err)
	}

	if len(rsp.Choices) == 0 || len(rsp.Choices[0].Message.Content) == 0 {
		return "", fmt.Errorf("%w: %w", generator.ErrGeneration, errors.New("no response from OpenAI"))
	}

	return rsp.Choices[0].Message.Content, nil
}

func NewGenerator(opts ...generator.Option) (generator.Generator, error) {
	options := generator.NewOptions(opts...)
	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(options.Model) == 0 {
		options.Model = DefaultModel
	}

	config := openai.DefaultConfig(options.ApiKey)
	if len(options.BaseURL) > 0 {
		config.BaseURL = options.BaseURL
	}

	g := &openAIGenerator{
		options: options,
		client:  openai.NewClientWithConfig(config),
	}

	return g, nil
}
