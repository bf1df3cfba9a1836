package generator

import (
	"fmt"
	"math"
)

type Option func(*Options)

type Options struct {
	ApiKey       string
	Model        string
	BaseURL      string
	PromptPrefix string
	MaxTokens    int
	Temperature  float64
}

func WithApiKey(apiKey string) Option {
	return func(o *Options) {
		o.ApiKey = apiKey
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithBaseURL points the client at a different endpoint, e.g. a proxy or a test server.
func WithBaseURL(url string) Option {
	return func(o *Options) {
		o.BaseURL = url
	}
}

func WithPromptPrefix(prefix string) Option {
	return func(o *Options) {
		o.PromptPrefix = prefix
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = t
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		MaxTokens:   1024,
		Temperature: 0.2,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// FullPrompt prepends the configured prefix, if any.
func (o Options) FullPrompt(prompt string) string {
	if len(o.PromptPrefix) > 0 {
		return o.PromptPrefix + "\n" + prompt
	}
	return prompt
}

// Validate reports ErrMissingApiKey when no credential was supplied and
// ErrMaxTokens when the token limit does not fit every provider's int32 field.
func (o Options) Validate() error {
	if len(o.ApiKey) == 0 {
		return ErrMissingApiKey
	}
	if o.MaxTokens <= 0 || o.MaxTokens > math.MaxInt32 {
		return fmt.Errorf("%w: got %d", ErrMaxTokens, o.MaxTokens)
	}
	return nil
}
