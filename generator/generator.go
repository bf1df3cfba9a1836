package generator

import (
	"context"
	"errors"
)

var (
	ErrMissingApiKey = errors.New("missing api key")
	ErrGeneration    = errors.New("generation failed")
	ErrMaxTokens     = errors.New("max tokens must be between 1 and 2147483647")
)

// Generator turns a prompt into a completion. Implementations make exactly
// one upstream call per Generate and never retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
