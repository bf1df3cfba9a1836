package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptions_Defaults(t *testing.T) {
	o := NewOptions()
	assert.Equal(t, 1024, o.MaxTokens)
	assert.InDelta(t, 0.2, o.Temperature, 1e-9)
	require.ErrorIs(t, o.Validate(), ErrMissingApiKey)
}

func TestNewOptions_Apply(t *testing.T) {
	o := NewOptions(
		WithApiKey("k"),
		WithModel("m"),
		WithBaseURL("http://localhost"),
		WithMaxTokens(10),
		WithTemperature(0),
	)
	require.NoError(t, o.Validate())
	assert.Equal(t, "k", o.ApiKey)
	assert.Equal(t, "m", o.Model)
	assert.Equal(t, "http://localhost", o.BaseURL)
	assert.Equal(t, 10, o.MaxTokens)
	assert.Zero(t, o.Temperature)
}

func TestFullPrompt(t *testing.T) {
	assert.Equal(t, "q", NewOptions().FullPrompt("q"))
	assert.Equal(t, "be brief\nq", NewOptions(WithPromptPrefix("be brief")).FullPrompt("q"))
}

func TestValidate_MaxTokensRange(t *testing.T) {
	for _, n := range []int{0, -1, math.MaxInt32 + 1} {
		err := NewOptions(WithApiKey("k"), WithMaxTokens(n)).Validate()
		require.ErrorIs(t, err, ErrMaxTokens, "max tokens %d", n)
	}
	require.NoError(t, NewOptions(WithApiKey("k"), WithMaxTokens(math.MaxInt32)).Validate())
}
