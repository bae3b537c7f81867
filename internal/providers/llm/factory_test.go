package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEnvNoKeys(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	c, err := NewFromEnv(context.Background(), "", "", time.Second)
	assert.Nil(t, c)
	assert.Error(t, err)
}

func TestNewFromEnvExplicitProviderMissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewFromEnv(context.Background(), "openai", "", time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestNewFromEnvUnknownProvider(t *testing.T) {
	_, err := NewFromEnv(context.Background(), "cohere", "", time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM provider")
}

func TestNewFromEnvAutoDetectsOpenAI(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("ANTHROPIC_API_KEY", "")

	c, err := NewFromEnv(context.Background(), "", "", time.Second)
	require.NoError(t, err)
	_, ok := c.(*OpenAIClient)
	assert.True(t, ok)
}

func TestNewFromEnvAnthropic(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	c, err := NewFromEnv(context.Background(), "anthropic", "", time.Second)
	require.NoError(t, err)
	ac, ok := c.(*AnthropicClient)
	require.True(t, ok)
	assert.Equal(t, "claude-3-5-sonnet-latest", ac.Model)
}
