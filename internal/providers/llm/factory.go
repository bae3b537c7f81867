package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// NewFromEnv returns a Client based on the configured provider name and the
// API keys present in the environment:
//   - provider "gemini":    GOOGLE_API_KEY
//   - provider "openai":    OPENAI_API_KEY, optional OPENAI_API_BASE
//   - provider "anthropic": ANTHROPIC_API_KEY
//
// With an empty provider the choice is auto-detected by key presence. When no
// key is configured an error is returned and the caller falls back to the
// keyword lookup agent.
func NewFromEnv(ctx context.Context, provider, model string, timeout time.Duration) (Client, error) {
	prov := strings.ToLower(strings.TrimSpace(provider))
	switch prov {
	case "gemini":
		if key := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")); key != "" {
			return NewGemini(ctx, key, modelOrDefault(model, "gemini-1.5-pro"))
		}
		return nil, errors.New("gemini selected but GOOGLE_API_KEY is not set")
	case "openai":
		if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
			base := strings.TrimRight(os.Getenv("OPENAI_API_BASE"), "/")
			return NewOpenAI(key, base, modelOrDefault(model, "gpt-4o-mini"), timeout), nil
		}
		return nil, errors.New("openai selected but OPENAI_API_KEY is not set")
	case "anthropic":
		if key := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")); key != "" {
			return &AnthropicClient{APIKey: key, Model: modelOrDefault(model, "claude-3-5-sonnet-latest"), Timeout: timeout}, nil
		}
		return nil, errors.New("anthropic selected but ANTHROPIC_API_KEY is not set")
	case "":
		// Auto-detect by key presence.
		if key := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")); key != "" {
			return NewGemini(ctx, key, modelOrDefault(model, "gemini-1.5-pro"))
		}
		if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
			base := strings.TrimRight(os.Getenv("OPENAI_API_BASE"), "/")
			return NewOpenAI(key, base, modelOrDefault(model, "gpt-4o-mini"), timeout), nil
		}
		if key := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")); key != "" {
			return &AnthropicClient{APIKey: key, Model: modelOrDefault(model, "claude-3-5-sonnet-latest"), Timeout: timeout}, nil
		}
		return nil, errors.New("no LLM provider configured: set GOOGLE_API_KEY, OPENAI_API_KEY or ANTHROPIC_API_KEY")
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: gemini, openai, anthropic)", provider)
	}
}

func modelOrDefault(model, def string) string {
	if m := strings.TrimSpace(model); m != "" {
		return m
	}
	return def
}
