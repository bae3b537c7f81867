package llm

import (
	"context"
	"errors"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient talks to Google Gemini through the official SDK.
type GeminiClient struct {
	model *genai.GenerativeModel
}

// NewGemini builds a Gemini client for the given model name.
func NewGemini(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	m := c.GenerativeModel(model)
	m.SetTemperature(0)
	return &GeminiClient{model: m}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("no messages")
	}
	cs := c.model.StartChat()
	for _, m := range messages[:len(messages)-1] {
		cs.History = append(cs.History, &genai.Content{
			Role:  geminiRole(m.Role),
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	last := messages[len(messages)-1]
	resp, err := cs.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", err
	}
	txt := firstText(resp)
	if txt == "" {
		return "", errors.New("no candidates")
	}
	return txt, nil
}

func (c *GeminiClient) Verify(ctx context.Context, prompt string, output string) (bool, string, error) {
	full := fmt.Sprintf("%s\nOutput to judge:\n%s", prompt, output)
	resp, err := c.model.GenerateContent(ctx, genai.Text(full))
	if err != nil {
		return false, "", err
	}
	txt := firstText(resp)
	return txt != "", txt, nil
}

// Gemini chats alternate user/model turns; system messages are folded in as
// user turns, matching the original service's convert-system-to-human setting.
func geminiRole(r Role) string {
	if r == RoleAssistant {
		return "model"
	}
	return "user"
}

func firstText(r *genai.GenerateContentResponse) string {
	if r == nil {
		return ""
	}
	for _, c := range r.Candidates {
		if c.Content == nil {
			continue
		}
		for _, part := range c.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
