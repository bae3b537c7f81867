package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Transcriber extracts text from a base64-encoded image. Implementations
// fail open: on any problem they return a string describing the failure so
// an image-only request still produces a query for the agent.
type Transcriber interface {
	Transcribe(ctx context.Context, imageBase64 string) string
}

const transcribePrompt = "Transcribe all text visible in this image. " +
	"Return only the transcribed text, without commentary."

// GeminiTranscriber uses Gemini's vision input to read text out of images.
type GeminiTranscriber struct {
	model *genai.GenerativeModel
}

func NewGeminiTranscriber(ctx context.Context, apiKey, model string) (*GeminiTranscriber, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiTranscriber{model: c.GenerativeModel(model)}, nil
}

func (t *GeminiTranscriber) Transcribe(ctx context.Context, imageBase64 string) string {
	data, err := decodeImage(imageBase64)
	if err != nil {
		return fmt.Sprintf("Could not read text from the image: %v", err)
	}
	format := imageFormat(data)
	resp, err := t.model.GenerateContent(ctx, genai.ImageData(format, data), genai.Text(transcribePrompt))
	if err != nil {
		return fmt.Sprintf("Could not read text from the image: %v", err)
	}
	txt := firstText(resp)
	if txt == "" {
		return "Could not read text from the image: empty transcription"
	}
	return strings.TrimSpace(txt)
}

// decodeImage accepts both bare base64 and data: URIs.
func decodeImage(s string) ([]byte, error) {
	if i := strings.Index(s, ","); i != -1 && strings.HasPrefix(s, "data:") {
		s = s[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image")
	}
	return data, nil
}

func imageFormat(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return "jpeg"
	case "image/webp":
		return "webp"
	default:
		return "png"
	}
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

// Disabled is used when no vision-capable provider is configured.
type Disabled struct{}

func (Disabled) Transcribe(ctx context.Context, imageBase64 string) string {
	return "Image transcription is unavailable: no vision provider configured."
}
