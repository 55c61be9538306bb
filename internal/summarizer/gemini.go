package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/meetingassistant/meeting-assistant/internal/aiclient"
)

// geminiModels is the subset of *genai.Models used here
type geminiModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// geminiChat sends the prompt to a Gemini model with the same sampling
// settings as the OpenAI path
type geminiChat struct {
	models geminiModels
	model  string
}

func (g *geminiChat) complete(ctx context.Context, system, prompt string) (string, error) {
	result, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](temperature),
		MaxOutputTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return aiclient.GeminiText(result)
}

func (g *geminiChat) name() string {
	return "gemini"
}
