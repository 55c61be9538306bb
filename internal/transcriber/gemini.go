package transcriber

import (
	"context"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"google.golang.org/genai"

	"github.com/meetingassistant/meeting-assistant/internal/aiclient"
)

const geminiTranscribePrompt = `Transcribe the attached meeting recording verbatim.
The spoken language is "%s". Return only the transcript text, without timestamps, speaker labels or commentary.`

// geminiModels is the subset of *genai.Models used here
type geminiModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// geminiRecognizer sends the audio inline to a Gemini model
type geminiRecognizer struct {
	models   geminiModels
	model    string
	language string
}

func (g *geminiRecognizer) recognize(ctx context.Context, audio io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(audio)
	if err != nil {
		return "", fmt.Errorf("read audio %s: %w", filename, err)
	}

	mime := mimetype.Detect(data)
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(fmt.Sprintf(geminiTranscribePrompt, g.language)),
			genai.NewPartFromBytes(data, mime.String()),
		}, genai.RoleUser),
	}

	result, err := g.models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return aiclient.GeminiText(result)
}

func (g *geminiRecognizer) name() string {
	return "gemini"
}
