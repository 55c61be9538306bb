package transcriber

import (
	"context"
	"io"

	"github.com/sashabaranov/go-openai"
)

// openaiRecognizer calls the OpenAI audio transcription endpoint (Whisper)
type openaiRecognizer struct {
	client   *openai.Client
	model    string
	language string
}

func (o *openaiRecognizer) recognize(ctx context.Context, audio io.Reader, filename string) (string, error) {
	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.model,
		FilePath: filename,
		Reader:   audio,
		Language: o.language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (o *openaiRecognizer) name() string {
	return "openai"
}
