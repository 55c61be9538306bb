// Package aiclient builds the SDK clients for the remote speech and text
// services so both the transcriber and the summarizer share one setup.
package aiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/meetingassistant/meeting-assistant/internal/config"
)

// ErrEmptyResponse is returned when a service answers without any content.
var ErrEmptyResponse = errors.New("empty response from model")

// NewOpenAI returns a go-openai client for cfg. A zero RequestTimeout keeps
// the transport default.
func NewOpenAI(cfg config.OpenAIConfig) *openai.Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.RequestTimeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	return openai.NewClientWithConfig(clientCfg)
}

// NewGemini returns a genai client for the Gemini API backend.
func NewGemini(ctx context.Context, cfg config.GeminiConfig) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return client, nil
}

// GeminiText concatenates the text parts of the first candidate.
func GeminiText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
