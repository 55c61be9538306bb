package transcriber

import (
	"context"

	"github.com/meetingassistant/meeting-assistant/internal/aiclient"
	"github.com/meetingassistant/meeting-assistant/internal/apperror"
	"github.com/meetingassistant/meeting-assistant/internal/config"
	"github.com/meetingassistant/meeting-assistant/internal/logger"
)

type implTranscriber struct {
	cfg     config.TranscriptionConfig
	backend recognizer
	logger  logger.Logger
}

// New creates a Transcriber for the configured provider
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Transcriber, error) {
	var backend recognizer

	switch cfg.Provider {
	case config.ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			return nil, apperror.New(apperror.KindConfiguration, "gemini API key not configured")
		}
		client, err := aiclient.NewGemini(ctx, cfg.Gemini)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.KindConfiguration, "init gemini transcriber")
		}
		backend = &geminiRecognizer{
			models:   client.Models,
			model:    cfg.Gemini.Model,
			language: cfg.Transcription.Language,
		}
	default:
		if cfg.OpenAI.APIKey == "" {
			return nil, apperror.New(apperror.KindConfiguration, "openai API key not configured")
		}
		backend = &openaiRecognizer{
			client:   aiclient.NewOpenAI(cfg.OpenAI),
			model:    cfg.OpenAI.TranscriptionModel,
			language: cfg.Transcription.Language,
		}
	}

	log.Info(ctx, "Speech-to-Text processor initialized (provider: %s)", backend.name())
	return newWithBackend(cfg.Transcription, backend, log), nil
}

func newWithBackend(cfg config.TranscriptionConfig, backend recognizer, log logger.Logger) *implTranscriber {
	return &implTranscriber{
		cfg:     cfg,
		backend: backend,
		logger:  log,
	}
}
