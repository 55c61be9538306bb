package summarizer

import (
	"context"

	"github.com/meetingassistant/meeting-assistant/internal/aiclient"
	"github.com/meetingassistant/meeting-assistant/internal/apperror"
	"github.com/meetingassistant/meeting-assistant/internal/config"
	"github.com/meetingassistant/meeting-assistant/internal/logger"
)

type implSummarizer struct {
	backend  chatBackend
	template Template
	logger   logger.Logger
}

// New creates a Summarizer for the configured provider. The prompt template
// is resolved once here and used for the lifetime of the process.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Summarizer, error) {
	var backend chatBackend

	switch cfg.Provider {
	case config.ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			return nil, apperror.New(apperror.KindConfiguration, "gemini API key not configured")
		}
		client, err := aiclient.NewGemini(ctx, cfg.Gemini)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.KindConfiguration, "init gemini summarizer")
		}
		backend = &geminiChat{models: client.Models, model: cfg.Gemini.Model}
	default:
		if cfg.OpenAI.APIKey == "" {
			return nil, apperror.New(apperror.KindConfiguration, "openai API key not configured")
		}
		backend = &openaiChat{client: aiclient.NewOpenAI(cfg.OpenAI), model: cfg.OpenAI.SummaryModel}
	}

	tmpl := ResolveTemplate(ctx, cfg.Summary.PromptTemplate, log)

	log.Info(ctx, "Meeting Summarizer initialized (provider: %s, model: %s)", backend.name(), modelOf(cfg))
	return newWithBackend(backend, tmpl, log), nil
}

func newWithBackend(backend chatBackend, tmpl Template, log logger.Logger) *implSummarizer {
	return &implSummarizer{
		backend:  backend,
		template: tmpl,
		logger:   log,
	}
}

func modelOf(cfg *config.Config) string {
	if cfg.Provider == config.ProviderGemini {
		return cfg.Gemini.Model
	}
	return cfg.OpenAI.SummaryModel
}
