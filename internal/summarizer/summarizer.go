package summarizer

import (
	"context"
	"strings"

	"github.com/meetingassistant/meeting-assistant/internal/apperror"
)

const (
	systemPrompt = "أنت مساعد ذكي متخصص في تلخيص الاجتماعات باللغة العربية."

	// Low temperature keeps summaries consistent between runs.
	temperature = 0.3
	maxTokens   = 1000
)

// Summarize renders the prompt and returns the model's first answer verbatim.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apperror.New(apperror.KindInvalidInput, "Meeting text cannot be empty")
	}

	s.logger.Info(ctx, "Starting summarization. Text length: %d characters", len([]rune(text)))

	summary, err := s.backend.complete(ctx, systemPrompt, s.template.Render(text))
	if err != nil {
		s.logger.Error(ctx, "Error during summarization: %v", err)
		return "", apperror.Wrap(err, apperror.KindSummarizationFailed, "Summarization failed")
	}

	s.logger.Info(ctx, "Summarization completed successfully")
	return summary, nil
}
