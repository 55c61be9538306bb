package processor

import (
	"github.com/meetingassistant/meeting-assistant/internal/logger"
	"github.com/meetingassistant/meeting-assistant/internal/summarizer"
	"github.com/meetingassistant/meeting-assistant/internal/transcriber"
)

type implProcessor struct {
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New creates a new Processor instance
func New(tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		transcriber: tr,
		summarizer:  sum,
		logger:      log,
	}
}
