package processor

import (
	"context"
	"strings"
	"time"

	"github.com/meetingassistant/meeting-assistant/internal/apperror"
)

// Process never returns an error: every failure is flattened into the
// transcript slot with an empty summary.
func (p *implProcessor) Process(ctx context.Context, audioPath string) Result {
	if strings.TrimSpace(audioPath) == "" {
		p.logger.Warn(ctx, "Process called without an audio file")
		return Result{
			Transcript: apperror.MissingInputMessage,
			Kind:       apperror.KindMissingInput,
		}
	}

	startTime := time.Now()
	p.logger.Info(ctx, "Processing audio file: %s", audioPath)

	// Step 1: Speech-to-Text
	meetingText, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return p.fail(ctx, err)
	}

	// Step 2: Summarization
	summary, err := p.summarizer.Summarize(ctx, meetingText)
	if err != nil {
		return p.fail(ctx, err)
	}

	p.logger.Info(ctx, "Meeting processing completed successfully in %s", time.Since(startTime).Round(time.Millisecond))
	return Result{
		Transcript: meetingText,
		Summary:    summary,
		Kind:       apperror.KindNone,
	}
}

func (p *implProcessor) fail(ctx context.Context, err error) Result {
	kind := apperror.KindOf(err)
	p.logger.Error(ctx, "Meeting processing failed (%s): %v", kind, err)
	return Result{
		Transcript: apperror.Display(err),
		Kind:       kind,
	}
}
