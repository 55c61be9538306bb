package report

import (
	"context"

	"github.com/meetingassistant/meeting-assistant/internal/processor"
)

// Writer persists processed meetings for the inbox mode
type Writer interface {
	// Write stores the result next to each other as Markdown and DOCX and
	// returns the Markdown path.
	Write(ctx context.Context, audioPath string, res processor.Result) (string, error)
	// Archive moves the source audio out of the inbox.
	Archive(ctx context.Context, audioPath string) error
}
