package processor

import (
	"context"

	"github.com/meetingassistant/meeting-assistant/internal/apperror"
)

// Processor runs one meeting request: transcription followed by summarization
type Processor interface {
	Process(ctx context.Context, audioPath string) Result
}

// Result is what the presentation layer shows. On failure Transcript holds the
// localized error text and Summary is empty.
type Result struct {
	Transcript string
	Summary    string
	Kind       apperror.Kind
}

// Failed reports whether the request ended in an error.
func (r Result) Failed() bool {
	return r.Kind != apperror.KindNone
}
