package transcriber

import (
	"context"
	"io"
)

// Transcriber converts a local audio file into plain text
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// recognizer is the remote speech-recognition call behind a Transcriber
type recognizer interface {
	recognize(ctx context.Context, audio io.Reader, filename string) (string, error)
	name() string
}
