package summarizer

import "context"

// Summarizer condenses a meeting transcript into an Arabic summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// chatBackend is the remote text-generation call behind a Summarizer
type chatBackend interface {
	complete(ctx context.Context, systemPrompt, prompt string) (string, error)
	name() string
}
