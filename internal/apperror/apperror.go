// Package apperror defines the closed set of failure kinds a meeting request
// can end in and how each kind is shown to the user.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	KindNone Kind = iota
	KindUnknown
	KindMissingInput
	KindInvalidInput
	KindInvalidAudioFormat
	KindTranscriptionFailed
	KindSummarizationFailed
	KindConfiguration
)

var kindNames = map[Kind]string{
	KindNone:                "none",
	KindUnknown:             "unknown",
	KindMissingInput:        "missing_input",
	KindInvalidInput:        "invalid_input",
	KindInvalidAudioFormat:  "invalid_audio_format",
	KindTranscriptionFailed: "transcription_failed",
	KindSummarizationFailed: "summarization_failed",
	KindConfiguration:       "configuration",
}

// String returns the snake_case name used in logs and JSON responses.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Error is the application error carrying a Kind and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		if e.Message == "" {
			return e.Cause.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err with the given kind and message.
func Wrap(err error, kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Cause: err}
}

// KindOf returns the kind of the outermost *Error in err's chain.
// nil maps to KindNone and foreign errors to KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
