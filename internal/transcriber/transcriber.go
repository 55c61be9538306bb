package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/meetingassistant/meeting-assistant/internal/apperror"
)

// Transcribe validates audioPath and sends the file to the speech backend.
// Validation failures never reach the network.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := t.validateAudioFile(ctx, audioPath); err != nil {
		return "", err
	}

	t.logger.Info(ctx, "Starting transcription of: %s", audioPath)

	file, err := os.Open(audioPath)
	if err != nil {
		return "", apperror.Wrap(err, apperror.KindTranscriptionFailed, "Transcription failed")
	}
	defer file.Close()

	text, err := t.backend.recognize(ctx, file, filepath.Base(audioPath))
	if err != nil {
		t.logger.Error(ctx, "Error during transcription: %v", err)
		return "", apperror.Wrap(err, apperror.KindTranscriptionFailed, "Transcription failed")
	}

	t.logger.Info(ctx, "Transcription completed successfully. Length: %d characters", len([]rune(text)))
	return text, nil
}

// validateAudioFile checks the path exists, is a regular file and has a
// supported extension (case-insensitive).
func (t *implTranscriber) validateAudioFile(ctx context.Context, audioPath string) error {
	if strings.TrimSpace(audioPath) == "" {
		return apperror.New(apperror.KindInvalidInput, "audio file path is empty")
	}

	info, err := os.Stat(audioPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			t.logger.Error(ctx, "File does not exist: %s", audioPath)
			return apperror.Newf(apperror.KindInvalidAudioFormat, "file does not exist: %s", filepath.Base(audioPath))
		}
		return apperror.Wrap(err, apperror.KindInvalidAudioFormat, "stat audio file")
	}
	if info.IsDir() {
		return apperror.Newf(apperror.KindInvalidAudioFormat, "not a file: %s", filepath.Base(audioPath))
	}

	ext := filepath.Ext(audioPath)
	if !t.cfg.IsSupportedFormat(ext) {
		t.logger.Error(ctx, "Unsupported file format: %s. Supported formats: %v", ext, t.cfg.SupportedFormats)
		return apperror.Newf(apperror.KindInvalidAudioFormat,
			"unsupported file format %q (supported: %s)", ext, strings.Join(t.cfg.SupportedFormats, ", "))
	}

	return nil
}
