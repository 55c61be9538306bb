package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Archive moves the processed audio into the archived folder so it is not
// picked up again
func (w *implWriter) Archive(ctx context.Context, audioPath string) error {
	if err := os.MkdirAll(w.archivedDir, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(w.archivedDir, filepath.Base(audioPath))
	w.logger.Info(ctx, "Moving to archived folder: %s -> %s", audioPath, destPath)

	if err := os.Rename(audioPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}
