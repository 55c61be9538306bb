package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meetingassistant/meeting-assistant/internal/processor"
)

const (
	summaryHeading    = "ملخص الاجتماع"
	transcriptHeading = "النص المستخرج من التسجيل"
)

// Write renders the result as <name>.md and <name>.docx in the output folder.
// Failed results are written too so the user sees why a file was skipped.
func (w *implWriter) Write(ctx context.Context, audioPath string, res processor.Result) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	date := w.now().Format("2006-01-02 15:04")

	mdPath := filepath.Join(w.outputDir, name+".md")
	if err := os.WriteFile(mdPath, []byte(renderMarkdown(name, date, res)), 0644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}

	docxPath := filepath.Join(w.outputDir, name+".docx")
	if err := meetingToDocx(name, date, res.Summary, res.Transcript, docxPath); err != nil {
		w.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
	}

	w.logger.Info(ctx, "[DONE] %s -> %s", name, mdPath)
	return mdPath, nil
}

func renderMarkdown(name, date string, res processor.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n_%s_\n\n", name, date)
	if res.Summary != "" {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", summaryHeading, strings.TrimSpace(res.Summary))
	}
	fmt.Fprintf(&b, "## %s\n\n%s\n", transcriptHeading, strings.TrimSpace(res.Transcript))
	return b.String()
}
