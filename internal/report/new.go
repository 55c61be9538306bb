package report

import (
	"time"

	"github.com/meetingassistant/meeting-assistant/internal/logger"
)

type implWriter struct {
	outputDir   string
	archivedDir string
	logger      logger.Logger
	now         func() time.Time
}

// New creates a Writer that stores reports in outputDir and archives audio
// into archivedDir
func New(outputDir, archivedDir string, log logger.Logger) Writer {
	return &implWriter{
		outputDir:   outputDir,
		archivedDir: archivedDir,
		logger:      log,
		now:         time.Now,
	}
}
