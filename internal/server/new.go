package server

import (
	"embed"
	"html/template"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/meetingassistant/meeting-assistant/internal/config"
	"github.com/meetingassistant/meeting-assistant/internal/logger"
	"github.com/meetingassistant/meeting-assistant/internal/processor"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type implServer struct {
	app       *fiber.App
	processor processor.Processor
	logger    logger.Logger
	uploadDir string
	accept    string
}

// New creates the web UI server. Uploads are staged in cfg.Server.UploadDir
// (the OS temp dir when empty) and removed after each request.
func New(cfg *config.Config, proc processor.Processor, log logger.Logger) Server {
	uploadDir := cfg.Server.UploadDir
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}

	s := &implServer{
		processor: proc,
		logger:    log,
		uploadDir: uploadDir,
		accept:    "audio/*," + strings.Join(cfg.Transcription.SupportedFormats, ","),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "meeting-assistant",
		BodyLimit:             cfg.Server.BodyLimitMB * 1024 * 1024,
		DisableStartupMessage: true,
	})
	s.routes()

	return s
}

func (s *implServer) routes() {
	s.app.Get("/", s.handleIndex)
	s.app.Post("/", s.handleForm)
	s.app.Post("/api/process", s.handleAPIProcess)
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
}
