package server

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/meetingassistant/meeting-assistant/internal/apperror"
	"github.com/meetingassistant/meeting-assistant/internal/logger"
	"github.com/meetingassistant/meeting-assistant/internal/processor"
)

const audioField = "audio"

type pageData struct {
	Accept     string
	Transcript string
	Summary    string
}

type processResponse struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
	Kind       string `json:"kind"`
}

func (s *implServer) Listen(addr string) error {
	s.logger.Info(context.Background(), "Launching interface on http://%s", addr)
	return s.app.Listen(addr)
}

func (s *implServer) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *implServer) handleIndex(c *fiber.Ctx) error {
	return s.render(c, pageData{Accept: s.accept})
}

func (s *implServer) handleForm(c *fiber.Ctx) error {
	res := s.processUpload(c)
	return s.render(c, pageData{
		Accept:     s.accept,
		Transcript: res.Transcript,
		Summary:    res.Summary,
	})
}

// handleAPIProcess always answers 200: failures are carried in the transcript
// text like in the page.
func (s *implServer) handleAPIProcess(c *fiber.Ctx) error {
	res := s.processUpload(c)
	return c.JSON(processResponse{
		Transcript: res.Transcript,
		Summary:    res.Summary,
		Kind:       res.Kind.String(),
	})
}

// processUpload stages the uploaded file under a random name that keeps the
// original extension, runs the processor and removes the file again.
func (s *implServer) processUpload(c *fiber.Ctx) processor.Result {
	requestID := uuid.NewString()
	ctx := logger.WithRequestID(c.UserContext(), requestID)

	fh, err := c.FormFile(audioField)
	if err != nil {
		s.logger.Debug(ctx, "No audio in request: %v", err)
		return s.processor.Process(ctx, "")
	}

	stagedPath := filepath.Join(s.uploadDir, requestID+filepath.Ext(fh.Filename))
	if err := c.SaveFile(fh, stagedPath); err != nil {
		s.logger.Error(ctx, "Failed to save upload %s: %v", fh.Filename, err)
		return processor.Result{
			Transcript: apperror.Display(fmt.Errorf("save upload: %w", err)),
			Kind:       apperror.KindUnknown,
		}
	}
	defer s.removeUpload(ctx, stagedPath)

	if mt, err := mimetype.DetectFile(stagedPath); err == nil {
		s.logger.Info(ctx, "Received upload %s (%d bytes, %s)", fh.Filename, fh.Size, mt.String())
	}

	return s.processor.Process(ctx, stagedPath)
}

func (s *implServer) removeUpload(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		s.logger.Warn(ctx, "Failed to cleanup upload %s: %v", path, err)
	} else {
		s.logger.Debug(ctx, "Cleaned up upload: %s", path)
	}
}

func (s *implServer) render(c *fiber.Ctx, data pageData) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
