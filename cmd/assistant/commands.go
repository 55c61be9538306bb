package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/meetingassistant/meeting-assistant/internal/report"
	"github.com/meetingassistant/meeting-assistant/internal/server"
	"github.com/meetingassistant/meeting-assistant/internal/watcher"
)

const shutdownTimeout = 10 * time.Second

type ServeCmd struct {
	Host string `help:"Bind host (overrides server.host)."`
	Port int    `help:"Bind port (overrides server.port)."`
}

func (c *ServeCmd) Run(a *app) error {
	ctx := context.Background()

	if c.Host != "" {
		a.cfg.Server.Host = c.Host
	}
	if c.Port != 0 {
		a.cfg.Server.Port = c.Port
	}

	srv := server.New(a.cfg, a.processor, a.logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Listen(a.cfg.Server.Addr())
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		a.logger.Info(ctx, "Application stopped by user")
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", a.cfg.Server.Addr(), err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type WatchCmd struct{}

func (c *WatchCmd) Run(a *app) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := ensureDirectories(a.cfg.Watch.Input, a.cfg.Watch.Output, a.cfg.Watch.Archived); err != nil {
		return err
	}

	writer := report.New(a.cfg.Watch.Output, a.cfg.Watch.Archived, a.logger)
	handler := func(ctx context.Context, audioPath string) error {
		res := a.processor.Process(ctx, audioPath)
		if _, err := writer.Write(ctx, audioPath, res); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return writer.Archive(ctx, audioPath)
	}

	w, err := watcher.New(a.cfg.Watch.Input, a.cfg.Transcription.SupportedFormats, handler, a.logger, a.cfg.Watch.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	a.logger.Info(ctx, "Inbox mode ready. Monitoring: %s, output: %s", a.cfg.Watch.Input, a.cfg.Watch.Output)

	select {
	case <-sigChan:
		a.logger.Info(ctx, "Shutdown signal received")
	case err := <-done:
		a.logger.Error(ctx, "Watcher error: %v", err)
		return err
	}

	// Start returns once in-flight recordings are finished
	cancel()
	if err := <-done; err != nil && err != context.Canceled {
		return err
	}

	a.logger.Info(ctx, "Inbox mode stopped")
	return nil
}

type ProcessCmd struct {
	File string `arg:"" optional:"" help:"Audio file to process." type:"path"`
}

func (c *ProcessCmd) Run(a *app) error {
	res := a.processor.Process(context.Background(), c.File)

	fmt.Println("📝 " + strings.TrimSpace(res.Transcript))
	if res.Summary != "" {
		fmt.Println()
		fmt.Println("📄 " + strings.TrimSpace(res.Summary))
	}

	if res.Failed() {
		return fmt.Errorf("processing failed: %s", res.Kind)
	}
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
