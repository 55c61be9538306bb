package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/meetingassistant/meeting-assistant/internal/logger"
)

type implWatcher struct {
	inputDir      string
	extensions    map[string]bool
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	settleDelay   time.Duration
	wg            sync.WaitGroup
}

// Start processes audio already in the inbox, then monitors it for new files
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(w.extensionList(), ", "))

	if err := w.scanExisting(ctx); err != nil {
		w.logger.Warn(ctx, "Failed to scan existing files: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create == fsnotify.Create {
				if !w.isAudioFile(event.Name) {
					w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
					continue
				}

				w.logger.Info(ctx, "New recording detected: %s", event.Name)

				// Small delay to ensure file is fully written
				time.Sleep(w.settleDelay)

				if err := w.dispatch(ctx, event.Name); err != nil {
					return err
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// dispatch runs the handler in a goroutine once a semaphore slot is free
func (w *implWatcher) dispatch(ctx context.Context, filePath string) error {
	select {
	case w.semaphore <- struct{}{}:
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			defer func() { <-w.semaphore }()

			if err := w.handler(ctx, filePath); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
			}
		}()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *implWatcher) scanExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(w.inputDir, e.Name())
		if w.isAudioFile(path) {
			files = append(files, path)
		}
	}
	sort.Strings(files)

	for _, f := range files {
		w.logger.Info(ctx, "Queued existing recording: %s", f)
		if err := w.dispatch(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// isAudioFile checks if the file has a supported audio extension
func (w *implWatcher) isAudioFile(path string) bool {
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}

func (w *implWatcher) extensionList() []string {
	list := make([]string, 0, len(w.extensions))
	for e := range w.extensions {
		list = append(list, e)
	}
	sort.Strings(list)
	return list
}
