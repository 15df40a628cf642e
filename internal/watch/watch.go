// Package watch is a filesystem-driven host for the telemetry engine.
// It tracks a single file being edited by any external program and
// feeds the controller the same triggers an editor integration would:
// buffer-opened on start, save-bracketed text changes on every write,
// process-exiting on shutdown.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/writecontrol/writecontrol/internal/tracker"
)

// Run watches path and records a session until ctx is cancelled. The
// session is finalized and persisted before Run returns. Watcher
// errors are non-fatal; a file that temporarily disappears (editors
// that write via rename) keeps being tracked.
func Run(ctx context.Context, path string, host tracker.Host) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	content, err := readFile(abs)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory: most editors replace the file via
	// rename, which drops a watch on the file itself.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	line, col := endOfContent(content)
	host.BufferOpened(abs, content, line, col)
	defer host.ProcessExiting()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			current, err := readFile(abs)
			if err != nil {
				continue // mid-rename; the next event will catch up
			}
			line, col := endOfContent(current)
			host.BeforeSave()
			host.TextChanged(current, line, col)
			host.AfterSave()

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Non-fatal; keep watching.
		}
	}
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// endOfContent returns the cursor position at the very end of content,
// the best available guess for where an external edit happened.
func endOfContent(content string) (line, col int) {
	lines := strings.Split(content, "\n")
	return len(lines), len(lines[len(lines)-1])
}
