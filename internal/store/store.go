// Package store persists finalized telemetry sessions as one JSON
// document per session and reads them back for the offline analytics
// commands. The document schema and file naming are the contract with
// downstream tooling.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"

	"github.com/writecontrol/writecontrol/internal/event"
	"github.com/writecontrol/writecontrol/internal/session"
)

// ErrNoLogs is returned by List when the log directory holds no
// session logs.
var ErrNoLogs = errors.New("no session logs found")

// Log is the persisted form of a session.
type Log struct {
	ID            string               `json:"id,omitempty"`
	Filename      string               `json:"filename"`
	StartTime     int64                `json:"start_time"`
	ModeDurations map[event.Mode]int64 `json:"mode_durations"`
	Events        []event.Event        `json:"events"`
}

// Store writes and reads session logs in a single directory.
type Store struct {
	dir string
}

// DefaultDir returns the conventional log directory:
// $XDG_STATE_HOME/writecontrol/current (~/.local/state on most systems).
func DefaultDir() string {
	return filepath.Join(xdg.StateHome, "writecontrol", "current")
}

// New returns a Store rooted at the default XDG state directory,
// creating it if needed.
func New() (*Store, error) {
	return NewAt(DefaultDir())
}

// NewAt returns a Store rooted at dir, creating it if needed.
func NewAt(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory this store writes to.
func (st *Store) Dir() string {
	return st.dir
}

// Save serializes s and writes it atomically via a temp file +
// os.Rename. Returns the path of the written log.
func (st *Store) Save(s *session.Session) (string, error) {
	log := Log{
		ID:            s.ID,
		Filename:      s.FilePath,
		StartTime:     s.StartTime,
		ModeDurations: s.ModeDurations,
		Events:        s.Events,
	}

	data, err := json.Marshal(log)
	if err != nil {
		return "", fmt.Errorf("failed to persist session log: %w", err)
	}

	path := filepath.Join(st.dir, logName(s.FilePath, s.StartTime))

	tmp, err := os.CreateTemp(st.dir, "session-*.json.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to persist session log: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to persist session log: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to persist session log: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("failed to persist session log: %w", err)
	}
	return path, nil
}

// Load reads and parses a session log at path.
func (st *Store) Load(path string) (*Log, error) {
	return LoadFile(path)
}

// LoadFile reads and parses a session log at an arbitrary path.
func LoadFile(path string) (*Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session log: %w", err)
	}
	var log Log
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("failed to parse session log %s: %w", path, err)
	}
	return &log, nil
}

// List returns the paths of all session logs in the store, oldest
// first by modification time. Returns ErrNoLogs when empty.
func (st *Store) List() ([]string, error) {
	entries, err := os.ReadDir(st.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list session logs: %w", err)
	}

	type dated struct {
		path  string
		mtime int64
	}
	var logs []dated
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		logs = append(logs, dated{
			path:  filepath.Join(st.dir, e.Name()),
			mtime: info.ModTime().UnixMilli(),
		})
	}
	if len(logs) == 0 {
		return nil, ErrNoLogs
	}

	sort.Slice(logs, func(i, j int) bool { return logs[i].mtime < logs[j].mtime })
	paths := make([]string, len(logs))
	for i, l := range logs {
		paths[i] = l.path
	}
	return paths, nil
}

// logName builds the log filename for a tracked file. Path separators
// in the basename are replaced so a crafted file path cannot escape
// the log directory.
func logName(filePath string, startMs int64) string {
	base := filepath.Base(filePath)
	base = strings.ReplaceAll(base, "/", "_")
	base = strings.ReplaceAll(base, "\\", "_")
	if base == "." || base == "" {
		base = "unnamed"
	}
	return fmt.Sprintf("%s_%d.json", base, startMs)
}
