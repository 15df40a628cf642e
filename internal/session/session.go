// Package session implements the per-file telemetry session aggregate:
// an append-only event log, the mode-duration table, and the snapshot
// caches the diff heuristic depends on.
package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/writecontrol/writecontrol/internal/event"
	"github.com/writecontrol/writecontrol/internal/logging"
	"github.com/writecontrol/writecontrol/internal/textscan"
)

// Session is one continuous tracked editing interval for a single file.
// It is mutated only through its methods; Events is append-only and
// ordered by non-decreasing offset.
type Session struct {
	ID            string
	FilePath      string
	StartTime     int64 // epoch ms
	Events        []event.Event
	ModeDurations map[event.Mode]int64
	CurrentMode   event.Mode

	modeStart   int64 // epoch ms the current mode was entered
	lastContent *string
	lastLine    int
	lastCol     int

	log *logging.Logger
}

// New creates an active session for filePath starting at now (epoch ms),
// with initialContent cached as the first snapshot. The mode-duration
// table is pre-populated with every canonical mode and a sessionStart
// event is appended at offset 0.
func New(filePath, initialContent string, line, col int, now int64, log *logging.Logger) *Session {
	durations := make(map[event.Mode]int64, len(event.Modes))
	for _, m := range event.Modes {
		durations[m] = 0
	}

	s := &Session{
		ID:            uuid.New().String(),
		FilePath:      filePath,
		StartTime:     now,
		ModeDurations: durations,
		CurrentMode:   event.ModeNormal,
		modeStart:     now,
		lastContent:   &initialContent,
		lastLine:      line,
		lastCol:       col,
		log:           log,
	}
	s.Append(now, event.KindSessionStart, "", "")
	return s
}

// Append records an event at now (epoch ms) using the cached cursor
// position. Offsets are clamped to be non-negative and non-decreasing.
func (s *Session) Append(now int64, kind event.Kind, content, word string) {
	offset := now - s.StartTime
	if offset < 0 {
		offset = 0
	}
	if n := len(s.Events); n > 0 && offset < s.Events[n-1].OffsetMs {
		offset = s.Events[n-1].OffsetMs
	}
	s.Events = append(s.Events, event.Event{
		OffsetMs: offset,
		Pos:      event.EncodePos(s.lastLine, s.lastCol),
		Kind:     kind,
		Content:  content,
		Word:     word,
	})
}

// RecordModeChange accumulates the elapsed time into the outgoing
// mode's bucket, appends a modeChange event carrying the new mode and
// the word under the cursor, and switches to newMode.
func (s *Session) RecordModeChange(newMode event.Mode, now int64) {
	s.flushDuration(now)
	s.Append(now, event.KindModeChange, string(newMode), s.WordAtCursor())
	s.CurrentMode = newMode
	s.modeStart = now
}

// Finalize flushes the trailing mode duration and appends the
// sessionEnd event. The session must not be mutated afterwards.
func (s *Session) Finalize(now int64) {
	s.flushDuration(now)
	s.modeStart = now
	s.Append(now, event.KindSessionEnd, "", "")
}

// flushDuration adds the time spent in the current mode to its bucket.
// Unknown modes are skipped with a diagnostic rather than inserted
// lazily, keeping the duration table's key set fixed.
func (s *Session) flushDuration(now int64) {
	delta := now - s.modeStart
	if delta < 0 {
		delta = 0
	}
	if !s.CurrentMode.Known() {
		s.log.Debug("skipping duration for unknown mode", "mode", string(s.CurrentMode))
		return
	}
	s.ModeDurations[s.CurrentMode] += delta
}

// Snapshot returns the cached buffer content, or nil before the first
// observation.
func (s *Session) Snapshot() *string {
	return s.lastContent
}

// SetSnapshot replaces the cached buffer content and cursor position.
func (s *Session) SetSnapshot(content string, line, col int) {
	s.lastContent = &content
	s.lastLine = line
	s.lastCol = col
}

// Cursor returns the cached cursor position.
func (s *Session) Cursor() (line, col int) {
	return s.lastLine, s.lastCol
}

// SetCursor updates the cached cursor position without touching the
// snapshot cache.
func (s *Session) SetCursor(line, col int) {
	s.lastLine = line
	s.lastCol = col
}

// WordAtCursor resolves the word under the cached cursor position from
// the cached snapshot. Returns "" when no snapshot is available or the
// cursor is off any word.
func (s *Session) WordAtCursor() string {
	if s.lastContent == nil {
		return ""
	}
	lines := strings.Split(*s.lastContent, "\n")
	li := s.lastLine - 1
	if li < 0 || li >= len(lines) {
		return ""
	}
	return textscan.ResolveWord(lines[li], s.lastCol)
}
