// Package tracker dispatches host editing triggers to the active
// telemetry session. The Controller owns at most one active session
// per process; every mutating operation except Start is a silent no-op
// when none is active, and nothing here ever panics or returns an
// error into the host's editing loop.
package tracker

import (
	"time"

	"github.com/writecontrol/writecontrol/internal/event"
	"github.com/writecontrol/writecontrol/internal/logging"
	"github.com/writecontrol/writecontrol/internal/session"
	"github.com/writecontrol/writecontrol/internal/textscan"
)

// Persister writes a finalized session somewhere durable.
type Persister interface {
	Save(s *session.Session) (string, error)
}

// Controller routes inbound triggers to the active session.
type Controller struct {
	store  Persister
	log    *logging.Logger
	now    func() time.Time
	active *session.Session
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the wall clock. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New returns a Controller persisting finished sessions to store and
// reporting diagnostics to log.
func New(store Persister, log *logging.Logger, opts ...Option) *Controller {
	if log == nil {
		log = logging.Default()
	}
	c := &Controller{store: store, log: log, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) nowMs() int64 {
	return c.now().UnixMilli()
}

// Active reports whether a session is currently being recorded.
func (c *Controller) Active() bool {
	return c.active != nil
}

// SetDebug toggles debug diagnostics at runtime.
func (c *Controller) SetDebug(on bool) {
	c.log.SetDebug(on)
}

// DebugEnabled reports the current debug flag.
func (c *Controller) DebugEnabled() bool {
	return c.log.DebugEnabled()
}

// Start begins a session for filePath with initialContent as the first
// snapshot. An unnamed buffer (empty path) is ignored outright and
// never disturbs a running session. A still-active previous session is
// force-finalized and persisted first so its trailing data is never
// dropped.
func (c *Controller) Start(filePath, initialContent string, line, col int) {
	if filePath == "" {
		c.log.Debug("ignoring unnamed buffer")
		return
	}
	if c.active != nil {
		c.log.Debug("finalizing previous session before starting a new one",
			"file", c.active.FilePath)
		c.End()
	}
	c.active = session.New(filePath, initialContent, line, col, c.nowMs(), c.log)
	c.log.Debug("session started", "file", filePath)
}

// RecordContentChange classifies the transition from the cached
// snapshot to current and appends the resulting event. The snapshot
// and cursor caches are updated even when the classification is
// suppressed, so later diffs stay correct.
func (c *Controller) RecordContentChange(current string, line, col int) {
	s := c.active
	if s == nil {
		return
	}
	prev := s.Snapshot()
	if prev != nil && *prev == current {
		return
	}

	change, changed := textscan.Classify(prev, current, line, col)
	s.SetSnapshot(current, line, col)
	if !changed {
		return
	}
	s.Append(c.nowMs(), change.Kind, change.Content, s.WordAtCursor())
}

// RecordCursorMove appends a cursorMove event when the position
// actually changed.
func (c *Controller) RecordCursorMove(line, col int) {
	s := c.active
	if s == nil {
		return
	}
	if l, co := s.Cursor(); l == line && co == col {
		return
	}
	s.SetCursor(line, col)
	s.Append(c.nowMs(), event.KindCursorMove, "", s.WordAtCursor())
}

// RecordModeChange switches the session to mode, accounting the time
// spent in the outgoing mode.
func (c *Controller) RecordModeChange(mode event.Mode) {
	if c.active == nil {
		return
	}
	c.active.RecordModeChange(mode, c.nowMs())
}

// RecordCommandEnter forces cmdline mode and appends a commandEnter
// event.
func (c *Controller) RecordCommandEnter() {
	s := c.active
	if s == nil {
		return
	}
	s.RecordModeChange(event.ModeCmdline, c.nowMs())
	s.Append(c.nowMs(), event.KindCommandEnter, "", "")
}

// RecordCommandLeave returns to normal mode and appends a commandLeave
// event carrying the executed command text ("" when unavailable).
func (c *Controller) RecordCommandLeave(lastCommand string) {
	s := c.active
	if s == nil {
		return
	}
	s.RecordModeChange(event.ModeNormal, c.nowMs())
	s.Append(c.nowMs(), event.KindCommandLeave, lastCommand, "")
}

// RecordSaveBegin appends the pre-save marker event.
func (c *Controller) RecordSaveBegin() {
	if c.active == nil {
		return
	}
	c.active.Append(c.nowMs(), event.KindSave, event.SaveBegin, "")
}

// RecordSaveEnd appends the post-save marker event.
func (c *Controller) RecordSaveEnd() {
	if c.active == nil {
		return
	}
	c.active.Append(c.nowMs(), event.KindSave, event.SaveEnd, "")
}

// End finalizes and persists the active session. Persistence failure
// is reported once and does not keep the session alive; telemetry is
// best-effort and must never block the host.
func (c *Controller) End() {
	s := c.active
	if s == nil {
		return
	}
	c.active = nil

	s.Finalize(c.nowMs())
	if c.store == nil {
		return
	}
	path, err := c.store.Save(s)
	if err != nil {
		c.log.Error("failed to persist session log", "file", s.FilePath, "error", err)
		return
	}
	c.log.Debug("session log written", "path", path)
}
