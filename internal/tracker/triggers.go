package tracker

import "github.com/writecontrol/writecontrol/internal/event"

// Host is the inbound trigger surface, one method per host-emitted
// trigger. Embedding layers marshal the host's live buffer and window
// state into plain values before calling in; the engine never touches
// host objects.
type Host interface {
	BufferOpened(path, content string, line, col int)
	InsertEntered()
	InsertLeft()
	TextChanged(content string, line, col int)
	CursorMoved(line, col int)
	CmdlineEntered()
	CmdlineLeft(lastCommand string)
	VisualEntered(hostMode string)
	VisualLeft()
	BeforeSave()
	AfterSave()
	ProcessExiting()
}

var _ Host = (*Controller)(nil)

// BufferOpened starts tracking a newly active named file.
func (c *Controller) BufferOpened(path, content string, line, col int) {
	c.Start(path, content, line, col)
}

func (c *Controller) InsertEntered() {
	c.RecordModeChange(event.ModeInsert)
}

func (c *Controller) InsertLeft() {
	c.RecordModeChange(event.ModeNormal)
}

func (c *Controller) TextChanged(content string, line, col int) {
	c.RecordContentChange(content, line, col)
}

func (c *Controller) CursorMoved(line, col int) {
	c.RecordCursorMove(line, col)
}

func (c *Controller) CmdlineEntered() {
	c.RecordCommandEnter()
}

func (c *Controller) CmdlineLeft(lastCommand string) {
	c.RecordCommandLeave(lastCommand)
}

// VisualEntered maps the host's visual/select/replace sub-variant onto
// the canonical mode set before recording the transition.
func (c *Controller) VisualEntered(hostMode string) {
	c.RecordModeChange(event.ModeFromHost(hostMode))
}

// VisualLeft returns to normal mode; leaving any visual, select or
// replace sub-variant lands there by default.
func (c *Controller) VisualLeft() {
	c.RecordModeChange(event.ModeNormal)
}

func (c *Controller) BeforeSave() {
	c.RecordSaveBegin()
}

func (c *Controller) AfterSave() {
	c.RecordSaveEnd()
}

// ProcessExiting finalizes and persists the active session in a single
// best-effort attempt.
func (c *Controller) ProcessExiting() {
	c.End()
}
