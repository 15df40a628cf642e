// Package event defines the records written to a session log and the
// wire codes shared with the offline analytics tooling.
package event

import "fmt"

// Kind identifies what a recorded event describes. The values are the
// short codes used in persisted logs.
type Kind string

const (
	KindKeystroke    Kind = "k"
	KindDelete       Kind = "d"
	KindReplace      Kind = "r"
	KindModeChange   Kind = "m"
	KindCursorMove   Kind = "c"
	KindSave         Kind = "s"
	KindCommandEnter Kind = "cmd"
	KindCommandLeave Kind = "cmdl"
	KindSessionStart Kind = "start"
	KindSessionEnd   Kind = "end"
)

// Save event content markers. A save is recorded as a pair of KindSave
// events so the analytics replay can snapshot the pre-save state.
const (
	SaveBegin = "pre"
	SaveEnd   = "post"
)

// Mode is a canonical editor input mode. The values are the keys of the
// mode_durations table in persisted logs.
type Mode string

const (
	ModeNormal   Mode = "n"
	ModeInsert   Mode = "i"
	ModeVisual   Mode = "v"
	ModeCmdline  Mode = "c"
	ModeEx       Mode = "ce"
	ModeSelect   Mode = "s"
	ModeTerminal Mode = "t"
	ModeReplace  Mode = "R"
)

// Modes lists every canonical mode. Duration tables are pre-populated
// from this list so all keys are present in every log.
var Modes = []Mode{
	ModeNormal,
	ModeInsert,
	ModeVisual,
	ModeCmdline,
	ModeEx,
	ModeSelect,
	ModeTerminal,
	ModeReplace,
}

// Known reports whether m is one of the canonical modes.
func (m Mode) Known() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

// ModeFromHost maps a host-reported mode string (including sub-variants
// such as line-wise or block-wise visual) onto the canonical mode set.
// Unrecognized values map to Normal.
func ModeFromHost(raw string) Mode {
	switch raw {
	case "n", "no", "nov", "noV":
		return ModeNormal
	case "i", "ic", "ix":
		return ModeInsert
	case "v", "V", "\x16", "vs", "Vs":
		return ModeVisual
	case "s", "S", "\x13":
		return ModeSelect
	case "c", "cv":
		return ModeCmdline
	case "ce":
		return ModeEx
	case "t", "nt":
		return ModeTerminal
	case "R", "Rc", "Rv", "Rx":
		return ModeReplace
	default:
		return ModeNormal
	}
}

// Event is one immutable entry in a session log.
type Event struct {
	// OffsetMs is milliseconds since session start.
	OffsetMs int64 `json:"dt"`
	// Pos is the cursor position encoded as line*1000+col.
	Pos int `json:"pos"`
	// Kind is the event's wire code.
	Kind Kind `json:"type"`
	// Content is kind-dependent: the located text or change marker for
	// content events, the new mode for mode changes, the command text
	// for command-leave events.
	Content string `json:"content"`
	// Word is the token under the cursor when the event was recorded.
	Word string `json:"word"`
}

// EncodePos packs a 1-based line and 0-based column into the single
// integer used in persisted logs.
func EncodePos(line, col int) int {
	return line*1000 + col
}

// DecodePos unpacks a position produced by EncodePos.
func DecodePos(pos int) (line, col int) {
	return pos / 1000, pos % 1000
}

// LineMarker renders the multi-line change marker for n added lines,
// e.g. "[3 new lines]". The analytics replay parses these markers.
func LineMarker(n int, deleted bool) string {
	if deleted {
		return fmt.Sprintf("[%d deleted lines]", n)
	}
	return fmt.Sprintf("[%d new lines]", n)
}
