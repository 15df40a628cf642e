package textscan

import (
	"strings"

	"github.com/writecontrol/writecontrol/internal/event"
)

// Change markers reported when the changed text cannot be located.
const (
	MarkerAdd     = "+"
	MarkerDelete  = "-"
	MarkerReplace = "~"
)

// Change is the coarse classification of one buffer snapshot
// transition.
type Change struct {
	Kind    event.Kind
	Content string
}

// Classify compares two buffer snapshots and classifies the transition.
// previous is nil before the first observation. line is 1-based, col is
// a 0-based byte column pointing just past the most recent edit. The
// second return is false when the snapshots are identical.
//
// The classification is a deliberate approximation: single-location
// edits near the cursor report the inserted text, everything else
// degrades to the generic "+", "-" or "~" markers. Deleted text is
// never reconstructed since it is no longer observable.
func Classify(previous *string, current string, line, col int) (Change, bool) {
	if previous == nil {
		return Change{Kind: event.KindKeystroke, Content: MarkerAdd}, true
	}
	prev := *previous

	switch {
	case len(current) == len(prev):
		if current == prev {
			return Change{}, false
		}
		return Change{Kind: event.KindReplace, Content: MarkerReplace}, true

	case len(current) > len(prev):
		return classifyGrowth(prev, current, line, col), true

	default:
		prevLines := strings.Count(prev, "\n")
		curLines := strings.Count(current, "\n")
		if curLines < prevLines {
			return Change{
				Kind:    event.KindDelete,
				Content: event.LineMarker(prevLines-curLines, true),
			}, true
		}
		return Change{Kind: event.KindDelete, Content: MarkerDelete}, true
	}
}

// classifyGrowth handles the len(current) > len(previous) case,
// attempting to isolate the inserted substring on the cursor line.
func classifyGrowth(prev, current string, line, col int) Change {
	generic := Change{Kind: event.KindKeystroke, Content: MarkerAdd}

	prevLines := strings.Split(prev, "\n")
	curLines := strings.Split(current, "\n")
	if len(curLines) > len(prevLines) {
		return Change{
			Kind:    event.KindKeystroke,
			Content: event.LineMarker(len(curLines)-len(prevLines), false),
		}
	}

	li := line - 1
	if li < 0 || li >= len(curLines) || li >= len(prevLines) {
		return generic
	}
	curLine, prevLine := curLines[li], prevLines[li]
	if len(curLine) <= len(prevLine) {
		// Growth happened away from the cursor line.
		return generic
	}

	// A window of length diff ending at the cursor column is the
	// inserted text iff removing it reconstructs the previous line.
	diff := len(curLine) - len(prevLine)
	if col >= diff && col <= len(curLine) {
		window := curLine[col-diff : col]
		if curLine[:col-diff]+curLine[col:] == prevLine {
			return Change{Kind: event.KindKeystroke, Content: window}
		}
	}

	// Cursor at or past the old end of line: treat as trailing append.
	if col >= len(prevLine) && strings.HasPrefix(curLine, prevLine) {
		return Change{Kind: event.KindKeystroke, Content: curLine[len(prevLine):]}
	}

	return generic
}
