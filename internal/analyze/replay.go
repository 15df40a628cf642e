// Package analyze computes offline analytics from persisted session
// logs: document reconstruction by event replay, text metrics, typing
// speed, per-file summaries and derived commit messages.
package analyze

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/writecontrol/writecontrol/internal/event"
)

var (
	newLinesRe     = regexp.MustCompile(`\[(\d+) new lines?\]`)
	deletedLinesRe = regexp.MustCompile(`\[(\d+) deleted lines?\]`)
)

// document is a mutable line buffer used to replay content events.
type document struct {
	lines []string
	line  int // 1-based
	col   int // 0-based
}

func newDocument(content string) *document {
	lines := []string{""}
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	return &document{lines: lines, line: 1, col: 0}
}

func (d *document) content() string {
	return strings.Join(d.lines, "\n")
}

func (d *document) setCursor(line, col int) {
	d.line = max(1, min(line, len(d.lines)))
	d.col = max(0, min(col, len(d.lines[d.line-1])))
}

// applyKeystroke inserts content at the cursor. Multi-line markers
// insert that many empty lines; a bare newline splits the current line.
func (d *document) applyKeystroke(content string) {
	if content == "" {
		return
	}
	li := d.line - 1

	if m := newLinesRe.FindStringSubmatch(content); m != nil {
		n, _ := strconv.Atoi(m[1])
		for range n {
			d.lines = append(d.lines[:li+1], append([]string{""}, d.lines[li+1:]...)...)
		}
		d.line++
		d.col = 0
		return
	}

	line := d.lines[li]
	if content == "\n" || content == "\r\n" {
		before, after := line[:d.col], line[d.col:]
		d.lines[li] = before
		d.lines = append(d.lines[:li+1], append([]string{after}, d.lines[li+1:]...)...)
		d.line++
		d.col = 0
		return
	}

	d.lines[li] = line[:d.col] + content + line[d.col:]
	d.col += len(content)
}

// applyDeletion removes content at the cursor. Multi-line markers drop
// whole lines; anything else is treated as a single backspace, joining
// with the previous line at column zero.
func (d *document) applyDeletion(content string) {
	if content == "" {
		return
	}
	li := d.line - 1

	if m := deletedLinesRe.FindStringSubmatch(content); m != nil {
		n, _ := strconv.Atoi(m[1])
		for range min(n, len(d.lines)-li) {
			if li < len(d.lines) {
				d.lines = append(d.lines[:li], d.lines[li+1:]...)
			}
		}
		if len(d.lines) == 0 {
			d.lines = []string{""}
		}
		if li >= len(d.lines) {
			d.line = len(d.lines)
			d.col = len(d.lines[len(d.lines)-1])
		}
		return
	}

	line := d.lines[li]
	switch {
	case d.col > 0:
		d.lines[li] = line[:d.col-1] + line[d.col:]
		d.col--
	case d.line > 1:
		prev := d.lines[li-1]
		d.lines[li-1] = prev + line
		d.lines = append(d.lines[:li], d.lines[li+1:]...)
		d.line--
		d.col = len(prev)
	}
}

// States holds the document snapshots recovered by replaying a log.
type States struct {
	Initial string
	PreSave string // content just before the last recorded save, "" if none
	Final   string
}

// Replay reconstructs document states by applying content events in
// order. events must already be sorted by offset.
func Replay(events []event.Event, initial string) States {
	doc := newDocument(initial)
	states := States{Initial: initial}

	final := false
	for _, ev := range events {
		if ev.Pos > 0 {
			doc.setCursor(event.DecodePos(ev.Pos))
		}
		switch {
		case ev.Kind == event.KindKeystroke:
			doc.applyKeystroke(ev.Content)
		case ev.Kind == event.KindDelete:
			doc.applyDeletion(ev.Content)
		case ev.Kind == event.KindSave && ev.Content == event.SaveBegin:
			states.PreSave = doc.content()
		case ev.Kind == event.KindSessionEnd:
			states.Final = doc.content()
			final = true
		}
	}
	if !final {
		states.Final = doc.content()
	}
	return states
}
