package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/writecontrol/writecontrol/internal/event"
)

func ev(kind event.Kind, content string, line, col int) event.Event {
	return event.Event{Kind: kind, Content: content, Pos: event.EncodePos(line, col)}
}

func TestReplayTypedText(t *testing.T) {
	events := []event.Event{
		ev(event.KindSessionStart, "", 1, 0),
		ev(event.KindKeystroke, "hello", 1, 0),
		ev(event.KindKeystroke, "\n", 1, 5),
		ev(event.KindKeystroke, "world", 2, 0),
		ev(event.KindSessionEnd, "", 2, 5),
	}

	states := Replay(events, "")
	assert.Equal(t, "", states.Initial)
	assert.Equal(t, "hello\nworld", states.Final)
}

func TestReplayBackspace(t *testing.T) {
	events := []event.Event{
		ev(event.KindDelete, "-", 1, 3),
	}

	states := Replay(events, "abc")
	assert.Equal(t, "ab", states.Final)
}

func TestReplayJoinsLinesAtColumnZero(t *testing.T) {
	events := []event.Event{
		ev(event.KindDelete, "-", 2, 0),
	}

	states := Replay(events, "ab\ncd")
	assert.Equal(t, "abcd", states.Final)
}

func TestReplayLineMarkers(t *testing.T) {
	added := Replay([]event.Event{
		ev(event.KindKeystroke, "[2 new lines]", 1, 0),
	}, "top")
	assert.Equal(t, "top\n\n", added.Final)

	deleted := Replay([]event.Event{
		ev(event.KindDelete, "[1 deleted lines]", 1, 0),
	}, "first\nsecond")
	assert.Equal(t, "second", deleted.Final)
}

func TestReplayPreSaveSnapshot(t *testing.T) {
	events := []event.Event{
		ev(event.KindKeystroke, "draft", 1, 0),
		ev(event.KindSave, event.SaveBegin, 1, 5),
		ev(event.KindKeystroke, "!", 1, 5),
		ev(event.KindSessionEnd, "", 1, 6),
	}

	states := Replay(events, "")
	assert.Equal(t, "draft", states.PreSave)
	assert.Equal(t, "draft!", states.Final)
}

func TestReplayClampsStaleCursor(t *testing.T) {
	// Positions pointing outside the document must not break replay.
	events := []event.Event{
		ev(event.KindKeystroke, "x", 99, 99),
		ev(event.KindDelete, "[5 deleted lines]", 50, 0),
	}

	assert.NotPanics(t, func() { Replay(events, "only") })
	assert.NotPanics(t, func() { Replay(events, "") })
}
