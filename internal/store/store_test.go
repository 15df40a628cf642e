package store_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/writecontrol/writecontrol/internal/event"
	"github.com/writecontrol/writecontrol/internal/logging"
	"github.com/writecontrol/writecontrol/internal/session"
	"github.com/writecontrol/writecontrol/internal/store"
)

// generateEvent produces an arbitrary log event.
func generateEvent(t *rapid.T, label string) event.Event {
	kinds := []event.Kind{
		event.KindKeystroke, event.KindDelete, event.KindReplace,
		event.KindModeChange, event.KindCursorMove, event.KindSave,
		event.KindCommandEnter, event.KindCommandLeave,
	}
	return event.Event{
		OffsetMs: rapid.Int64Range(0, 10_000_000).Draw(t, label+"_dt"),
		Pos:      rapid.IntRange(0, 999_999).Draw(t, label+"_pos"),
		Kind:     rapid.SampledFrom(kinds).Draw(t, label+"_kind"),
		Content:  rapid.StringN(0, 40, -1).Draw(t, label+"_content"),
		Word:     rapid.StringN(0, 20, -1).Draw(t, label+"_word"),
	}
}

// generateSession produces an arbitrary finalized session.
func generateSession(t *rapid.T) *session.Session {
	start := rapid.Int64Range(0, 1_700_000_000_000).Draw(t, "start")
	path := "/home/w/" + rapid.StringMatching(`[a-z0-9_.-]{1,24}`).Draw(t, "file")

	s := session.New(path, "", 1, 0, start, logging.Discard())
	count := rapid.IntRange(0, 10).Draw(t, "count")
	for i := 0; i < count; i++ {
		ev := generateEvent(t, "ev")
		s.Append(start+ev.OffsetMs, ev.Kind, ev.Content, ev.Word)
	}
	s.Finalize(start + rapid.Int64Range(0, 10_000_000).Draw(t, "end"))
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, err := store.NewAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewAt: %v", err)
	}

	rapid.Check(t, func(t *rapid.T) {
		original := generateSession(t)

		path, err := st.Save(original)
		if err != nil {
			t.Fatalf("Save: %v", err)
		}

		loaded, err := st.Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}

		if loaded.ID != original.ID {
			t.Errorf("ID mismatch: got %q, want %q", loaded.ID, original.ID)
		}
		if loaded.Filename != original.FilePath {
			t.Errorf("Filename mismatch: got %q, want %q", loaded.Filename, original.FilePath)
		}
		if loaded.StartTime != original.StartTime {
			t.Errorf("StartTime mismatch: got %d, want %d", loaded.StartTime, original.StartTime)
		}

		if len(loaded.ModeDurations) != len(original.ModeDurations) {
			t.Fatalf("ModeDurations length mismatch: got %d, want %d",
				len(loaded.ModeDurations), len(original.ModeDurations))
		}
		for mode, want := range original.ModeDurations {
			if got := loaded.ModeDurations[mode]; got != want {
				t.Errorf("ModeDurations[%q] = %d, want %d", mode, got, want)
			}
		}

		if len(loaded.Events) != len(original.Events) {
			t.Fatalf("Events length mismatch: got %d, want %d",
				len(loaded.Events), len(original.Events))
		}
		for i, want := range original.Events {
			if loaded.Events[i] != want {
				t.Errorf("Events[%d] = %+v, want %+v", i, loaded.Events[i], want)
			}
		}
	})
}

func TestLogNameSanitized(t *testing.T) {
	st, err := store.NewAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewAt: %v", err)
	}

	s := session.New("/etc/../some/dir/draft.md", "", 1, 0, 42, logging.Discard())
	s.Finalize(50)

	path, err := st.Save(s)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if filepath.Dir(path) != st.Dir() {
		t.Errorf("log written outside the store directory: %s", path)
	}
	base := filepath.Base(path)
	if strings.ContainsAny(base, "/\\") {
		t.Errorf("log name contains path separators: %q", base)
	}
	if !strings.HasSuffix(base, "_42.json") {
		t.Errorf("log name %q missing start-time suffix", base)
	}
}

func TestListEmptyDir(t *testing.T) {
	st, err := store.NewAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewAt: %v", err)
	}

	if _, err := st.List(); !errors.Is(err, store.ErrNoLogs) {
		t.Errorf("List on empty dir = %v, want ErrNoLogs", err)
	}
}

func TestListReturnsSavedLogs(t *testing.T) {
	st, err := store.NewAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewAt: %v", err)
	}

	for i, name := range []string{"a.md", "b.md", "c.md"} {
		s := session.New("/w/"+name, "", 1, 0, int64(i+1), logging.Discard())
		s.Finalize(int64(i + 2))
		if _, err := st.Save(s); err != nil {
			t.Fatalf("Save %s: %v", name, err)
		}
	}

	paths, err := st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("List returned %d logs, want 3", len(paths))
	}
	for _, p := range paths {
		if _, err := st.Load(p); err != nil {
			t.Errorf("Load %s: %v", p, err)
		}
	}
}
