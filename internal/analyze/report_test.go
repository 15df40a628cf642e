package analyze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writecontrol/writecontrol/internal/event"
	"github.com/writecontrol/writecontrol/internal/logging"
	"github.com/writecontrol/writecontrol/internal/session"
	"github.com/writecontrol/writecontrol/internal/store"
)

// writeLog persists a synthetic session and returns its log path.
func writeLog(t *testing.T, dir, filePath string, build func(s *session.Session)) string {
	t.Helper()
	st, err := store.NewAt(dir)
	require.NoError(t, err)

	s := session.New(filePath, "", 1, 0, 0, logging.Discard())
	build(s)

	path, err := st.Save(s)
	require.NoError(t, err)
	return path
}

func TestAnalyzeLog(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "/nonexistent/draft.md", func(s *session.Session) {
		s.RecordModeChange(event.ModeInsert, 1000)
		s.SetCursor(1, 0)
		s.Append(2000, event.KindKeystroke, "hello", "")
		s.Finalize(61000)
	})

	r, err := AnalyzeLog(path)
	require.NoError(t, err)

	assert.Equal(t, "draft.md", r.Filename)
	assert.Equal(t, "/nonexistent/draft.md", r.FullPath)
	assert.Equal(t, int64(61000), r.DurationMs)
	assert.Equal(t, 1, r.EventCounts[event.KindKeystroke])
	assert.Equal(t, 1, r.EventCounts[event.KindModeChange])
	assert.Equal(t, int64(60000), r.ModeDurations[event.ModeInsert])

	// One keystroke over one minute of insert mode.
	assert.InDelta(t, 1.0, r.TypingSpeed, 0.001)

	// The tracked file does not exist, so replay starts empty.
	assert.Equal(t, 0, r.Initial.Words)
	assert.Equal(t, 1, r.Final.Words)
	assert.Equal(t, 1, r.WordsDelta)
	assert.InDelta(t, 100.0, r.ChangePercent, 0.01)
}

func TestAnalyzeLogEmptyEvents(t *testing.T) {
	// A log with no events is malformed for analysis purposes.
	dir := t.TempDir()
	st, err := store.NewAt(dir)
	require.NoError(t, err)

	s := session.New("/w/x.md", "", 1, 0, 0, logging.Discard())
	s.Events = nil
	path, err := st.Save(s)
	require.NoError(t, err)

	_, err = AnalyzeLog(path)
	assert.Error(t, err)
}

func TestFindLogsFiltersByBasename(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "/w/alpha.md", func(s *session.Session) { s.Finalize(10) })
	writeLog(t, dir, "/w/beta.md", func(s *session.Session) { s.Finalize(10) })

	all, err := FindLogs(dir, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	alpha, err := FindLogs(dir, "alpha.md")
	require.NoError(t, err)
	assert.Len(t, alpha, 1)

	_, err = FindLogs(dir, "missing.md")
	assert.ErrorIs(t, err, store.ErrNoLogs)
}

func TestSummarizeGroupsByFile(t *testing.T) {
	reports := []*Report{
		{Filename: "a.md", DurationMs: 100, WordsDelta: 5,
			EventCounts: map[event.Kind]int{event.KindKeystroke: 10}},
		{Filename: "a.md", DurationMs: 200, WordsDelta: -2,
			EventCounts: map[event.Kind]int{event.KindKeystroke: 4}},
		{Filename: "b.md", DurationMs: 50, WordsDelta: 1,
			EventCounts: map[event.Kind]int{}},
	}

	summaries := Summarize(reports)
	require.Len(t, summaries, 2)

	assert.Equal(t, "a.md", summaries[0].Filename)
	assert.Equal(t, 2, summaries[0].Sessions)
	assert.Equal(t, int64(300), summaries[0].DurationMs)
	assert.Equal(t, 3, summaries[0].WordsDelta)
	assert.Equal(t, 14, summaries[0].Keystrokes)

	assert.Equal(t, "b.md", summaries[1].Filename)
}

func TestAccumulateCountsPositiveWordsOnly(t *testing.T) {
	reports := []*Report{
		{WordsDelta: 10, DurationMs: 1000,
			EventCounts:   map[event.Kind]int{event.KindKeystroke: 60},
			ModeDurations: map[event.Mode]int64{event.ModeInsert: 60000}},
		{WordsDelta: -4, DurationMs: 500,
			EventCounts:   map[event.Kind]int{event.KindKeystroke: 30},
			ModeDurations: map[event.Mode]int64{event.ModeInsert: 30000}},
	}

	acc := Accumulate(reports)
	assert.Equal(t, 2, acc.Sessions)
	assert.Equal(t, int64(1500), acc.DurationMs)
	assert.Equal(t, 10, acc.WordsAdded)
	// 90 keystrokes over 1.5 minutes of insert mode.
	assert.InDelta(t, 60.0, acc.AvgTypingSpeed, 0.001)
}

func TestListFilesSortOrders(t *testing.T) {
	mk := func(name string, words int, duration int64, start int64) *Report {
		return &Report{
			Filename:    name,
			WordsDelta:  words,
			DurationMs:  duration,
			Start:       time.UnixMilli(start),
			EventCounts: map[event.Kind]int{},
		}
	}
	reports := []*Report{
		mk("old.md", 100, 10, 1000),
		mk("big.md", 1, 99999, 2000),
		mk("new.md", -5, 20, 3000),
	}

	byDate := ListFiles(reports, SortByDate)
	assert.Equal(t, "new.md", byDate[0].Filename)

	byWords := ListFiles(reports, SortByWords)
	assert.Equal(t, "old.md", byWords[0].Filename)

	byDuration := ListFiles(reports, SortByDuration)
	assert.Equal(t, "big.md", byDuration[0].Filename)
}
