package analyze

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/writecontrol/writecontrol/internal/event"
	"github.com/writecontrol/writecontrol/internal/store"
)

// Report is the analysis of a single session log.
type Report struct {
	Filename   string // base name of the tracked file
	FullPath   string
	LogPath    string
	Start      time.Time
	DurationMs int64

	ModeDurations map[event.Mode]int64
	EventCounts   map[event.Kind]int

	Initial TextMetrics
	Final   TextMetrics

	WordsDelta      int
	SentencesDelta  int
	ParagraphsDelta int

	// ChangePercent is 100 minus the Jaccard similarity of the
	// initial and final word sets.
	ChangePercent float64
	// TypingSpeed is keystrokes per minute of insert-mode time.
	TypingSpeed float64
}

// AnalyzeLog loads and analyzes one session log.
func AnalyzeLog(path string) (*Report, error) {
	log, err := store.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if len(log.Events) == 0 {
		return nil, fmt.Errorf("session log %s has no events", path)
	}

	events := make([]event.Event, len(log.Events))
	copy(events, log.Events)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].OffsetMs < events[j].OffsetMs
	})

	start := time.UnixMilli(log.StartTime)
	durationMs := events[len(events)-1].OffsetMs

	states := Replay(events, initialContent(log.Filename, start, durationMs))

	initial := Measure(states.Initial)
	final := Measure(states.Final)

	counts := make(map[event.Kind]int)
	for _, ev := range events {
		counts[ev.Kind]++
	}

	var speed float64
	insertMs := log.ModeDurations[event.ModeInsert]
	if insertMs > 0 && counts[event.KindKeystroke] > 0 {
		speed = float64(counts[event.KindKeystroke]) / (float64(insertMs) / 60000)
		speed = float64(int(speed*10+0.5)) / 10
	}

	return &Report{
		Filename:        filepath.Base(log.Filename),
		FullPath:        log.Filename,
		LogPath:         path,
		Start:           start,
		DurationMs:      durationMs,
		ModeDurations:   log.ModeDurations,
		EventCounts:     counts,
		Initial:         initial,
		Final:           final,
		WordsDelta:      final.Words - initial.Words,
		SentencesDelta:  final.Sentences - initial.Sentences,
		ParagraphsDelta: final.Paragraphs - initial.Paragraphs,
		ChangePercent:   100 - Similarity(states.Initial, states.Final),
		TypingSpeed:     speed,
	}, nil
}

// LoadEvents returns a log's events sorted by offset, for timeline
// views.
func LoadEvents(path string) ([]event.Event, error) {
	log, err := store.LoadFile(path)
	if err != nil {
		return nil, err
	}
	events := make([]event.Event, len(log.Events))
	copy(events, log.Events)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].OffsetMs < events[j].OffsetMs
	})
	return events, nil
}

// initialContent returns the tracked file's current content when its
// mtime is within an hour of the session end, i.e. when it plausibly
// still reflects the session. Best effort; replay falls back to an
// empty document otherwise.
func initialContent(path string, start time.Time, durationMs int64) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	sessionEnd := start.Add(time.Duration(durationMs) * time.Millisecond)
	drift := info.ModTime().Sub(sessionEnd)
	if drift < 0 {
		drift = -drift
	}
	if drift > time.Hour {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// FindLogs returns session log paths in dir, oldest first, optionally
// filtered to those tracking the given base filename.
func FindLogs(dir, filename string) ([]string, error) {
	st, err := store.NewAt(dir)
	if err != nil {
		return nil, err
	}
	paths, err := st.List()
	if err != nil {
		return nil, err
	}
	if filename == "" {
		return paths, nil
	}

	var matched []string
	for _, p := range paths {
		log, err := store.LoadFile(p)
		if err != nil {
			continue
		}
		if filepath.Base(log.Filename) == filename {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return nil, store.ErrNoLogs
	}
	return matched, nil
}

// Accumulated aggregates every session of one tracked file.
type Accumulated struct {
	Sessions       int
	DurationMs     int64
	WordsAdded     int // positive word deltas only
	AvgTypingSpeed float64
}

// Accumulate folds reports into cross-session totals.
func Accumulate(reports []*Report) Accumulated {
	var acc Accumulated
	var keystrokes int
	var insertMs int64

	for _, r := range reports {
		acc.Sessions++
		acc.DurationMs += r.DurationMs
		if r.WordsDelta > 0 {
			acc.WordsAdded += r.WordsDelta
		}
		keystrokes += r.EventCounts[event.KindKeystroke]
		insertMs += r.ModeDurations[event.ModeInsert]
	}
	if insertMs > 0 {
		acc.AvgTypingSpeed = float64(keystrokes) / (float64(insertMs) / 60000)
	}
	return acc
}

// FileSummary aggregates per-file statistics for the summary command.
type FileSummary struct {
	Filename   string
	Sessions   int
	DurationMs int64
	WordsDelta int
	Keystrokes int
}

// Summarize groups reports by tracked file name.
func Summarize(reports []*Report) []FileSummary {
	byFile := make(map[string]*FileSummary)
	for _, r := range reports {
		s, ok := byFile[r.Filename]
		if !ok {
			s = &FileSummary{Filename: r.Filename}
			byFile[r.Filename] = s
		}
		s.Sessions++
		s.DurationMs += r.DurationMs
		s.WordsDelta += r.WordsDelta
		s.Keystrokes += r.EventCounts[event.KindKeystroke]
	}

	summaries := make([]FileSummary, 0, len(byFile))
	for _, s := range byFile {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Filename < summaries[j].Filename
	})
	return summaries
}

// FileListing is one row of the list command: every tracked file with
// its session history bounds.
type FileListing struct {
	Filename   string
	Sessions   int
	DurationMs int64
	WordsDelta int
	FirstSeen  time.Time
	LastSeen   time.Time
}

// Sort orders for ListFiles.
const (
	SortByDate     = "date"
	SortByWords    = "words"
	SortByDuration = "duration"
)

// ListFiles groups reports by tracked file and sorts per sortBy
// (date, words or duration; anything else falls back to date).
func ListFiles(reports []*Report, sortBy string) []FileListing {
	byFile := make(map[string]*FileListing)
	for _, r := range reports {
		l, ok := byFile[r.Filename]
		if !ok {
			l = &FileListing{Filename: r.Filename, FirstSeen: r.Start, LastSeen: r.Start}
			byFile[r.Filename] = l
		}
		l.Sessions++
		l.DurationMs += r.DurationMs
		l.WordsDelta += r.WordsDelta
		if r.Start.Before(l.FirstSeen) {
			l.FirstSeen = r.Start
		}
		if r.Start.After(l.LastSeen) {
			l.LastSeen = r.Start
		}
	}

	listings := make([]FileListing, 0, len(byFile))
	for _, l := range byFile {
		listings = append(listings, *l)
	}

	switch sortBy {
	case SortByWords:
		sort.Slice(listings, func(i, j int) bool {
			return abs(listings[i].WordsDelta) > abs(listings[j].WordsDelta)
		})
	case SortByDuration:
		sort.Slice(listings, func(i, j int) bool {
			return listings[i].DurationMs > listings[j].DurationMs
		})
	default:
		sort.Slice(listings, func(i, j int) bool {
			return listings[i].LastSeen.After(listings[j].LastSeen)
		})
	}
	return listings
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
