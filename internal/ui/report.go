// Package ui renders operator-facing output for the analytics
// commands.
package ui

import (
	"fmt"
	"io"
	"sort"

	"github.com/pterm/pterm"

	"github.com/writecontrol/writecontrol/internal/analyze"
	"github.com/writecontrol/writecontrol/internal/event"
)

// eventNames maps wire codes to readable labels for event-count
// breakdowns.
var eventNames = map[event.Kind]string{
	event.KindKeystroke:    "Keystrokes",
	event.KindDelete:       "Deletions",
	event.KindReplace:      "Replacements",
	event.KindCursorMove:   "Cursor moves",
	event.KindModeChange:   "Mode changes",
	event.KindSave:         "Saves",
	event.KindCommandEnter: "Commands",
	event.KindCommandLeave: "Commands finished",
}

// PrintReport writes a full session report to w.
func PrintReport(w io.Writer, r *analyze.Report, acc *analyze.Accumulated) {
	pterm.DefaultSection.WithWriter(w).Printfln("Session report: %s", r.Filename)
	fmt.Fprintf(w, "Session date: %s\n\n", r.Start.Format("2006-01-02 15:04"))

	fmt.Fprintln(w, "Session metrics:")
	fmt.Fprintf(w, "  Duration:     %s\n", analyze.FormatDuration(r.DurationMs))
	fmt.Fprintf(w, "  Insert mode:  %s\n", analyze.FormatDuration(r.ModeDurations[event.ModeInsert]))
	fmt.Fprintf(w, "  Normal mode:  %s\n", analyze.FormatDuration(r.ModeDurations[event.ModeNormal]))
	fmt.Fprintf(w, "  Typing speed: %.1f keystrokes/min\n\n", r.TypingSpeed)

	fmt.Fprintln(w, "Event counts:")
	kinds := make([]string, 0, len(r.EventCounts))
	for k := range r.EventCounts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		name := eventNames[event.Kind(k)]
		if name == "" {
			name = k
		}
		fmt.Fprintf(w, "  %s: %d\n", name, r.EventCounts[event.Kind(k)])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Content changes:")
	fmt.Fprintf(w, "  Words:      %d -> %d (%+d)\n", r.Initial.Words, r.Final.Words, r.WordsDelta)
	fmt.Fprintf(w, "  Sentences:  %d -> %d (%+d)\n", r.Initial.Sentences, r.Final.Sentences, r.SentencesDelta)
	fmt.Fprintf(w, "  Paragraphs: %d -> %d (%+d)\n", r.Initial.Paragraphs, r.Final.Paragraphs, r.ParagraphsDelta)
	fmt.Fprintf(w, "  Text similarity: %.1f%% (changed: %.1f%%)\n", 100-r.ChangePercent, r.ChangePercent)

	if acc != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Accumulated stats:")
		fmt.Fprintf(w, "  Total sessions: %d\n", acc.Sessions)
		fmt.Fprintf(w, "  Total time:     %s\n", analyze.FormatDuration(acc.DurationMs))
		fmt.Fprintf(w, "  Words written:  %d\n", acc.WordsAdded)
		fmt.Fprintf(w, "  Avg typing speed: %.1f keystrokes/min\n", acc.AvgTypingSpeed)
	}
}

// PrintSummaries renders per-file aggregate rows as a table.
func PrintSummaries(w io.Writer, summaries []analyze.FileSummary) {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Filename,
			fmt.Sprintf("%d", s.Sessions),
			analyze.FormatDuration(s.DurationMs),
			fmt.Sprintf("%+d", s.WordsDelta),
			fmt.Sprintf("%d", s.Keystrokes),
		})
	}
	printTable(w, []string{"File", "Sessions", "Total time", "Words", "Keystrokes"}, rows)
}

// PrintListings renders the tracked-file list as a table.
func PrintListings(w io.Writer, listings []analyze.FileListing) {
	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, []string{
			l.Filename,
			fmt.Sprintf("%d", l.Sessions),
			analyze.FormatDuration(l.DurationMs),
			fmt.Sprintf("%+d", l.WordsDelta),
			l.LastSeen.Format("2006-01-02"),
		})
	}
	printTable(w, []string{"File", "Sessions", "Duration", "Words", "Last edited"}, rows)
}

// printTable renders a boxed pterm table with the given header row.
func printTable(w io.Writer, header []string, rows [][]string) {
	data := append(pterm.TableData{header}, rows...)

	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		fmt.Fprintf(w, "failed to render table: %v\n", err)
		return
	}
	fmt.Fprintln(w, str)
}
