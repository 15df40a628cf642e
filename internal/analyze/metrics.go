package analyze

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	wordRe     = regexp.MustCompile(`\b\w+\b`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
)

// TextMetrics are the coarse writing metrics computed for a document
// state.
type TextMetrics struct {
	Words      int
	Sentences  int
	Paragraphs int
}

// Measure computes metrics for text. Paragraphs are non-blank lines;
// sentences are runs split on terminal punctuation.
func Measure(text string) TextMetrics {
	if text == "" {
		return TextMetrics{}
	}

	var paragraphs int
	for _, p := range strings.Split(text, "\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	var sentences int
	for _, s := range sentenceRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	return TextMetrics{
		Words:      len(wordRe.FindAllString(text, -1)),
		Sentences:  sentences,
		Paragraphs: paragraphs,
	}
}

// Similarity returns the Jaccard similarity of the two texts' word
// sets as a percentage, rounded to one decimal.
func Similarity(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 && len(wordsB) == 0 {
		return 100.0
	}

	intersection := 0
	for w := range wordsA {
		if wordsB[w] {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	if union == 0 {
		return 100.0
	}
	return math.Round(float64(intersection)/float64(union)*1000) / 10
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		set[w] = true
	}
	return set
}

// FormatDuration renders milliseconds as "2h 15m 3s", "5m 12s" or
// "3.4s" depending on magnitude.
func FormatDuration(ms int64) string {
	seconds := float64(ms) / 1000
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := int(seconds) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%.1fs", seconds)
	}
}
