package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	m := Measure("Hello world. Foo bar!\n\nBaz")
	assert.Equal(t, 5, m.Words)
	assert.Equal(t, 3, m.Sentences)
	assert.Equal(t, 2, m.Paragraphs)
}

func TestMeasureEmpty(t *testing.T) {
	assert.Equal(t, TextMetrics{}, Measure(""))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 100.0, Similarity("", ""))
	assert.Equal(t, 100.0, Similarity("same words", "same words"))
	assert.Equal(t, 100.0, Similarity("Case WORDS", "case words"))

	// {hello, world} vs {hello, there}: 1 shared of 3 total.
	assert.InDelta(t, 33.3, Similarity("hello world", "hello there"), 0.01)

	assert.Equal(t, 0.0, Similarity("alpha", "beta"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "3.4s", FormatDuration(3400))
	assert.Equal(t, "1m 12s", FormatDuration(72000))
	assert.Equal(t, "2h 3m 0s", FormatDuration(7380000))
	assert.Equal(t, "0.0s", FormatDuration(0))
}
