package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitMessageEmpty(t *testing.T) {
	assert.Equal(t, "Update", CommitMessage(nil))
	assert.Equal(t, "Update", CommitMessage(map[string][]*Report{}))
}

func TestCommitMessageNewFile(t *testing.T) {
	sessions := map[string][]*Report{
		"/w/draft.md": {
			{Initial: TextMetrics{Words: 0}, Final: TextMetrics{Words: 120},
				WordsDelta: 120, DurationMs: 60000},
		},
	}
	assert.Equal(t, "New file draft.md: 120 words, 1m 0s", CommitMessage(sessions))
}

func TestCommitMessageAddedWords(t *testing.T) {
	sessions := map[string][]*Report{
		"/w/draft.md": {
			{Initial: TextMetrics{Words: 200}, Final: TextMetrics{Words: 242},
				WordsDelta: 42, DurationMs: 60000},
		},
	}
	assert.Equal(t, "Edit draft.md: +42 words", CommitMessage(sessions))
}

func TestCommitMessageRemovedWordsWithDuration(t *testing.T) {
	sessions := map[string][]*Report{
		"/w/draft.md": {
			{Initial: TextMetrics{Words: 50}, Final: TextMetrics{Words: 40},
				WordsDelta: -10, DurationMs: 360000},
		},
	}
	assert.Equal(t, "Edit draft.md: -10 words, 6m 0s", CommitMessage(sessions))
}

func TestCommitMessageRevision(t *testing.T) {
	// No net word change but heavy rewriting.
	sessions := map[string][]*Report{
		"/w/draft.md": {
			{Initial: TextMetrics{Words: 100}, Final: TextMetrics{Words: 100},
				WordsDelta: 0, ChangePercent: 45.0, DurationMs: 1000},
		},
	}
	assert.Equal(t, "Revise draft.md: 45% changed", CommitMessage(sessions))
}

func TestCommitMessageMinorEdit(t *testing.T) {
	sessions := map[string][]*Report{
		"/w/draft.md": {
			{Initial: TextMetrics{Words: 100}, Final: TextMetrics{Words: 100},
				WordsDelta: 0, ChangePercent: 5.0, DurationMs: 1000},
		},
	}
	assert.Equal(t, "Edit draft.md", CommitMessage(sessions))
}

func TestCommitMessageFewFiles(t *testing.T) {
	sessions := map[string][]*Report{
		"/w/a.md": {{Initial: TextMetrics{Words: 1}, WordsDelta: 10, DurationMs: 10}},
		"/w/b.md": {{Initial: TextMetrics{Words: 1}, WordsDelta: -3, DurationMs: 10}},
	}
	assert.Equal(t, "Edit a.md (+10w), b.md (-3w)", CommitMessage(sessions))
}

func TestCommitMessageManyFiles(t *testing.T) {
	sessions := make(map[string][]*Report)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		sessions["/w/"+name+".md"] = []*Report{
			{Initial: TextMetrics{Words: 1}, WordsDelta: 4, DurationMs: 100000},
		}
	}
	assert.Equal(t, "Edit 5 files: +20 words, 8m 20s", CommitMessage(sessions))
}
