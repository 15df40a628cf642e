package analyze

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// fiveMinutesMs is the threshold above which a commit message mentions
// the time spent.
const fiveMinutesMs = 300000

// CommitMessage derives a commit message from the analyzed sessions of
// one or more files, keyed by full tracked-file path.
func CommitMessage(fileSessions map[string][]*Report) string {
	if len(fileSessions) == 0 {
		return "Update"
	}

	if len(fileSessions) == 1 {
		for path, sessions := range fileSessions {
			return singleFileMessage(path, sessions)
		}
	}
	return multiFileMessage(fileSessions)
}

func singleFileMessage(path string, sessions []*Report) string {
	base := filepath.Base(path)

	var totalWords int
	var totalMs int64
	for _, s := range sessions {
		totalWords += s.WordsDelta
		totalMs += s.DurationMs
	}

	// Every session started from an empty document: a brand new file.
	newFile := true
	for _, s := range sessions {
		if s.Initial.Words != 0 {
			newFile = false
			break
		}
	}
	if newFile && len(sessions) > 0 {
		finalWords := sessions[len(sessions)-1].Final.Words
		return fmt.Sprintf("New file %s: %d words, %s", base, finalWords, FormatDuration(totalMs))
	}

	var msg string
	switch {
	case totalWords > 0:
		msg = fmt.Sprintf("Edit %s: +%d words", base, totalWords)
	case totalWords < 0:
		msg = fmt.Sprintf("Edit %s: %d words", base, totalWords)
	default:
		var avgChange float64
		for _, s := range sessions {
			avgChange += s.ChangePercent
		}
		avgChange /= float64(len(sessions))
		if avgChange > 30 {
			msg = fmt.Sprintf("Revise %s: %d%% changed", base, int(avgChange))
		} else {
			msg = fmt.Sprintf("Edit %s", base)
		}
	}

	if totalMs > fiveMinutesMs {
		msg += ", " + FormatDuration(totalMs)
	}
	return msg
}

func multiFileMessage(fileSessions map[string][]*Report) string {
	fileCount := len(fileSessions)

	var totalWords int
	var totalMs int64
	for _, sessions := range fileSessions {
		for _, s := range sessions {
			totalWords += s.WordsDelta
			totalMs += s.DurationMs
		}
	}

	var msg string
	if fileCount <= 3 {
		paths := make([]string, 0, fileCount)
		for path := range fileSessions {
			paths = append(paths, path)
		}
		sort.Strings(paths)

		var summaries []string
		for _, path := range paths {
			var words int
			for _, s := range fileSessions[path] {
				words += s.WordsDelta
			}
			if words != 0 {
				summaries = append(summaries, fmt.Sprintf("%s (%+dw)", filepath.Base(path), words))
			}
		}
		if len(summaries) > 0 {
			msg = "Edit " + strings.Join(summaries, ", ")
		} else {
			msg = fmt.Sprintf("Edit %d files", fileCount)
		}
	} else {
		msg = fmt.Sprintf("Edit %d files", fileCount)
		if totalWords > 0 {
			msg += fmt.Sprintf(": +%d words", totalWords)
		} else if totalWords < 0 {
			msg += fmt.Sprintf(": %d words", totalWords)
		}
	}

	if totalMs > fiveMinutesMs {
		msg += ", " + FormatDuration(totalMs)
	}
	return msg
}
