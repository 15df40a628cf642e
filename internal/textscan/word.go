// Package textscan holds the text heuristics of the telemetry engine:
// word-context resolution and coarse snapshot diff classification.
// Both are total functions: malformed input degrades to empty or
// generic results, never to a panic.
package textscan

// isWordByte reports whether b is a word character (alphanumeric or
// underscore). Byte-wise matching mirrors the column semantics of the
// host editors, which report byte columns.
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// ResolveWord returns the word under the cursor on lineText, where col
// is a 0-based byte column. When col sits exactly one past the end of
// the line (the cursor position right after typing a character), the
// run ending at the last character is returned. Any other position
// outside a word run, or any out-of-range input, yields "".
func ResolveWord(lineText string, col int) string {
	if lineText == "" || col < 0 || col > len(lineText) {
		return ""
	}

	idx := col
	switch {
	case col < len(lineText) && isWordByte(lineText[col]):
		// Cursor is on a word character.
	case col == len(lineText) && isWordByte(lineText[col-1]):
		// Cursor one past the end of the line, right after a word.
		idx = col - 1
	default:
		return ""
	}

	start, end := idx, idx+1
	for start > 0 && isWordByte(lineText[start-1]) {
		start--
	}
	for end < len(lineText) && isWordByte(lineText[end]) {
		end++
	}
	return lineText[start:end]
}
