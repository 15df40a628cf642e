package textscan

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestResolveWord(t *testing.T) {
	tests := []struct {
		name string
		line string
		col  int
		want string
	}{
		{"inside word", "foo_bar baz", 3, "foo_bar"},
		{"start of word", "foo_bar baz", 0, "foo_bar"},
		{"second word", "foo_bar baz", 9, "baz"},
		{"on a space", "foo_bar baz", 7, ""},
		{"one past end of line", "foo_bar baz", 11, "baz"},
		{"one past end after space", "foo_bar ", 8, ""},
		{"underscore only", "___", 1, "___"},
		{"digits", "abc123 x", 4, "abc123"},
		{"empty line", "", 0, ""},
		{"negative column", "word", -1, ""},
		{"column past end", "word", 9, ""},
		{"punctuation", "a.b", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveWord(tt.line, tt.col); got != tt.want {
				t.Errorf("ResolveWord(%q, %d) = %q, want %q", tt.line, tt.col, got, tt.want)
			}
		})
	}
}

// ResolveWord must be total: any line/column pair yields either "" or
// a run of word characters present in the line.
func TestResolveWordTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringN(0, 80, -1).Draw(t, "line")
		col := rapid.IntRange(-5, 100).Draw(t, "col")

		got := ResolveWord(line, col)
		if got == "" {
			return
		}
		if !strings.Contains(line, got) {
			t.Fatalf("result %q not found in line %q", got, line)
		}
		for i := 0; i < len(got); i++ {
			if !isWordByte(got[i]) {
				t.Fatalf("result %q contains non-word byte %q", got, got[i])
			}
		}
	})
}
