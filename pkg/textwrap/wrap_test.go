package textwrap

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

// charWidth measures every rune as 1 unit wide.
func charWidth(s string) float64 { return float64(utf8.RuneCountInString(s)) }

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"empty", "", 10, nil},
		{"blank", "   \n ", 10, nil},
		{"fits", "hello world", 11, []string{"hello world"}},
		{"breaks", "hello world", 10, []string{"hello", "world"}},
		{"greedy", "aa bb cc dd", 5, []string{"aa bb", "cc dd"}},
		{"long word alone", "a extraordinary b", 5, []string{"a", "extraordinary", "b"}},
		{"leading long word", "extraordinary a", 5, []string{"extraordinary", "a"}},
		{"normalizes whitespace", "a   b\n\tc", 20, []string{"a b c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width, charWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapProperties(t *testing.T) {
	texts := []string{
		"Expand into neighbouring markets through a joint venture with a local distributor",
		"Use the strong brand to counter new low-cost entrants before they gain share",
		"a bb ccc dddd eeeee ffffff ggggggg hhhhhhhh",
		"supercalifragilisticexpialidocious is long",
	}
	for _, text := range texts {
		for _, width := range []float64{1, 5, 12, 30, 200} {
			lines := Wrap(text, width, charWidth)
			for _, line := range lines {
				if charWidth(line) > width && strings.Contains(line, " ") {
					t.Errorf("Wrap(%q, %v): line %q exceeds width and is not a single word", text, width, line)
				}
			}
			if got, want := strings.Join(lines, " "), strings.Join(strings.Fields(text), " "); got != want {
				t.Errorf("Wrap(%q, %v) does not reconstruct text:\n got  %q\n want %q", text, width, got, want)
			}
		}
	}
}

func TestWrapLimit(t *testing.T) {
	text := "l1 l2 l3 l4 l5 l6 l7"

	t.Run("under cap", func(t *testing.T) {
		got := WrapLimit("l1 l2", 2, charWidth, 5)
		if !reflect.DeepEqual(got, []string{"l1", "l2"}) {
			t.Errorf("WrapLimit() = %q", got)
		}
	})

	t.Run("exactly at cap", func(t *testing.T) {
		got := WrapLimit("l1 l2 l3 l4 l5", 2, charWidth, 5)
		if len(got) != 5 || got[4] != "l5" {
			t.Errorf("WrapLimit() = %q", got)
		}
	})

	t.Run("over cap truncates the fifth line", func(t *testing.T) {
		// Each word fills a line; the ellipsis is built from "e5", not "d4".
		got := WrapLimit("a1 b2 c3 d4 e5 f6 g7", 4, charWidth, 5)
		want := []string{"a1", "b2", "c3", "d4", "e..."}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("WrapLimit() = %q, want %q", got, want)
		}
	})

	t.Run("over cap truncates to fit", func(t *testing.T) {
		got := WrapLimit("aaaa bbbb cccc", 4, charWidth, 2)
		want := []string{"aaaa", "b..."}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("WrapLimit() = %q, want %q", got, want)
		}
	})

	t.Run("no cap", func(t *testing.T) {
		if got := WrapLimit(text, 2, charWidth, 0); len(got) != 7 {
			t.Errorf("WrapLimit(maxLines=0) returned %d lines, want 7", len(got))
		}
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width float64
		want  string
	}{
		{"hello", 8, "hello..."},
		{"hello", 6, "hel..."},
		{"ab cd", 6, "ab..."},
		{"hello", 2, "..."},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width, charWidth); got != tt.want {
			t.Errorf("Truncate(%q, %v) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
