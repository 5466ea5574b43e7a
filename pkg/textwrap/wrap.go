// Package textwrap breaks text into lines that fit a pixel width.
//
// Wrapping is greedy: words are appended to the current line until the next
// one would overflow, at which point the line is flushed. Words are never
// split, so a single word wider than the limit occupies a line of its own.
// Width is measured by a caller-supplied [MeasureFunc], which keeps the
// package independent of any particular font backend.
package textwrap

import "strings"

// Ellipsis is appended to the last line when [WrapLimit] drops content.
const Ellipsis = "..."

// MeasureFunc returns the rendered width of s.
type MeasureFunc func(s string) float64

// Wrap splits text into lines no wider than maxWidth.
//
// Whitespace runs (including newlines) separate words and are normalized to
// single spaces, so joining the result with " " reproduces
// strings.Join(strings.Fields(text), " "). Returns nil for blank text.
func Wrap(text string, maxWidth float64, measure MeasureFunc) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && measure(candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// WrapLimit wraps like [Wrap] but returns at most maxLines lines.
//
// When the text needs more, the first maxLines-1 lines are kept and the
// maxLines-th wrapped line is shortened from the end until it fits
// together with [Ellipsis]. A maxLines below 1 disables the cap.
func WrapLimit(text string, maxWidth float64, measure MeasureFunc, maxLines int) []string {
	lines := Wrap(text, maxWidth, measure)
	if maxLines < 1 || len(lines) <= maxLines {
		return lines
	}
	out := append([]string(nil), lines[:maxLines-1]...)
	return append(out, Truncate(lines[maxLines-1], maxWidth, measure))
}

// Truncate shortens s from the end until s+Ellipsis fits maxWidth and
// returns it with the ellipsis appended. Trailing spaces are dropped before
// the ellipsis; if nothing fits, the ellipsis alone is returned.
func Truncate(s string, maxWidth float64, measure MeasureFunc) string {
	runes := []rune(s)
	for n := len(runes); n > 0; n-- {
		candidate := strings.TrimRight(string(runes[:n]), " ") + Ellipsis
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return Ellipsis
}
