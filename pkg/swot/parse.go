package swot

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/matzehuels/swotboard/pkg/errors"
)

// Item is one labeled line of analysis text.
type Item struct {
	Category Category
	Index    int    // 1-based position within the category
	Text     string // cleaned user text, without bullet or label
}

// Label returns the short label, e.g. "O2".
func (i Item) Label() string {
	return fmt.Sprintf("%s%d", i.Category.Prefix(), i.Index)
}

// String returns the full labeled form "{Prefix}{index}: {text}".
func (i Item) String() string {
	return i.Label() + ": " + i.Text
}

var (
	bulletPrefix = regexp.MustCompile(`^[•\-*]\s*`)
	labelPrefix  = regexp.MustCompile(`^[SWOT]\d+\s*[:\-.]?\s*`)
)

// ParseList turns multi-line text into the ordered items of category c.
//
// Blank lines are dropped. A leading bullet ("•", "-" or "*") and then a
// leading label such as "S3:" or "W12 -" are stripped before the line is
// relabeled, so parsing already-labeled output yields the same items again.
// Empty input yields an empty (nil) slice.
func ParseList(raw string, c Category) []Item {
	var items []Item
	for _, line := range strings.Split(norm.NFC.String(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = bulletPrefix.ReplaceAllString(line, "")
		line = labelPrefix.ReplaceAllString(line, "")
		items = append(items, Item{Category: c, Index: len(items) + 1, Text: line})
	}
	return items
}

// Input is the raw text of the four entry fields.
type Input struct {
	Strengths     string
	Weaknesses    string
	Opportunities string
	Threats       string
}

// Field returns the raw text entered for category c.
func (in Input) Field(c Category) string {
	switch c {
	case Strengths:
		return in.Strengths
	case Weaknesses:
		return in.Weaknesses
	case Opportunities:
		return in.Opportunities
	default:
		return in.Threats
	}
}

// InputFromLists joins per-category lines back into entry-field text.
func InputFromLists(strengths, weaknesses, opportunities, threats []string) Input {
	return Input{
		Strengths:     strings.Join(strengths, "\n"),
		Weaknesses:    strings.Join(weaknesses, "\n"),
		Opportunities: strings.Join(opportunities, "\n"),
		Threats:       strings.Join(threats, "\n"),
	}
}

// Set is a complete SWOT analysis: four ordered item lists.
type Set struct {
	Strengths     []Item
	Weaknesses    []Item
	Opportunities []Item
	Threats       []Item
}

// Items returns the items of category c.
func (s Set) Items(c Category) []Item {
	switch c {
	case Strengths:
		return s.Strengths
	case Weaknesses:
		return s.Weaknesses
	case Opportunities:
		return s.Opportunities
	default:
		return s.Threats
	}
}

// Item returns the item at 1-based index i of category c.
func (s Set) Item(c Category, i int) (Item, bool) {
	items := s.Items(c)
	if i < 1 || i > len(items) {
		return Item{}, false
	}
	return items[i-1], true
}

// Empty reports whether all four categories are empty.
func (s Set) Empty() bool {
	return len(s.Strengths) == 0 && len(s.Weaknesses) == 0 &&
		len(s.Opportunities) == 0 && len(s.Threats) == 0
}

// Parse parses all four fields. It fails with an EMPTY_INPUT error only
// when every category comes out empty; a partially filled input is fine.
func Parse(in Input) (Set, error) {
	s := Set{
		Strengths:     ParseList(in.Strengths, Strengths),
		Weaknesses:    ParseList(in.Weaknesses, Weaknesses),
		Opportunities: ParseList(in.Opportunities, Opportunities),
		Threats:       ParseList(in.Threats, Threats),
	}
	if s.Empty() {
		return Set{}, errors.New(errors.ErrCodeEmptyInput, "please enter at least one item in any category")
	}
	return s, nil
}
