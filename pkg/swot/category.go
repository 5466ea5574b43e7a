package swot

import "fmt"

// Category identifies one of the four SWOT lists.
type Category int

// The four categories, in canonical order.
const (
	Strengths Category = iota
	Weaknesses
	Opportunities
	Threats
)

// Categories lists every category in canonical order.
var Categories = [...]Category{Strengths, Weaknesses, Opportunities, Threats}

var categoryInfo = [...]struct {
	prefix, title, singular, key string
}{
	Strengths:     {"S", "Strengths", "Strength", "strengths"},
	Weaknesses:    {"W", "Weaknesses", "Weakness", "weaknesses"},
	Opportunities: {"O", "Opportunities", "Opportunity", "opportunities"},
	Threats:       {"T", "Threats", "Threat", "threats"},
}

// Valid reports whether c is one of the four categories.
func (c Category) Valid() bool { return c >= Strengths && c <= Threats }

// Prefix returns the one-letter label prefix ("S", "W", "O" or "T").
func (c Category) Prefix() string { return c.info().prefix }

// Title returns the plural display name, e.g. "Opportunities".
func (c Category) Title() string { return c.info().title }

// Singular returns the singular display name used for placeholder tooltips.
func (c Category) Singular() string { return c.info().singular }

// Key returns the lower-case name used in documents and form fields.
func (c Category) Key() string { return c.info().key }

func (c Category) String() string { return c.Title() }

func (c Category) info() struct{ prefix, title, singular, key string } {
	if !c.Valid() {
		panic(fmt.Sprintf("swot: invalid category %d", int(c)))
	}
	return categoryInfo[c]
}

// CategoryFromPrefix maps a label prefix back to its category.
func CategoryFromPrefix(p byte) (Category, bool) {
	switch p {
	case 'S':
		return Strengths, true
	case 'W':
		return Weaknesses, true
	case 'O':
		return Opportunities, true
	case 'T':
		return Threats, true
	}
	return 0, false
}

// IsRow reports whether the category forms matrix rows (strengths and weaknesses).
func (c Category) IsRow() bool { return c == Strengths || c == Weaknesses }
