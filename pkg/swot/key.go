package swot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/swotboard/pkg/errors"
)

// Label addresses one row or column of the matrix, e.g. S2 or T1.
type Label struct {
	Category Category
	Index    int
}

func (l Label) String() string {
	return fmt.Sprintf("%s%d", l.Category.Prefix(), l.Index)
}

// Key addresses one strategy cell: a strength or weakness row paired with
// an opportunity or threat column.
type Key struct {
	Row Label // Strengths or Weaknesses
	Col Label // Opportunities or Threats
}

// NewKey builds a key from row and column labels without validation.
func NewKey(row Category, r int, col Category, c int) Key {
	return Key{Row: Label{row, r}, Col: Label{col, c}}
}

// String returns the canonical "X{n}-Y{m}" form.
func (k Key) String() string {
	return k.Row.String() + "-" + k.Col.String()
}

// Quadrant returns the TOWS quadrant the key falls into.
func (k Key) Quadrant() Quadrant {
	switch {
	case k.Row.Category == Strengths && k.Col.Category == Opportunities:
		return QuadrantSO
	case k.Row.Category == Strengths:
		return QuadrantST
	case k.Col.Category == Opportunities:
		return QuadrantWO
	default:
		return QuadrantWT
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(b []byte) error {
	parsed, err := ParseKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKey parses a strategy key such as "S1-O2". The row must be a
// strength or weakness, the column an opportunity or threat, and both
// indices must be positive without leading zeros, so every key has one
// spelling.
func ParseKey(s string) (Key, error) {
	row, col, ok := strings.Cut(s, "-")
	if !ok {
		return Key{}, errors.New(errors.ErrCodeInvalidKey, "invalid strategy key %q: missing '-'", s)
	}
	r, err := parseLabel(row)
	if err != nil {
		return Key{}, errors.Wrap(errors.ErrCodeInvalidKey, err, "invalid strategy key %q", s)
	}
	c, err := parseLabel(col)
	if err != nil {
		return Key{}, errors.Wrap(errors.ErrCodeInvalidKey, err, "invalid strategy key %q", s)
	}
	if !r.Category.IsRow() {
		return Key{}, errors.New(errors.ErrCodeInvalidKey, "invalid strategy key %q: row must be S or W", s)
	}
	if c.Category.IsRow() {
		return Key{}, errors.New(errors.ErrCodeInvalidKey, "invalid strategy key %q: column must be O or T", s)
	}
	return Key{Row: r, Col: c}, nil
}

func parseLabel(s string) (Label, error) {
	if len(s) < 2 {
		return Label{}, fmt.Errorf("label %q too short", s)
	}
	cat, ok := CategoryFromPrefix(s[0])
	if !ok {
		return Label{}, fmt.Errorf("unknown prefix %q", s[:1])
	}
	digits := s[1:]
	if digits[0] == '0' {
		return Label{}, fmt.Errorf("label %q: index must not start with 0", s)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Label{}, fmt.Errorf("label %q: index must be digits", s)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Label{}, fmt.Errorf("label %q: %w", s, err)
	}
	if n < 1 {
		return Label{}, fmt.Errorf("label %q: index must be >= 1", s)
	}
	return Label{Category: cat, Index: n}, nil
}

// Quadrant is one of the four TOWS strategy types.
type Quadrant int

// The four strategy quadrants.
const (
	QuadrantSO Quadrant = iota // strength + opportunity
	QuadrantST                 // strength + threat
	QuadrantWO                 // weakness + opportunity
	QuadrantWT                 // weakness + threat
)

// Quadrants lists the quadrants in grid order.
var Quadrants = [...]Quadrant{QuadrantSO, QuadrantST, QuadrantWO, QuadrantWT}

// Code returns the two-letter code, e.g. "SO".
func (q Quadrant) Code() string {
	return [...]string{"SO", "ST", "WO", "WT"}[q]
}

// Name returns the strategy name: Growth, Defensive, Turnaround or Survival.
func (q Quadrant) Name() string {
	return [...]string{"Growth", "Defensive", "Turnaround", "Survival"}[q]
}

func (q Quadrant) String() string { return q.Code() }

// Tooltip describes a strategy cell, e.g. "SO Strategy: S1 + O2 (Growth)".
func (k Key) Tooltip() string {
	q := k.Quadrant()
	return fmt.Sprintf("%s Strategy: %s + %s (%s)", q.Code(), k.Row, k.Col, q.Name())
}
