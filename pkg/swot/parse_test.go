package swot

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/swotboard/pkg/errors"
)

func texts(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prefix Category
		want   []string
	}{
		{"empty", "", Strengths, []string{}},
		{"whitespace only", "  \n\t\n", Threats, []string{}},
		{"plain lines", "Alpha\nBeta", Strengths, []string{"S1: Alpha", "S2: Beta"}},
		{"blank lines dropped", "Alpha\n\n  \nBeta\n", Weaknesses, []string{"W1: Alpha", "W2: Beta"}},
		{"bullets stripped", "• Alpha\n- Beta\n*Gamma", Opportunities, []string{"O1: Alpha", "O2: Beta", "O3: Gamma"}},
		{"labels stripped", "S1: Alpha\nT12 - Beta\nW3. Gamma\nO4 Delta", Threats, []string{"T1: Alpha", "T2: Beta", "T3: Gamma", "T4: Delta"}},
		{"bullet then label", "• S2: Alpha", Strengths, []string{"S1: Alpha"}},
		{"crlf", "Alpha\r\nBeta\r\n", Strengths, []string{"S1: Alpha", "S2: Beta"}},
		{"lower-case label kept", "s1: Alpha", Strengths, []string{"S1: s1: Alpha"}},
		{"inner whitespace kept", "  Grow   fast  ", Opportunities, []string{"O1: Grow   fast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texts(ParseList(tt.input, tt.prefix))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseList(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseListIndices(t *testing.T) {
	items := ParseList("a\n\nb\nc", Weaknesses)
	for i, it := range items {
		if it.Index != i+1 {
			t.Errorf("items[%d].Index = %d, want %d", i, it.Index, i+1)
		}
		if it.Category != Weaknesses {
			t.Errorf("items[%d].Category = %v, want Weaknesses", i, it.Category)
		}
	}
	if items[1].Label() != "W2" || items[1].Text != "b" {
		t.Errorf("items[1] = %+v", items[1])
	}
}

func TestParseListIdempotent(t *testing.T) {
	inputs := []string{
		"• Broad product range\n• International network",
		"S7: Already labeled\n- bullet\n\n* star",
		"Plain\nT2: mislabeled",
	}
	for _, c := range Categories {
		for _, in := range inputs {
			first := texts(ParseList(in, c))
			second := texts(ParseList(strings.Join(first, "\n"), c))
			if !reflect.DeepEqual(first, second) {
				t.Errorf("%v: reparse changed output:\n first  %q\n second %q", c, first, second)
			}
		}
	}
}

func TestParseListNormalizesDecomposedText(t *testing.T) {
	items := ParseList("Cafe\u0301 chain", Strengths)
	if got, want := items[0].Text, "Caf\u00e9 chain"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	t.Run("all empty fails", func(t *testing.T) {
		_, err := Parse(Input{Strengths: "\n ", Threats: ""})
		if !errors.Is(err, errors.ErrCodeEmptyInput) {
			t.Fatalf("Parse() error = %v, want EMPTY_INPUT", err)
		}
	})

	t.Run("single category succeeds", func(t *testing.T) {
		s, err := Parse(Input{Strengths: "Alpha\nBeta"})
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if len(s.Strengths) != 2 || len(s.Weaknesses) != 0 {
			t.Errorf("Parse() = %+v", s)
		}
	})
}

func TestSetItem(t *testing.T) {
	s, _ := Parse(Input{Opportunities: "a\nb"})
	if it, ok := s.Item(Opportunities, 2); !ok || it.String() != "O2: b" {
		t.Errorf("Item(O, 2) = %v, %v", it, ok)
	}
	for _, i := range []int{0, 3} {
		if _, ok := s.Item(Opportunities, i); ok {
			t.Errorf("Item(O, %d) ok = true, want false", i)
		}
	}
}

func TestInputFromLists(t *testing.T) {
	in := InputFromLists([]string{"A", "B"}, nil, []string{"C"}, []string{"D", "E", "F"})
	if in.Field(Strengths) != "A\nB" || in.Field(Weaknesses) != "" || in.Field(Threats) != "D\nE\nF" {
		t.Errorf("InputFromLists() = %+v", in)
	}
}
