package io

import (
	"strings"

	"github.com/matzehuels/swotboard/pkg/swot"
)

// Document is the initial state of a SWOT session.
type Document struct {
	Strengths     []string
	Weaknesses    []string
	Opportunities []string
	Threats       []string

	// Strategies may be nil when the document carries none.
	Strategies swot.Strategies
}

// Input returns the lists as newline-joined text fields.
func (d Document) Input() swot.Input {
	return swot.InputFromLists(d.Strengths, d.Weaknesses, d.Opportunities, d.Threats)
}

// Snapshot builds a document from a parsed set and its strategies.
// Item labels are dropped; strategies are copied.
func Snapshot(s swot.Set, st swot.Strategies) Document {
	d := Document{
		Strengths:     texts(s.Strengths),
		Weaknesses:    texts(s.Weaknesses),
		Opportunities: texts(s.Opportunities),
		Threats:       texts(s.Threats),
		Strategies:    swot.NewStrategies(),
	}
	d.Strategies.Replace(st)
	return d
}

// SnapshotInput builds a document from raw text fields without requiring
// them to parse into a non-empty set.
func SnapshotInput(in swot.Input, st swot.Strategies) Document {
	lists := make([][]string, len(swot.Categories))
	for i, c := range swot.Categories {
		lists[i] = texts(swot.ParseList(in.Field(c), c))
	}
	d := Document{
		Strengths:     lists[0],
		Weaknesses:    lists[1],
		Opportunities: lists[2],
		Threats:       lists[3],
		Strategies:    swot.NewStrategies(),
	}
	d.Strategies.Replace(st)
	return d
}

func texts(items []swot.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = strings.TrimSpace(it.Text)
	}
	return out
}

// document is the wire form. Pointers tell a missing array from an empty one.
type document struct {
	Strengths        *[]string         `json:"strengths" toml:"strengths"`
	Weaknesses       *[]string         `json:"weaknesses" toml:"weaknesses"`
	Opportunities    *[]string         `json:"opportunities" toml:"opportunities"`
	Threats          *[]string         `json:"threats" toml:"threats"`
	MatrixStrategies map[string]string `json:"matrixStrategies,omitempty" toml:"matrixStrategies,omitempty"`
}

func toWire(d Document) document {
	w := document{
		Strengths:     nonNil(d.Strengths),
		Weaknesses:    nonNil(d.Weaknesses),
		Opportunities: nonNil(d.Opportunities),
		Threats:       nonNil(d.Threats),
	}
	if len(d.Strategies) > 0 {
		w.MatrixStrategies = d.Strategies.StringMap()
	}
	return w
}

func nonNil(s []string) *[]string {
	if s == nil {
		s = []string{}
	}
	return &s
}
