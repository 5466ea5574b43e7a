package io

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/swotboard/pkg/errors"
	"github.com/matzehuels/swotboard/pkg/swot"
)

//go:embed default-swot.json
var defaultDocument []byte

// DefaultName is the name the built-in example is served and written under.
const DefaultName = "default-swot.json"

// Default returns the built-in example document.
func Default() Document {
	d, err := ReadJSON(bytes.NewReader(defaultDocument))
	if err != nil {
		panic("io: embedded default document: " + err.Error())
	}
	return d
}

// DefaultJSON returns the raw built-in example document.
func DefaultJSON() []byte {
	return bytes.Clone(defaultDocument)
}

// ReadJSON decodes a JSON document from r.
//
// ReadJSON returns a LOAD_FAILURE error if the JSON is malformed, if any of
// the four category arrays is missing, or if a matrixStrategies key is not
// a valid strategy key. ReadJSON does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var w document
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeLoadFailure, err, "could not decode document")
	}
	return fromWire(w)
}

// ReadTOML decodes a TOML document from r with the same rules as [ReadJSON].
func ReadTOML(r io.Reader) (Document, error) {
	var w document
	if _, err := toml.NewDecoder(r).Decode(&w); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeLoadFailure, err, "could not decode document")
	}
	return fromWire(w)
}

// Import reads the document at path, choosing TOML for a .toml extension
// and JSON otherwise.
func Import(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeLoadFailure, fmt.Errorf("open %s: %w", path, err), "could not load %s", filepath.Base(path))
	}
	return Decode(path, data)
}

// Decode parses document bytes that were read from path. The path only
// selects the format and prefixes errors.
func Decode(path string, data []byte) (Document, error) {
	var (
		d   Document
		err error
	)
	if isTOML(path) {
		d, err = ReadTOML(bytes.NewReader(data))
	} else {
		d, err = ReadJSON(bytes.NewReader(data))
	}
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func fromWire(w document) (Document, error) {
	missing := []string{}
	for name, list := range map[string]*[]string{
		"strengths":     w.Strengths,
		"weaknesses":    w.Weaknesses,
		"opportunities": w.Opportunities,
		"threats":       w.Threats,
	} {
		if list == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return Document{}, errors.New(errors.ErrCodeLoadFailure, "document is missing %s", strings.Join(missing, ", "))
	}

	d := Document{
		Strengths:     *w.Strengths,
		Weaknesses:    *w.Weaknesses,
		Opportunities: *w.Opportunities,
		Threats:       *w.Threats,
	}
	if w.MatrixStrategies != nil {
		st, err := swot.StrategiesFromMap(w.MatrixStrategies)
		if err != nil {
			return Document{}, errors.Wrap(errors.ErrCodeLoadFailure, err, "document has an invalid strategy")
		}
		d.Strategies = st
	}
	return d, nil
}
