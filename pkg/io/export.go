package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// WriteJSON encodes d as indented JSON to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(d Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toWire(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes d as TOML to w.
func WriteTOML(d Document, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(toWire(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes d to path, as TOML for a .toml extension and JSON otherwise.
func Export(d Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if isTOML(path) {
		err = WriteTOML(d, f)
	} else {
		err = WriteJSON(d, f)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
