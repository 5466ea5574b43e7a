package swot

import (
	"encoding/json"
	"sort"
)

// Strategies maps strategy keys to the note entered for that pairing.
//
// It is the single source of truth for strategy text: the grid writes into
// it and the raster export reads from it. A missing key means the cell is
// empty. Strategies is a map, so copies share storage; use [Strategies.Clear]
// rather than reassigning when every holder must observe the change.
type Strategies map[Key]string

// NewStrategies returns an empty mapping.
func NewStrategies() Strategies { return make(Strategies) }

// Get returns the note stored for k, or "" when unset.
func (s Strategies) Get(k Key) string { return s[k] }

// Set stores text for k. Setting an empty string removes the key.
func (s Strategies) Set(k Key, text string) {
	if text == "" {
		delete(s, k)
		return
	}
	s[k] = text
}

// Clear removes every note in place.
func (s Strategies) Clear() {
	for k := range s {
		delete(s, k)
	}
}

// Replace clears s and copies every entry of src into it.
func (s Strategies) Replace(src Strategies) {
	s.Clear()
	for k, v := range src {
		s.Set(k, v)
	}
}

// Keys returns all stored keys in row-major matrix order.
func (s Strategies) Keys() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	SortKeys(keys)
	return keys
}

// Orphans returns the stored keys that fall outside d, i.e. notes that are
// kept but no longer reachable from a grid of that size.
func (s Strategies) Orphans(d Dims) []Key {
	var out []Key
	for k := range s {
		if !d.Contains(k) {
			out = append(out, k)
		}
	}
	SortKeys(out)
	return out
}

// MarshalJSON encodes the mapping as {"S1-O2": "text", ...}.
func (s Strategies) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.StringMap())
}

// UnmarshalJSON decodes {"S1-O2": "text", ...}, rejecting malformed keys.
func (s *Strategies) UnmarshalJSON(b []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := StrategiesFromMap(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// StringMap returns a copy keyed by the canonical key strings.
func (s Strategies) StringMap() map[string]string {
	out := make(map[string]string, len(s))
	for k, v := range s {
		out[k.String()] = v
	}
	return out
}

// StrategiesFromMap parses string keys. Any malformed key fails the whole
// conversion so callers never apply a partial mapping.
func StrategiesFromMap(raw map[string]string) (Strategies, error) {
	s := make(Strategies, len(raw))
	for ks, v := range raw {
		k, err := ParseKey(ks)
		if err != nil {
			return nil, err
		}
		s.Set(k, v)
	}
	return s, nil
}

// SortKeys orders keys the way the grid lays them out: strengths before
// weaknesses, then by row index, then opportunities before threats, then by
// column index.
func SortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Row.Category != b.Row.Category {
			return a.Row.Category < b.Row.Category
		}
		if a.Row.Index != b.Row.Index {
			return a.Row.Index < b.Row.Index
		}
		if a.Col.Category != b.Col.Category {
			return a.Col.Category < b.Col.Category
		}
		return a.Col.Index < b.Col.Index
	})
}
