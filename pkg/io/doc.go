// Package io reads and writes SWOT documents: the four item lists plus the
// strategy notes, in JSON or TOML.
//
// # Format
//
// All four arrays are required; matrixStrategies is optional:
//
//	{
//	  "strengths": ["Strong brand", "Loyal customers"],
//	  "weaknesses": [],
//	  "opportunities": ["New markets"],
//	  "threats": ["Price war"],
//	  "matrixStrategies": {
//	    "S1-O1": "Enter new markets under the existing brand"
//	  }
//	}
//
// The TOML form uses the same field names. Items are the bare texts; the
// S1/W1 labels are assigned when the lists are parsed, so labeled items
// ("S1: Strong brand") are accepted too.
//
// # Import
//
// [ReadJSON] and [ReadTOML] decode from any reader, [Import] picks the
// decoder by file extension. Every failure (unreadable file, bad syntax,
// missing array, malformed strategy key) is a LOAD_FAILURE error wrapping
// the cause, and no partial document is returned.
//
//	doc, err := io.Import("swot.toml")
//
// # Export
//
// [WriteJSON], [WriteTOML] and [Export] produce documents that [Import]
// reads back unchanged. [Default] returns the built-in example.
package io
