// Package fonts provides the embedded typefaces used for raster exports.
//
// The Go font family ships inside golang.org/x/image, so exports render the
// same on every machine without system font lookups. Parsed fonts are
// cached after first use; faces are created per call because a
// [font.Face] is not safe for concurrent use.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Weight selects between the regular and bold typeface.
type Weight int

const (
	Regular Weight = iota
	Bold
)

var (
	regular, bold *truetype.Font
	parseOnce     sync.Once
)

func load() {
	// The embedded TTFs are known-good; a parse failure is a build defect.
	var err error
	if regular, err = truetype.Parse(goregular.TTF); err != nil {
		panic("fonts: parse goregular: " + err.Error())
	}
	if bold, err = truetype.Parse(gobold.TTF); err != nil {
		panic("fonts: parse gobold: " + err.Error())
	}
}

// Font returns the parsed typeface for w.
func Font(w Weight) *truetype.Font {
	parseOnce.Do(load)
	if w == Bold {
		return bold
	}
	return regular
}

// Face returns a new face of the given weight and pixel size at 72 DPI.
func Face(w Weight, size float64) font.Face {
	return truetype.NewFace(Font(w), &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
