package fonts

import (
	"testing"

	"golang.org/x/image/font"
)

func TestFaceSizes(t *testing.T) {
	small := Face(Regular, 9)
	large := Face(Regular, 36)
	defer small.Close()
	defer large.Close()

	ws := font.MeasureString(small, "Strengths")
	wl := font.MeasureString(large, "Strengths")
	if ws <= 0 || wl <= ws {
		t.Errorf("widths small=%v large=%v, want 0 < small < large", ws, wl)
	}
}

func TestFontCached(t *testing.T) {
	if Font(Bold) != Font(Bold) {
		t.Error("Font(Bold) should return the cached instance")
	}
	if Font(Bold) == Font(Regular) {
		t.Error("bold and regular should differ")
	}
}
