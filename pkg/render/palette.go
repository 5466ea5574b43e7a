package render

import "github.com/matzehuels/swotboard/pkg/swot"

// Palette colours as hex strings, usable with gg, CSS and lipgloss alike.
const (
	ColorStrengths     = "#2196F3"
	ColorWeaknesses    = "#FF9800"
	ColorOpportunities = "#4CAF50"
	ColorThreats       = "#673AB7"

	ColorBand      = "#4a90e2"
	ColorThreatSub = "#f44336"
	ColorInk       = "#333333"
	ColorWhite     = "#FFFFFF"

	ColorSO = "#ffeb3b"
	ColorST = "#2196f3"
	ColorWO = "#8bc34a"
	ColorWT = "#f44336"
)

// QuadrantColor returns the fill of category c in the SWOT analysis.
func QuadrantColor(c swot.Category) string {
	switch c {
	case swot.Strengths:
		return ColorStrengths
	case swot.Weaknesses:
		return ColorWeaknesses
	case swot.Opportunities:
		return ColorOpportunities
	default:
		return ColorThreats
	}
}

// SubHeaderColor returns the fill of a sub-header cell (S1, W2, O3, T1) in
// the matrix. Threat columns are red there, unlike their SWOT quadrant.
func SubHeaderColor(c swot.Category) string {
	if c == swot.Threats {
		return ColorThreatSub
	}
	return QuadrantColor(c)
}

// StrategyColors returns the fill and text colour of a strategy cell.
func StrategyColors(q swot.Quadrant) (fill, text string) {
	switch q {
	case swot.QuadrantSO:
		return ColorSO, ColorInk
	case swot.QuadrantST:
		return ColorST, ColorWhite
	case swot.QuadrantWO:
		return ColorWO, ColorWhite
	default:
		return ColorWT, ColorWhite
	}
}
