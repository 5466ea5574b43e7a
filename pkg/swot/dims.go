package swot

// DefaultCount is the number of placeholder rows or columns used for a
// category with no items.
const DefaultCount = 3

// HeaderRows and HeaderCols are the fixed header tracks of the matrix:
// a section band plus a per-index sub-header.
const (
	HeaderRows = 2
	HeaderCols = 2
)

// Dims holds the per-category counts used to size the confrontation matrix.
type Dims struct {
	Strengths     int
	Weaknesses    int
	Opportunities int
	Threats       int
}

// DimsFor derives matrix dimensions from s. Each empty category counts as
// DefaultCount independently of the others.
func DimsFor(s Set) Dims {
	return Dims{
		Strengths:     countOrDefault(len(s.Strengths)),
		Weaknesses:    countOrDefault(len(s.Weaknesses)),
		Opportunities: countOrDefault(len(s.Opportunities)),
		Threats:       countOrDefault(len(s.Threats)),
	}
}

func countOrDefault(n int) int {
	if n == 0 {
		return DefaultCount
	}
	return n
}

// Count returns the number of tracks for category c.
func (d Dims) Count(c Category) int {
	switch c {
	case Strengths:
		return d.Strengths
	case Weaknesses:
		return d.Weaknesses
	case Opportunities:
		return d.Opportunities
	default:
		return d.Threats
	}
}

// Rows returns the total row count including the two header rows.
func (d Dims) Rows() int { return HeaderRows + d.Strengths + d.Weaknesses }

// Cols returns the total column count including the two header columns.
func (d Dims) Cols() int { return HeaderCols + d.Opportunities + d.Threats }

// DataRows returns the number of strength plus weakness rows.
func (d Dims) DataRows() int { return d.Strengths + d.Weaknesses }

// DataCols returns the number of opportunity plus threat columns.
func (d Dims) DataCols() int { return d.Opportunities + d.Threats }

// Contains reports whether k is reachable in a grid of these dimensions.
func (d Dims) Contains(k Key) bool {
	return k.Row.Index >= 1 && k.Row.Index <= d.Count(k.Row.Category) &&
		k.Col.Index >= 1 && k.Col.Index <= d.Count(k.Col.Category)
}

// Keys returns every reachable key in row-major order.
func (d Dims) Keys() []Key {
	keys := make([]Key, 0, d.DataRows()*d.DataCols())
	for _, row := range [...]Category{Strengths, Weaknesses} {
		for r := 1; r <= d.Count(row); r++ {
			for _, col := range [...]Category{Opportunities, Threats} {
				for c := 1; c <= d.Count(col); c++ {
					keys = append(keys, NewKey(row, r, col, c))
				}
			}
		}
	}
	return keys
}

// RowIndex returns the zero-based grid row of label l (a strength or weakness).
func (d Dims) RowIndex(l Label) int {
	if l.Category == Strengths {
		return HeaderRows + l.Index - 1
	}
	return HeaderRows + d.Strengths + l.Index - 1
}

// ColIndex returns the zero-based grid column of label l (an opportunity or threat).
func (d Dims) ColIndex(l Label) int {
	if l.Category == Opportunities {
		return HeaderCols + l.Index - 1
	}
	return HeaderCols + d.Opportunities + l.Index - 1
}
