package grid

// Cell addresses one grid cell.
type Cell struct {
	Col, Row int
}

var (
	orthogonal = []Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonal   = []Cell{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// Neighbors returns the in-grid cells adjacent to cell, orthogonal ones first
// (north, east, south, west), followed by the diagonals when diag is set.
func (c Config) Neighbors(cell Cell, diag bool) []Cell {
	out := make([]Cell, 0, 8)
	add := func(offsets []Cell) {
		for _, o := range offsets {
			n := Cell{Col: cell.Col + o.Col, Row: cell.Row + o.Row}
			if c.Contains(n) {
				out = append(out, n)
			}
		}
	}
	add(orthogonal)
	if diag {
		add(diagonal)
	}
	return out
}
