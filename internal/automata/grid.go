package automata

import "fmt"

// Cell is a (row, column) coordinate inside a Grid.
type Cell struct {
	Row, Col int
}

// Grid is one rule-governed layer: an N×N boolean matrix with the rule that
// evolves it and the glyph that displays its active cells.
// Cells are stored in row-major order: index = row*n + col.
type Grid struct {
	n     int
	cells []bool
	rule  RuleKind
	glyph rune
}

// NewGrid creates an all-inactive grid of dimension n.
// A non-positive dimension or an undeclared rule is a programming error.
func NewGrid(n int, rule RuleKind, glyph rune) Grid {
	if n <= 0 {
		panic(fmt.Sprintf("automata: grid dimension must be positive, got %d", n))
	}
	if !rule.Valid() {
		panic(fmt.Sprintf("automata: invalid rule %d", int(rule)))
	}
	return Grid{
		n:     n,
		cells: make([]bool, n*n),
		rule:  rule,
		glyph: glyph,
	}
}

// blank returns an all-inactive grid with the same dimension, rule and glyph.
func (g Grid) blank() Grid {
	return Grid{n: g.n, cells: make([]bool, len(g.cells)), rule: g.rule, glyph: g.glyph}
}

// Dimension returns the side length of the grid.
func (g Grid) Dimension() int { return g.n }

// Rule returns the rule that evolves this grid.
func (g Grid) Rule() RuleKind { return g.rule }

// Glyph returns the character used to display active cells.
func (g Grid) Glyph() rune { return g.glyph }

// Active reports whether the cell at (row, col) is active.
func (g Grid) Active(row, col int) bool {
	return g.cells[row*g.n+col]
}

// Set changes the state of the cell at (row, col).
// Coordinates must be in range.
func (g Grid) Set(row, col int, active bool) {
	g.cells[row*g.n+col] = active
}

// wrap maps any integer onto [0, n).
func (g Grid) wrap(v int) int {
	return (v%g.n + g.n) % g.n
}

// Population returns the number of active cells.
func (g Grid) Population() int {
	count := 0
	for _, c := range g.cells {
		if c {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := g.blank()
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same dimension, rule, glyph and cells.
func (g Grid) Equal(other Grid) bool {
	if g.n != other.n || g.rule != other.rule || g.glyph != other.glyph {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
