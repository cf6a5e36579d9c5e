package automata

import (
	"fmt"
	"strings"
	"unicode"
)

// Seeding is one entry of the reset table: each cell of the layer is
// activated with Probability, then every Forced cell is activated.
type Seeding struct {
	Probability float64
	Forced      []Cell
}

// LayerSpec describes one layer of a LayerSet: its rule, its glyph, and how
// Reset populates it.
type LayerSpec struct {
	Rule    RuleKind
	Glyph   rune
	Seeding Seeding
}

// LayerSet is an ordered collection of grids sharing one dimension.
// Order is display order, left to right.
type LayerSet struct {
	n          int
	grids      []Grid
	seeding    []Seeding
	src        Source
	generation int
}

// NewLayerSet creates a layer set of dimension n with one all-inactive grid
// per LayerSpec. Call Reset to populate it.
func NewLayerSet(n int, specs []LayerSpec, src Source) (*LayerSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("automata: dimension must be positive, got %d", n)
	}
	if src == nil {
		return nil, fmt.Errorf("automata: random source is required")
	}

	ls := &LayerSet{
		n:       n,
		grids:   make([]Grid, 0, len(specs)),
		seeding: make([]Seeding, 0, len(specs)),
		src:     src,
	}
	for k, spec := range specs {
		if err := validateSpec(n, spec); err != nil {
			return nil, fmt.Errorf("automata: layer %d: %w", k, err)
		}
		ls.grids = append(ls.grids, NewGrid(n, spec.Rule, spec.Glyph))
		ls.seeding = append(ls.seeding, Seeding{
			Probability: spec.Seeding.Probability,
			Forced:      append([]Cell(nil), spec.Seeding.Forced...),
		})
	}
	return ls, nil
}

func validateSpec(n int, spec LayerSpec) error {
	if !spec.Rule.Valid() {
		return fmt.Errorf("invalid rule %d", int(spec.Rule))
	}
	if spec.Glyph == ' ' || !unicode.IsPrint(spec.Glyph) {
		return fmt.Errorf("glyph %q is not a visible character", spec.Glyph)
	}
	if p := spec.Seeding.Probability; p < 0 || p > 1 {
		return fmt.Errorf("probability %v outside [0, 1]", p)
	}
	for _, c := range spec.Seeding.Forced {
		if c.Row < 0 || c.Row >= n || c.Col < 0 || c.Col >= n {
			return fmt.Errorf("forced cell (%d,%d) outside %dx%d grid", c.Row, c.Col, n, n)
		}
	}
	return nil
}

// Dimension returns the side length shared by every layer.
func (ls *LayerSet) Dimension() int { return ls.n }

// Len returns the number of layers.
func (ls *LayerSet) Len() int { return len(ls.grids) }

// Layer returns the k-th grid in display order. The grid shares storage with
// the set until the next Tick or Reset replaces it.
func (ls *LayerSet) Layer(k int) Grid { return ls.grids[k] }

// Generation returns the number of ticks since the last Reset.
func (ls *LayerSet) Generation() int { return ls.generation }

// Tick replaces every grid with its next state.
func (ls *LayerSet) Tick() {
	for k, g := range ls.grids {
		ls.grids[k] = g.Next(ls.src)
	}
	ls.generation++
}

// Reset re-populates every layer from its seeding entry, fully overwriting
// the previous state.
func (ls *LayerSet) Reset() {
	for k := range ls.grids {
		ls.grids[k] = ls.seed(ls.grids[k], ls.seeding[k])
	}
	ls.generation = 0
}

func (ls *LayerSet) seed(g Grid, s Seeding) Grid {
	next := g.blank()
	for i := range next.cells {
		next.cells[i] = ls.src.Float64() < s.Probability
	}
	for _, c := range s.Forced {
		next.Set(c.Row, c.Col, true)
	}
	return next
}

// Population returns the number of active cells in each layer.
func (ls *LayerSet) Population() []int {
	counts := make([]int, len(ls.grids))
	for k, g := range ls.grids {
		counts[k] = g.Population()
	}
	return counts
}

// Render draws the layers side by side: one line per grid row, the glyph for
// active cells and a space otherwise, delim between consecutive layers.
// Every line, including the last, ends with a newline.
func (ls *LayerSet) Render(delim rune) string {
	var sb strings.Builder
	width := len(ls.grids)*(ls.n+1) + 1
	sb.Grow(width * ls.n)

	for i := 0; i < ls.n; i++ {
		for k, g := range ls.grids {
			if k > 0 {
				sb.WriteRune(delim)
			}
			for j := 0; j < ls.n; j++ {
				if g.Active(i, j) {
					sb.WriteRune(g.glyph)
				} else {
					sb.WriteByte(' ')
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
