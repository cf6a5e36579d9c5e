package automata

import (
	"math/rand"
	"strings"
)

// fakeSource returns fixed values so stochastic rules can be asserted exactly.
type fakeSource struct {
	intn    int
	float64 float64
	calls   int
}

func (f *fakeSource) Intn(n int) int {
	f.calls++
	return f.intn % n
}

func (f *fakeSource) Float64() float64 {
	f.calls++
	return f.float64
}

// gridFromRows builds a grid from lines of '#' (active) and '.' (inactive).
func gridFromRows(rule RuleKind, rows ...string) Grid {
	g := NewGrid(len(rows), rule, '#')
	for i, row := range rows {
		for j, c := range row {
			g.Set(i, j, c == '#')
		}
	}
	return g
}

// rowsOf is the inverse of gridFromRows.
func rowsOf(g Grid) []string {
	rows := make([]string, g.Dimension())
	for i := range rows {
		var sb strings.Builder
		for j := 0; j < g.Dimension(); j++ {
			if g.Active(i, j) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[i] = sb.String()
	}
	return rows
}

// randomGrid fills a grid with roughly half of the cells active.
func randomGrid(n int, rule RuleKind, seed int64) Grid {
	rng := rand.New(rand.NewSource(seed))
	g := NewGrid(n, rule, '*')
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.Set(i, j, rng.Intn(2) == 1)
		}
	}
	return g
}
