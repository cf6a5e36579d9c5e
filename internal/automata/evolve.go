package automata

import "fmt"

// Source is the randomness used by stochastic rules and by Reset.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// randomOdds is the 1-in-N chance of a cell being active under RuleRandom.
const randomOdds = 32

// Offset is a (dx, dy) displacement to a neighbouring cell.
type Offset struct {
	DX, DY int
}

// Offsets is the Moore neighbourhood used by RuleLife.
var Offsets = [8]Offset{
	{-1, -1}, {0, -1}, {+1, -1},
	{-1, 0}, {+1, 0},
	{-1, +1}, {0, +1}, {+1, +1},
}

// Next computes the grid's state after one tick of its rule.
// The result is a freshly allocated grid; g is only read, so every rule sees
// the complete pre-tick state.
func (g Grid) Next(src Source) Grid {
	switch g.rule {
	case RuleStatic:
		return g.Clone()
	case RuleRandom:
		return g.nextRandom(src)
	case RuleShiftLeft:
		return g.nextShift(+1)
	case RuleShiftRight:
		return g.nextShift(-1)
	case RuleSierpinski:
		return g.nextSierpinski()
	case RuleFlood:
		return g.nextFlood()
	case RuleLife:
		return g.nextLife()
	default:
		panic(fmt.Sprintf("automata: no transition for rule %d", int(g.rule)))
	}
}

func (g Grid) nextRandom(src Source) Grid {
	next := g.blank()
	for i := range next.cells {
		next.cells[i] = src.Intn(randomOdds) == 0
	}
	return next
}

// nextShift makes every cell take the old value of the cell d columns away.
// d = +1 moves content left, d = -1 moves it right.
func (g Grid) nextShift(d int) Grid {
	next := g.blank()
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			next.Set(i, j, g.Active(i, g.wrap(j+d)))
		}
	}
	return next
}

func (g Grid) nextSierpinski() Grid {
	next := g.Clone()
	for i := 0; i < g.n; i++ {
		above := g.wrap(i - 1)
		if g.rowBlank(above) {
			// A blank row would wipe out everything below it; keep row i as is.
			continue
		}
		for j := 0; j < g.n; j++ {
			next.Set(i, j, g.Active(above, g.wrap(j-1)) != g.Active(above, j))
		}
	}
	return next
}

func (g Grid) rowBlank(row int) bool {
	for j := 0; j < g.n; j++ {
		if g.Active(row, j) {
			return false
		}
	}
	return true
}

func (g Grid) nextFlood() Grid {
	next := g.blank()
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			next.Set(i, j, g.Active(i, j) ||
				g.Active(g.wrap(i-1), j) ||
				g.Active(g.wrap(i+1), j) ||
				g.Active(i, g.wrap(j-1)) ||
				g.Active(i, g.wrap(j+1)))
		}
	}
	return next
}

func (g Grid) nextLife() Grid {
	next := g.blank()
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			alive := g.liveNeighbours(i, j)
			if g.Active(i, j) {
				next.Set(i, j, alive == 2 || alive == 3)
			} else {
				next.Set(i, j, alive == 3)
			}
		}
	}
	return next
}

// liveNeighbours counts active Moore neighbours of (row, col).
// Neighbours outside the grid are skipped, not wrapped.
func (g Grid) liveNeighbours(row, col int) int {
	alive := 0
	for _, o := range Offsets {
		x, y := col+o.DX, row+o.DY
		if x < 0 || x >= g.n || y < 0 || y >= g.n {
			continue
		}
		if g.Active(y, x) {
			alive++
		}
	}
	return alive
}
