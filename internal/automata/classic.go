package automata

// Defaults of the reference sandbox.
const (
	DefaultDimension = 15
	DefaultDelimiter = '|'
)

// Classic returns the reference seven-layer table for dimension n.
// The probabilities are tuned by eye for each rule; none of them is load-bearing.
func Classic(n int) []LayerSpec {
	flood := 0.0
	if half := n * n / 2; half > 0 {
		flood = 1.0 / float64(half)
	}

	return []LayerSpec{
		{Rule: RuleStatic, Glyph: '.', Seeding: Seeding{Probability: 1.0 / 2}},
		{Rule: RuleShiftLeft, Glyph: '<', Seeding: Seeding{Probability: 1.0 / 8}},
		{Rule: RuleShiftRight, Glyph: '>', Seeding: Seeding{Probability: 1.0 / 16}},
		{Rule: RuleSierpinski, Glyph: '^', Seeding: Seeding{Forced: []Cell{{Row: 0, Col: 0}}}},
		{Rule: RuleLife, Glyph: '#', Seeding: Seeding{Probability: 1.0 / 4}},
		{Rule: RuleFlood, Glyph: 'O', Seeding: Seeding{Probability: flood}},
		{Rule: RuleRandom, Glyph: '?', Seeding: Seeding{Probability: 1.0 / randomOdds}},
	}
}
