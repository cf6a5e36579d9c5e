package automata

import (
	"math/rand"
	"strings"
	"testing"
)

func TestNewLayerSetValidation(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	tests := []struct {
		name  string
		n     int
		specs []LayerSpec
	}{
		{"zero dimension", 0, nil},
		{"invalid rule", 5, []LayerSpec{{Rule: ruleCount, Glyph: '#'}}},
		{"blank glyph", 5, []LayerSpec{{Rule: RuleLife, Glyph: ' '}}},
		{"control glyph", 5, []LayerSpec{{Rule: RuleLife, Glyph: '\n'}}},
		{"negative probability", 5, []LayerSpec{{Rule: RuleLife, Glyph: '#', Seeding: Seeding{Probability: -0.1}}}},
		{"forced cell out of range", 5, []LayerSpec{{Rule: RuleLife, Glyph: '#', Seeding: Seeding{Forced: []Cell{{Row: 5, Col: 0}}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLayerSet(tt.n, tt.specs, src); err == nil {
				t.Error("NewLayerSet() should fail")
			}
		})
	}

	if _, err := NewLayerSet(5, nil, nil); err == nil {
		t.Error("NewLayerSet() without a source should fail")
	}
}

func TestTickPreservesLayout(t *testing.T) {
	ls, err := NewLayerSet(DefaultDimension, Classic(DefaultDimension), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewLayerSet() failed: %v", err)
	}
	ls.Reset()
	static := ls.Layer(0).Clone()

	for i := 0; i < 10; i++ {
		ls.Tick()
	}

	if ls.Generation() != 10 {
		t.Errorf("Generation() = %d, expected 10", ls.Generation())
	}
	for k, spec := range Classic(DefaultDimension) {
		g := ls.Layer(k)
		if g.Rule() != spec.Rule || g.Glyph() != spec.Glyph || g.Dimension() != DefaultDimension {
			t.Errorf("layer %d changed layout: rule %v glyph %q", k, g.Rule(), g.Glyph())
		}
	}
	if !ls.Layer(0).Equal(static) {
		t.Error("static layer changed across ticks")
	}
}

func TestResetForcedCellAlwaysHolds(t *testing.T) {
	ls, err := NewLayerSet(DefaultDimension, Classic(DefaultDimension), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewLayerSet() failed: %v", err)
	}

	for i := 0; i < 50; i++ {
		ls.Reset()
		sierpinski := ls.Layer(3)
		if !sierpinski.Active(0, 0) {
			t.Fatalf("reset %d: seed cell (0,0) inactive", i)
		}
		if sierpinski.Population() != 1 {
			t.Fatalf("reset %d: sierpinski layer has %d cells, expected 1", i, sierpinski.Population())
		}
		ls.Tick()
	}
}

func TestResetOverwritesPreviousState(t *testing.T) {
	specs := []LayerSpec{
		{Rule: RuleStatic, Glyph: 'a', Seeding: Seeding{Probability: 0}},
		{Rule: RuleStatic, Glyph: 'b', Seeding: Seeding{Probability: 1}},
	}
	ls, err := NewLayerSet(4, specs, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewLayerSet() failed: %v", err)
	}

	ls.Layer(0).Set(1, 1, true)
	ls.Tick()
	ls.Reset()

	if got := ls.Population(); got[0] != 0 || got[1] != 16 {
		t.Errorf("Population() = %v, expected [0 16]", got)
	}
	if ls.Generation() != 0 {
		t.Errorf("Generation() = %d after reset, expected 0", ls.Generation())
	}
}

func TestResetDrawsFreshValues(t *testing.T) {
	specs := []LayerSpec{{Rule: RuleStatic, Glyph: '.', Seeding: Seeding{Probability: 0.5}}}
	ls, err := NewLayerSet(DefaultDimension, specs, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("NewLayerSet() failed: %v", err)
	}

	ls.Reset()
	first := ls.Layer(0).Clone()
	ls.Reset()
	if ls.Layer(0).Equal(first) {
		t.Error("two resets of a half-filled layer produced identical grids")
	}
}

func TestRenderLayout(t *testing.T) {
	specs := []LayerSpec{
		{Rule: RuleStatic, Glyph: '.'},
		{Rule: RuleStatic, Glyph: '#'},
	}
	ls, err := NewLayerSet(3, specs, &fakeSource{})
	if err != nil {
		t.Fatalf("NewLayerSet() failed: %v", err)
	}
	ls.Layer(1).Set(1, 1, true)

	expected := "   |   \n   | # \n   |   \n"
	if got := ls.Render('|'); got != expected {
		t.Errorf("Render() = %q, want %q", got, expected)
	}
	if got := ls.Render('|'); got != expected {
		t.Errorf("second Render() = %q, rendering must not change state", got)
	}
}

func TestRenderEdgeLengths(t *testing.T) {
	empty, err := NewLayerSet(4, nil, &fakeSource{})
	if err != nil {
		t.Fatalf("NewLayerSet() failed: %v", err)
	}
	if got := empty.Render('|'); got != "\n\n\n\n" {
		t.Errorf("Render() of no layers = %q, expected four empty lines", got)
	}

	single, err := NewLayerSet(2, []LayerSpec{{Rule: RuleStatic, Glyph: '@', Seeding: Seeding{Probability: 1}}}, &fakeSource{})
	if err != nil {
		t.Fatalf("NewLayerSet() failed: %v", err)
	}
	single.Reset()
	got := single.Render('|')
	if strings.ContainsRune(got, '|') {
		t.Errorf("Render() of one layer contains a delimiter: %q", got)
	}
	if got != "@@\n@@\n" {
		t.Errorf("Render() = %q, want %q", got, "@@\n@@\n")
	}
}

func TestClassicTable(t *testing.T) {
	specs := Classic(DefaultDimension)
	if len(specs) != 7 {
		t.Fatalf("Classic() has %d layers, expected 7", len(specs))
	}

	seen := make(map[RuleKind]bool)
	for _, s := range specs {
		seen[s.Rule] = true
	}
	for _, r := range Rules() {
		if !seen[r] {
			t.Errorf("Classic() has no %v layer", r)
		}
	}
}
