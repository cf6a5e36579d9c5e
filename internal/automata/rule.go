// Package automata implements the layered cellular-automaton engine: fixed-size
// boolean grids, the per-rule transition function, and the collective
// tick/reset/render operations over an ordered set of layers.
// It has no I/O and no dependencies outside the standard library so the
// front ends (stream, tui) can share it unchanged.
package automata

import (
	"fmt"
	"strings"
)

// RuleKind selects the transition function of a Grid.
// It is fixed for the lifetime of a Grid.
type RuleKind int

const (
	RuleStatic RuleKind = iota
	RuleShiftLeft
	RuleShiftRight
	RuleLife
	RuleSierpinski
	RuleRandom
	RuleFlood

	ruleCount // always last
)

// String returns the lowercase rule name used by the CLI and config files.
func (r RuleKind) String() string {
	switch r {
	case RuleStatic:
		return "static"
	case RuleShiftLeft:
		return "shift-left"
	case RuleShiftRight:
		return "shift-right"
	case RuleLife:
		return "life"
	case RuleSierpinski:
		return "sierpinski"
	case RuleRandom:
		return "random"
	case RuleFlood:
		return "flood"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// Description returns a one-line summary of what the rule does per tick.
func (r RuleKind) Description() string {
	switch r {
	case RuleStatic:
		return "Cells never change"
	case RuleShiftLeft:
		return "Every row scrolls one column left, wrapping around"
	case RuleShiftRight:
		return "Every row scrolls one column right, wrapping around"
	case RuleLife:
		return "Conway's Game of Life, edges are not wrapped"
	case RuleSierpinski:
		return "Each row is the XOR of the row above, growing a triangle"
	case RuleRandom:
		return "Every cell is re-rolled with a 1/32 chance of being active"
	case RuleFlood:
		return "Active cells spread to their four neighbours"
	default:
		return "Unknown rule"
	}
}

// Valid reports whether r is one of the declared rules.
func (r RuleKind) Valid() bool {
	return r >= RuleStatic && r < ruleCount
}

// Rules returns every rule in declaration order.
func Rules() []RuleKind {
	rules := make([]RuleKind, 0, int(ruleCount))
	for r := RuleStatic; r < ruleCount; r++ {
		rules = append(rules, r)
	}
	return rules
}

// ParseRule converts a rule name (case-insensitive) back to its RuleKind.
func ParseRule(name string) (RuleKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, r := range Rules() {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("automata: unknown rule %q", name)
}
