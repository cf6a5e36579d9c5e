package core

import "testing"

func TestParseControl(t *testing.T) {
	tests := []struct {
		in       byte
		expected Action
	}{
		{'\n', ActionTick},
		{'r', ActionReset},
		{'R', ActionReset},
		{'q', ActionQuit},
		{'Q', ActionQuit},
		{0, ActionQuit},
		{'x', ActionNone},
		{' ', ActionNone},
		{'\r', ActionNone},
	}

	for _, tt := range tests {
		if got := ParseControl(tt.in); got != tt.expected {
			t.Errorf("ParseControl(%q) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Bright-Green")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c != ColorBrightGreen {
		t.Errorf("ParseColor = %v, expected bright-green", c)
	}

	if c, _ := ParseColor("grey"); c != ColorGray {
		t.Errorf("ParseColor(grey) = %v, expected gray", c)
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor should reject unknown names")
	}

	for col, name := range colorNames {
		if col.String() != name {
			t.Errorf("%d.String() = %q, expected %q", col, col.String(), name)
		}
	}
}

func TestRunStatsLiveCells(t *testing.T) {
	s := RunStats{Population: []int{3, 0, 7}}
	if s.LiveCells() != 10 {
		t.Errorf("LiveCells() = %d, expected 10", s.LiveCells())
	}
}
