package stream

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-layers/internal/automata"
)

// fullLayers returns a deterministic set: one 2x2 static layer that resets
// to fully active, so every frame is "##\n##\n".
func fullLayers(t *testing.T) *automata.LayerSet {
	t.Helper()
	specs := []automata.LayerSpec{
		{Rule: automata.RuleStatic, Glyph: '#', Seeding: automata.Seeding{Probability: 1}},
	}
	ls, err := automata.NewLayerSet(2, specs, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewLayerSet() failed: %v", err)
	}
	return ls
}

const frame = "##\n##\n"

func TestRunTranscript(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		frames int
		ticks  int
		resets int
	}{
		{"quit immediately", "q", 1, 0, 0},
		{"end of input", "", 1, 0, 0},
		{"nul quits", "\x00\n\n", 1, 0, 0},
		{"ticks", "\n\n\n", 4, 3, 0},
		{"reset upper and lower", "rR", 3, 0, 2},
		{"unknown bytes ignored", "abc\n xyz", 2, 1, 0},
		{"stops at quit", "\nQ\n\nr", 2, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := fullLayers(t)
			var out bytes.Buffer

			stats, err := Run(strings.NewReader(tt.input), &out, ls, Options{Delimiter: '|', Seed: 9})
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}

			expected := Banner(ls) + strings.Repeat(frame, tt.frames)
			if out.String() != expected {
				t.Errorf("output = %q, want %q", out.String(), expected)
			}
			if stats.Ticks != tt.ticks || stats.Resets != tt.resets {
				t.Errorf("stats ticks/resets = %d/%d, expected %d/%d", stats.Ticks, stats.Resets, tt.ticks, tt.resets)
			}
			if stats.Mode != "stream" || stats.Seed != 9 {
				t.Errorf("stats = %+v", stats)
			}
			if len(stats.Population) != 1 || stats.Population[0] != 4 {
				t.Errorf("Population = %v, expected [4]", stats.Population)
			}
		})
	}
}

func TestRunResetsBeforeFirstFrame(t *testing.T) {
	ls, err := automata.NewLayerSet(automata.DefaultDimension, automata.Classic(automata.DefaultDimension), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewLayerSet() failed: %v", err)
	}

	var out bytes.Buffer
	if _, err := Run(strings.NewReader("q"), &out, ls, Options{Delimiter: '|'}); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// The Sierpinski seed is the fourth layer's first column on the first row.
	frameText := strings.TrimPrefix(out.String(), Banner(ls))
	firstRow := strings.SplitN(frameText, "\n", 2)[0]
	segments := strings.Split(firstRow, "|")
	if len(segments) != 7 {
		t.Fatalf("first row has %d segments, expected 7: %q", len(segments), firstRow)
	}
	if segments[3][0] != '^' {
		t.Errorf("sierpinski segment = %q, expected it to start with '^'", segments[3])
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestRunReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run(failingReader{boom}, io.Discard, fullLayers(t), Options{Delimiter: '|'})
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, expected it to wrap %v", err, boom)
	}
}

func TestBannerListsLayers(t *testing.T) {
	ls, err := automata.NewLayerSet(15, automata.Classic(15), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewLayerSet() failed: %v", err)
	}
	banner := Banner(ls)

	if !strings.Contains(banner, "15x15") {
		t.Error("banner should mention the grid size")
	}
	for _, r := range automata.Rules() {
		if !strings.Contains(banner, r.String()) {
			t.Errorf("banner does not mention %v", r)
		}
	}
}
