package landscape

import (
	"slices"
	"testing"

	"github.com/gamecubate/cellular-landscaper/pkg/automaton"
	"github.com/gamecubate/cellular-landscaper/pkg/core"
)

func smallConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.Life.Width = w
	cfg.Life.Height = h
	return cfg
}

func TestBirths(t *testing.T) {
	d, a := automaton.Dead, automaton.Alive
	prev := [][]automaton.CellState{
		{d, a, d},
		{d, d, d},
		{a, d, d},
	}
	next := [][]automaton.CellState{
		{a, a, d},
		{d, a, d},
		{d, d, a},
	}
	want := []Point{{0, 0}, {1, 1}, {2, 2}}
	if got := Births(prev, next, 0); !slices.Equal(got, want) {
		t.Fatalf("Births = %v, want %v", got, want)
	}
	if got := Births(prev, next, 1); !slices.Equal(got, []Point{{1, 1}}) {
		t.Fatalf("padded Births = %v, want [{1 1}]", got)
	}
}

func TestBlinkerRaisesLevels(t *testing.T) {
	land, err := New(smallConfig(5, 5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	grid := land.Life().Automaton().Grid()
	grid.Set(1, 2, automaton.Alive)
	grid.Set(2, 2, automaton.Alive)
	grid.Set(3, 2, automaton.Alive)

	land.Step()
	if got := land.LastBirths(); !slices.Equal(got, []Point{{2, 1}, {2, 3}}) {
		t.Fatalf("first births = %v, want [{2 1} {2 3}]", got)
	}
	// Each flip of the blinker gives birth to the two tips of the new line.
	for i := 0; i < 3; i++ {
		land.Step()
	}
	w := land.Size().W
	levels := land.Cells()
	for _, c := range [][2]int{{2, 1}, {2, 3}, {1, 2}, {3, 2}} {
		if got := levels[c[1]*w+c[0]]; got != 2 {
			t.Fatalf("level at (%d,%d) = %d, want 2", c[0], c[1], got)
		}
	}
	if got := levels[2*w+2]; got != 0 {
		t.Fatalf("blinker center never dies, level = %d, want 0", got)
	}
}

func TestLevelsCapAtMax(t *testing.T) {
	cfg := smallConfig(5, 5)
	cfg.MaxLevel = 3
	land, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	grid := land.Life().Automaton().Grid()
	grid.Set(1, 2, automaton.Alive)
	grid.Set(2, 2, automaton.Alive)
	grid.Set(3, 2, automaton.Alive)

	for i := 0; i < 20; i++ {
		land.Step()
	}
	if got := slices.Max(land.Cells()); got != 3 {
		t.Fatalf("max level = %d, want cap 3", got)
	}
	snap := land.Parameters()
	terrain := snap.Groups[len(snap.Groups)-1]
	if terrain.Params[1].Value != "40" {
		t.Fatalf("births = %s, want 40", terrain.Params[1].Value)
	}
}

func TestResetFlattensTerrain(t *testing.T) {
	cfg := smallConfig(20, 20)
	cfg.Life.Coverage = 0.4
	land, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	land.Reset(5)
	for i := 0; i < 10; i++ {
		land.Step()
	}
	if slices.Max(land.Cells()) == 0 {
		t.Fatal("expected some terrain growth after ten steps")
	}

	land.Reset(5)
	if slices.Max(land.Cells()) != 0 {
		t.Fatal("Reset should flatten every level")
	}
	if land.Life().Population() == 0 {
		t.Fatal("Reset should reseed the automaton")
	}
}

func TestNewRejectsBadMaxLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxLevel = 0
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for zero max level")
	}
}

func TestFromMapAndRegistry(t *testing.T) {
	c := FromMap(map[string]string{"w": "16", "max_level": "4"})
	if c.Life.Width != 16 || c.MaxLevel != 4 {
		t.Fatalf("unexpected config %+v", c)
	}
	sim, err := core.Build("landscape", map[string]string{"w": "16", "h": "9"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sim.Name() != "landscape" || len(sim.Cells()) != 144 {
		t.Fatalf("built %s with %d cells", sim.Name(), len(sim.Cells()))
	}
}
