package life

import (
	"errors"
	"slices"
	"testing"

	"github.com/gamecubate/cellular-landscaper/pkg/automaton"
	"github.com/gamecubate/cellular-landscaper/pkg/core"
)

func TestBlinkerOscillation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 5, 5
	life, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	grid := life.Automaton().Grid()
	grid.Set(2, 1, automaton.Alive)
	grid.Set(2, 2, automaton.Alive)
	grid.Set(2, 3, automaton.Alive)

	w := life.Size().W
	life.Step()
	cells := life.Cells()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Step()
	cells = life.Cells()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
	if life.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", life.Generation())
	}
}

func TestGliderDiesAtBorder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	life, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	grid := life.Automaton().Grid()
	for _, c := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		grid.Set(c[0], c[1], automaton.Alive)
	}

	// On a torus a glider travels forever; a bounded grid turns it into a
	// block in the corner.
	for i := 0; i < 40; i++ {
		life.Step()
	}
	if got := life.Population(); got != 4 {
		t.Fatalf("population after glider reaches corner = %d, want 4", got)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Coverage = 0.4
	cfg.Padding = 2
	life, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	life.Reset(99)
	initial := slices.Clone(life.Cells())
	life.Step()
	life.Step()

	life.Reset(99)
	if !slices.Equal(initial, life.Cells()) {
		t.Fatal("Reset with the same seed is not deterministic")
	}
	if life.Generation() != 0 {
		t.Fatalf("generation after reset = %d, want 0", life.Generation())
	}

	life.Reset(100)
	if slices.Equal(initial, life.Cells()) {
		t.Fatal("different seeds should produce different boards")
	}

	w := cfg.Width
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < w; x++ {
			inPadding := x < 2 || y < 2 || x >= w-2 || y >= cfg.Height-2
			if inPadding && life.Cells()[y*w+x] != 0 {
				t.Fatalf("padded cell (%d,%d) was seeded", x, y)
			}
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":        "12",
		"h":        "-3",
		"coverage": "0.25",
		"padding":  "1",
		"rule":     "B36/S23",
	})
	if c.Width != 12 || c.Height != 60 {
		t.Fatalf("size = %dx%d, want 12x60", c.Width, c.Height)
	}
	if c.Coverage != 0.25 || c.Padding != 1 || c.Rule != "B36/S23" {
		t.Fatalf("unexpected config %+v", c)
	}

	c = FromMap(map[string]string{"coverage": "1.5", "padding": "-1", "rule": "nonsense"})
	if c != DefaultConfig() {
		t.Fatalf("invalid entries should keep defaults, got %+v", c)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	bad := []Config{
		{Width: 0, Height: 5, Coverage: 0.1, Rule: "B3/S23"},
		{Width: 5, Height: 5, Coverage: 2, Rule: "B3/S23"},
		{Width: 5, Height: 5, Coverage: 0.1, Padding: -1, Rule: "B3/S23"},
		{Width: 5, Height: 5, Coverage: 0.1, Rule: "B3"},
	}
	for _, cfg := range bad {
		if _, err := New(cfg); !errors.Is(err, automaton.ErrConfiguration) {
			t.Fatalf("New(%+v) error = %v, want ErrConfiguration", cfg, err)
		}
	}
}

func TestRegistered(t *testing.T) {
	sim, err := core.Build("life", map[string]string{"w": "10", "h": "7"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := sim.Size(); got != (core.Size{W: 10, H: 7}) {
		t.Fatalf("size = %+v, want 10x7", got)
	}
	if len(sim.Cells()) != 70 {
		t.Fatalf("cells length = %d, want 70", len(sim.Cells()))
	}
}

func TestParameters(t *testing.T) {
	life, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	snap := life.Parameters()
	if len(snap.Groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(snap.Groups))
	}
	if got := snap.Groups[0].Params[2].Value; got != "B3/S23" {
		t.Fatalf("rule param = %q, want B3/S23", got)
	}
}
