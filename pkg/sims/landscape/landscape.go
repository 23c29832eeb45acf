// Package landscape grows a terrain layer out of a life-like automaton: every
// birth raises the tile level of its cell until the level reaches the cap.
package landscape

import (
	"fmt"
	"strconv"

	"github.com/gamecubate/cellular-landscaper/pkg/automaton"
	"github.com/gamecubate/cellular-landscaper/pkg/core"
	"github.com/gamecubate/cellular-landscaper/pkg/sims/life"
)

// Config controls the automaton driving the landscape and the level cap.
type Config struct {
	Life     life.Config
	MaxLevel int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Life: life.DefaultConfig(), MaxLevel: 7}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Life = life.FromMap(cfg)
	if v, ok := cfg["max_level"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 255 {
			c.MaxLevel = parsed
		}
	}
	return c
}

// Point addresses a cell by column and row.
type Point struct {
	Col, Row int
}

// Births lists the cells that were Dead in prev and are Alive in next,
// skipping a border of width padding. Both generations must share a shape.
func Births(prev, next [][]automaton.CellState, padding int) []Point {
	var out []Point
	rows := min(len(prev), len(next))
	for row := padding; row < rows-padding; row++ {
		cols := min(len(prev[row]), len(next[row]))
		for col := padding; col < cols-padding; col++ {
			if prev[row][col] == automaton.Dead && next[row][col] == automaton.Alive {
				out = append(out, Point{Col: col, Row: row})
			}
		}
	}
	return out
}

// Landscape accumulates births of a life simulation into tile levels.
type Landscape struct {
	cfg    Config
	life   *life.Life
	levels []uint8
	births int
	last   []Point
}

// New returns a Landscape for cfg.
func New(cfg Config) (*Landscape, error) {
	if cfg.MaxLevel <= 0 || cfg.MaxLevel > 255 {
		return nil, fmt.Errorf("%w: max level %d outside [1,255]", automaton.ErrConfiguration, cfg.MaxLevel)
	}
	sim, err := life.New(cfg.Life)
	if err != nil {
		return nil, err
	}
	return &Landscape{cfg: cfg, life: sim, levels: make([]uint8, cfg.Life.Width*cfg.Life.Height)}, nil
}

// Name returns the simulation identifier.
func (l *Landscape) Name() string { return "landscape" }

// Size reports the grid dimensions.
func (l *Landscape) Size() core.Size { return l.life.Size() }

// Cells exposes the tile levels in row-major order.
func (l *Landscape) Cells() []uint8 { return l.levels }

// Life exposes the automaton driving the landscape.
func (l *Landscape) Life() *life.Life { return l.life }

// LastBirths lists the cells born during the most recent Step.
func (l *Landscape) LastBirths() []Point { return l.last }

// MaxLevel returns the level cap.
func (l *Landscape) MaxLevel() int { return l.cfg.MaxLevel }

// Reset flattens the terrain and reseeds the automaton.
func (l *Landscape) Reset(seed int64) {
	clear(l.levels)
	l.births = 0
	l.last = nil
	l.life.Reset(seed)
}

// Step advances the automaton and raises the level of every newborn cell.
func (l *Landscape) Step() {
	ca := l.life.Automaton()
	prev := ca.Cells()
	l.life.Step()
	w := l.cfg.Life.Width
	l.last = Births(prev, ca.Cells(), l.cfg.Life.Padding)
	for _, p := range l.last {
		l.births++
		idx := p.Row*w + p.Col
		if int(l.levels[idx]) < l.cfg.MaxLevel {
			l.levels[idx]++
		}
	}
}

// Parameters reports the automaton values plus terrain statistics.
func (l *Landscape) Parameters() core.ParameterSnapshot {
	snap := l.life.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Terrain",
		Params: []core.Parameter{
			core.IntParam("max_level", "Max level", l.cfg.MaxLevel),
			core.IntParam("births", "Births", l.births),
		},
	})
	return snap
}

func init() {
	core.Register("landscape", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
