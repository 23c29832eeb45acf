package life

import (
	"github.com/gamecubate/cellular-landscaper/pkg/automaton"
	"github.com/gamecubate/cellular-landscaper/pkg/core"
)

// Life runs a bounded life-like automaton, Conway's Game of Life by default.
type Life struct {
	cfg  Config
	rule automaton.LifeLike
	rng  *core.RNG
	ca   *automaton.Automaton
	buf  []uint8
}

// New returns a Life simulation for cfg. The grid starts empty until Reset.
func New(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rule, err := automaton.ParseLifeLike(cfg.Rule)
	if err != nil {
		return nil, err
	}
	rng := core.NewRNG(0)
	ca, err := automaton.New(cfg.Width, cfg.Height, rule.Rule(), rng.Source())
	if err != nil {
		return nil, err
	}
	l := &Life{cfg: cfg, rule: rule, rng: rng, ca: ca, buf: make([]uint8, cfg.Width*cfg.Height)}
	l.sync()
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Cells exposes the current grid as row-major 0/1 values.
func (l *Life) Cells() []uint8 { return l.buf }

// Automaton exposes the underlying automaton.
func (l *Life) Automaton() *automaton.Automaton { return l.ca }

// Config returns the configuration the sim was built with.
func (l *Life) Config() Config { return l.cfg }

// Generation returns the number of steps since the last Reset.
func (l *Life) Generation() int { return l.ca.Generation() }

// Population counts the live cells.
func (l *Life) Population() int { return l.ca.Grid().Population() }

// Reset clears the board and seeds it deterministically from seed.
func (l *Life) Reset(seed int64) {
	l.rng.Reseed(seed)
	l.ca.Reset()
	// Coverage and padding were checked by Validate in New.
	_ = l.ca.Seed(l.cfg.Coverage, l.cfg.Padding)
	l.sync()
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.ca.Advance()
	l.sync()
}

func (l *Life) sync() {
	w := l.cfg.Width
	for row, line := range l.ca.Cells() {
		for col, state := range line {
			l.buf[row*w+col] = uint8(state)
		}
	}
}

// Parameters reports the values shown on the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.cfg.Width),
				core.IntParam("h", "Height", l.cfg.Height),
				core.StringParam("rule", "Rule", l.rule.String()),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.FloatParam("coverage", "Coverage", l.cfg.Coverage),
				core.IntParam("padding", "Padding", l.cfg.Padding),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.Generation()),
				core.IntParam("population", "Population", l.Population()),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
