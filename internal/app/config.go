package app

import (
	"flag"
	"strconv"
	"time"
)

// StepIntervals maps the speed keys 1-5 to time between generations.
var StepIntervals = [...]time.Duration{
	time.Second,
	500 * time.Millisecond,
	250 * time.Millisecond,
	100 * time.Millisecond,
	50 * time.Millisecond,
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Interval time.Duration

	Width    int
	Height   int
	Coverage float64
	Padding  int
	Rule     string
	MaxLevel int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "landscape",
		Scale:    8,
		TPS:      30,
		Seed:     42,
		Interval: StepIntervals[3],
		Width:    40,
		Height:   60,
		Coverage: 0.15,
		Padding:  0,
		Rule:     "B3/S23",
		MaxLevel: 7,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.IntVar(&c.Width, "w", c.Width, "grid columns")
	fs.IntVar(&c.Height, "h", c.Height, "grid rows")
	fs.Float64Var(&c.Coverage, "coverage", c.Coverage, "probability a seeded cell starts alive")
	fs.IntVar(&c.Padding, "padding", c.Padding, "border width left unseeded")
	fs.StringVar(&c.Rule, "rule", c.Rule, "life-like rule in B/S notation")
	fs.IntVar(&c.MaxLevel, "max-level", c.MaxLevel, "terrain level cap for the landscape sim")
}

// SimConfig converts the flags into the string map sim factories consume.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":         strconv.Itoa(c.Width),
		"h":         strconv.Itoa(c.Height),
		"coverage":  strconv.FormatFloat(c.Coverage, 'f', -1, 64),
		"padding":   strconv.Itoa(c.Padding),
		"rule":      c.Rule,
		"max_level": strconv.Itoa(c.MaxLevel),
	}
}
