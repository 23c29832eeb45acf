package life

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gamecubate/cellular-landscaper/pkg/automaton"
)

// Config holds parameters for the Life simulation.
type Config struct {
	Width    int
	Height   int
	Coverage float64
	Padding  int
	Rule     string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 40, Height: 60, Coverage: 0.15, Padding: 0, Rule: "B3/S23"}
}

// FromMap populates a Config from a string map. Unparseable or out-of-range
// entries keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["coverage"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Coverage = parsed
		}
	}
	if v, ok := cfg["padding"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Padding = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := automaton.ParseLifeLike(v); err == nil {
			c.Rule = v
		}
	}
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", automaton.ErrConfiguration, c.Width, c.Height)
	}
	if math.IsNaN(c.Coverage) || c.Coverage < 0 || c.Coverage > 1 {
		return fmt.Errorf("%w: coverage %v outside [0,1]", automaton.ErrConfiguration, c.Coverage)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: padding %d is negative", automaton.ErrConfiguration, c.Padding)
	}
	if _, err := automaton.ParseLifeLike(c.Rule); err != nil {
		return err
	}
	return nil
}
