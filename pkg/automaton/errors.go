package automaton

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("automaton: invalid configuration")

// ConfigurationError reports a rejected construction or seeding parameter.
type ConfigurationError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("automaton: %s=%v %s", e.Param, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func configError(param string, value any, reason string) error {
	return &ConfigurationError{Param: param, Value: value, Reason: reason}
}
