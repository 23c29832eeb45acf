package automaton

import (
	"fmt"
	"strings"
)

// Conway is the Game of Life transition: a live cell survives with two or
// three live neighbors, a dead cell is born with exactly three.
func Conway(state CellState, liveNeighbors int) CellState {
	switch {
	case state == Alive && liveNeighbors < 2:
		return Dead
	case state == Alive && liveNeighbors <= 3:
		return Alive
	case state == Alive:
		return Dead
	case liveNeighbors == 3:
		return Alive
	default:
		return Dead
	}
}

// LifeLike is an outer-totalistic rule over the Moore neighborhood, written in
// B/S notation such as "B3/S23".
type LifeLike struct {
	Born    [9]bool
	Survive [9]bool
}

// Rule returns the transition function for l.
func (l LifeLike) Rule() Rule {
	return func(state CellState, liveNeighbors int) CellState {
		if liveNeighbors < 0 || liveNeighbors > 8 {
			return Dead
		}
		if state == Alive {
			if l.Survive[liveNeighbors] {
				return Alive
			}
			return Dead
		}
		if l.Born[liveNeighbors] {
			return Alive
		}
		return Dead
	}
}

// String formats l in B/S notation.
func (l LifeLike) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, on := range l.Born {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, on := range l.Survive {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// ParseLifeLike parses B/S notation. Both "B3/S23" and "b3/s23" are accepted,
// and the two halves may appear in either order.
func ParseLifeLike(s string) (LifeLike, error) {
	var l LifeLike
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return l, fmt.Errorf("%w: rule %q is not in B/S notation", ErrConfiguration, s)
	}
	var sawBorn, sawSurvive bool
	for _, part := range parts {
		if part == "" {
			return l, fmt.Errorf("%w: rule %q has an empty half", ErrConfiguration, s)
		}
		var target *[9]bool
		switch part[0] {
		case 'B', 'b':
			target, sawBorn = &l.Born, true
		case 'S', 's':
			target, sawSurvive = &l.Survive, true
		default:
			return l, fmt.Errorf("%w: rule %q: unexpected prefix %q", ErrConfiguration, s, part[0])
		}
		for _, r := range part[1:] {
			if r < '0' || r > '8' {
				return l, fmt.Errorf("%w: rule %q: neighbor count %q out of range", ErrConfiguration, s, r)
			}
			target[r-'0'] = true
		}
	}
	if !sawBorn || !sawSurvive {
		return l, fmt.Errorf("%w: rule %q needs both B and S halves", ErrConfiguration, s)
	}
	return l, nil
}

// ConwayRule is Conway's Game of Life in B/S form.
var ConwayRule = LifeLike{
	Born:    [9]bool{3: true},
	Survive: [9]bool{2: true, 3: true},
}
