// Package automaton implements a bounded two-state cellular automaton over the
// Moore neighborhood. Cells beyond the border are absent rather than wrapped, so
// edge cells simply see fewer neighbors.
package automaton

import (
	"math"
	"math/rand/v2"
	"time"
)

// Rule maps a cell's current state and live-neighbor count to its next state.
type Rule func(state CellState, liveNeighbors int) CellState

// mooreOffsets lists neighbor offsets as (dCol, dRow), top row first.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Automaton advances a Grid under a Rule.
//
// An Automaton is not safe for concurrent use; one driver owns it and calls
// Seed, Advance and Reset serially.
type Automaton struct {
	cols, rows int
	grid       *Grid
	rule       Rule
	rng        *rand.Rand

	// input is the caller's data in shared mode and nil in owned mode.
	input      [][]CellState
	generation int
}

// New returns an automaton that owns a freshly allocated all-Dead grid.
// A nil rng makes the automaton own a time-seeded generator.
func New(cols, rows int, rule Rule, rng *rand.Rand) (*Automaton, error) {
	if err := checkDims(cols, rows); err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, configError("rule", nil, "must not be nil")
	}
	a := &Automaton{cols: cols, rows: rows, rule: rule, rng: ensureRand(rng)}
	a.Reset()
	return a, nil
}

// NewShared returns an automaton that adopts data by reference. Seed writes
// into data in place and Reset re-adopts data itself, including any changes the
// caller made to it after construction.
func NewShared(data [][]CellState, rule Rule, rng *rand.Rand) (*Automaton, error) {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	if err := checkDims(cols, rows); err != nil {
		return nil, err
	}
	for row, line := range data {
		if len(line) != cols {
			return nil, configError("data", row, "row length differs from first row")
		}
	}
	if rule == nil {
		return nil, configError("rule", nil, "must not be nil")
	}
	a := &Automaton{cols: cols, rows: rows, rule: rule, rng: ensureRand(rng), input: data}
	a.Reset()
	return a, nil
}

// NewConway returns an owned automaton running Conway's Game of Life.
func NewConway(cols, rows int, rng *rand.Rand) (*Automaton, error) {
	return New(cols, rows, Conway, rng)
}

func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1))
}

// Cols returns the grid width.
func (a *Automaton) Cols() int { return a.cols }

// Rows returns the grid height.
func (a *Automaton) Rows() int { return a.rows }

// Shared reports whether the automaton was built over caller-supplied data.
func (a *Automaton) Shared() bool { return a.input != nil }

// Grid exposes the current population.
func (a *Automaton) Grid() *Grid { return a.grid }

// Cells returns the current generation. The slice stays valid and unchanged
// after a later Advance, which installs a new array instead of writing in place.
func (a *Automaton) Cells() [][]CellState { return a.grid.cells }

// Generation returns the number of Advance calls since the last Reset.
func (a *Automaton) Generation() int { return a.generation }

// Reset restores the initial population: the caller's data in shared mode, a
// fresh all-Dead grid otherwise.
func (a *Automaton) Reset() {
	a.generation = 0
	if a.input != nil {
		a.grid = &Grid{cols: a.cols, rows: a.rows, cells: a.input}
		return
	}
	a.grid = &Grid{cols: a.cols, rows: a.rows, cells: blankCells(a.cols, a.rows)}
}

// Seed sets each cell inside the padding margin Alive with probability
// coverage. Other cells keep their state, so repeated calls only add life.
func (a *Automaton) Seed(coverage float64, padding int) error {
	if math.IsNaN(coverage) || coverage < 0 || coverage > 1 {
		return configError("coverage", coverage, "must be within [0,1]")
	}
	if padding < 0 {
		return configError("padding", padding, "must not be negative")
	}
	cells := a.grid.cells
	for row := padding; row < a.rows-padding; row++ {
		for col := padding; col < a.cols-padding; col++ {
			if a.rng.Float64() < coverage {
				cells[row][col] = Alive
			}
		}
	}
	return nil
}

// StateAt returns the state at (col, row), or false when off the grid.
func (a *Automaton) StateAt(col, row int) (CellState, bool) {
	return a.grid.StateAt(col, row)
}

// NeighborsOf returns the on-grid Moore neighbors of (col, row) in a fixed
// order: the row above left to right, then left and right, then the row below.
func (a *Automaton) NeighborsOf(col, row int) []CellState {
	neighbors := make([]CellState, 0, len(mooreOffsets))
	for _, off := range mooreOffsets {
		if state, ok := a.grid.StateAt(col+off[0], row+off[1]); ok {
			neighbors = append(neighbors, state)
		}
	}
	return neighbors
}

// CountWithState returns how many entries of states equal target.
func CountWithState(target CellState, states []CellState) int {
	found := 0
	for _, s := range states {
		if s == target {
			found++
		}
	}
	return found
}

// Advance computes the next generation from a snapshot of the current one,
// installs it and returns it.
func (a *Automaton) Advance() [][]CellState {
	next := a.grid.Clone()
	for row := 0; row < a.rows; row++ {
		for col := 0; col < a.cols; col++ {
			state, _ := a.grid.StateAt(col, row)
			live := CountWithState(Alive, a.NeighborsOf(col, row))
			next[row][col] = a.rule(state, live)
		}
	}
	a.grid = &Grid{cols: a.cols, rows: a.rows, cells: next}
	a.generation++
	return next
}
