package automaton

// CellState is the value held by a single grid cell.
type CellState uint8

const (
	// Dead marks an unpopulated cell.
	Dead CellState = iota
	// Alive marks a populated cell.
	Alive
)

// String returns a readable name for the state.
func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Grid stores a rectangular population indexed [row][col].
type Grid struct {
	cols, rows int
	cells      [][]CellState
}

// NewGrid allocates an all-Dead grid with the given dimensions.
func NewGrid(cols, rows int) (*Grid, error) {
	if err := checkDims(cols, rows); err != nil {
		return nil, err
	}
	return &Grid{cols: cols, rows: rows, cells: blankCells(cols, rows)}, nil
}

func checkDims(cols, rows int) error {
	if cols <= 0 {
		return configError("cols", cols, "must be positive")
	}
	if rows <= 0 {
		return configError("rows", rows, "must be positive")
	}
	return nil
}

func blankCells(cols, rows int) [][]CellState {
	backing := make([]CellState, cols*rows)
	cells := make([][]CellState, rows)
	for row := range cells {
		cells[row] = backing[row*cols : (row+1)*cols : (row+1)*cols]
	}
	return cells
}

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cells exposes the backing rows so callers can read or write them directly.
func (g *Grid) Cells() [][]CellState { return g.cells }

// StateAt returns the state at (col, row). The boolean is false when the
// coordinate lies off the grid or its row was never allocated.
func (g *Grid) StateAt(col, row int) (CellState, bool) {
	if row < 0 || row >= g.rows || row >= len(g.cells) {
		return Dead, false
	}
	line := g.cells[row]
	if col < 0 || col >= g.cols || col >= len(line) {
		return Dead, false
	}
	return line[col], true
}

// Set writes state at (col, row) and reports whether the coordinate was on the grid.
func (g *Grid) Set(col, row int, state CellState) bool {
	if _, ok := g.StateAt(col, row); !ok {
		return false
	}
	g.cells[row][col] = state
	return true
}

// Clone returns an independent deep copy of the cells.
func (g *Grid) Clone() [][]CellState {
	out := blankCells(g.cols, g.rows)
	for row := range out {
		copy(out[row], g.cells[row])
	}
	return out
}

// Population counts the Alive cells.
func (g *Grid) Population() int {
	total := 0
	for _, line := range g.cells {
		total += CountWithState(Alive, line)
	}
	return total
}
