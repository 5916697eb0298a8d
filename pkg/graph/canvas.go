package graph

// Cell is one character of the canvas: a glyph plus an optional ANSI
// color tag. An empty tag renders plain.
type Cell struct {
	Glyph rune
	Color string
}

// Canvas is a row-major grid of cells. It is created fresh per render,
// written by one drawing algorithm and consumed once by the composer.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// NewCanvas allocates a blank canvas filled with spaces.
func NewCanvas(width, height int) *Canvas {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Glyph: ' '}
	}
	return &Canvas{width: width, height: height, cells: cells}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Set writes a cell, silently dropping out-of-range coordinates. Later
// writes to the same cell win.
func (c *Canvas) Set(row, col int, cell Cell) {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return
	}
	c.cells[row*c.width+col] = cell
}

// At returns the cell at the given coordinates, or a blank cell when
// out of range.
func (c *Canvas) At(row, col int) Cell {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return Cell{Glyph: ' '}
	}
	return c.cells[row*c.width+col]
}

// Row returns one canvas row as a shared slice; callers must not
// mutate it.
func (c *Canvas) Row(row int) []Cell {
	return c.cells[row*c.width : (row+1)*c.width]
}
