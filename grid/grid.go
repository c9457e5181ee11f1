package grid

import (
	"gonum.org/v1/gonum/floats"
)

// Grid is a dense rectangular array of float64 samples stored in
// row-major order: the sample at row j, column i lives at data[j*cols+i].
type Grid struct {
	rows int
	cols int
	data []float64
}

// New creates a zero-filled rows x cols grid.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Grid{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// NewFilled creates a rows x cols grid with every sample set to v.
func NewFilled(rows, cols int, v float64) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = v
	}
	return g, nil
}

// FromRows creates a grid from a slice of equal-length rows.
// The values are copied.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	g, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for j, row := range rows {
		if len(row) != cols {
			return nil, ErrRaggedRows
		}
		copy(g.data[j*cols:], row)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the sample at row j, column i.
func (g *Grid) At(j, i int) float64 {
	return g.data[j*g.cols+i]
}

// Set stores v at row j, column i.
func (g *Grid) Set(j, i int, v float64) {
	g.data[j*g.cols+i] = v
}

// Row returns row j as a subslice of the backing data.
// Mutating the returned slice mutates the grid.
func (g *Grid) Row(j int) []float64 {
	return g.data[j*g.cols : (j+1)*g.cols]
}

// Data returns the row-major backing slice.
func (g *Grid) Data() []float64 { return g.data }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)
	return &Grid{rows: g.rows, cols: g.cols, data: data}
}

// MinMax returns the smallest and largest sample values.
func (g *Grid) MinMax() (min, max float64) {
	return floats.Min(g.data), floats.Max(g.data)
}
