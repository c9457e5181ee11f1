package grid

import (
	"github.com/cwbudde/algo-vecmath"
)

// Rescale linearly remaps the grid's value range [min, max] onto
// [lo, hi] in place:
//
//	x' = (x - min) / (max - min) * (hi - lo) + lo
//
// Every sample is transformed with the same slope and intercept, so
// after a successful call the grid's minimum is lo and its maximum is
// hi. A constant grid has no range to remap and yields ErrFlatGrid;
// the grid is left unmodified in that case.
func (g *Grid) Rescale(lo, hi float64) error {
	minv, maxv := g.MinMax()
	if maxv == minv {
		return ErrFlatGrid
	}

	scale := (hi - lo) / (maxv - minv)
	offset := lo - minv*scale

	vecmath.ScaleBlockInPlace(g.data, scale)
	for i := range g.data {
		g.data[i] += offset
	}
	return nil
}
