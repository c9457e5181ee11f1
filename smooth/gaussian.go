package smooth

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/rhyshawkins/aemgrid/grid"
)

// directKernelLimit is the tap count above which the FFT path beats
// the sliding dot product.
const directKernelLimit = 32

// Gaussian returns a smoothed copy of g. The filter is isotropic: the
// same sigma applies along rows and columns, and the output has the
// same dimensions as the input. sigma == 0 returns an unfiltered
// copy; negative sigma yields ErrNegativeSigma.
func Gaussian(g *grid.Grid, sigma float64, opts ...Option) (*grid.Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	k, err := Kernel(sigma, opts...)
	if err != nil {
		return nil, err
	}

	out := g.Clone()
	if len(k) == 1 {
		return out, nil
	}

	cfg := applyOptions(opts)
	useFFT := cfg.path == pathFFT ||
		(cfg.path == pathAuto && len(k) >= directKernelLimit)

	var convolve lineConvolver
	if useFFT {
		convolve, err = newFFTLine(k, out.Cols(), out.Rows())
		if err != nil {
			return nil, err
		}
	} else {
		convolve = directLine(k)
	}

	if err := smoothRows(out, k, cfg.boundary, convolve); err != nil {
		return nil, err
	}
	if err := smoothCols(out, k, cfg.boundary, convolve); err != nil {
		return nil, err
	}
	return out, nil
}

// lineConvolver convolves one padded line with the kernel, writing
// the "same"-sized center into dst. padded has len(dst) + 2*radius
// samples.
type lineConvolver func(dst, padded []float64) error

// directLine returns a sliding dot-product convolver for k.
func directLine(k []float64) lineConvolver {
	return func(dst, padded []float64) error {
		for i := range dst {
			dst[i] = vecmath.DotProduct(k, padded[i:i+len(k)])
		}
		return nil
	}
}

func smoothRows(g *grid.Grid, k []float64, b Boundary, convolve lineConvolver) error {
	radius := len(k) / 2
	padded := make([]float64, g.Cols()+2*radius)
	for j := 0; j < g.Rows(); j++ {
		row := g.Row(j)
		padLine(padded, row, radius, b)
		// The padded buffer is a copy, so writing back into the row
		// while scanning it is safe.
		if err := convolve(row, padded); err != nil {
			return err
		}
	}
	return nil
}

func smoothCols(g *grid.Grid, k []float64, b Boundary, convolve lineConvolver) error {
	radius := len(k) / 2
	col := make([]float64, g.Rows())
	padded := make([]float64, g.Rows()+2*radius)
	for i := 0; i < g.Cols(); i++ {
		for j := range col {
			col[j] = g.At(j, i)
		}
		padLine(padded, col, radius, b)
		if err := convolve(col, padded); err != nil {
			return err
		}
		for j, v := range col {
			g.Set(j, i, v)
		}
	}
	return nil
}

// padLine copies src into the center of dst and synthesizes radius
// samples on each side according to the boundary rule.
func padLine(dst, src []float64, radius int, b Boundary) {
	n := len(src)
	copy(dst[radius:], src)
	for i := 1; i <= radius; i++ {
		dst[radius-i] = src[edgeIndex(-i, n, b)]
		dst[radius+n-1+i] = src[edgeIndex(n-1+i, n, b)]
	}
}

// edgeIndex maps an out-of-range line index into [0, n) according to
// the boundary rule.
func edgeIndex(i, n int, b Boundary) int {
	switch b {
	case BoundaryNearest:
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	case BoundaryWrap:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	default: // BoundaryReflect
		for i < 0 || i >= n {
			if i < 0 {
				i = -i - 1
			}
			if i >= n {
				i = 2*n - 1 - i
			}
		}
		return i
	}
}
