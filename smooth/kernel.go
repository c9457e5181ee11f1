package smooth

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by smoothing functions.
var (
	ErrNegativeSigma = errors.New("smooth: sigma must be >= 0")
	ErrNilGrid       = errors.New("smooth: nil grid")
)

// Kernel returns the normalized symmetric 1-D Gaussian taps for the
// given standard deviation. The kernel has 2*radius+1 taps with
// radius = int(truncate*sigma + 0.5); sigma values small enough to
// give a zero radius (including sigma == 0) yield the single-tap
// identity kernel.
func Kernel(sigma float64, opts ...Option) ([]float64, error) {
	if sigma < 0 || math.IsNaN(sigma) {
		return nil, ErrNegativeSigma
	}

	cfg := applyOptions(opts)
	radius := int(cfg.truncate*sigma + 0.5)
	if radius < 1 {
		return []float64{1}, nil
	}

	k := make([]float64, 2*radius+1)
	inv2s2 := 1 / (2 * sigma * sigma)
	for i := -radius; i <= radius; i++ {
		k[i+radius] = math.Exp(-float64(i*i) * inv2s2)
	}

	vecmath.ScaleBlockInPlace(k, 1/vecmath.Sum(k))
	return k, nil
}
