// Package smooth applies isotropic 2-D Gaussian smoothing to grids.
//
// The filter is separable: each row and then each column is convolved
// with the same normalized 1-D Gaussian kernel. Kernel extent follows
// the scipy.ndimage convention of radius = int(truncate*sigma + 0.5)
// with truncate defaulting to 4, and the default boundary rule is the
// half-sample symmetric reflection scipy calls "reflect"
// (d c b a | a b c d | d c b a), so results match what
// scipy.ndimage.gaussian_filter produces for the same input.
//
// Short kernels are convolved directly; long kernels go through a
// frequency-domain path with a reused FFT plan per line length. Both
// paths produce the same output to within floating-point tolerance.
package smooth
