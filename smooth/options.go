package smooth

// Boundary selects how samples beyond the grid edge are synthesized.
type Boundary int

const (
	// BoundaryReflect reflects about the edge between the outermost
	// sample and its missing neighbour: d c b a | a b c d.
	BoundaryReflect Boundary = iota

	// BoundaryNearest repeats the outermost sample: a a a a | a b c d.
	BoundaryNearest

	// BoundaryWrap treats each line as periodic: a b c d | a b c d.
	BoundaryWrap
)

type pathMode int

const (
	pathAuto pathMode = iota
	pathDirect
	pathFFT
)

type config struct {
	truncate float64
	boundary Boundary
	path     pathMode
}

func defaultConfig() config {
	return config{
		truncate: 4.0,
		boundary: BoundaryReflect,
	}
}

// Option configures smoothing.
type Option func(*config)

// WithTruncate sets the kernel extent in standard deviations.
// Values <= 0 are ignored.
func WithTruncate(t float64) Option {
	return func(c *config) {
		if t > 0 {
			c.truncate = t
		}
	}
}

// WithBoundary sets the edge handling rule.
func WithBoundary(b Boundary) Option {
	return func(c *config) {
		c.boundary = b
	}
}

// WithDirect forces time-domain convolution regardless of kernel size.
func WithDirect() Option {
	return func(c *config) {
		c.path = pathDirect
	}
}

// WithFFT forces the frequency-domain path regardless of kernel size.
func WithFFT() Option {
	return func(c *config) {
		c.path = pathFFT
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
