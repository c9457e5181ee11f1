package smooth

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/rhyshawkins/aemgrid/grid"
)

func randomGrid(t *testing.T, rows, cols int, seed int64) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rng := rand.New(rand.NewSource(seed))
	data := g.Data()
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return g
}

func TestGaussianErrors(t *testing.T) {
	_, err := Gaussian(nil, 1)
	if !errors.Is(err, ErrNilGrid) {
		t.Errorf("expected ErrNilGrid, got %v", err)
	}

	g := randomGrid(t, 4, 4, 1)
	_, err = Gaussian(g, -0.5)
	if !errors.Is(err, ErrNegativeSigma) {
		t.Errorf("expected ErrNegativeSigma, got %v", err)
	}
}

func TestGaussianShapePreserved(t *testing.T) {
	tests := []struct {
		rows, cols int
		sigma      float64
	}{
		{rows: 1, cols: 1, sigma: 1},
		{rows: 1, cols: 64, sigma: 2},
		{rows: 32, cols: 1, sigma: 2},
		{rows: 7, cols: 13, sigma: 3.5},
		{rows: 32, cols: 128, sigma: 0.8},
	}

	for _, tt := range tests {
		g := randomGrid(t, tt.rows, tt.cols, 2)
		out, err := Gaussian(g, tt.sigma)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Rows() != tt.rows || out.Cols() != tt.cols {
			t.Errorf("dims = %dx%d, want %dx%d", out.Rows(), out.Cols(), tt.rows, tt.cols)
		}
	}
}

func TestGaussianZeroSigmaIdentity(t *testing.T) {
	g := randomGrid(t, 8, 12, 3)
	out, err := Gaussian(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range g.Data() {
		if out.Data()[i] != v {
			t.Fatalf("data[%d] = %v, want %v (sigma=0 must be the identity)", i, out.Data()[i], v)
		}
	}

	// The result is a copy, not an alias.
	out.Set(0, 0, 42)
	if g.At(0, 0) == 42 {
		t.Error("output aliases the input grid")
	}
}

func TestGaussianConstantInvariance(t *testing.T) {
	sigmas := []float64{0.5, 1, 2.5, 10}
	for _, sigma := range sigmas {
		g, _ := grid.NewFilled(16, 24, 0.125)
		out, err := Gaussian(g, sigma)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, v := range out.Data() {
			if math.Abs(v-0.125) > 1e-12 {
				t.Fatalf("sigma=%v: data[%d] = %v, want 0.125", sigma, i, v)
			}
		}
	}
}

func TestGaussianInputUntouched(t *testing.T) {
	g := randomGrid(t, 6, 6, 4)
	orig := append([]float64(nil), g.Data()...)

	if _, err := Gaussian(g, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range g.Data() {
		if v != orig[i] {
			t.Fatalf("input grid was modified at %d", i)
		}
	}
}

func TestGaussianMassPreservedWrap(t *testing.T) {
	// With periodic boundaries the kernel never loses mass, so the
	// grid total is conserved.
	g := randomGrid(t, 16, 16, 5)
	var before float64
	for _, v := range g.Data() {
		before += v
	}

	out, err := Gaussian(g, 1.5, WithBoundary(BoundaryWrap))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var after float64
	for _, v := range out.Data() {
		after += v
	}
	if math.Abs(before-after) > 1e-9 {
		t.Errorf("total = %v, want %v", after, before)
	}
}

func TestGaussianImpulseResponse(t *testing.T) {
	// Smoothing a centered impulse yields the outer product of the
	// 1-D kernel with itself.
	g, _ := grid.New(21, 21)
	g.Set(10, 10, 1)

	k, err := Kernel(1.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	radius := len(k) / 2

	out, err := Gaussian(g, 1.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for dj := -radius; dj <= radius; dj++ {
		for di := -radius; di <= radius; di++ {
			want := k[dj+radius] * k[di+radius]
			got := out.At(10+dj, 10+di)
			if math.Abs(got-want) > 1e-12 {
				t.Errorf("At(%d, %d) = %v, want %v", 10+dj, 10+di, got, want)
			}
		}
	}
}

func TestGaussianDirectFFTAgreement(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		sigma      float64
		boundary   Boundary
	}{
		{name: "reflect", rows: 24, cols: 40, sigma: 3, boundary: BoundaryReflect},
		{name: "nearest", rows: 24, cols: 40, sigma: 3, boundary: BoundaryNearest},
		{name: "wrap", rows: 24, cols: 40, sigma: 3, boundary: BoundaryWrap},
		{name: "large sigma", rows: 16, cols: 100, sigma: 12, boundary: BoundaryReflect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := randomGrid(t, tt.rows, tt.cols, 6)

			direct, err := Gaussian(g, tt.sigma, WithBoundary(tt.boundary), WithDirect())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			viaFFT, err := Gaussian(g, tt.sigma, WithBoundary(tt.boundary), WithFFT())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for i := range direct.Data() {
				if math.Abs(direct.Data()[i]-viaFFT.Data()[i]) > 1e-9 {
					t.Fatalf("data[%d]: direct %v vs fft %v",
						i, direct.Data()[i], viaFFT.Data()[i])
				}
			}
		})
	}
}

func TestEdgeIndex(t *testing.T) {
	tests := []struct {
		name     string
		boundary Boundary
		i        int
		n        int
		want     int
	}{
		{name: "reflect -1", boundary: BoundaryReflect, i: -1, n: 4, want: 0},
		{name: "reflect -2", boundary: BoundaryReflect, i: -2, n: 4, want: 1},
		{name: "reflect n", boundary: BoundaryReflect, i: 4, n: 4, want: 3},
		{name: "reflect n+1", boundary: BoundaryReflect, i: 5, n: 4, want: 2},
		{name: "reflect far", boundary: BoundaryReflect, i: -5, n: 4, want: 3},
		{name: "nearest low", boundary: BoundaryNearest, i: -3, n: 4, want: 0},
		{name: "nearest high", boundary: BoundaryNearest, i: 9, n: 4, want: 3},
		{name: "wrap low", boundary: BoundaryWrap, i: -1, n: 4, want: 3},
		{name: "wrap high", boundary: BoundaryWrap, i: 5, n: 4, want: 1},
		{name: "in range", boundary: BoundaryReflect, i: 2, n: 4, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := edgeIndex(tt.i, tt.n, tt.boundary); got != tt.want {
				t.Errorf("edgeIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
			}
		})
	}
}
