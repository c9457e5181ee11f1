package smooth

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// fftLine convolves padded lines with a fixed kernel in the frequency
// domain. One instance serves both the row and the column passes: the
// plan is sized for the longer of the two padded line lengths and
// shorter lines are zero-extended, which leaves their linear
// convolution untouched.
type fftLine struct {
	kernelFFT []complex128
	kernelLen int
	fftSize   int

	plan *algofft.Plan[complex128]

	inputPadded  []complex128
	outputPadded []complex128
}

// newFFTLine builds a frequency-domain convolver for kernel k applied
// to lines of length cols (row pass) and rows (column pass).
func newFFTLine(k []float64, cols, rows int) (lineConvolver, error) {
	radius := len(k) / 2
	maxLine := cols
	if rows > maxLine {
		maxLine = rows
	}

	// Full linear convolution of the longest padded line.
	fftSize := nextPowerOf2(maxLine + 2*radius + len(k) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("smooth: failed to create FFT plan: %w", err)
	}

	fl := &fftLine{
		kernelFFT:    make([]complex128, fftSize),
		kernelLen:    len(k),
		fftSize:      fftSize,
		plan:         plan,
		inputPadded:  make([]complex128, fftSize),
		outputPadded: make([]complex128, fftSize),
	}

	kernelPadded := make([]complex128, fftSize)
	for i, v := range k {
		kernelPadded[i] = complex(v, 0)
	}
	if err := plan.Forward(fl.kernelFFT, kernelPadded); err != nil {
		return nil, fmt.Errorf("smooth: failed to compute kernel FFT: %w", err)
	}

	return fl.convolve, nil
}

// convolve computes the boundary-padded convolution of one line. The
// smoothed value of sample i sits at full-convolution index
// i + 2*radius, since padded carries radius extra samples on each
// side and the kernel is centered.
func (fl *fftLine) convolve(dst, padded []float64) error {
	for i := range fl.inputPadded {
		fl.inputPadded[i] = 0
	}
	for i, v := range padded {
		fl.inputPadded[i] = complex(v, 0)
	}

	if err := fl.plan.Forward(fl.inputPadded, fl.inputPadded); err != nil {
		return fmt.Errorf("smooth: forward FFT failed: %w", err)
	}
	for i := range fl.outputPadded {
		fl.outputPadded[i] = fl.inputPadded[i] * fl.kernelFFT[i]
	}
	if err := fl.plan.Inverse(fl.outputPadded, fl.outputPadded); err != nil {
		return fmt.Errorf("smooth: inverse FFT failed: %w", err)
	}

	offset := fl.kernelLen - 1
	for i := range dst {
		dst[i] = real(fl.outputPadded[i+offset])
	}
	return nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
