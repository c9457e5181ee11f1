package synth

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rhyshawkins/aemgrid/grid"
)

// ErrUnknownModel is returned by Generate for unregistered model names.
var ErrUnknownModel = errors.New("synth: unknown model")

// Model builds a rows x cols conductivity image from a background
// value and an anomaly value.
type Model func(rows, cols int, background, anomaly float64) (*grid.Grid, error)

var models = map[string]Model{
	"constant":       Constant,
	"dettmer":        Dettmer,
	"dettmerpattern": DettmerPattern,
}

// Names returns the registered model names in sorted order.
func Names() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate builds the named model.
func Generate(name string, rows, cols int, background, anomaly float64) (*grid.Grid, error) {
	model, ok := models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return model(rows, cols, background, anomaly)
}

// Constant builds a homogeneous halfspace at the background
// conductivity. The anomaly value is unused.
func Constant(rows, cols int, background, _ float64) (*grid.Grid, error) {
	return grid.NewFilled(rows, cols, background)
}

// Dettmer builds a single conductive block: on an 8x8 coarse
// partition of the image, cells 4..6 in both directions take the
// anomaly conductivity.
func Dettmer(rows, cols int, background, anomaly float64) (*grid.Grid, error) {
	return partitioned(rows, cols, 8, func(jj, ii int) float64 {
		if ii >= 4 && ii <= 6 && jj >= 4 && jj <= 6 {
			return anomaly
		}
		return background
	})
}

// DettmerPattern builds a hollow frame with a diagonal stroke: on a
// 16x16 coarse partition, the border of cells 8..13 and the cells on
// the ii == jj diagonal (plus its 11/12 off-diagonal pair) take the
// anomaly conductivity.
func DettmerPattern(rows, cols int, background, anomaly float64) (*grid.Grid, error) {
	return partitioned(rows, cols, 16, func(jj, ii int) float64 {
		if ii < 8 || ii > 13 || jj < 8 || jj > 13 {
			return background
		}
		if ii == 8 || ii == 13 || jj == 8 || jj == 13 {
			return anomaly
		}
		if ii == jj || (ii == 12 && jj == 11) || (ii == 11 && jj == 12) {
			return anomaly
		}
		return background
	})
}

// partitioned fills a grid by mapping each sample to its cell on an
// n x n coarse partition and asking value for that cell's
// conductivity. Grids smaller than the partition collapse to one
// sample per cell.
func partitioned(rows, cols, n int, value func(jj, ii int) float64) (*grid.Grid, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}

	vscale := rows / n
	if vscale < 1 {
		vscale = 1
	}
	hscale := cols / n
	if hscale < 1 {
		hscale = 1
	}

	for j := 0; j < rows; j++ {
		jj := j / vscale
		for i := 0; i < cols; i++ {
			g.Set(j, i, value(jj, i/hscale))
		}
	}
	return g, nil
}
