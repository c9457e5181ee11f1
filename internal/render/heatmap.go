// Package render draws grids as heatmap images for quick visual
// inspection of conductivity sections.
package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rhyshawkins/aemgrid/grid"
)

// gridXYZ adapts a Grid to plotter.GridXYZ. Row 0 is the surface of
// the section, so it is drawn at the top of the plot.
type gridXYZ struct {
	g *grid.Grid
}

func (d gridXYZ) Dims() (c, r int)   { return d.g.Cols(), d.g.Rows() }
func (d gridXYZ) X(c int) float64    { return float64(c) }
func (d gridXYZ) Y(r int) float64    { return float64(r) }
func (d gridXYZ) Z(c, r int) float64 { return d.g.At(d.g.Rows()-1-r, c) }

// Heatmap renders g to path as a heatmap. The output format follows
// the file extension (.png, .pdf, .svg, ...).
func Heatmap(g *grid.Grid, title, path string) error {
	pal := moreland.SmoothBlueRed().Palette(255)
	h := plotter.NewHeatMap(gridXYZ{g}, pal)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "horizontal sample"
	p.Y.Label.Text = "depth sample"
	p.Add(h)

	width := 10 * vg.Inch
	height := width * vg.Length(g.Rows()) / vg.Length(g.Cols())
	if height < 2*vg.Inch {
		height = 2 * vg.Inch
	}
	if height > 10*vg.Inch {
		height = 10 * vg.Inch
	}

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
