package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rhyshawkins/aemgrid/grid"
)

func TestHeatmap(t *testing.T) {
	g, err := grid.New(8, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for j := 0; j < g.Rows(); j++ {
		for i := 0; i < g.Cols(); i++ {
			g.Set(j, i, float64(j*i))
		}
	}

	path := filepath.Join(t.TempDir(), "section.png")
	if err := Heatmap(g, "test section", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestGridXYZFlipsRows(t *testing.T) {
	g, _ := grid.New(3, 2)
	g.Set(0, 1, 7) // surface row

	d := gridXYZ{g}
	c, r := d.Dims()
	if c != 2 || r != 3 {
		t.Fatalf("Dims = (%d, %d), want (2, 3)", c, r)
	}
	// Row 0 of the grid is drawn at the top, i.e. the highest r index.
	if d.Z(1, 2) != 7 {
		t.Errorf("Z(1, 2) = %v, want 7", d.Z(1, 2))
	}
	if d.Z(1, 0) != 0 {
		t.Errorf("Z(1, 0) = %v, want 0", d.Z(1, 0))
	}
}
