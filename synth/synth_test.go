package synth

import (
	"errors"
	"reflect"
	"testing"
)

func TestNames(t *testing.T) {
	want := []string{"constant", "dettmer", "dettmerpattern"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestGenerateUnknownModel(t *testing.T) {
	_, err := Generate("nope", 32, 1024, 0.05, 0.20)
	if !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
}

func TestConstant(t *testing.T) {
	g, err := Generate("constant", 32, 1024, 0.05, 0.20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows() != 32 || g.Cols() != 1024 {
		t.Fatalf("dims = %dx%d, want 32x1024", g.Rows(), g.Cols())
	}
	for _, v := range g.Data() {
		if v != 0.05 {
			t.Fatalf("got %v, want 0.05", v)
		}
	}
}

func TestDettmer(t *testing.T) {
	// 32x64 grid on an 8x8 partition: cell size 4x8, anomaly in
	// coarse cells 4..6 of each axis.
	g, err := Generate("dettmer", 32, 64, 0.05, 0.20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		j, i int
		want float64
	}{
		{name: "top-left corner", j: 0, i: 0, want: 0.05},
		{name: "block start", j: 16, i: 32, want: 0.20},
		{name: "block interior", j: 20, i: 40, want: 0.20},
		{name: "block end", j: 27, i: 55, want: 0.20},
		{name: "past block vertically", j: 28, i: 40, want: 0.05},
		{name: "past block horizontally", j: 20, i: 56, want: 0.05},
		{name: "before block", j: 15, i: 31, want: 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.At(tt.j, tt.i); got != tt.want {
				t.Errorf("At(%d, %d) = %v, want %v", tt.j, tt.i, got, tt.want)
			}
		})
	}
}

func TestDettmerPattern(t *testing.T) {
	// 64x64 grid on a 16x16 partition: cell size 4x4. The frame
	// spans coarse cells 8..13; its border and the diagonal strokes
	// take the anomaly value, the rest of the interior stays at
	// background.
	g, err := Generate("dettmerpattern", 64, 64, 0.05, 0.20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	at := func(jj, ii int) float64 {
		return g.At(jj*4, ii*4)
	}

	tests := []struct {
		name   string
		jj, ii int
		want   float64
	}{
		{name: "outside frame", jj: 0, ii: 0, want: 0.05},
		{name: "frame top edge", jj: 8, ii: 10, want: 0.20},
		{name: "frame bottom edge", jj: 13, ii: 10, want: 0.20},
		{name: "frame left edge", jj: 10, ii: 8, want: 0.20},
		{name: "frame right edge", jj: 10, ii: 13, want: 0.20},
		{name: "diagonal", jj: 10, ii: 10, want: 0.20},
		{name: "diagonal pair a", jj: 11, ii: 12, want: 0.20},
		{name: "diagonal pair b", jj: 12, ii: 11, want: 0.20},
		{name: "interior background", jj: 9, ii: 12, want: 0.05},
		{name: "interior background 2", jj: 12, ii: 9, want: 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := at(tt.jj, tt.ii); got != tt.want {
				t.Errorf("coarse cell (%d, %d) = %v, want %v", tt.jj, tt.ii, got, tt.want)
			}
		})
	}
}

func TestSmallGridCollapses(t *testing.T) {
	// Grids smaller than the partition fall back to one sample per
	// coarse cell.
	g, err := Generate("dettmer", 8, 8, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.At(5, 5) != 1 {
		t.Errorf("At(5, 5) = %v, want 1", g.At(5, 5))
	}
	if g.At(3, 3) != 0 {
		t.Errorf("At(3, 3) = %v, want 0", g.At(3, 3))
	}
}
