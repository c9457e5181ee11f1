package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line. Wide grids easily exceed
// bufio.Scanner's 64 KiB default (4096 columns of %15.9f is ~69 KiB).
const maxLineBytes = 16 * 1024 * 1024

// Read parses a grid in the raw whitespace-delimited format: one row
// per line, values separated by spaces or tabs. Blank lines and lines
// starting with '#' are skipped. Dimensions are inferred; every row
// must have the same number of values.
func Read(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var (
		data []float64
		rows int
		cols int
		line int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("%w: line %d has %d values, want %d", ErrRaggedRows, line, len(fields), cols)
		}

		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("grid: line %d: %w", line, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	if rows == 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{rows: rows, cols: cols, data: data}, nil
}

// ReadFile reads a raw-format grid from path.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Write serializes the grid in the raw whitespace-delimited format.
// Values are written as %.18e so that a write/read round trip
// reproduces the original float64 values exactly.
func (g *Grid) Write(w io.Writer) error {
	for j := 0; j < g.rows; j++ {
		row := g.Row(j)
		for i, v := range row {
			sep := " "
			if i == len(row)-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%.18e%s", v, sep); err != nil {
				return fmt.Errorf("grid: write: %w", err)
			}
		}
	}
	return nil
}

// WriteFile writes the grid to path in the raw format, replacing any
// existing file.
func (g *Grid) WriteFile(path string) error {
	return writeFile(path, g.Write)
}

// Image couples a grid with the depth-to-halfspace value carried in
// the AEM image header. The depth is metadata only; no grid operation
// uses it.
type Image struct {
	Depth float64
	*Grid
}

// WriteImage serializes the image in the AEM format: a header line
// "<rows> <cols> <depth>" followed by the cell values, each formatted
// as "%15.9f " with one row per line.
func (img *Image) WriteImage(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d %d %f\n", img.rows, img.cols, img.Depth); err != nil {
		return fmt.Errorf("grid: write header: %w", err)
	}
	for j := 0; j < img.rows; j++ {
		for _, v := range img.Row(j) {
			if _, err := fmt.Fprintf(w, "%15.9f ", v); err != nil {
				return fmt.Errorf("grid: write: %w", err)
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("grid: write: %w", err)
		}
	}
	return nil
}

// WriteImageFile writes the image to path in the AEM format.
func (img *Image) WriteImageFile(path string) error {
	return writeFile(path, img.WriteImage)
}

// ReadImage parses a grid in the AEM image format. The header's
// declared dimensions must be positive and the body must contain
// exactly rows*cols values.
func ReadImage(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	var (
		rows, cols int
		depth      float64
	)
	if _, err := fmt.Fscan(br, &rows, &cols, &depth); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d x %d", ErrBadHeader, rows, cols)
	}

	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		if _, err := fmt.Fscan(br, &g.data[i]); err != nil {
			return nil, fmt.Errorf("grid: cell %d of %d: %w", i+1, rows*cols, err)
		}
	}

	return &Image{Depth: depth, Grid: g}, nil
}

// ReadImageFile reads an AEM-format image from path.
func ReadImageFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	defer f.Close()

	img, err := ReadImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// writeFile runs write against a buffered file at path as one scoped
// operation. If any step fails the partial file is removed so a
// failed run never leaves a half-written output behind.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("grid: %w", err)
	}

	bw := bufio.NewWriter(f)
	err = write(bw)
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("grid: close %s: %w", path, err)
	}
	return nil
}
