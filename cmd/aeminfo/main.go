// Command aeminfo prints summary statistics for grid files and can
// render a grid as a heatmap image.
//
// Usage:
//
//	aeminfo observed.txt smoothed.txt
//	aeminfo -image image.aem
//	aeminfo -heatmap section.png observed.txt
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"

	"github.com/rhyshawkins/aemgrid/grid"
	"github.com/rhyshawkins/aemgrid/internal/render"
)

func main() {
	image := flag.Bool("image", false, "parse inputs as AEM images (with header) instead of raw grids")
	heatmap := flag.String("heatmap", "", "render the first grid to this file (.png, .pdf, .svg)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aeminfo [flags] <file ...>\n\n")
		fmt.Fprintf(os.Stderr, "Prints summary statistics for grid files.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  aeminfo observed.txt\n")
		fmt.Fprintf(os.Stderr, "  aeminfo -image image.aem\n")
		fmt.Fprintf(os.Stderr, "  aeminfo -heatmap section.png observed.txt\n")
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "File\tRows\tCols\tMin\tMax\tMean\tStdDev\tMedian\tDepth\n")

	var first *grid.Grid
	for _, path := range paths {
		var (
			g     *grid.Grid
			depth string
		)
		if *image {
			img, err := grid.ReadImageFile(path)
			if err != nil {
				fatalf("%v", err)
			}
			g = img.Grid
			depth = fmt.Sprintf("%g", img.Depth)
		} else {
			var err error
			g, err = grid.ReadFile(path)
			if err != nil {
				fatalf("%v", err)
			}
			depth = "-"
		}
		if first == nil {
			first = g
		}

		min, max := g.MinMax()
		data := g.Data()
		sorted := append([]float64(nil), data...)
		sort.Float64s(sorted)

		fmt.Fprintf(tw, "%s\t%d\t%d\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%s\n",
			path,
			g.Rows(),
			g.Cols(),
			min,
			max,
			stat.Mean(data, nil),
			stat.StdDev(data, nil),
			stat.Quantile(0.5, stat.Empirical, sorted, nil),
			depth,
		)
	}
	if err := tw.Flush(); err != nil {
		fatalf("failed to flush output: %v", err)
	}

	if *heatmap != "" {
		if err := render.Heatmap(first, paths[0], *heatmap); err != nil {
			fatalf("%v", err)
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
