// Command aemconvert rescales a raw conductivity grid into the AEM
// image format used by the inversion tools.
//
// The input values are linearly remapped so that the smallest sample
// becomes the -min value and the largest the -max value, then written
// with a "<rows> <cols> <depth>" header. The depth-to-halfspace value is
// stored in the header unmodified.
//
// Usage:
//
//	aemconvert -i observed.txt -o image.aem
//	aemconvert -i observed.txt -o image.aem -r rescaled.txt
//	aemconvert -i observed.txt -o image.aem -d 150 -min 0.01 -max 0.5
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rhyshawkins/aemgrid/grid"
)

func main() {
	var (
		input     string
		output    string
		rawOutput string
		depth     float64
		minOut    float64
		maxOut    float64
	)
	flag.StringVar(&input, "input", "", "input raw image (required)")
	flag.StringVar(&input, "i", "", "input raw image (shorthand)")
	flag.StringVar(&output, "output", "", "output AEM image (required)")
	flag.StringVar(&output, "o", "", "output AEM image (shorthand)")
	flag.StringVar(&rawOutput, "raw-output", "", "also write the rescaled grid in raw format")
	flag.StringVar(&rawOutput, "r", "", "also write the rescaled grid in raw format (shorthand)")
	flag.Float64Var(&depth, "depth", 200.0, "depth to halfspace written into the header")
	flag.Float64Var(&depth, "d", 200.0, "depth to halfspace (shorthand)")
	flag.Float64Var(&minOut, "min", 0.05, "lower bound of the target range")
	flag.Float64Var(&maxOut, "max", 0.20, "upper bound of the target range")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aemconvert [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Rescales a raw grid into the AEM image format.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  aemconvert -i observed.txt -o image.aem\n")
		fmt.Fprintf(os.Stderr, "  aemconvert -i observed.txt -o image.aem -r rescaled.txt -d 150\n")
	}
	flag.Parse()

	if input == "" {
		fatalf("input file required (-i)")
	}
	if output == "" {
		fatalf("output file required (-o)")
	}
	if minOut >= maxOut {
		fatalf("min (%g) must be below max (%g)", minOut, maxOut)
	}

	g, err := grid.ReadFile(input)
	if err != nil {
		fatalf("%v", err)
	}

	if err := g.Rescale(minOut, maxOut); err != nil {
		if errors.Is(err, grid.ErrFlatGrid) {
			fatalf("%s: constant grid has no range to rescale", input)
		}
		fatalf("%v", err)
	}

	img := &grid.Image{Depth: depth, Grid: g}
	if err := img.WriteImageFile(output); err != nil {
		fatalf("%v", err)
	}

	if rawOutput != "" {
		if err := g.WriteFile(rawOutput); err != nil {
			fatalf("%v", err)
		}
	}

	fmt.Println(g.Rows(), g.Cols())
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
