// Command aemsynth generates synthetic conductivity images for
// testing the inversion pipeline.
//
// Usage:
//
//	aemsynth -m constant -o image.aem
//	aemsynth -m dettmer -W 1024 -H 32 -o image.aem -O raw.txt
//	aemsynth -list
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rhyshawkins/aemgrid/grid"
	"github.com/rhyshawkins/aemgrid/synth"
)

func main() {
	var (
		model      string
		hsamples   int
		dsamples   int
		depth      float64
		background float64
		anomaly    float64
		output     string
		rawOutput  string
		list       bool
	)
	flag.StringVar(&model, "model", "constant", "model name to generate")
	flag.StringVar(&model, "m", "constant", "model name to generate (shorthand)")
	flag.IntVar(&hsamples, "horizontal-samples", 1024, "horizontal sample count")
	flag.IntVar(&hsamples, "W", 1024, "horizontal sample count (shorthand)")
	flag.IntVar(&dsamples, "depth-samples", 32, "vertical sample count")
	flag.IntVar(&dsamples, "H", 32, "vertical sample count (shorthand)")
	flag.Float64Var(&depth, "depth", 150.0, "depth to halfspace in metres")
	flag.Float64Var(&depth, "D", 150.0, "depth to halfspace in metres (shorthand)")
	flag.Float64Var(&background, "background-conductivity", 0.05, "background conductivity")
	flag.Float64Var(&background, "b", 0.05, "background conductivity (shorthand)")
	flag.Float64Var(&anomaly, "conductivity", 0.20, "conductivity of the synthetic anomaly")
	flag.Float64Var(&anomaly, "c", 0.20, "conductivity of the synthetic anomaly (shorthand)")
	flag.StringVar(&output, "output", "", "output AEM image (required)")
	flag.StringVar(&output, "o", "", "output AEM image (shorthand)")
	flag.StringVar(&rawOutput, "output-image", "", "also write the grid in raw format")
	flag.StringVar(&rawOutput, "O", "", "also write the grid in raw format (shorthand)")
	flag.BoolVar(&list, "list", false, "list available models and exit")
	flag.BoolVar(&list, "l", false, "list available models and exit (shorthand)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aemsynth [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Generates a synthetic conductivity image.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  aemsynth -m dettmer -o image.aem\n")
		fmt.Fprintf(os.Stderr, "  aemsynth -m dettmerpattern -W 2048 -H 64 -o image.aem -O raw.txt\n")
	}
	flag.Parse()

	if list {
		for _, name := range synth.Names() {
			fmt.Println(name)
		}
		return
	}

	if output == "" {
		fatalf("output file required (-o)")
	}
	if depth <= 0 {
		fatalf("depth must be > 0, got %g", depth)
	}
	if hsamples <= 0 || dsamples <= 0 {
		fatalf("sample counts must be > 0, got %d x %d", dsamples, hsamples)
	}

	g, err := synth.Generate(model, dsamples, hsamples, background, anomaly)
	if err != nil {
		fatalf("%v (use -list to see available models)", err)
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
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
