package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"csv-charts/internal/features/charts"
)

// go run etc/tools/sample_charts.go
// renders every chart type from etc/samples into etc/charts
func main() {
	fmt.Println("Generating sample charts...")

	samples := filepath.Join("etc", "samples")
	outDir := filepath.Join("etc", "charts")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Printf("Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	pipeline := charts.NewPipeline(afero.NewOsFs(), charts.NewFonts(""), rand.New(rand.NewSource(1)))
	requests := []charts.Request{
		{Kind: charts.Bar, Inputs: []string{"bar.csv"}, Title: "Ages"},
		{Kind: charts.Scatter, Inputs: []string{"scatter1.csv", "scatter2.csv"}, Title: "Two Series"},
		{Kind: charts.Pie, Inputs: []string{"pie.csv"}, Title: "Budget"},
		{Kind: charts.LineArea, Inputs: []string{"line.csv"}, Title: "Growth"},
		{Kind: charts.Radar, Inputs: []string{"radar.csv"}, Title: "Profile"},
	}

	failed := false
	for _, req := range requests {
		for i, in := range req.Inputs {
			req.Inputs[i] = filepath.Join(samples, in)
		}
		req.Output = filepath.Join(outDir, fmt.Sprintf("sample_%d.png", int(req.Kind)))
		os.Remove(req.Output)

		if err := pipeline.Render(req); err != nil {
			fmt.Printf("Error generating %s: %v\n", req.Kind, err)
			failed = true
			continue
		}
		fmt.Printf("Chart generated successfully: %s\n", req.Output)
	}
	if failed {
		os.Exit(1)
	}
}
