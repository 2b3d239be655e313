// Command stroke-plot classifies a recorded stroke and plots its raw,
// simplified, and normalized forms side by side for tuning the recognizer.
//
// The input file is a JSON array of {x, y} points, the same shape the
// /api/classify endpoint accepts.
package main

import (
	"encoding/json"
	"flag"
	"image/color"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/gesture.report/internal/gesture"
)

func main() {
	input := flag.String("i", "stroke.json", "input stroke JSON path")
	output := flag.String("o", "stroke.svg", "output plot path (.svg or .png)")
	tolerance := flag.Float64("tolerance", gesture.DefaultSimplifyTolerance, "simplification distance")
	flag.Parse()

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("failed to read stroke file: %v", err)
	}
	var pts []gesture.Point
	if err := json.Unmarshal(data, &pts); err != nil {
		log.Fatalf("failed to parse stroke JSON: %v", err)
	}

	classifier := gesture.NewClassifier()
	classifier.Tolerance = *tolerance
	result, err := classifier.Classify(pts)
	if err != nil {
		log.Fatalf("classification failed: %v", err)
	}
	log.Printf("symbol=%q confidence=%d model=%s", result.Symbol, result.Confidence, result.Model)

	valid := gesture.ValidPoints(pts)
	simplified := gesture.Simplify(valid, *tolerance)
	log.Printf("points: %d raw, %d valid, %d simplified", len(pts), len(valid), len(simplified))

	p := plot.New()
	p.Title.Text = "Stroke"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	// Capture coordinates grow downward
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	rawLine, err := plotter.NewLine(pathXYs(valid))
	if err != nil {
		log.Fatalf("failed to build raw line: %v", err)
	}
	rawLine.Color = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	rawLine.Width = vg.Points(1)
	p.Add(rawLine)
	p.Legend.Add("raw", rawLine)

	simpLine, err := plotter.NewLine(pathXYs(simplified))
	if err != nil {
		log.Fatalf("failed to build simplified line: %v", err)
	}
	simpLine.Color = color.RGBA{R: 220, G: 50, B: 50, A: 255}
	simpLine.Width = vg.Points(2)
	p.Add(simpLine)
	p.Legend.Add("simplified", simpLine)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, *output); err != nil {
		log.Fatalf("failed to save plot: %v", err)
	}
	log.Printf("✓ Created: %s", *output)
}

func pathXYs(path []gesture.Point) plotter.XYs {
	xys := make(plotter.XYs, 0, len(path))
	for _, p := range path {
		xys = append(xys, plotter.XY{X: p.X, Y: p.Y})
	}
	return xys
}
