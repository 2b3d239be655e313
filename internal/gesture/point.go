// Package gesture implements the stroke classification pipeline: point
// validation, path simplification, unit-box normalization, geometric feature
// extraction, and heuristic symbol scoring. All stages are pure functions over
// immutable point slices; each stage returns a new slice rather than mutating
// its input.
package gesture

import "math"

// Point is a single sampled touch position in capture-surface coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Finite reports whether both coordinates are real numbers (not NaN, not ±Inf).
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// distance returns the Euclidean distance between two points.
func distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BoundingBox is the minimal axis-aligned rectangle containing a path.
type BoundingBox struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Width returns MaxX - MinX.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// Degenerate reports whether the box has zero width or height (all points
// collinear on an axis).
func (b BoundingBox) Degenerate() bool {
	return b.Width() == 0 || b.Height() == 0
}

// Bounds computes the bounding box of a path. An empty path yields the zero
// box.
func Bounds(path []Point) BoundingBox {
	if len(path) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{
		MinX: path[0].X, MaxX: path[0].X,
		MinY: path[0].Y, MaxY: path[0].Y,
	}
	for _, p := range path[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// MinValidPoints is the shortest raw stroke the pipeline will attempt to
// classify. Below this floor no shape signal is trusted and classification
// short-circuits to the unrecognized result.
const MinValidPoints = 5

// ValidPoints filters a candidate point sequence down to numerically
// well-formed points, preserving order. Entries with a NaN coordinate are
// dropped. This never fails; the worst case is an empty slice. A stricter
// finiteness re-check (rejecting ±Inf that slipped through capture) happens
// just before scoring, see Classifier.Classify.
func ValidPoints(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		out = append(out, p)
	}
	return out
}
