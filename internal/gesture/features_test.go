package gesture

import (
	"math"
	"testing"
)

func TestExtractFeatures_TooShort(t *testing.T) {
	for _, path := range [][]Point{
		nil,
		{{X: 0, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
	} {
		if f := ExtractFeatures(path, Bounds(path)); f != nil {
			t.Errorf("ExtractFeatures(len %d) = %+v, want nil", len(path), f)
		}
	}
}

func TestExtractFeatures_Direction(t *testing.T) {
	rightward := []Point{{X: 0, Y: 0}, {X: 0.5, Y: 0.5}, {X: 1, Y: 1}}
	f := ExtractFeatures(rightward, Bounds(rightward))
	if f == nil {
		t.Fatal("ExtractFeatures returned nil")
	}
	if f.FirstDirection != DirectionRight {
		t.Errorf("FirstDirection = %q, want right", f.FirstDirection)
	}

	leftward := []Point{{X: 1, Y: 0}, {X: 0.5, Y: 0.5}, {X: 0, Y: 1}}
	f = ExtractFeatures(leftward, Bounds(leftward))
	if f == nil {
		t.Fatal("ExtractFeatures returned nil")
	}
	if f.FirstDirection != DirectionLeft {
		t.Errorf("FirstDirection = %q, want left", f.FirstDirection)
	}
}

func TestExtractFeatures_Verticals(t *testing.T) {
	path := []Point{
		{X: 0, Y: 0.1},
		{X: 0.25, Y: 0.3},
		{X: 0.5, Y: 0.9},
		{X: 0.75, Y: 0.4},
		{X: 1, Y: 0.2},
	}
	f := ExtractFeatures(path, Bounds(path))
	if f == nil {
		t.Fatal("ExtractFeatures returned nil")
	}
	if f.StartY != 0.1 {
		t.Errorf("StartY = %v, want 0.1", f.StartY)
	}
	// Middle point is index len/2 = 2
	if f.MidY != 0.9 {
		t.Errorf("MidY = %v, want 0.9", f.MidY)
	}
	if f.EndY != 0.2 {
		t.Errorf("EndY = %v, want 0.2", f.EndY)
	}
	if f.Length != 5 {
		t.Errorf("Length = %d, want 5", f.Length)
	}
}

func TestExtractFeatures_AspectRatioFromCapturedBox(t *testing.T) {
	// A normalized path always spans the unit square, so the descriptor
	// must reflect the captured bounding box handed in alongside it.
	normalized := []Point{{X: 0, Y: 0}, {X: 1, Y: 0.5}, {X: 0, Y: 1}}
	captured := Bounds([]Point{{X: 0, Y: 0}, {X: 50, Y: 10}, {X: 0, Y: 20}})

	f := ExtractFeatures(normalized, captured)
	if f == nil {
		t.Fatal("ExtractFeatures returned nil")
	}
	if math.Abs(f.AspectRatio-2.5) > 1e-12 {
		t.Errorf("AspectRatio = %v, want 2.5 from the captured box", f.AspectRatio)
	}
}

func TestPathCurvature_StraightLine(t *testing.T) {
	path := make([]Point, 10)
	for i := range path {
		path[i] = Point{X: float64(i) * 0.1, Y: float64(i) * 0.1}
	}
	if c := pathCurvature(path); math.Abs(c) > 1e-9 {
		t.Errorf("straight line curvature = %v, want 0", c)
	}
}

func TestPathCurvature_RightAngle(t *testing.T) {
	// One 90-degree turn at the middle point.
	path := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	c := pathCurvature(path)
	if math.Abs(c-90) > 1e-9 {
		t.Errorf("right-angle curvature = %v, want 90", c)
	}
}

func TestPathCurvature_WrapsPast180(t *testing.T) {
	// Doubling straight back: bearing flips from 0 to 180, the wrapped
	// turn is 180, never more.
	path := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	c := pathCurvature(path)
	if math.Abs(c-180) > 1e-9 {
		t.Errorf("reversal curvature = %v, want 180", c)
	}
}

func TestPathCurvature_CoincidentPoints(t *testing.T) {
	// Identical consecutive points bear 0 and must not poison the average.
	path := []Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	c := pathCurvature(path)
	if math.IsNaN(c) || math.IsInf(c, 0) {
		t.Fatalf("curvature with coincident points = %v", c)
	}
	if c < 0 {
		t.Errorf("curvature = %v, want non-negative", c)
	}
}

func TestAspectRatio_ZeroHeightGuard(t *testing.T) {
	// Horizontal path: height 0 is treated as 1.
	b := Bounds([]Point{{X: 0, Y: 0.5}, {X: 0.8, Y: 0.5}})
	got := aspectRatio(b)
	if math.Abs(got-0.8) > 1e-12 {
		t.Errorf("aspectRatio = %v, want 0.8", got)
	}
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("aspectRatio not finite: %v", got)
	}
}

func TestAspectRatio_VerticalLine(t *testing.T) {
	b := Bounds([]Point{{X: 0.5, Y: 0}, {X: 0.5, Y: 1}})
	if got := aspectRatio(b); got != 0 {
		t.Errorf("vertical line aspect ratio = %v, want 0", got)
	}
}
