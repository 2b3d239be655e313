package gesture

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Direction is the stroke's coarse horizontal direction of travel.
type Direction string

const (
	// DirectionLeft indicates the stroke ends left of where it started
	DirectionLeft Direction = "left"
	// DirectionRight indicates the stroke ends right of where it started
	DirectionRight Direction = "right"
)

// Features holds the shape descriptors derived from a simplified, normalized
// path. All Y values are post-normalization, i.e. in [0,1] for a
// non-degenerate path.
type Features struct {
	FirstDirection Direction
	StartY         float64
	MidY           float64
	EndY           float64
	Curvature      float64 // average absolute turning angle (degrees)
	AspectRatio    float64 // bounding box width / height
	Length         int     // point count after simplification
	Path           []Point // the normalized path the descriptors came from
}

// ExtractFeatures computes shape descriptors from a simplified, normalized
// path. box is the path's pre-normalization bounding box: after
// normalization every non-degenerate path spans exactly [0,1]x[0,1], so the
// aspect ratio must come from the stroke's captured proportions. Returns nil
// (not an error) when the path has fewer than 3 points, which also
// guarantees the first/last third partitions below are non-empty.
func ExtractFeatures(path []Point, box BoundingBox) *Features {
	if len(path) < 3 {
		return nil
	}

	// First/middle/last thirds via integer division; the middle third
	// absorbs the remainder.
	third := len(path) / 3
	firstOfFirst := path[0]
	firstOfLast := path[len(path)-third]

	dir := DirectionLeft
	if firstOfLast.X > firstOfFirst.X {
		dir = DirectionRight
	}

	return &Features{
		FirstDirection: dir,
		StartY:         path[0].Y,
		MidY:           path[len(path)/2].Y,
		EndY:           path[len(path)-1].Y,
		Curvature:      pathCurvature(path),
		AspectRatio:    aspectRatio(box),
		Length:         len(path),
		Path:           path,
	}
}

// pathCurvature averages the absolute turning angle at every interior point,
// in degrees. The turn at point i is the difference between the bearing of
// segment (i-1,i) and segment (i,i+1), wrapped to <= 180. Identical
// consecutive points bear 0 by definition (atan2(0,0) is 0) and do not abort
// the computation; non-finite turns are skipped. Fewer than 3 points yields 0.
func pathCurvature(path []Point) float64 {
	if len(path) < 3 {
		return 0
	}
	turns := make([]float64, 0, len(path)-2)
	for i := 1; i < len(path)-1; i++ {
		in := bearingDegrees(path[i-1], path[i])
		out := bearingDegrees(path[i], path[i+1])
		turn := math.Abs(out - in)
		if turn > 180 {
			turn = 360 - turn
		}
		if math.IsNaN(turn) || math.IsInf(turn, 0) {
			continue
		}
		turns = append(turns, turn)
	}
	if len(turns) == 0 {
		return 0
	}
	return stat.Mean(turns, nil)
}

// bearingDegrees returns the heading of the vector from -> to, in degrees.
func bearingDegrees(from, to Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X) * 180 / math.Pi
}

// aspectRatio returns width/height of a bounding box, treating a zero height
// as 1 so a perfectly horizontal path does not divide by zero.
func aspectRatio(b BoundingBox) float64 {
	h := b.Height()
	if h == 0 {
		h = 1
	}
	return b.Width() / h
}
