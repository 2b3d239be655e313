package gesture

// DefaultSimplifyTolerance is the default decimation distance, in the same
// units as the captured coordinates.
const DefaultSimplifyTolerance = 5.0

// Simplify reduces point density with a greedy one-pass decimation: the first
// point is kept, then any point whose Euclidean distance from the last kept
// point exceeds tolerance, and finally the original last point is forced into
// the output if it was not already kept. This is noise reduction for
// high-frequency sampling, not a fidelity-preserving simplification like
// Douglas-Peucker.
//
// Paths of length <= 2 pass through unchanged. A tolerance <= 0 keeps every
// point.
func Simplify(path []Point, tolerance float64) []Point {
	if len(path) <= 2 {
		return path
	}

	out := make([]Point, 0, len(path))
	out = append(out, path[0])
	kept := path[0]
	lastKeptIdx := 0
	for i := 1; i < len(path); i++ {
		if tolerance <= 0 || distance(kept, path[i]) > tolerance {
			out = append(out, path[i])
			kept = path[i]
			lastKeptIdx = i
		}
	}
	if lastKeptIdx != len(path)-1 {
		out = append(out, path[len(path)-1])
	}
	return out
}
