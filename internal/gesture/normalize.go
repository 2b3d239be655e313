package gesture

// Normalize remaps a path into the unit bounding box: each point becomes
// ((x-minX)/width, (y-minY)/height), so output coordinates lie in [0,1]x[0,1].
// A degenerate bounding box (zero width or height) returns the input path
// unchanged rather than dividing by zero.
func Normalize(path []Point) []Point {
	if len(path) == 0 {
		return path
	}
	b := Bounds(path)
	if b.Degenerate() {
		return path
	}
	w := b.Width()
	h := b.Height()
	out := make([]Point, len(path))
	for i, p := range path {
		out[i] = Point{
			X: (p.X - b.MinX) / w,
			Y: (p.Y - b.MinY) / h,
		}
	}
	return out
}
