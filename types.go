package simplify

// Point is a position in the plane. Points are plain values; two points are
// the same point exactly when their coordinates are equal.
type Point struct {
	X, Y float64
}

// Shape is an ordered outline of points. If Closed is set, the last point
// implicitly connects back to the first, so chords may wrap past the end of
// the list.
type Shape struct {
	Points []Point
	Closed bool
}
