package simplify

// DistSqPointSegment returns the squared distance from p to the segment
// between a and b. The projection of p onto the carrying line is clamped to
// the segment, so a point beyond either endpoint measures against that
// endpoint. A degenerate segment (a == b) measures plain point distance.
func DistSqPointSegment(a, b, p Point) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return ap.LengthSq()
	}
	t := ap.Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Sub(a.Add(ab.Mul(t))).LengthSq()
}
