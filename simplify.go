// A chord-tolerance shape simplifier for Go.
//
// This package reduces an ordered sequence of 2D points, optionally forming
// a closed polygon, by discarding points that lie within a tolerance of the
// straight chord between two retained points. The result is visually
// indistinguishable from the input at that tolerance. The pass is greedy and
// left-to-right: each run of removable points is grown as far as it will go
// and then committed, which is fast but not globally optimal.
//
// The Simplifier can also decorate a shape generator, simplifying every
// shape the generator produces. See the readme for more details.
package simplify

// SimplifyPoints is the one-shot entry point: it reduces points under the
// given tolerance. A negative tolerance disables simplification and returns
// the input as is.
func SimplifyPoints(points []Point, closed bool, tolerance float64) []Point {
	return New(nil, tolerance).Convert(points, closed)
}
