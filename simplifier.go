package simplify

import "github.com/pkg/errors"

// Generator is anything that produces shapes on demand. The radius is
// whatever parameter the generator uses to control point density or spacing;
// the simplifier passes it through without interpreting it.
type Generator interface {
	// ShapeFor returns the outline generated for the given identifier.
	ShapeFor(id string) Shape
	SetRadius(radius float64)
	Radius() float64
}

// Simplifier removes points that lie within a tolerance of the straight
// chord between two retained points. It can be used standalone through
// Convert and Simplify, or as a decorator for a Generator, in which case
// every produced shape is simplified on its way to the caller.
//
// A Simplifier is not safe for concurrent use: SetTolerance while a Convert
// is in flight needs external synchronization. Convert snapshots the squared
// tolerance once at entry, so a single call never mixes tolerances.
type Simplifier struct {
	parent Generator

	// The tolerance and its square always change together; see SetTolerance.
	tolerance    float64
	sqrTolerance float64
}

var _ Generator = (*Simplifier)(nil)

// New creates a Simplifier with the given tolerance, wrapping parent. The
// parent may be nil when the simplifier is used as a plain transform; radius
// calls then have nothing to forward to (SetRadius becomes a no-op and
// Radius panics).
func New(parent Generator, tolerance float64) *Simplifier {
	s := &Simplifier{parent: parent}
	s.SetTolerance(tolerance)
	return s
}

// SetTolerance sets the maximum distance at which points are regarded as
// lying on a chord. Both the tolerance and its cached square are updated
// here, and nowhere else. Negative values are legal: they disable
// simplification entirely.
func (s *Simplifier) SetTolerance(tolerance float64) {
	s.tolerance = tolerance
	s.sqrTolerance = tolerance * tolerance
}

// Tolerance returns the current tolerance radius.
func (s *Simplifier) Tolerance() float64 {
	return s.tolerance
}

// SqrTolerance returns the squared tolerance used for fast checks.
func (s *Simplifier) SqrTolerance() float64 {
	return s.sqrTolerance
}

// IsDisabled reports whether simplification is switched off. Any negative
// tolerance is the off switch; Convert then returns its input untouched.
func (s *Simplifier) IsDisabled() bool {
	return s.tolerance < 0
}

// SetRadius forwards to the wrapped generator. With no generator assigned
// there is nothing to configure, so the call is a no-op rather than a
// failure.
func (s *Simplifier) SetRadius(radius float64) {
	if s.parent != nil {
		s.parent.SetRadius(radius)
	}
}

// Radius returns the wrapped generator's radius. Calling it with no
// generator assigned violates the decorator contract and panics.
func (s *Simplifier) Radius() float64 {
	if s.parent == nil {
		panic(errors.New("simplify: Radius called with no parent generator"))
	}
	return s.parent.Radius()
}

// ShapeFor asks the wrapped generator for its shape and simplifies it on the
// way back to the caller. Panics when no generator is assigned.
func (s *Simplifier) ShapeFor(id string) Shape {
	if s.parent == nil {
		panic(errors.New("simplify: ShapeFor called with no parent generator"))
	}
	return s.Simplify(s.parent.ShapeFor(id))
}

// Simplify converts a whole shape. The closed flag is never altered by
// simplification.
func (s *Simplifier) Simplify(shape Shape) Shape {
	return Shape{
		Points: s.Convert(shape.Points, shape.Closed),
		Closed: shape.Closed,
	}
}

// Runs splits the point list into the maximal runs Convert collapses, in
// left-to-right order. Each run starts where the previous one ended, so the
// run starts are exactly the retained points. Exposed separately from
// Convert because the decomposition is the natural unit for verifying the
// tolerance guarantee and for tracing what the simplifier did. Runs ignores
// the disabled switch; Convert checks it before coming here.
func (s *Simplifier) Runs(points []Point, closed bool) []*Run {
	// One snapshot of the squared tolerance for the whole pass.
	sqrTolerance := s.sqrTolerance
	var runs []*Run
	start := 0
	for start < len(points) {
		r := newRun(points, closed, start)
		r.grow(sqrTolerance)
		start = r.End
		runs = append(runs, r)
	}
	return runs
}

// Convert reduces the point list to the start points of its maximal runs.
// The input is only read, never mutated. When simplification is disabled, or
// the list has fewer than 3 points, there is nothing to simplify and the
// input is returned as is.
func (s *Simplifier) Convert(points []Point, closed bool) []Point {
	if s.IsDisabled() || len(points) < 3 {
		return points
	}
	runs := s.Runs(points, closed)
	result := make([]Point, len(runs))
	for i, r := range runs {
		result[i] = r.StartPoint()
	}
	return result
}
