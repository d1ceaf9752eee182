package simplify

import (
	"fmt"

	"github.com/hoshigaki/simplify/dbg"
)

// A Run is a span of consecutive points that collapses to the single chord
// between its start and end points. Runs borrow the point list they were
// built against, read-only, and never outlive the Convert or Runs call that
// produced them.
type Run struct {
	points []Point
	closed bool

	// Start is fixed for the life of the run. End begins at Start+1 and only
	// ever moves forward.
	Start int
	End   int
}

func newRun(points []Point, closed bool, start int) *Run {
	return &Run{
		points: points,
		closed: closed,
		Start:  start,
		End:    start + 1,
	}
}

// validEnd reports whether the current end could still serve as the start of
// the next run. On an open shape the end stops one short of the last point,
// which guarantees the last point is always retained. On a closed shape the
// end may reach the list length, where the chord wraps back to the first
// point.
func (r *Run) validEnd() bool {
	if r.closed {
		return r.End < len(r.points)
	}
	return r.End < len(r.points)-1
}

// StartPoint returns the retained point the run begins at.
func (r *Run) StartPoint() Point {
	return r.points[r.Start]
}

// EndPoint returns the far endpoint of the chord, wrapping past the end of
// the list for closed shapes.
func (r *Run) EndPoint() Point {
	return r.points[CircularIndex(r.End, len(r.points))]
}

// canTakeNext checks whether the chord can absorb one more point. The end is
// advanced tentatively and every interior point is measured against the new
// chord; a single point out of tolerance rejects the whole extension, no
// matter how close the others sit. The full interior has to be re-checked on
// every attempt because moving the far endpoint can swing the chord through
// space it previously avoided. The tentative advance is reverted before
// returning.
func (r *Run) canTakeNext(sqrTolerance float64) bool {
	if !r.validEnd() {
		return false
	}
	r.End++
	ok := true
	for i := r.Start + 1; i < r.End; i++ {
		if DistSqPointSegment(r.StartPoint(), r.EndPoint(), r.points[i]) > sqrTolerance {
			ok = false
			break
		}
	}
	r.End--
	return ok
}

// grow advances the end as far as the tolerance allows. Greedy and forward
// only: once a run stops growing it is never revisited or shrunk by a later
// run.
func (r *Run) grow(sqrTolerance float64) {
	for r.canTakeNext(sqrTolerance) {
		r.End++
	}
}

func (r *Run) String() string {
	return fmt.Sprintf("Run %s [%d → %d) of %d points", dbg.Name(r), r.Start, r.End, len(r.points))
}
