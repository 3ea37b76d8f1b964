// Finds the largest axis-aligned rectangle inside a bounding rectangle that
// no obstacle segment passes through.
//
// Obstacles may be arbitrary line segments, including degenerate ones (single
// points), and may touch the bounds or each other. The rectangle found is
// always empty of obstacle interiors; obstacles may lie along its edges.
package emptyrect

import (
	"math"

	"github.com/osuushi/emptyrect/advanced"
	"github.com/osuushi/emptyrect/geom"
	"github.com/osuushi/emptyrect/index"
	"github.com/pkg/errors"
)

type Point = geom.Point
type Segment = geom.Segment
type Rectangle = geom.Rectangle

var (
	ErrInvalidBounds   = errors.New("invalid bounds")
	ErrInvalidObstacle = errors.New("invalid obstacle")
	ErrBlocked         = errors.New("result is not empty")
)

// Find the maximum empty rectangle within the bounds.
//
// Bounds must be finite with MinX <= MaxX and MinY <= MaxY. Obstacles must
// have finite coordinates. Parts of obstacles outside the bounds are ignored.
func Solve(bounds Rectangle, obstacles ...Segment) (result Rectangle, err error) {
	defer func() {
		recoveredErr := advanced.HandleSolvePanicRecover(recover())
		if recoveredErr != nil {
			result = Rectangle{}
			err = recoveredErr
		}
	}()

	if err := validate(bounds, obstacles); err != nil {
		return Rectangle{}, err
	}
	result = advanced.Solve(bounds, obstacles)
	if blocked := index.New(obstacles).Blocking(result); len(blocked) > 0 {
		return Rectangle{}, errors.Wrapf(ErrBlocked, "%s passes through %s", blocked[0], result)
	}
	return result, nil
}

// Like Solve, but the obstacles are rectangles. Each one blocks along its
// outline.
func SolveRects(bounds Rectangle, obstacles ...Rectangle) (Rectangle, error) {
	segments := make([]Segment, 0, len(obstacles)*4)
	for _, r := range obstacles {
		if r.MinX > r.MaxX || r.MinY > r.MaxY {
			return Rectangle{}, errors.Wrapf(ErrInvalidObstacle, "inverted rectangle %v", r)
		}
		edges := r.Edges()
		segments = append(segments, edges[:]...)
	}
	return Solve(bounds, segments...)
}

func validate(bounds Rectangle, obstacles []Segment) error {
	if !finite(bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY) {
		return errors.Wrapf(ErrInvalidBounds, "non-finite coordinate in %v", bounds)
	}
	if bounds.MinX > bounds.MaxX || bounds.MinY > bounds.MaxY {
		return errors.Wrapf(ErrInvalidBounds, "inverted bounds %v", bounds)
	}
	for i, s := range obstacles {
		if !finite(s.P1.X, s.P1.Y, s.P2.X, s.P2.Y) {
			return errors.Wrapf(ErrInvalidObstacle, "obstacle %d: non-finite coordinate in %v", i, s)
		}
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
