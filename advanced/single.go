package advanced

import (
	"math"

	"github.com/osuushi/emptyrect/geom"
)

// Candidates for a window holding exactly one obstacle.
//
// The four rectangles left of, right of, below and above the obstacle are
// the maximal ones for axis-parallel obstacles and points. A slanted obstacle
// also leaves two corners of the window open on the far side of its
// diagonal; the largest rectangle tucked into such a corner touches the
// obstacle at one point, and its area is a quadratic in that point's x.
func singleObstacleCandidates(s geom.Segment, window geom.Rectangle) []geom.Rectangle {
	c, ok := geom.ClipSegment(s, window)
	if !ok {
		return []geom.Rectangle{window}
	}

	candidates := []geom.Rectangle{
		{MinX: window.MinX, MinY: window.MinY, MaxX: c.MinX(), MaxY: window.MaxY},
		{MinX: c.MaxX(), MinY: window.MinY, MaxX: window.MaxX, MaxY: window.MaxY},
		{MinX: window.MinX, MinY: window.MinY, MaxX: window.MaxX, MaxY: c.MinY()},
		{MinX: window.MinX, MinY: c.MaxY(), MaxX: window.MaxX, MaxY: window.MaxY},
	}

	if c.IsVertical() || c.IsHorizontal() {
		return candidates
	}
	return append(candidates, diagonalCorners(c, window)...)
}

// The two corner rectangles on either side of a slanted segment c lying
// inside window. Each one's width and height are linear in the touch point's
// x, so the area is a parabola whose roots are where the width and the
// height vanish.
func diagonalCorners(c geom.Segment, window geom.Rectangle) []geom.Rectangle {
	type corner struct {
		rect  func(x float64) geom.Rectangle
		root1 float64 // where the width vanishes
		root2 float64 // where the height vanishes
	}

	var corners [2]corner
	if c.Slope() > 0 {
		corners = [2]corner{
			{
				rect: func(x float64) geom.Rectangle {
					return geom.Rectangle{MinX: window.MinX, MinY: c.YAt(x), MaxX: x, MaxY: window.MaxY}
				},
				root1: window.MinX,
				root2: c.XAt(window.MaxY),
			},
			{
				rect: func(x float64) geom.Rectangle {
					return geom.Rectangle{MinX: x, MinY: window.MinY, MaxX: window.MaxX, MaxY: c.YAt(x)}
				},
				root1: window.MaxX,
				root2: c.XAt(window.MinY),
			},
		}
	} else {
		corners = [2]corner{
			{
				rect: func(x float64) geom.Rectangle {
					return geom.Rectangle{MinX: window.MinX, MinY: window.MinY, MaxX: x, MaxY: c.YAt(x)}
				},
				root1: window.MinX,
				root2: c.XAt(window.MinY),
			},
			{
				rect: func(x float64) geom.Rectangle {
					return geom.Rectangle{MinX: x, MinY: c.YAt(x), MaxX: window.MaxX, MaxY: window.MaxY}
				},
				root1: window.MaxX,
				root2: c.XAt(window.MaxY),
			},
		}
	}

	result := make([]geom.Rectangle, 0, len(corners))
	for _, corner := range corners {
		area := func(x float64) float64 { return corner.rect(x).Area() }
		x, _ := maximizeParabola(area, (corner.root1+corner.root2)/2, c.MinX(), c.MaxX())
		result = append(result, corner.rect(x))
	}
	return result
}

// maximizeParabola maximizes f, a parabola with its vertex at vertex, over
// [lo, hi]. Only the interval ends and the vertex can be maxima.
func maximizeParabola(f func(float64) float64, vertex, lo, hi float64) (x, val float64) {
	x, val = lo, f(lo)
	candidates := []float64{hi}
	if vertex > lo && vertex < hi {
		candidates = append(candidates, vertex)
	}
	for _, candidate := range candidates {
		if v := f(candidate); v > val {
			x, val = candidate, v
		}
	}
	return x, val
}

func largest(rects []geom.Rectangle) geom.Rectangle {
	best := rects[0]
	bestArea := math.Inf(-1)
	for _, r := range rects {
		if area := r.Area(); area > bestArea {
			best, bestArea = r, area
		}
	}
	return best
}
