package geom

// IntersectTolerance is how far a segment has to reach into a rectangle
// before it counts as crossing the interior. Anything closer to the boundary
// is a touch.
const IntersectTolerance = 1e-5

// ClipSegment clips s to the closed rectangle r with the Liang-Barsky
// algorithm. The second return value is false if no part of s lies inside r.
func ClipSegment(s Segment, r Rectangle) (Segment, bool) {
	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y
	t0, t1 := 0.0, 1.0

	// Each (p, q) pair is one rectangle side: the segment is inside that side
	// where p*t <= q.
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	if !clip(-dx, s.P1.X-r.MinX) ||
		!clip(dx, r.MaxX-s.P1.X) ||
		!clip(-dy, s.P1.Y-r.MinY) ||
		!clip(dy, r.MaxY-s.P1.Y) {
		return Segment{}, false
	}

	return Segment{
		Point{s.P1.X + t0*dx, s.P1.Y + t0*dy},
		Point{s.P1.X + t1*dx, s.P1.Y + t1*dy},
	}, true
}

// SegmentIntersectsRectangle reports whether s passes through the open
// interior of r. Touching the boundary, or reaching less than
// IntersectTolerance past it, does not count.
func SegmentIntersectsRectangle(s Segment, r Rectangle) bool {
	inner := Rectangle{
		MinX: r.MinX + IntersectTolerance,
		MinY: r.MinY + IntersectTolerance,
		MaxX: r.MaxX - IntersectTolerance,
		MaxY: r.MaxY - IntersectTolerance,
	}
	// Too thin to have an interior at this tolerance
	if inner.MinX >= inner.MaxX || inner.MinY >= inner.MaxY {
		return false
	}

	clipped, ok := ClipSegment(s, inner)
	if !ok {
		return false
	}

	// The clipped part lies in a convex region, so it touches the boundary only
	// at its ends unless it runs along an edge. Its midpoint is strictly inside
	// exactly when some part of it is.
	mid := Point{(clipped.P1.X + clipped.P2.X) / 2, (clipped.P1.Y + clipped.P2.Y) / 2}
	return mid.X > inner.MinX && mid.X < inner.MaxX && mid.Y > inner.MinY && mid.Y < inner.MaxY
}
