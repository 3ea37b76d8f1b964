package advanced

import (
	"math"

	"github.com/osuushi/emptyrect/geom"
)

// pairMatrix scores every pairing of a left stair (row) with a right stair
// (column) by the area of the rectangle they bound together. Moving down the
// rows widens the rectangle on the left while its band shrinks, and likewise
// moving right along the columns.
type pairMatrix struct {
	left, right Staircase
}

func (m pairMatrix) Rows() int { return len(m.left) }
func (m pairMatrix) Cols() int { return len(m.right) }

func (m pairMatrix) At(row, col int) float64 {
	return pairRect(m.left[row], m.right[col]).Area()
}

// The rectangle spanned by a left and a right stair. Pairs whose band closes
// up collapse to zero height.
func pairRect(left, right Step) geom.Rectangle {
	top := math.Min(left.Top, right.Top)
	bottom := math.Max(left.Bottom, right.Bottom)
	if top < bottom {
		top = bottom
	}
	maxX := math.Max(left.X, right.X)
	return geom.Rectangle{MinX: left.X, MinY: bottom, MaxX: maxX, MaxY: top}
}

// SolveCentral finds the largest empty rectangle in window that contains
// center, by building the staircases on both sides of center and searching
// their pairings. If the center is blocked, a zero-area rectangle at the
// center is returned.
func SolveCentral(center geom.Point, obstacles []geom.Segment, window geom.Rectangle) geom.Rectangle {
	empty := geom.Rectangle{MinX: center.X, MinY: center.Y, MaxX: center.X, MaxY: center.Y}

	left := BuildStaircase(center, obstacles, window, TowardMinX)
	right := BuildStaircase(center, obstacles, window, TowardMaxX)
	if len(left) == 0 || len(right) == 0 {
		return empty
	}

	return bestPair(empty, left, right)
}

// The largest rectangle over every pairing of a left and a right stair.
//
// The pair matrix is not totally monotone once bands shrink from both sides,
// so the answer from MonotoneMax is only a lower bound. The scan afterwards
// uses it to skip pairs that cannot beat it. Along a row the width
// grows and the height never does, so a row is abandoned as soon as its
// widest possible rectangle at the current height falls short.
func bestPair(empty geom.Rectangle, left, right Staircase) geom.Rectangle {
	cols := MonotoneMax(pairMatrix{left, right})
	if len(cols) != len(left) {
		fatalf("monotone search returned %d rows for a staircase of %d", len(cols), len(left))
	}

	best, bestArea := empty, 0.0
	offer := func(candidate geom.Rectangle) {
		if area := candidate.Area(); area > bestArea {
			best, bestArea = candidate, area
		}
	}
	for row, col := range cols {
		if col >= 0 {
			offer(pairRect(left[row], right[col]))
		}
	}

	outer := right[len(right)-1].X
	for _, l := range left {
		maxWidth := outer - l.X
		for _, r := range right {
			height := math.Min(l.Top, r.Top) - math.Max(l.Bottom, r.Bottom)
			if height <= 0 || maxWidth*height <= bestArea {
				break
			}
			offer(pairRect(l, r))
		}
	}
	return best
}
