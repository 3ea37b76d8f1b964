// Package geom holds the plain value types shared by the solver and its
// collaborators: points, segments and axis-aligned rectangles.
package geom

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for near-vertical and near-horizontal
// segment checks.
const Epsilon = 1e-9

type Point struct {
	X float64
	Y float64
}

// A Segment is an immutable pair of endpoints. Zero-length segments are valid
// and act as point obstacles. Derived quantities are computed on demand;
// nothing is cached, so a Segment can be copied and shared freely.
type Segment struct {
	P1, P2 Point
}

func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Point{x1, y1}, Point{x2, y2}}
}

func PointObstacle(x, y float64) Segment {
	return Segment{Point{x, y}, Point{x, y}}
}

func (s Segment) MinX() float64 { return math.Min(s.P1.X, s.P2.X) }
func (s Segment) MaxX() float64 { return math.Max(s.P1.X, s.P2.X) }
func (s Segment) MinY() float64 { return math.Min(s.P1.Y, s.P2.Y) }
func (s Segment) MaxY() float64 { return math.Max(s.P1.Y, s.P2.Y) }

func (s Segment) IsVertical() bool {
	return math.Abs(s.P1.X-s.P2.X) < Epsilon
}

func (s Segment) IsHorizontal() bool {
	return math.Abs(s.P1.Y-s.P2.Y) < Epsilon
}

func (s Segment) IsPoint() bool {
	return s.IsVertical() && s.IsHorizontal()
}

// Slope of the supporting line. Vertical segments report +Inf.
func (s Segment) Slope() float64 {
	if s.P1.X == s.P2.X {
		return math.Inf(1)
	}
	return (s.P2.Y - s.P1.Y) / (s.P2.X - s.P1.X)
}

// Intercept c of y = mx + c. NaN for vertical segments.
func (s Segment) Intercept() float64 {
	if s.P1.X == s.P2.X {
		return math.NaN()
	}
	return s.P1.Y - s.Slope()*s.P1.X
}

// YAt solves the supporting line for y. The x value is not checked against
// the segment's extent. For vertical segments the upper endpoint's y is
// returned.
func (s Segment) YAt(x float64) float64 {
	if s.IsVertical() {
		return s.MaxY()
	}
	// Interpolate from P1 rather than using the intercept, which loses
	// precision far from the origin.
	t := (x - s.P1.X) / (s.P2.X - s.P1.X)
	return s.P1.Y + t*(s.P2.Y-s.P1.Y)
}

// XAt solves the supporting line for x. For horizontal segments the right
// endpoint's x is returned.
func (s Segment) XAt(y float64) float64 {
	if s.IsHorizontal() {
		return s.MaxX()
	}
	t := (y - s.P1.Y) / (s.P2.Y - s.P1.Y)
	return s.P1.X + t*(s.P2.X-s.P1.X)
}

func (s Segment) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
}

// Rectangle is an axis-aligned box in min/max corner form. MinX <= MaxX and
// MinY <= MaxY always hold; zero-area rectangles are allowed.
type Rectangle struct {
	MinX, MinY, MaxX, MaxY float64
}

func Rect(minX, minY, maxX, maxY float64) Rectangle {
	return Rectangle{minX, minY, maxX, maxY}
}

func (r Rectangle) Width() float64  { return r.MaxX - r.MinX }
func (r Rectangle) Height() float64 { return r.MaxY - r.MinY }

func (r Rectangle) Area() float64 {
	return r.Width() * r.Height()
}

func (r Rectangle) Center() Point {
	return Point{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

// Contains reports whether other lies inside r, allowing tol of slack on
// every side.
func (r Rectangle) Contains(other Rectangle, tol float64) bool {
	return other.MinX >= r.MinX-tol && other.MaxX <= r.MaxX+tol &&
		other.MinY >= r.MinY-tol && other.MaxY <= r.MaxY+tol
}

// Edges returns the four sides of the rectangle as segments, counterclockwise
// from the bottom edge.
func (r Rectangle) Edges() [4]Segment {
	return [4]Segment{
		Seg(r.MinX, r.MinY, r.MaxX, r.MinY),
		Seg(r.MaxX, r.MinY, r.MaxX, r.MaxY),
		Seg(r.MaxX, r.MaxY, r.MinX, r.MaxY),
		Seg(r.MinX, r.MaxY, r.MinX, r.MinY),
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[%g,%g]-[%g,%g]", r.MinX, r.MinY, r.MaxX, r.MaxY)
}
