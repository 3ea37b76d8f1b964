// Package input reads obstacle sets from plain text, SVG and DXF files.
package input

import (
	"math"

	"github.com/osuushi/emptyrect/geom"
)

// Scene is what a reader found: the obstacles and, if the file declared one,
// the bounding region.
type Scene struct {
	Bounds    geom.Rectangle
	HasBounds bool
	Obstacles []geom.Segment
}

// Extent is the declared bounds, or else the bounding box of the obstacles.
// A scene with neither has a zero rectangle.
func (s Scene) Extent() geom.Rectangle {
	if s.HasBounds || len(s.Obstacles) == 0 {
		return s.Bounds
	}
	r := geom.Rectangle{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
	for _, o := range s.Obstacles {
		r.MinX = math.Min(r.MinX, o.MinX())
		r.MinY = math.Min(r.MinY, o.MinY())
		r.MaxX = math.Max(r.MaxX, o.MaxX())
		r.MaxY = math.Max(r.MaxY, o.MaxY())
	}
	return r
}

// Turn a chain of points into segments, closing it if asked.
func chain(points []geom.Point, closed bool) []geom.Segment {
	if len(points) == 1 {
		return []geom.Segment{{P1: points[0], P2: points[0]}}
	}
	var segments []geom.Segment
	for i := 0; i+1 < len(points); i++ {
		segments = append(segments, geom.Segment{P1: points[i], P2: points[i+1]})
	}
	if closed && len(points) > 2 && points[0] != points[len(points)-1] {
		segments = append(segments, geom.Segment{P1: points[len(points)-1], P2: points[0]})
	}
	return segments
}
