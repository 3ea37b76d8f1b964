package advanced

import (
	"math"
	"sort"

	"github.com/osuushi/emptyrect/geom"
)

// A staircase describes, for one side of a vertical line through a center
// point, how much vertical room is left for a rectangle that contains the
// center and whose edge on that side sits at a given x. Walking away from the
// center, obstacles can only ever close the band further, so the band heights
// are non-increasing along the staircase.

type Side int

const (
	TowardMaxX Side = iota
	TowardMinX
)

func (side Side) String() string {
	if side == TowardMinX {
		return "-x"
	}
	return "+x"
}

// Step is one stair. Offset is the distance from the center and X the
// corresponding absolute coordinate. [Bottom, Top] is the widest band free of
// obstacles between the center and X.
type Step struct {
	Offset float64
	X      float64
	Top    float64
	Bottom float64
}

func (step Step) Height() float64 {
	return math.Max(0, step.Top-step.Bottom)
}

type Staircase []Step

// A stairEvent is an obstacle closing in on the band at some offset. Top and
// Bottom are the limits it imposes; an obstacle that only limits one side
// leaves the other at infinity.
type stairEvent struct {
	offset float64
	top    float64
	bottom float64
}

// Limits an obstacle puts on a band that must contain y. An obstacle that
// crosses y closes the band completely. Only the obstacle's y extent is used,
// which is exact for axis-parallel obstacles and conservative for slanted ones.
func bandLimits(s geom.Segment, y float64) (top, bottom float64) {
	switch {
	case s.MinY() > y:
		return s.MinY(), math.Inf(-1)
	case s.MaxY() < y:
		return math.Inf(1), s.MaxY()
	default:
		return y, y
	}
}

// BuildStaircase sweeps away from center toward the given side of window and
// records the band available at every x where an obstacle starts.
//
// The first step always sits at the center itself. Obstacles spanning the
// center's x tighten that first step. Every other obstacle on the side is an
// event at its nearest x; all events sharing an x form one group, and a step
// is emitted with the band as it was before the group applies. Obstacles at
// or past the window's edge cannot reach into the window and are skipped. The
// staircase ends with a step at the window's edge, unless the band closes
// first, in which case there is nothing further to record.
//
// A nil staircase means the band is already closed at the center.
func BuildStaircase(center geom.Point, obstacles []geom.Segment, window geom.Rectangle, side Side) Staircase {
	direction := 1.0
	outer := window.MaxX
	if side == TowardMinX {
		direction = -1
		outer = window.MinX
	}
	outerOffset := (outer - center.X) * direction

	top, bottom := window.MaxY, window.MinY
	var events []stairEvent
	for _, s := range obstacles {
		var near float64
		switch {
		case s.MinX() <= center.X+geom.Epsilon && s.MaxX() >= center.X-geom.Epsilon:
			// Spans the center, so it limits both sides from the start
			t, b := bandLimits(s, center.Y)
			top = math.Min(top, t)
			bottom = math.Max(bottom, b)
			continue
		case side == TowardMaxX && s.MinX() > center.X:
			near = s.MinX()
		case side == TowardMinX && s.MaxX() < center.X:
			near = s.MaxX()
		default:
			continue
		}

		offset := (near - center.X) * direction
		if offset >= outerOffset-geom.Epsilon {
			continue
		}
		t, b := bandLimits(s, center.Y)
		events = append(events, stairEvent{offset, t, b})
	}

	if top <= bottom {
		return nil
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].offset < events[j].offset
	})

	steps := Staircase{{Offset: 0, X: center.X, Top: top, Bottom: bottom}}
	for i := 0; i < len(events); {
		groupOffset := events[i].offset

		if groupOffset > geom.Epsilon {
			steps = append(steps, Step{
				Offset: groupOffset,
				X:      center.X + direction*groupOffset,
				Top:    top,
				Bottom: bottom,
			})
		}

		for ; i < len(events) && events[i].offset <= groupOffset+geom.Epsilon; i++ {
			top = math.Min(top, events[i].top)
			bottom = math.Max(bottom, events[i].bottom)
		}

		if groupOffset <= geom.Epsilon {
			// At the center: refine the first step instead of adding one
			steps[0].Top = top
			steps[0].Bottom = bottom
		}

		if top <= bottom {
			if groupOffset <= geom.Epsilon {
				return nil
			}
			return steps
		}
	}

	return append(steps, Step{Offset: outerOffset, X: outer, Top: top, Bottom: bottom})
}
