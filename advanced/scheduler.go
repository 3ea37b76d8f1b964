package advanced

import (
	"sort"

	"github.com/osuushi/emptyrect/geom"
)

// CoordTolerance is how far inside a window an endpoint coordinate has to be
// before it can be used as a cut, and how close two coordinates can be before
// they count as one.
const CoordTolerance = 1e-6

// Axis is the direction a job cuts its window in. Vertical jobs cut with
// vertical lines (on x), horizontal jobs with horizontal lines (on y).
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// A Job is one pending subproblem: find the largest empty rectangle in Window
// given the obstacles that reach into it.
//
// A Vertical job covers every rectangle in its window. A Horizontal job only
// has to cover the rectangles whose interior crosses the vertical line
// x = InheritedCut, since the rectangles on either side of that line belong to
// the jobs of the vertical cut that spawned it.
//
// Jobs are created when pushed and consumed exactly once when popped. They are
// never modified.
type Job struct {
	Window       geom.Rectangle
	Obstacles    []geom.Segment
	Axis         Axis
	InheritedCut float64
}

// Stepper runs the partition loop one job at a time. The stack of pending
// jobs is the whole state of the computation, so a Stepper can be paused
// between any two steps and inspected; running it to completion gives the same
// result as Solve.
type Stepper struct {
	stack     []*Job
	best      geom.Rectangle
	bestArea  float64
	processed int
}

func NewStepper(bounds geom.Rectangle, obstacles []geom.Segment) *Stepper {
	s := &Stepper{
		best: geom.Rectangle{MinX: bounds.MinX, MinY: bounds.MinY, MaxX: bounds.MinX, MaxY: bounds.MinY},
	}
	s.push(&Job{
		Window:       bounds,
		Obstacles:    append([]geom.Segment(nil), obstacles...),
		Axis:         Vertical,
		InheritedCut: bounds.Center().X,
	})
	return s
}

// Solve returns the largest axis-aligned rectangle inside bounds whose
// interior no obstacle passes through.
func Solve(bounds geom.Rectangle, obstacles []geom.Segment) geom.Rectangle {
	s := NewStepper(bounds, obstacles)
	for !s.Done() {
		s.Step()
	}
	return s.Best()
}

func (s *Stepper) Done() bool {
	return len(s.stack) == 0
}

// Best is the largest rectangle found so far. Its area never decreases from
// one step to the next.
func (s *Stepper) Best() geom.Rectangle {
	return s.best
}

// Processed is the number of jobs popped so far.
func (s *Stepper) Processed() int {
	return s.processed
}

// Pending is the number of jobs still on the stack.
func (s *Stepper) Pending() int {
	return len(s.stack)
}

// Step pops and processes one job, and describes what it did. The second
// return value is false once there is no work left.
func (s *Stepper) Step() (Event, bool) {
	if s.Done() {
		return Event{}, false
	}
	job := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.processed++

	event := s.process(job)
	event.Best = s.best
	event.Pending = len(s.stack)
	return event, true
}

func (s *Stepper) push(job *Job) {
	s.stack = append(s.stack, job)
}

// Offer a candidate rectangle, keeping it if it beats the best so far.
func (s *Stepper) offer(r geom.Rectangle) geom.Rectangle {
	if area := r.Area(); area > s.bestArea {
		s.best, s.bestArea = r, area
	}
	return r
}

func (s *Stepper) process(job *Job) Event {
	w := job.Window
	if w.MinX > w.MaxX || w.MinY > w.MaxY {
		fatalf("job window is inverted: %s", w)
	}

	event := Event{Job: job}
	switch len(job.Obstacles) {
	case 0:
		event.Kind = EventEmpty
		event.Candidate = s.offer(w)
	case 1:
		event.Kind = EventSingle
		event.Candidate = s.offer(largest(singleObstacleCandidates(job.Obstacles[0], w)))
	default:
		s.partition(job, &event)
	}
	return event
}

func (s *Stepper) partition(job *Job, event *Event) {
	w := job.Window
	lo, hi := w.MinX, w.MaxX
	if job.Axis == Horizontal {
		lo, hi = w.MinY, w.MaxY
	}

	coords := internalCoords(job.Obstacles, lo, hi, job.Axis)
	if len(coords) == 0 {
		if job.Axis == Vertical {
			// Nothing to cut on in x. Every obstacle spans the window horizontally or
			// sits on its left or right edge, so the rectangles worth finding cross
			// the middle.
			event.Kind = EventDeferred
			s.push(&Job{
				Window:       w,
				Obstacles:    job.Obstacles,
				Axis:         Horizontal,
				InheritedCut: w.Center().X,
			})
			return
		}
		event.Kind = EventFallback
		center := geom.Point{X: job.InheritedCut, Y: w.Center().Y}
		event.Candidate = s.offer(SolveCentral(center, job.Obstacles, w))
		return
	}

	// Cut at the lower quartile rather than the median. Collinear clusters tend
	// to pile up on one coordinate, and the median is the likeliest to land on
	// it again and again.
	cut := coords[len(coords)/4]
	event.Cut = cut

	low, high, onCut := splitObstacles(job.Obstacles, cut, job.Axis)
	lowWindow, highWindow := splitWindow(w, cut, job.Axis)

	if onCut == len(job.Obstacles) {
		// Every obstacle lies on the cut line and went to both sides, so cutting
		// again would make no progress. Both halves are empty apart from their
		// edge, and only the rectangles crossing the cut remain, which is work
		// for the other axis.
		event.Kind = EventNoProgress
		candidates := []geom.Rectangle{lowWindow, highWindow}
		if job.Axis == Vertical {
			s.push(&Job{Window: w, Obstacles: job.Obstacles, Axis: Horizontal, InheritedCut: cut})
		} else {
			candidates = append(candidates, SolveCentral(geom.Point{X: job.InheritedCut, Y: cut}, job.Obstacles, w))
		}
		event.Candidate = s.offer(largest(candidates))
		return
	}

	event.Kind = EventCut
	if job.Axis == Vertical {
		// The rectangles straddling the cut are resolved by a horizontal job over
		// the whole window, which will run the central search at every y it cuts.
		s.push(&Job{Window: w, Obstacles: job.Obstacles, Axis: Horizontal, InheritedCut: cut})
		s.push(&Job{Window: highWindow, Obstacles: high, Axis: Vertical, InheritedCut: highWindow.Center().X})
		s.push(&Job{Window: lowWindow, Obstacles: low, Axis: Vertical, InheritedCut: lowWindow.Center().X})
		return
	}

	s.push(&Job{Window: highWindow, Obstacles: high, Axis: Horizontal, InheritedCut: job.InheritedCut})
	s.push(&Job{Window: lowWindow, Obstacles: low, Axis: Horizontal, InheritedCut: job.InheritedCut})
	center := geom.Point{X: job.InheritedCut, Y: cut}
	event.Candidate = s.offer(SolveCentral(center, job.Obstacles, w))
}

// The distinct endpoint coordinates along axis lying strictly between lo and
// hi, sorted.
func internalCoords(obstacles []geom.Segment, lo, hi float64, axis Axis) []float64 {
	coords := make([]float64, 0, 2*len(obstacles))
	for _, s := range obstacles {
		for _, p := range [2]geom.Point{s.P1, s.P2} {
			v := p.X
			if axis == Horizontal {
				v = p.Y
			}
			if v > lo+CoordTolerance && v < hi-CoordTolerance {
				coords = append(coords, v)
			}
		}
	}
	sort.Float64s(coords)

	unique := coords[:0]
	for _, v := range coords {
		if len(unique) == 0 || v > unique[len(unique)-1]+CoordTolerance {
			unique = append(unique, v)
		}
	}
	return unique
}

func extent(s geom.Segment, axis Axis) (lo, hi float64) {
	if axis == Horizontal {
		return s.MinY(), s.MaxY()
	}
	return s.MinX(), s.MaxX()
}

// splitObstacles sorts obstacles to the low and high side of the cut.
// Obstacles lying on the cut line go to both sides and are counted in onCut.
// Obstacles straddling the cut are split where they cross it; the pieces are
// new segments, and the input is left untouched.
func splitObstacles(obstacles []geom.Segment, cut float64, axis Axis) (low, high []geom.Segment, onCut int) {
	for _, s := range obstacles {
		lo, hi := extent(s, axis)
		switch {
		case lo >= cut-geom.Epsilon && hi <= cut+geom.Epsilon:
			low = append(low, s)
			high = append(high, s)
			onCut++
		case hi <= cut+geom.Epsilon:
			low = append(low, s)
		case lo >= cut-geom.Epsilon:
			high = append(high, s)
		default:
			lowPiece, highPiece := splitSegment(s, cut, axis)
			low = append(low, lowPiece)
			high = append(high, highPiece)
		}
	}
	return low, high, onCut
}

// Split s where it crosses the cut line. s must straddle the cut.
func splitSegment(s geom.Segment, cut float64, axis Axis) (lowPiece, highPiece geom.Segment) {
	var crossing geom.Point
	lowEnd, highEnd := s.P1, s.P2
	if axis == Vertical {
		crossing = geom.Point{X: cut, Y: s.YAt(cut)}
		if lowEnd.X > highEnd.X {
			lowEnd, highEnd = highEnd, lowEnd
		}
	} else {
		crossing = geom.Point{X: s.XAt(cut), Y: cut}
		if lowEnd.Y > highEnd.Y {
			lowEnd, highEnd = highEnd, lowEnd
		}
	}
	return geom.Segment{P1: lowEnd, P2: crossing}, geom.Segment{P1: crossing, P2: highEnd}
}

func splitWindow(w geom.Rectangle, cut float64, axis Axis) (low, high geom.Rectangle) {
	low, high = w, w
	if axis == Vertical {
		low.MaxX, high.MinX = cut, cut
	} else {
		low.MaxY, high.MinY = cut, cut
	}
	return low, high
}
