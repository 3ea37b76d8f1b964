package advanced

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/emptyrect/dbg"
	"github.com/osuushi/emptyrect/geom"
)

type EventKind int

const (
	// The window had no obstacles and was a candidate as a whole
	EventEmpty EventKind = iota
	// The window had one obstacle; the rectangles around it were candidates
	EventSingle
	// A vertical job had nothing to cut on and was re-queued as horizontal
	EventDeferred
	// A horizontal job had nothing to cut on and ran the central search at the
	// middle of its window
	EventFallback
	// The window was cut in two
	EventCut
	// Every obstacle lay on the cut, so the halves were settled directly
	EventNoProgress
)

var eventKindNames = map[EventKind]string{
	EventEmpty:      "empty",
	EventSingle:     "single",
	EventDeferred:   "deferred",
	EventFallback:   "fallback",
	EventCut:        "cut",
	EventNoProgress: "no-progress",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event describes one step of a Stepper.
type Event struct {
	Job  *Job
	Kind EventKind
	// The cut coordinate, for EventCut and EventNoProgress
	Cut float64
	// The candidate this step offered, if any. Zero otherwise.
	Candidate geom.Rectangle
	// Best rectangle and number of pending jobs after the step
	Best    geom.Rectangle
	Pending int
}

func (e Event) String() string {
	return e.Format(dbg.Name)
}

// Format renders the event on one line, naming the job with name.
func (e Event) Format(name func(interface{}) string) string {
	axis := aurora.Cyan(e.Job.Axis.String())
	if e.Job.Axis == Horizontal {
		axis = aurora.Magenta(e.Job.Axis.String())
	}

	var kind aurora.Value
	switch e.Kind {
	case EventCut:
		kind = aurora.Green(e.Kind.String())
	case EventNoProgress:
		kind = aurora.Red(e.Kind.String())
	case EventDeferred, EventFallback:
		kind = aurora.Yellow(e.Kind.String())
	default:
		kind = aurora.Blue(e.Kind.String())
	}

	line := fmt.Sprintf("%s %s %s window=%s obstacles=%d",
		name(e.Job), axis, kind, e.Job.Window, len(e.Job.Obstacles))
	if e.Kind == EventCut || e.Kind == EventNoProgress {
		line += fmt.Sprintf(" cut=%g", e.Cut)
	}
	if e.Candidate.Area() > 0 {
		line += fmt.Sprintf(" candidate=%s", e.Candidate)
	}
	return line + fmt.Sprintf(" best=%.6g pending=%d", e.Best.Area(), e.Pending)
}
