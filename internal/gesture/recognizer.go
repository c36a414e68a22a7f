package gesture

import (
	"log"
	"math"
	"runtime/debug"

	"touchgrip/internal/pointer"
)

// Axis is the drag direction a session locks onto once displacement passes
// the combined gate. Locked at most once per session, immutable afterwards.
type Axis uint8

// Axes
const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

type session struct {
	active bool
	start  pointer.Position
	last   pointer.Position
	axis   Axis
}

// Recognizer turns a normalized pointer stream into named gesture actions.
// It owns the ephemeral session state between a start and the matching end
// or cancel, and a registry of listeners keyed by action. All processing is
// synchronous on the event loop feeding the source; there is no locking.
type Recognizer struct {
	cfg   Config
	src   pointer.Source
	width func() float64

	listeners map[Action][]func(Event)
	session   session
	disposed  bool
}

// NewRecognizer wires a recognizer onto a pointer source. width reports the
// current surface width and is consulted only when classifying taps; a nil
// width degrades positional taps to the generic touch action.
func NewRecognizer(src pointer.Source, width func() float64, cfg Config) *Recognizer {
	r := &Recognizer{
		cfg:       cfg.normalized(),
		src:       src,
		width:     width,
		listeners: make(map[Action][]func(Event)),
	}

	src.OnStart(r.handleStart)
	src.OnMove(r.handleMove)
	src.OnEnd(r.handleEnd)
	src.OnCancel(r.handleCancel)

	return r
}

// On registers a listener for an action. Listeners for the same action fire
// in registration order and persist until Dispose; there is no single-listener
// removal.
func (r *Recognizer) On(a Action, fn func(Event)) {
	if r.disposed {
		return
	}
	r.listeners[a] = append(r.listeners[a], fn)
}

// Config returns the thresholds the recognizer was built with.
func (r *Recognizer) Config() Config {
	return r.cfg
}

func (r *Recognizer) handleStart(x, y float64) {
	if r.disposed {
		return
	}
	r.session = session{
		active: true,
		start:  pointer.Position{X: x, Y: y},
		last:   pointer.Position{X: x, Y: y},
		axis:   AxisNone,
	}
}

func (r *Recognizer) handleMove(x, y float64) {
	if r.disposed || !r.session.active {
		return
	}

	r.session.last = pointer.Position{X: x, Y: y}
	d := r.session.last.Sub(r.session.start)

	if r.session.axis == AxisNone {
		if d.Distance() <= r.cfg.minDistance() {
			return
		}
		r.session.axis = r.classify(d)
	}

	// Continuous move fires on every update once the axis is locked,
	// including the update that locked it.
	if r.session.axis == AxisHorizontal {
		r.fire(ActionMoveX, d.DX)
	} else {
		r.fire(ActionMoveY, d.DY)
	}
}

func (r *Recognizer) handleEnd() {
	if r.disposed {
		return
	}
	// An end with no session behind it is downgraded to a cancel.
	if !r.session.active {
		r.handleCancel()
		return
	}

	d := r.session.last.Sub(r.session.start)
	axis := r.session.axis
	startX := r.session.start.X
	r.session = session{}

	switch axis {
	case AxisNone:
		r.fire(r.classifyTap(startX), 0)
	case AxisHorizontal:
		switch {
		case math.Abs(d.DX) < r.cfg.MinDistanceX:
			r.fire(ActionCancelX, 0)
		case d.DX > 0:
			r.fire(ActionSlideRight, 0)
		default:
			r.fire(ActionSlideLeft, 0)
		}
	case AxisVertical:
		switch {
		case math.Abs(d.DY) < r.cfg.MinDistanceY:
			r.fire(ActionCancelY, 0)
		case d.DY > 0:
			r.fire(ActionSlideDown, 0)
		default:
			r.fire(ActionSlideUp, 0)
		}
	}
}

func (r *Recognizer) handleCancel() {
	if r.disposed || !r.session.active {
		return
	}

	axis := r.session.axis
	r.session = session{}

	switch axis {
	case AxisHorizontal:
		r.fire(ActionCancelX, 0)
	case AxisVertical:
		r.fire(ActionCancelY, 0)
	}
	// A session cancelled before any axis locked fires nothing.
}

// classify decides the locked axis from the displacement direction. Vertical
// wins only strictly inside the half-window around the vertical ray on dy's
// side; the boundary itself counts as horizontal.
func (r *Recognizer) classify(d pointer.Delta) Axis {
	ray := math.Pi / 2
	if d.DY < 0 {
		ray = -math.Pi / 2
	}
	if math.Abs(d.Angle()-ray) < r.cfg.YAngleWindow/2 {
		return AxisVertical
	}
	return AxisHorizontal
}

// classifyTap picks the tap action from the press position's horizontal zone.
func (r *Recognizer) classifyTap(startX float64) Action {
	if r.width == nil {
		return ActionTouch
	}
	w := r.width()
	if w <= 0 {
		return ActionTouch
	}

	zone := int(math.Floor(startX * float64(r.cfg.TapZones) / w))

	switch r.cfg.TapZones {
	case 2:
		if zone <= 0 {
			return ActionTouchLeft
		}
		return ActionTouchRight
	case 3:
		switch {
		case zone <= 0:
			return ActionTouchLeft
		case zone == 1:
			return ActionTouchMiddle
		default:
			return ActionTouchRight
		}
	default:
		return ActionTouch
	}
}

// fire invokes the listeners registered for the action in registration order.
// Session state has already been settled by the time this runs. A panicking
// listener is logged and does not stop the remaining listeners.
func (r *Recognizer) fire(a Action, offset float64) {
	list := r.listeners[a]
	if len(list) == 0 {
		return
	}
	snapshot := make([]func(Event), len(list))
	copy(snapshot, list)

	e := Event{Action: a, Offset: offset}
	for _, fn := range snapshot {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("gesture: listener panic for %s: %v\nStack: %s", a, rec, debug.Stack())
				}
			}()
			fn(e)
		}()
	}
}

// Dispose releases the pointer source and drops every listener. No action
// fires after the first call; further calls are no-ops.
func (r *Recognizer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.session = session{}
	r.listeners = nil
	r.src.Dispose()
}
