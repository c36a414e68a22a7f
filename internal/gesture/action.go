package gesture

// Action is one of the discrete gestures the recognizer can report. The set
// is closed; the string forms are part of the external contract since hosts
// key bindings and logs off them.
type Action uint8

// Actions
const (
	ActionTouch Action = iota
	ActionTouchLeft
	ActionTouchRight
	ActionTouchMiddle
	ActionMoveX
	ActionMoveY
	ActionCancelX
	ActionCancelY
	ActionSlideUp
	ActionSlideDown
	ActionSlideLeft
	ActionSlideRight

	actionCount
)

var actionNames = map[Action]string{
	ActionTouch:       "touch",
	ActionTouchLeft:   "touch-left",
	ActionTouchRight:  "touch-right",
	ActionTouchMiddle: "touch-middle",
	ActionMoveX:       "move-x",
	ActionMoveY:       "move-y",
	ActionCancelX:     "cancel-x",
	ActionCancelY:     "cancel-y",
	ActionSlideUp:     "slide-up",
	ActionSlideDown:   "slide-down",
	ActionSlideLeft:   "slide-left",
	ActionSlideRight:  "slide-right",
}

// String returns the wire name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction resolves a wire name back to its action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return actionCount, false
}

// Event is delivered to registered listeners when an action fires. Offset is
// the displacement along the locked axis and is meaningful only for
// ActionMoveX and ActionMoveY; it is zero for every other action.
type Event struct {
	Action Action
	Offset float64
}
