package pointer

// Kind identifies a raw platform pointer signal before normalization.
type Kind uint8

// Raw signal kinds
const (
	MouseDown Kind = iota
	MouseMove
	MouseUp
	MouseLeave
	TouchStart
	TouchMove
	TouchEnd
	TouchCancel
)

// String returns the platform event name for the kind.
func (k Kind) String() string {
	switch k {
	case MouseDown:
		return "mousedown"
	case MouseMove:
		return "mousemove"
	case MouseUp:
		return "mouseup"
	case MouseLeave:
		return "mouseleave"
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	case TouchCancel:
		return "touchcancel"
	default:
		return "unknown"
	}
}

// Event is one raw pointer signal. Coordinates are meaningful for down/move
// kinds and zero for releases.
type Event struct {
	Kind Kind
	X    float64
	Y    float64
}

type binding struct {
	fn func(Event)
}

// Dispatcher fans raw pointer events out to bound handlers, one ordered list
// per kind. All dispatch is synchronous and happens on the caller's goroutine;
// the event loop feeding a dispatcher is assumed to be serial.
type Dispatcher struct {
	bindings map[Kind][]*binding
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		bindings: make(map[Kind][]*binding),
	}
}

// Bind registers a handler for a kind and returns its unbind function.
// Handlers run in bind order. Unbinding twice is a no-op.
func (d *Dispatcher) Bind(k Kind, fn func(Event)) func() {
	b := &binding{fn: fn}
	d.bindings[k] = append(d.bindings[k], b)

	return func() {
		list := d.bindings[k]
		for i, cur := range list {
			if cur == b {
				d.bindings[k] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers the event to every handler bound to its kind, in bind order.
// Events with no handlers are dropped silently.
func (d *Dispatcher) Emit(e Event) {
	// Copy so a handler that unbinds itself does not skew the iteration.
	list := d.bindings[e.Kind]
	snapshot := make([]*binding, len(list))
	copy(snapshot, list)

	for _, b := range snapshot {
		b.fn(e)
	}
}

// Bound reports how many handlers are currently bound for the kind.
func (d *Dispatcher) Bound(k Kind) int {
	return len(d.bindings[k])
}
