package pointer

// Modality is the input device currently driving a session.
type Modality uint8

// Modalities
const (
	ModalityNone Modality = iota
	ModalityMouse
	ModalityTouch
)

// Source is the uniform pointer signal stream consumed by gesture code.
// Implementations guarantee that a start always precedes moves and the
// matching end or cancel, and that mouse and touch never interleave within
// one session.
type Source interface {
	OnStart(fn func(x, y float64))
	OnMove(fn func(x, y float64))
	OnEnd(fn func())
	OnCancel(fn func())
	Dispose()
}

// Normalizer presents one element's mouse and touch interactions as a single
// ordered start/move/end/cancel stream. Presses are observed on the element
// dispatcher; once a session starts, the matching move and release signals
// are bound on the document dispatcher so the gesture keeps tracking after
// the pointer leaves the element. The document bindings are strictly paired
// with the session: added at start, removed at end or cancel.
type Normalizer struct {
	element *Dispatcher
	doc     *Dispatcher

	starts  []func(x, y float64)
	moves   []func(x, y float64)
	ends    []func()
	cancels []func()

	active        Modality
	suppressMouse bool // one-shot: synthetic mousedown after a touch

	elementUnbinds []func()
	docUnbinds     []func()
	disposed       bool
}

// NewNormalizer binds a normalizer over the element and document dispatchers.
func NewNormalizer(element, doc *Dispatcher) *Normalizer {
	n := &Normalizer{
		element: element,
		doc:     doc,
	}

	n.elementUnbinds = append(n.elementUnbinds,
		element.Bind(MouseDown, n.handleMouseDown),
		element.Bind(TouchStart, n.handleTouchStart),
	)

	return n
}

// OnStart registers a callback for session start. Multiple callbacks are
// invoked in registration order.
func (n *Normalizer) OnStart(fn func(x, y float64)) {
	n.starts = append(n.starts, fn)
}

// OnMove registers a callback for position updates within a session.
func (n *Normalizer) OnMove(fn func(x, y float64)) {
	n.moves = append(n.moves, fn)
}

// OnEnd registers a callback for normal session end.
func (n *Normalizer) OnEnd(fn func()) {
	n.ends = append(n.ends, fn)
}

// OnCancel registers a callback for session interruption.
func (n *Normalizer) OnCancel(fn func()) {
	n.cancels = append(n.cancels, fn)
}

// Active returns the modality of the session in progress, if any.
func (n *Normalizer) Active() Modality {
	return n.active
}

func (n *Normalizer) handleMouseDown(e Event) {
	if n.disposed {
		return
	}
	// The platform replays a touch contact as a mouse press; swallow it once.
	if n.suppressMouse {
		n.suppressMouse = false
		return
	}
	if n.active != ModalityNone {
		return
	}

	n.active = ModalityMouse
	n.fireStart(e.X, e.Y)
	if n.disposed {
		return
	}

	n.docUnbinds = append(n.docUnbinds,
		n.doc.Bind(MouseMove, n.handleMove),
		n.doc.Bind(MouseUp, func(Event) { n.finish(true) }),
		n.doc.Bind(MouseLeave, func(Event) { n.finish(true) }),
	)
}

func (n *Normalizer) handleTouchStart(e Event) {
	if n.disposed {
		return
	}
	n.suppressMouse = true
	if n.active != ModalityNone {
		return
	}

	n.active = ModalityTouch
	n.fireStart(e.X, e.Y)
	if n.disposed {
		return
	}

	n.docUnbinds = append(n.docUnbinds,
		n.doc.Bind(TouchMove, n.handleMove),
		n.doc.Bind(TouchEnd, func(Event) { n.finish(true) }),
		n.doc.Bind(TouchCancel, func(Event) { n.finish(false) }),
	)
}

func (n *Normalizer) handleMove(e Event) {
	if n.disposed || n.active == ModalityNone {
		return
	}
	for _, fn := range n.moves {
		fn(e.X, e.Y)
	}
}

// finish closes the session, releasing the document bindings before any
// callback runs so the add/remove pairing holds even if a callback disposes
// the normalizer.
func (n *Normalizer) finish(ended bool) {
	if n.active == ModalityNone {
		return
	}
	n.unbindDoc()
	n.active = ModalityNone

	if ended {
		for _, fn := range n.ends {
			fn()
		}
	} else {
		for _, fn := range n.cancels {
			fn()
		}
	}
}

func (n *Normalizer) fireStart(x, y float64) {
	for _, fn := range n.starts {
		fn(x, y)
	}
}

func (n *Normalizer) unbindDoc() {
	for _, unbind := range n.docUnbinds {
		unbind()
	}
	n.docUnbinds = nil
}

// Dispose removes every element- and document-scoped binding and silences all
// further callbacks. An in-progress session is abandoned without firing end
// or cancel. Safe to call more than once.
func (n *Normalizer) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true

	for _, unbind := range n.elementUnbinds {
		unbind()
	}
	n.elementUnbinds = nil
	n.unbindDoc()
	n.active = ModalityNone

	n.starts = nil
	n.moves = nil
	n.ends = nil
	n.cancels = nil
}
