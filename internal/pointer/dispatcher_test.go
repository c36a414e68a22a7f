package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherOrder(t *testing.T) {
	d := NewDispatcher()

	var got []string
	d.Bind(MouseDown, func(Event) { got = append(got, "first") })
	d.Bind(MouseDown, func(Event) { got = append(got, "second") })
	d.Bind(MouseDown, func(Event) { got = append(got, "third") })

	d.Emit(Event{Kind: MouseDown})

	assert.Equal(t, []string{"first", "second", "third"}, got, "handlers should fire in bind order")
}

func TestDispatcherKindIsolation(t *testing.T) {
	d := NewDispatcher()

	downs := 0
	moves := 0
	d.Bind(MouseDown, func(Event) { downs++ })
	d.Bind(MouseMove, func(Event) { moves++ })

	d.Emit(Event{Kind: MouseDown})
	d.Emit(Event{Kind: MouseMove})
	d.Emit(Event{Kind: MouseMove})
	d.Emit(Event{Kind: TouchEnd}) // nobody bound, dropped silently

	assert.Equal(t, 1, downs)
	assert.Equal(t, 2, moves)
}

func TestDispatcherUnbind(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	unbind := d.Bind(MouseMove, func(Event) { calls++ })
	require.Equal(t, 1, d.Bound(MouseMove))

	d.Emit(Event{Kind: MouseMove})
	unbind()
	d.Emit(Event{Kind: MouseMove})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, d.Bound(MouseMove))

	// Unbinding twice is a no-op.
	unbind()
	assert.Equal(t, 0, d.Bound(MouseMove))
}

func TestDispatcherUnbindDuringEmit(t *testing.T) {
	d := NewDispatcher()

	var got []string
	var unbindFirst func()
	unbindFirst = d.Bind(MouseUp, func(Event) {
		got = append(got, "first")
		unbindFirst()
	})
	d.Bind(MouseUp, func(Event) { got = append(got, "second") })

	d.Emit(Event{Kind: MouseUp})

	assert.Equal(t, []string{"first", "second"}, got,
		"a handler unbinding itself must not starve later handlers")

	got = nil
	d.Emit(Event{Kind: MouseUp})
	assert.Equal(t, []string{"second"}, got)
}

func TestDispatcherUnbindMiddle(t *testing.T) {
	d := NewDispatcher()

	var got []int
	d.Bind(TouchMove, func(Event) { got = append(got, 1) })
	second := d.Bind(TouchMove, func(Event) { got = append(got, 2) })
	d.Bind(TouchMove, func(Event) { got = append(got, 3) })

	second()
	d.Emit(Event{Kind: TouchMove})

	assert.Equal(t, []int{1, 3}, got)
}

func TestKindString(t *testing.T) {
	names := map[Kind]string{
		MouseDown:   "mousedown",
		MouseMove:   "mousemove",
		MouseUp:     "mouseup",
		MouseLeave:  "mouseleave",
		TouchStart:  "touchstart",
		TouchMove:   "touchmove",
		TouchEnd:    "touchend",
		TouchCancel: "touchcancel",
	}
	for k, want := range names {
		assert.Equal(t, want, k.String())
	}
	assert.Equal(t, "unknown", Kind(200).String())
}
