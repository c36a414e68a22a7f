package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource stands in for a pointer normalizer.
type fakeSource struct {
	starts   []func(x, y float64)
	moves    []func(x, y float64)
	ends     []func()
	cancels  []func()
	disposed int
}

func (f *fakeSource) OnStart(fn func(x, y float64)) { f.starts = append(f.starts, fn) }
func (f *fakeSource) OnMove(fn func(x, y float64))  { f.moves = append(f.moves, fn) }
func (f *fakeSource) OnEnd(fn func())               { f.ends = append(f.ends, fn) }
func (f *fakeSource) OnCancel(fn func())            { f.cancels = append(f.cancels, fn) }
func (f *fakeSource) Dispose()                      { f.disposed++ }

func (f *fakeSource) start(x, y float64) {
	for _, fn := range f.starts {
		fn(x, y)
	}
}

func (f *fakeSource) move(x, y float64) {
	for _, fn := range f.moves {
		fn(x, y)
	}
}

func (f *fakeSource) end() {
	for _, fn := range f.ends {
		fn()
	}
}

// manualScheduler holds deferred work until the test flushes a tick.
type manualScheduler struct {
	fns []func()
}

func (m *manualScheduler) Schedule(fn func()) { m.fns = append(m.fns, fn) }

func (m *manualScheduler) tick() {
	fns := m.fns
	m.fns = nil
	for _, fn := range fns {
		fn()
	}
}

type fixture struct {
	src   *fakeSource
	sched *manualScheduler
	s     *Slider
	emits []float64
}

func newFixture(cfg Config) *fixture {
	f := &fixture{src: &fakeSource{}, sched: &manualScheduler{}}
	f.s = New(f.src, f.sched, cfg)
	f.s.OnChange(func(v float64) { f.emits = append(f.emits, v) })
	return f
}

func TestSetRatioFullPinsToMax(t *testing.T) {
	// Ratio 1 bypasses step rounding entirely: with max 9 and step 4 the
	// general formula would land on 8, but a full ratio must mean max. This
	// asymmetry (ratio 0 gets no such shortcut) is deliberate, inherited
	// behavior.
	f := newFixture(Config{Min: 0, Max: 9, Step: 4, TrackLength: 100})

	f.s.SetRatio(0.999)
	f.sched.tick()
	require.Equal(t, []float64{8}, f.emits, "near-full ratio snaps to the step grid")

	f.s.SetRatio(1)
	f.sched.tick()
	assert.Equal(t, []float64{8, 9}, f.emits, "full ratio pins to max")
}

func TestSetRatioZeroTakesGeneralPath(t *testing.T) {
	// Ratio 0 has no shortcut; it flows through the stepped-and-clamped
	// formula, which happens to produce min anyway.
	f := newFixture(Config{Min: 5, Max: 105, Step: 10, TrackLength: 100})

	f.s.SetRatio(0.5)
	f.sched.tick()
	require.Equal(t, []float64{55}, f.emits)

	f.s.SetRatio(0)
	f.sched.tick()
	assert.Equal(t, []float64{55, 5}, f.emits)
}

func TestSetRatioClampsOutOfRange(t *testing.T) {
	f := newFixture(Config{Min: 0, Max: 10, TrackLength: 100})

	f.s.SetRatio(2.5)
	f.sched.tick()
	f.s.SetRatio(-1)
	f.sched.tick()

	assert.Equal(t, []float64{10, 0}, f.emits)
}

func TestStepRounding(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{name: "round down to grid", ratio: 0.1, want: 0},   // 1.1 -> 0
		{name: "round up to grid", ratio: 0.3, want: 4},     // 3.3 -> 4
		{name: "clamp after rounding", ratio: 0.95, want: 11}, // 10.45 -> 12 -> 11
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(Config{Min: 0, Max: 11, Step: 4, TrackLength: 100})
			f.s.SetRatio(tt.ratio)
			f.sched.tick()
			require.Len(t, f.emits, 1)
			assert.InDelta(t, tt.want, f.emits[0], 1e-9)
		})
	}
}

func TestPendingValueCoalesces(t *testing.T) {
	f := newFixture(Config{Min: 0, Max: 100, TrackLength: 100})

	// A burst of updates within one tick applies only the last one.
	f.s.SetRatio(0.2)
	f.s.SetRatio(0.4)
	f.s.SetRatio(0.6)
	assert.Empty(t, f.emits, "nothing applies before the tick")

	f.sched.tick()
	assert.Equal(t, []float64{60}, f.emits)
	assert.Equal(t, 60.0, f.s.Value())
}

func TestUnchangedValueDoesNotEmit(t *testing.T) {
	f := newFixture(Config{Min: 0, Max: 100, TrackLength: 100})

	f.s.SetValue(0) // already the initial value
	f.sched.tick()

	assert.Empty(t, f.emits)
}

func TestDragMovesValue(t *testing.T) {
	f := newFixture(Config{Min: 0, Max: 100, TrackLength: 100})

	f.src.start(10, 0)
	f.src.move(35, 0) // dx 25 over a 100-long track: +25% of the range
	f.sched.tick()

	require.Equal(t, []float64{25}, f.emits)
	assert.True(t, f.s.Dragging())

	f.src.end()
	assert.False(t, f.s.Dragging())
}

func TestDragIsRelativeToGrabValue(t *testing.T) {
	f := newFixture(Config{Min: 0, Max: 100, TrackLength: 100})
	f.s.SetValue(50)
	f.sched.tick()

	f.src.start(80, 0)
	f.src.move(60, 0) // drag left by 20
	f.sched.tick()

	assert.Equal(t, []float64{50, 30}, f.emits)
}

func TestDragIgnoresVerticalComponent(t *testing.T) {
	f := newFixture(Config{Min: 0, Max: 100, TrackLength: 100})

	f.src.start(10, 0)
	f.src.move(10, 40)
	f.sched.tick()

	assert.Empty(t, f.emits, "pure vertical motion does not move the thumb")
}

func TestRatioAccessor(t *testing.T) {
	f := newFixture(Config{Min: 50, Max: 150, TrackLength: 100})
	f.s.SetValue(75)
	f.sched.tick()

	assert.InDelta(t, 0.25, f.s.Ratio(), 1e-9)
}

func TestDisposeSilences(t *testing.T) {
	f := newFixture(Config{Min: 0, Max: 100, TrackLength: 100})

	f.s.SetRatio(0.5)
	f.s.Dispose()
	assert.NotPanics(t, f.s.Dispose)
	assert.Equal(t, 1, f.src.disposed)

	f.sched.tick() // flush of the staged value arrives after dispose
	assert.Empty(t, f.emits)

	f.src.start(0, 0)
	f.src.move(50, 0)
	f.sched.tick()
	assert.Empty(t, f.emits)
}
