// Package slider implements a 1-D numeric slider that reuses the pointer
// stream for horizontal dragging. Value changes are not applied inline:
// they land in a single-slot pending buffer and are emitted at most once per
// display-refresh tick through the host's scheduler.
package slider

import (
	"math"

	"touchgrip/internal/pointer"
)

// Scheduler defers a function to the host's next display-refresh
// opportunity. Implementations must run callbacks serially on the same event
// loop that feeds the slider's pointer source.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a plain function to the Scheduler interface.
type SchedulerFunc func(fn func())

// Schedule calls f(fn).
func (f SchedulerFunc) Schedule(fn func()) { f(fn) }

// Config describes the slider's value space and track geometry.
type Config struct {
	Min  float64
	Max  float64
	Step float64 // 0 disables step rounding

	// TrackLength is the draggable extent in input units; a full-length drag
	// sweeps the whole value range.
	TrackLength float64
}

// Slider is a numeric slider driven by 1-D pointer drags.
type Slider struct {
	cfg   Config
	sched Scheduler
	src   pointer.Source

	value     float64
	grabValue float64
	grabX     float64
	dragging  bool

	pending   *float64
	scheduled bool
	onChange  []func(value float64)
	disposed  bool
}

// New builds a slider over a pointer source. The source's vertical component
// is ignored; only horizontal displacement moves the thumb.
func New(src pointer.Source, sched Scheduler, cfg Config) *Slider {
	if cfg.Max < cfg.Min {
		cfg.Min, cfg.Max = cfg.Max, cfg.Min
	}
	if cfg.TrackLength <= 0 {
		cfg.TrackLength = 1
	}

	s := &Slider{
		cfg:   cfg,
		sched: sched,
		src:   src,
		value: cfg.Min,
	}

	src.OnStart(s.handleStart)
	src.OnMove(s.handleMove)
	src.OnEnd(s.handleEnd)
	src.OnCancel(s.handleEnd)

	return s
}

// OnChange registers a callback for applied value changes. Callbacks run in
// registration order, once per refresh tick at most.
func (s *Slider) OnChange(fn func(value float64)) {
	s.onChange = append(s.onChange, fn)
}

// Value returns the last applied value. A pending, not yet flushed change is
// not visible here.
func (s *Slider) Value() float64 {
	return s.value
}

// Ratio returns the applied value's position in the range as [0, 1].
func (s *Slider) Ratio() float64 {
	if s.cfg.Max == s.cfg.Min {
		return 0
	}
	return (s.value - s.cfg.Min) / (s.cfg.Max - s.cfg.Min)
}

// Dragging reports whether a drag session is in progress.
func (s *Slider) Dragging() bool {
	return s.dragging
}

func (s *Slider) handleStart(x, _ float64) {
	if s.disposed {
		return
	}
	s.dragging = true
	s.grabX = x
	s.grabValue = s.value
}

func (s *Slider) handleMove(x, _ float64) {
	if s.disposed || !s.dragging {
		return
	}
	startRatio := 0.0
	if s.cfg.Max != s.cfg.Min {
		startRatio = (s.grabValue - s.cfg.Min) / (s.cfg.Max - s.cfg.Min)
	}
	s.SetRatio(startRatio + (x-s.grabX)/s.cfg.TrackLength)
}

func (s *Slider) handleEnd() {
	s.dragging = false
}

// SetRatio positions the thumb at a fraction of the range. A ratio of
// exactly 1 pins the value to Max before any step rounding; every other
// ratio, including exactly 0, goes through the general stepped-and-clamped
// computation.
func (s *Slider) SetRatio(ratio float64) {
	if s.disposed {
		return
	}
	if ratio == 1 {
		s.setValue(s.cfg.Max)
		return
	}

	v := s.cfg.Min + (s.cfg.Max-s.cfg.Min)*ratio
	if s.cfg.Step > 0 {
		v = s.cfg.Min + math.Round((v-s.cfg.Min)/s.cfg.Step)*s.cfg.Step
	}
	v = math.Max(s.cfg.Min, math.Min(s.cfg.Max, v))
	s.setValue(v)
}

// SetValue stages an absolute value, clamped to the range.
func (s *Slider) SetValue(v float64) {
	if s.disposed {
		return
	}
	s.setValue(math.Max(s.cfg.Min, math.Min(s.cfg.Max, v)))
}

// setValue stages the value and schedules one flush. Repeated calls before
// the flush overwrite the slot, so a burst of updates applies only the last.
func (s *Slider) setValue(v float64) {
	s.pending = &v
	if s.scheduled {
		return
	}
	s.scheduled = true
	s.sched.Schedule(s.flush)
}

func (s *Slider) flush() {
	s.scheduled = false
	if s.disposed || s.pending == nil {
		return
	}
	v := *s.pending
	s.pending = nil
	if v == s.value {
		return
	}
	s.value = v
	for _, fn := range s.onChange {
		fn(v)
	}
}

// Dispose releases the pointer source and silences further changes.
// Idempotent.
func (s *Slider) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.pending = nil
	s.onChange = nil
	s.src.Dispose()
}
