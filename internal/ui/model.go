package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"touchgrip/internal/config"
	"touchgrip/internal/gesture"
	"touchgrip/internal/pointer"
	"touchgrip/internal/slider"
)

// Terminal cells are roughly twice as tall as wide; vertical displacement is
// scaled so diagonal classification behaves the same on both axes.
const cellAspect = 2.0

// How far one slide pages the slider.
const slidePage = 10.0

const logBoxWidth = 34
const trackWidth = 40

type tickMsg time.Time

// LogEntry is one recorded action.
type LogEntry struct {
	At        time.Time
	Action    string
	Offset    float64
	HasOffset bool
}

// frameScheduler queues deferred work and drains it once per UI tick. It is
// the slider's refresh boundary: many staged values, one applied change per
// drain.
type frameScheduler struct {
	queue []func()
}

func (f *frameScheduler) Schedule(fn func()) {
	f.queue = append(f.queue, fn)
}

func (f *frameScheduler) drain() {
	queue := f.queue
	f.queue = nil
	for _, fn := range queue {
		fn()
	}
}

type keyMap struct {
	Trace key.Binding
	Clear key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Trace, k.Clear, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Trace, k.Clear},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Trace: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trace in pager"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the UI state for the gesture playground.
type Model struct {
	cfg    *config.Config
	styles *Styles
	keys   keyMap
	help   help.Model

	// Pointer plumbing. The surface and the slider each get their own
	// element and document dispatchers; the terminal plays the document and
	// the model fans motion out in each element's coordinate frame.
	surfaceEl  *pointer.Dispatcher
	surfaceDoc *pointer.Dispatcher
	sliderEl   *pointer.Dispatcher
	sliderDoc  *pointer.Dispatcher

	recognizer *gesture.Recognizer
	sld        *slider.Slider
	sched      *frameScheduler
	trace      *TraceOps

	logView viewport.Model
	entries []LogEntry

	width  int
	height int

	// Interior rectangle of the gesture surface, in screen cells.
	surfaceX int
	surfaceY int
	surfaceW int
	surfaceH int

	// Slider track position.
	trackX int
	trackY int

	pressed     bool
	lastAction  string
	liveOffset  float64
	liveAxis    string
	sliderValue float64
}

// NewModel creates the playground model and wires the full pipeline:
// terminal mouse -> dispatchers -> normalizers -> recognizer/slider.
func NewModel(cfg *config.Config) *Model {
	m := &Model{
		cfg:        cfg,
		styles:     NewStyles(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		surfaceEl:  pointer.NewDispatcher(),
		surfaceDoc: pointer.NewDispatcher(),
		sliderEl:   pointer.NewDispatcher(),
		sliderDoc:  pointer.NewDispatcher(),
		sched:      &frameScheduler{},
		trace:      NewTraceOps(nil),
		logView:    viewport.New(logBoxWidth-4, 10),
	}

	norm := pointer.NewNormalizer(m.surfaceEl, m.surfaceDoc)
	m.recognizer = gesture.NewRecognizer(norm,
		func() float64 { return float64(m.surfaceW) },
		cfg.Gestures.GestureConfig())

	sliderNorm := pointer.NewNormalizer(m.sliderEl, m.sliderDoc)
	m.sld = slider.New(sliderNorm, m.sched, slider.Config{
		Min:         cfg.Slider.Min,
		Max:         cfg.Slider.Max,
		Step:        cfg.Slider.Step,
		TrackLength: trackWidth,
	})
	m.sliderValue = m.sld.Value()
	m.sld.OnChange(func(v float64) {
		m.sliderValue = v
	})

	m.wireActions()
	return m
}

// wireActions registers the demo's reactions plus a log entry for every
// action in the vocabulary.
func (m *Model) wireActions() {
	all := []gesture.Action{
		gesture.ActionTouch, gesture.ActionTouchLeft, gesture.ActionTouchRight,
		gesture.ActionTouchMiddle, gesture.ActionMoveX, gesture.ActionMoveY,
		gesture.ActionCancelX, gesture.ActionCancelY, gesture.ActionSlideUp,
		gesture.ActionSlideDown, gesture.ActionSlideLeft, gesture.ActionSlideRight,
	}
	for _, a := range all {
		a := a
		m.recognizer.On(a, func(e gesture.Event) {
			m.recordAction(e)
		})
	}

	// Reader-style navigation: slides page, taps jump.
	m.recognizer.On(gesture.ActionSlideLeft, func(gesture.Event) {
		m.sld.SetValue(m.sld.Value() - slidePage)
	})
	m.recognizer.On(gesture.ActionSlideRight, func(gesture.Event) {
		m.sld.SetValue(m.sld.Value() + slidePage)
	})
	m.recognizer.On(gesture.ActionTouchLeft, func(gesture.Event) {
		m.sld.SetRatio(0)
	})
	m.recognizer.On(gesture.ActionTouchMiddle, func(gesture.Event) {
		m.sld.SetRatio(0.5)
	})
	m.recognizer.On(gesture.ActionTouchRight, func(gesture.Event) {
		m.sld.SetRatio(1)
	})
}

func (m *Model) recordAction(e gesture.Event) {
	name := e.Action.String()
	hasOffset := e.Action == gesture.ActionMoveX || e.Action == gesture.ActionMoveY

	if hasOffset {
		m.liveOffset = e.Offset
		if e.Action == gesture.ActionMoveX {
			m.liveAxis = "x"
		} else {
			m.liveAxis = "y"
		}
	} else {
		m.lastAction = name
		m.liveAxis = ""
	}

	m.entries = append(m.entries, LogEntry{
		At:        time.Now(),
		Action:    name,
		Offset:    e.Offset,
		HasOffset: hasOffset,
	})
	m.refreshLog()
}

func (m *Model) refreshLog() {
	var b strings.Builder
	for _, e := range m.entries {
		b.WriteString(m.styles.Dim.Render(e.At.Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(m.styles.ActionColor(e.Action).Render(e.Action))
		if e.HasOffset {
			b.WriteString(m.styles.Dim.Render(fmt.Sprintf(" %+.0f", e.Offset)))
		}
		b.WriteString("\n")
	}
	m.logView.SetContent(b.String())
	m.logView.GotoBottom()
}

// SetProgram hands the model the running program for pager terminal handoff.
func (m *Model) SetProgram(p *tea.Program) {
	m.trace.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayout()

	case tickMsg:
		m.sched.drain()
		return m, m.tick()

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tracePagerMsg:
		if msg.err != nil {
			log.Printf("trace pager failed: %v", msg.err)
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.recognizer.Dispose()
			m.sld.Dispose()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.entries = nil
			m.lastAction = ""
			m.liveAxis = ""
			m.refreshLog()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Trace):
			content := RenderTrace(m.entries)
			return m, func() tea.Msg {
				return tracePagerMsg{err: m.trace.ShowTraceInPager(content)}
			}
		}
	}

	return m, nil
}

func (m *Model) updateLayout() {
	m.surfaceX = 1
	m.surfaceY = 3
	m.surfaceW = m.width - logBoxWidth - 4
	if m.surfaceW < 12 {
		m.surfaceW = 12
	}
	m.surfaceH = m.height - 10
	if m.surfaceH < 4 {
		m.surfaceH = 4
	}

	m.trackX = 10
	m.trackY = m.surfaceY + m.surfaceH + 2

	m.logView.Width = logBoxWidth - 4
	m.logView.Height = m.surfaceH
	m.refreshLog()
}

// handleMouse translates terminal mouse input into raw pointer events.
// Presses are delivered to the element the pointer is over; motion and
// releases go to the document dispatchers so an in-progress gesture keeps
// tracking outside the element.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pressed = true
		switch {
		case m.inSurface(msg.X, msg.Y):
			x, y := m.surfaceLocal(msg.X, msg.Y)
			m.surfaceEl.Emit(pointer.Event{Kind: pointer.MouseDown, X: x, Y: y})
		case m.inTrack(msg.X, msg.Y):
			x, y := m.trackLocal(msg.X, msg.Y)
			m.sliderEl.Emit(pointer.Event{Kind: pointer.MouseDown, X: x, Y: y})
		}

	case tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		x, y := m.surfaceLocal(msg.X, msg.Y)
		m.surfaceDoc.Emit(pointer.Event{Kind: pointer.MouseMove, X: x, Y: y})
		x, y = m.trackLocal(msg.X, msg.Y)
		m.sliderDoc.Emit(pointer.Event{Kind: pointer.MouseMove, X: x, Y: y})

	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		m.surfaceDoc.Emit(pointer.Event{Kind: pointer.MouseUp})
		m.sliderDoc.Emit(pointer.Event{Kind: pointer.MouseUp})
	}
}

func (m *Model) inSurface(x, y int) bool {
	return x >= m.surfaceX && x < m.surfaceX+m.surfaceW &&
		y >= m.surfaceY && y < m.surfaceY+m.surfaceH
}

func (m *Model) inTrack(x, y int) bool {
	return y == m.trackY && x >= m.trackX && x < m.trackX+trackWidth
}

func (m *Model) surfaceLocal(x, y int) (float64, float64) {
	return float64(x - m.surfaceX), float64(y-m.surfaceY) * cellAspect
}

func (m *Model) trackLocal(x, y int) (float64, float64) {
	return float64(x - m.trackX), float64(y - m.trackY)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("touchgrip — gesture playground"))
	b.WriteString("\n\n")

	surface := m.renderSurface()
	logBox := m.styles.LogBox.Render(m.logView.View())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, surface, " ", logBox))
	b.WriteString("\n\n")

	b.WriteString(m.renderSlider())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return b.String()
}

func (m *Model) renderSurface() string {
	zones := m.cfg.Gestures.TapZones
	hint := "drag, swipe or tap here"
	hintRow := m.surfaceH / 2

	lines := make([]string, m.surfaceH)
	for row := 0; row < m.surfaceH; row++ {
		line := make([]rune, m.surfaceW)
		for col := range line {
			line[col] = ' '
		}
		// Mark tap zone boundaries when the split is positional.
		if zones == 2 || zones == 3 {
			for z := 1; z < zones; z++ {
				col := z * m.surfaceW / zones
				if col > 0 && col < m.surfaceW {
					line[col] = '·'
				}
			}
		}
		lines[row] = string(line)
	}

	if hintRow < len(lines) && len(hint) < m.surfaceW {
		pad := (m.surfaceW - len(hint)) / 2
		row := []rune(lines[hintRow])
		copy(row[pad:], []rune(hint))
		lines[hintRow] = string(row)
	}

	interior := m.styles.Zone.Render(strings.Join(lines, "\n"))
	if m.pressed {
		return m.styles.SurfaceHot.Render(interior)
	}
	return m.styles.Surface.Render(interior)
}

func (m *Model) renderSlider() string {
	ratio := m.sld.Ratio()
	thumb := int(ratio * float64(trackWidth-1))
	if thumb < 0 {
		thumb = 0
	}
	if thumb >= trackWidth {
		thumb = trackWidth - 1
	}

	var track strings.Builder
	for i := 0; i < trackWidth; i++ {
		if i == thumb {
			track.WriteString(m.styles.Thumb.Render("●"))
		} else {
			track.WriteString(m.styles.Track.Render("─"))
		}
	}

	label := "  slider  " // keep in sync with trackX
	return label + track.String() +
		m.styles.Dim.Render(fmt.Sprintf("  %.0f / %.0f", m.sliderValue, m.cfg.Slider.Max))
}

func (m *Model) renderStatus() string {
	switch {
	case m.liveAxis != "":
		return m.styles.Status.Render(
			fmt.Sprintf("dragging: move-%s offset %+.0f", m.liveAxis, m.liveOffset))
	case m.lastAction != "":
		return m.styles.Status.Render("last action: " + m.lastAction)
	default:
		return m.styles.Status.Render("waiting for input")
	}
}
