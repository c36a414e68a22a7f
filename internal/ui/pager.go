package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// tracePagerMsg contains the result of a trace pager command
type tracePagerMsg struct {
	err error
}

// TraceOps shows the recorded action trace in the ov pager.
type TraceOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewTraceOps creates a new trace operations instance
func NewTraceOps(program *tea.Program) *TraceOps {
	return &TraceOps{
		program: program,
	}
}

// SetProgram sets the program reference for terminal management
func (t *TraceOps) SetProgram(p *tea.Program) {
	t.program = p
}

// RenderTrace formats the recorded action log for the pager.
func RenderTrace(entries []LogEntry) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)
	timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	offsetStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	styles := NewStyles()

	var b strings.Builder
	b.WriteString(titleStyle.Render("touchgrip action trace"))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("no actions recorded yet"))
		b.WriteString("\n")
		return b.String()
	}

	for _, e := range entries {
		b.WriteString(fmt.Sprintf("  %s  %s",
			timeStyle.Render(e.At.Format("15:04:05.000")),
			styles.ActionColor(e.Action).Render(fmt.Sprintf("%-12s", e.Action))))
		if e.HasOffset {
			b.WriteString(offsetStyle.Render(fmt.Sprintf("  offset %+.1f", e.Offset)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// ShowTraceInPager shows the trace using the ov pager, handing the terminal
// over for the duration of the pager session.
func (t *TraceOps) ShowTraceInPager(content string) error {
	if t.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := t.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = t.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
