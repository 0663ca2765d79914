package termio

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type progressMsg struct {
	message  string
	fraction float64
}

type progressDoneMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	styles  styles
	label   string
	detail  string
	done    bool
}

func newSpinnerModel(label string, s styles) spinnerModel {
	return spinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(s.spinner),
		),
		styles: s,
		label:  label,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressMsg:
		m.detail = FormatProgress(msg.message, msg.fraction)
		return m, nil
	case progressDoneMsg:
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}

	line := fmt.Sprintf("%s %s", m.spinner.View(), m.styles.label.Render(m.label))
	if m.detail != "" {
		line += " " + m.styles.progress.Render(m.detail)
	}

	return line
}

// FormatProgress renders a progress message, with a percentage when the
// fraction is known.
func FormatProgress(message string, fraction float64) string {
	if fraction < 0 {
		return message
	}
	if fraction > 1 {
		fraction = 1
	}

	return fmt.Sprintf("%s (%.0f%%)", message, fraction*100)
}

// spinnerTracker renders progress on a terminal until Done is called.
type spinnerTracker struct {
	program  *tea.Program
	finished chan struct{}
	cancel   context.CancelFunc
}

func startSpinner(output io.Writer, label string, s styles) *spinnerTracker {
	ctx, cancel := context.WithCancel(context.Background())
	program := tea.NewProgram(
		newSpinnerModel(label, s),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	tracker := &spinnerTracker{
		program:  program,
		finished: make(chan struct{}),
		cancel:   cancel,
	}

	go func() {
		defer close(tracker.finished)
		_, _ = program.Run()
	}()

	return tracker
}

func (t *spinnerTracker) Progress(message string, fraction float64) {
	t.program.Send(progressMsg{message: message, fraction: fraction})
}

func (t *spinnerTracker) Done() {
	t.program.Send(progressDoneMsg{})
	<-t.finished
	t.cancel()
}

type silentTracker struct{}

func (silentTracker) Progress(string, float64) {}

func (silentTracker) Done() {}
