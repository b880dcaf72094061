package status

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/gamekit/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LoopTask runs the save loop and calls report after each handled signal.
type LoopTask func(ctx context.Context, report func(domain.LifecycleSignal, error)) error

type loopSignalMsg struct {
	signal domain.LifecycleSignal
	err    error
	at     time.Time
}

type loopDoneMsg struct {
	err error
}

// loopModel renders one status line for the running save loop. Counters only
// move on signals reported by the task.
type loopModel struct {
	spinner spinner.Model
	styles  styles
	label   string
	task    tea.Cmd
	now     func() time.Time
	started time.Time

	handled int
	failed  int
	last    *loopSignalMsg

	err  error
	done bool
}

func newLoopModel(label string, task tea.Cmd, now func() time.Time) loopModel {
	s := newStyles()
	return loopModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.key)),
		styles:  s,
		label:   label,
		task:    task,
		now:     now,
		started: now(),
	}
}

func (m loopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.task)
}

func (m loopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loopSignalMsg:
		m.handled++
		if msg.err != nil {
			m.failed++
		}
		m.last = &msg
		return m, nil
	case loopDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m loopModel) View() string {
	if m.done {
		return ""
	}

	parts := []string{
		fmt.Sprintf("%s %s", m.spinner.View(), m.label),
		m.styles.meta.Render(m.now().Sub(m.started).Truncate(time.Second).String()),
		m.styles.meta.Render(fmt.Sprintf("%d handled", m.handled)),
	}
	if m.failed > 0 {
		parts = append(parts, m.styles.warning.Render(fmt.Sprintf("%d failed", m.failed)))
	}
	if m.last != nil {
		parts = append(parts, m.lastLine())
	}

	return strings.Join(parts, "  ")
}

func (m loopModel) lastLine() string {
	at := m.last.at.Local().Format(time.TimeOnly)
	if m.last.err != nil {
		return m.styles.warning.Render(fmt.Sprintf("last: %s failed at %s: %v", m.last.signal, at, m.last.err))
	}
	return m.styles.detail.Render(fmt.Sprintf("last: %s at %s", m.last.signal, at))
}

// RunLoop shows the loop status on output until task returns and yields the
// task's error. OS signals are left to the task, so the program installs no
// handler of its own.
func RunLoop(ctx context.Context, output io.Writer, label string, task LoopTask) error {
	var p *tea.Program
	report := func(sig domain.LifecycleSignal, err error) {
		p.Send(loopSignalMsg{signal: sig, err: err, at: time.Now()})
	}
	taskCmd := func() tea.Msg {
		return loopDoneMsg{err: task(ctx, report)}
	}

	p = tea.NewProgram(
		newLoopModel(label, taskCmd, time.Now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithoutSignalHandler(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(loopModel)
	if !ok {
		return ErrUnexpectedRenderModel
	}

	return result.err
}
