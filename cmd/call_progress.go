package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/stitchutils/internal/adapters/render/report"
	"github.com/bnema/stitchutils/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type invokeFunc func(context.Context) (domain.InvocationRecord, error)

type callFinishedMsg struct {
	record domain.InvocationRecord
	err    error
}

// callProgressModel shows the pending function call with a running timer
// and keeps the finished record for the caller.
type callProgressModel struct {
	spinner  spinner.Model
	function string
	started  time.Time
	elapsed  time.Duration
	now      func() time.Time
	invoke   tea.Cmd

	record   domain.InvocationRecord
	err      error
	finished bool
}

func newCallProgressModel(function string, now func() time.Time, invoke tea.Cmd) callProgressModel {
	return callProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		function: function,
		started:  now(),
		now:      now,
		invoke:   invoke,
	}
}

func (m callProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.invoke)
}

func (m callProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.elapsed = m.now().Sub(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case callFinishedMsg:
		m.finished = true
		m.record = msg.record
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m callProgressModel) View() string {
	if m.finished {
		return ""
	}

	millis := m.elapsed.Milliseconds()
	timer := lipgloss.NewStyle().Foreground(report.ElapsedColor(millis)).Render(fmt.Sprintf("%dms", millis))

	return fmt.Sprintf("%s calling %s %s", m.spinner.View(), m.function, timer)
}

// runCallProgress runs invoke while rendering progress on output.
func runCallProgress(ctx context.Context, output io.Writer, function string, invoke invokeFunc) (domain.InvocationRecord, error) {
	invokeCmd := func() tea.Msg {
		record, err := invoke(ctx)
		return callFinishedMsg{record: record, err: err}
	}

	p := tea.NewProgram(
		newCallProgressModel(function, time.Now, invokeCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.InvocationRecord{}, err
	}

	result, ok := finalModel.(callProgressModel)
	if !ok {
		return domain.InvocationRecord{}, fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.record, result.err
}
