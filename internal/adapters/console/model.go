package console

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/stitchutils/internal/adapters/render/report"
	"github.com/bnema/stitchutils/internal/application"
	"github.com/bnema/stitchutils/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultFunctionName = "foo"
	DefaultArguments    = "[]"

	formHeight = 14
)

// Harness is the part of the invocation harness the console drives.
type Harness interface {
	Invoke(ctx context.Context, session *application.Session, cmd application.InvokeCommand) (domain.InvocationRecord, error)
	Ledger() []domain.InvocationRecord
}

type focusField int

const (
	focusName focusField = iota
	focusArgs
)

type invokeDoneMsg struct {
	record domain.InvocationRecord
	err    error
}

type model struct {
	ctx     context.Context
	session *application.Session
	harness Harness
	opts    report.JSONOptions

	name     textinput.Model
	args     textarea.Model
	spinner  spinner.Model
	results  viewport.Model
	focus    focusField
	pending  bool
	err      error
	quitting bool
}

func newModel(ctx context.Context, session *application.Session, harness Harness) model {
	name := textinput.New()
	name.Placeholder = "functionName"
	name.Prompt = "> "
	name.SetValue(DefaultFunctionName)
	name.Focus()

	args := textarea.New()
	args.Placeholder = "extended JSON"
	args.ShowLineNumbers = false
	args.SetHeight(4)
	args.SetValue(DefaultArguments)

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	m := model{
		ctx:     ctx,
		session: session,
		harness: harness,
		name:    name,
		args:    args,
		spinner: s,
		results: viewport.New(80, 12),
	}
	m.refreshResults()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.name.Width = msg.Width - 4
		m.args.SetWidth(msg.Width)
		m.results.Width = msg.Width
		m.results.Height = max(msg.Height-formHeight, 3)
		m.refreshResults()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case invokeDoneMsg:
		m.pending = false
		m.err = msg.err
		m.refreshResults()
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "shift+tab":
		return m.toggleFocus()
	case "ctrl+s":
		return m.submit()
	case "enter":
		if m.focus == focusName {
			return m.submit()
		}
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusName {
		m.focus = focusArgs
		m.name.Blur()
		return m, m.args.Focus()
	}

	m.focus = focusName
	m.args.Blur()
	return m, m.name.Focus()
}

func (m model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusName {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.args, cmd = m.args.Update(msg)
	}
	return m, cmd
}

// submit is a no-op while a call is outstanding.
func (m model) submit() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}

	m.pending = true
	m.err = nil
	command := application.InvokeCommand{
		FunctionName: m.name.Value(),
		RawArguments: m.args.Value(),
	}

	return m, tea.Batch(m.spinner.Tick, m.invoke(command))
}

func (m model) invoke(command application.InvokeCommand) tea.Cmd {
	ctx, session, harness := m.ctx, m.session, m.harness
	return func() tea.Msg {
		record, err := harness.Invoke(ctx, session, command)
		return invokeDoneMsg{record: record, err: err}
	}
}

func (m *model) refreshResults() {
	m.results.SetContent(report.LedgerView(m.harness.Ledger(), m.opts))
}

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	if m.quitting {
		return ""
	}

	header := hintStyle.Render("not logged in")
	if m.session != nil {
		user := m.session.CurrentUser()
		header = hintStyle.Render(fmt.Sprintf("%s · %s · user %s", m.session.AppID, m.session.BaseURL, user.ID))
	}

	status := hintStyle.Render("enter/ctrl+s execute · tab switch field · pgup/pgdown scroll · esc quit")
	if m.pending {
		status = fmt.Sprintf("%s Calling %s...", m.spinner.View(), m.name.Value())
	}

	parts := []string{
		header,
		"",
		labelStyle.Render("Function Name"),
		m.name.View(),
		labelStyle.Render("Function Arguments (extended JSON)"),
		m.args.View(),
		status,
	}
	if m.err != nil {
		parts = append(parts, report.ErrorView(m.err))
	}
	parts = append(parts, "", m.results.View())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the interactive console and blocks until the user quits.
func Run(ctx context.Context, session *application.Session, harness Harness, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		newModel(ctx, session, harness),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
