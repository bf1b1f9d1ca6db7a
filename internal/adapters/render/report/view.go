package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/stitchutils/internal/application"
	"github.com/bnema/stitchutils/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// slowCallThreshold is the elapsed time rendered in the dimmest shade.
const slowCallThreshold = 2 * time.Second

func RenderSession(status application.SessionStatus) (string, error) {
	return render(func(s styles) string {
		return sessionView(status, s)
	})
}

func RenderLedger(records []domain.InvocationRecord, opts JSONOptions) (string, error) {
	return render(func(s styles) string {
		return ledgerView(records, opts, s)
	})
}

func RenderExchange(exchange domain.CodecExchange) (string, error) {
	return render(func(s styles) string {
		return exchangeView(exchange, s)
	})
}

// LedgerView renders records for an already running program.
func LedgerView(records []domain.InvocationRecord, opts JSONOptions) string {
	return ledgerView(records, opts, newStyles())
}

func ErrorView(err error) string {
	if err == nil {
		return ""
	}
	return newStyles().errText.Render(err.Error())
}

func sessionView(status application.SessionStatus, s styles) string {
	if !status.LoggedIn {
		return s.empty.Render("Not logged in.")
	}

	token := status.User.AccessToken
	if token == "" {
		token = "(none)"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Stitch session"),
		field("app", fmt.Sprintf("%s (%s)", status.AppID, status.BaseURL), s),
		field("user", status.User.ID, s),
		field("access token", token, s),
	)
}

func ledgerView(records []domain.InvocationRecord, opts JSONOptions, s styles) string {
	lines := []string{
		s.title.Render("Results"),
		s.header.Render(fmt.Sprintf("calls: %d", len(records))),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No calls yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, record := range records {
		block := recordView(record, opts, s)
		if i > 0 {
			block = lipgloss.JoinVertical(lipgloss.Left, s.rule.Render(strings.Repeat("─", 24)), block)
		}
		lines = append(lines, s.section.Render(block))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func recordView(record domain.InvocationRecord, opts JSONOptions, s styles) string {
	elapsed := lipgloss.NewStyle().Italic(true).Foreground(ElapsedColor(record.ElapsedMillis)).
		Render(fmt.Sprintf("%dms", record.ElapsedMillis))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, s.function.Render(record.FunctionName), " ", elapsed),
		s.label.Render("Arguments:"),
		s.value.Render(FormatJSON(record.Arguments, opts)),
		s.label.Render("Result:"),
		s.value.Render(FormatJSON(record.Result, opts)),
	)
}

func exchangeView(exchange domain.CodecExchange, s styles) string {
	if exchange.Failed() {
		return s.errText.Render(exchange.Error)
	}
	return exchange.Output
}

func field(name, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(name+":"), " ", s.value.Render(value))
}

// ElapsedColor fades from bright white for instant calls to grey for slow ones.
func ElapsedColor(elapsedMillis int64) lipgloss.Color {
	inverted := float64(slowCallThreshold.Milliseconds() - elapsedMillis)
	return interpolateColor(inverted, 0, float64(slowCallThreshold.Milliseconds()))
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale: 240 is faded, 255 is bright white.
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
