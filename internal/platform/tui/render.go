package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-rps/internal/config"
	"github.com/vovakirdan/tui-rps/internal/rps"
)

// Styles holds the lipgloss styles used by the game screen.
type Styles struct {
	Title    lipgloss.Style
	Score    lipgloss.Style
	Muted    lipgloss.Style
	Win      lipgloss.Style
	Lose     lipgloss.Style
	Tie      lipgloss.Style
	Computer lipgloss.Style
	Button   lipgloss.Style
	Focused  lipgloss.Style
	Modal    lipgloss.Style
}

// NewStyles builds styles from the configured theme.
func NewStyles(theme config.ThemeConfig) Styles {
	accent := lipgloss.Color(theme.Accent)
	muted := lipgloss.Color(theme.Muted)

	button := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Score:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Win:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Win)),
		Lose:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Lose)),
		Tie:      lipgloss.NewStyle().Bold(true).Foreground(muted),
		Computer: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Button:   button,
		Focused:  button.BorderForeground(accent).Foreground(accent).Bold(true),
		Modal: lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Align(lipgloss.Center),
	}
}

// objective renders the "Win"/"Lose" prompt.
func (s Styles) objective(mustWin bool) string {
	if mustWin {
		return s.Win.Render(rps.Prompt(true))
	}
	return s.Lose.Render(rps.Prompt(false))
}

// outcome renders an outcome with its color and score delta.
func (s Styles) outcome(o rps.Outcome) string {
	text := fmt.Sprintf("%s (%+d)", o, o.Delta())
	switch o {
	case rps.Win:
		return s.Win.Render(text)
	case rps.Lose:
		return s.Lose.Render(text)
	default:
		return s.Tie.Render(text)
	}
}

// buttons renders the three move controls with the focused one highlighted.
func (s Styles) buttons(focused int) string {
	moves := rps.Moves()
	rendered := make([]string, 0, len(moves))
	for i, m := range moves {
		style := s.Button
		if i == focused {
			style = s.Focused
		}
		rendered = append(rendered, style.Render(m.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// lastRound describes the previous round in one line.
func (s Styles) lastRound(r rps.Round) string {
	return fmt.Sprintf("Round %d: you played %s against %s, goal %s: %s",
		r.Number, r.PlayerMove, r.ComputerMove, strings.ToLower(rps.Prompt(r.MustWin)), s.outcome(r.Outcome))
}
