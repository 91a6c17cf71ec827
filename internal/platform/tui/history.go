package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-rps/internal/rps"
)

// historyColumns are the columns of the per-round table in the game-over box.
var historyColumns = []table.Column{
	{Title: "#", Width: 3},
	{Title: "Goal", Width: 5},
	{Title: "CPU", Width: 9},
	{Title: "You", Width: 9},
	{Title: "Result", Width: 6},
	{Title: "Score", Width: 5},
}

// historyRows converts rounds to table rows.
func historyRows(rounds []rps.Round) []table.Row {
	rows := make([]table.Row, 0, len(rounds))
	for _, r := range rounds {
		rows = append(rows, table.Row{
			strconv.Itoa(r.Number),
			rps.Prompt(r.MustWin),
			r.ComputerMove.String(),
			r.PlayerMove.String(),
			r.Outcome.String(),
			strconv.Itoa(r.ScoreAfter),
		})
	}
	return rows
}

// newHistoryTable builds a read-only table for the finished game.
func newHistoryTable(rounds []rps.Round) table.Model {
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	st.Selected = lipgloss.NewStyle()

	return table.New(
		table.WithColumns(historyColumns),
		table.WithRows(historyRows(rounds)),
		table.WithHeight(len(rounds)+1),
		table.WithFocused(false),
		table.WithStyles(st),
	)
}
