package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 50 // Below this the date column is dropped
	maxRuns       = 100
)

// Scoreboard shows the best runs of the current pack for this server or
// process lifetime.
type Scoreboard struct {
	store  *storage.Store
	pack   string
	title  string
	runs   []storage.Run
	stats  *storage.PackStats
	table  table.Model
	width  int
	height int
	err    error

	withTime bool // Whether the table has the time column
}

// NewScoreboard creates a scoreboard for pack. store may be nil.
func NewScoreboard(store *storage.Store, pack, title string, width, height int) *Scoreboard {
	sb := &Scoreboard{
		store:  store,
		pack:   pack,
		title:  title,
		width:  width,
		height: height,
	}
	sb.table = sb.createTable()
	return sb
}

// createTable creates a new table sized to the scoreboard.
func (sb *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 14},
		{Title: "Apples", Width: 8},
		{Title: "Phase", Width: 7},
		{Title: "Result", Width: 10},
	}
	sb.withTime = sb.width-4 >= tableMinWidth+8
	if sb.withTime {
		columns = append(columns, table.Column{Title: "Time", Width: 8})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(sb.height-9, 3)), // Leave room for title, stats, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads the runs from the store.
func (sb *Scoreboard) Refresh(finishedReason string) {
	sb.runs, sb.stats, sb.err = nil, nil, nil
	if sb.store != nil {
		sb.runs, sb.err = sb.store.TopRuns(sb.pack, maxRuns)
		if sb.err == nil {
			sb.stats, sb.err = sb.store.Stats(sb.pack, finishedReason)
		}
	}
	sb.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (sb *Scoreboard) updateTableRows() {
	rows := make([]table.Row, len(sb.runs))
	for i, r := range sb.runs {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Phase),
			r.Reason,
		}
		if sb.withTime {
			row = append(row, r.CreatedAt.Local().Format("15:04:05"))
		}
		rows[i] = row
	}
	sb.table.SetRows(rows)
	sb.table.GotoTop()
}

// Resize adapts the layout to a new terminal size.
func (sb *Scoreboard) Resize(width, height int) {
	sb.width = width
	sb.height = height
	sb.table = sb.createTable()
	sb.updateTableRows()
}

// Update passes scrolling keys to the table.
func (sb *Scoreboard) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	sb.table, cmd = sb.table.Update(msg)
	return cmd
}

// View renders the scoreboard.
func (sb *Scoreboard) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SESSION SCORES - "+sb.title, sb.width)))
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if sb.stats != nil && sb.stats.Runs > 0 {
		summary := fmt.Sprintf("%d runs  ·  best %d  ·  avg %.1f  ·  %d finished",
			sb.stats.Runs, sb.stats.BestScore, sb.stats.AvgScore, sb.stats.Finished)
		b.WriteString(dimStyle.Render(centerText(summary, sb.width)))
		b.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(lipgloss.PlaceHorizontal(sb.width, lipgloss.Center, tableStyle.Render(sb.renderTableContent())))
	return b.String()
}

// renderTableContent renders the table or an explanatory message.
func (sb *Scoreboard) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case sb.err != nil:
		return emptyStyle.Render("Scores unavailable:\n" + sb.err.Error())
	case sb.store == nil:
		return emptyStyle.Render("Scores are disabled.")
	case len(sb.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinish a game to get on the board!")
	}
	return sb.table.View()
}
