package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/forsitet/kanban-board/internal/domain"
)

// Column width for the terminal board, borders included.
const terminalColumnWidth = 32

// Terminal renders the board as side-by-side columns of cards.
type Terminal struct {
	columnWidth int
	header      lipgloss.Style
	count       lipgloss.Style
	card        lipgloss.Style
	cardID      lipgloss.Style
	tags        lipgloss.Style
	warning     lipgloss.Style
}

func NewTerminal() *Terminal {
	return &Terminal{
		columnWidth: terminalColumnWidth,
		header:      lipgloss.NewStyle().Bold(true),
		count:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(terminalColumnWidth - 2),
		cardID:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		tags:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

func (r *Terminal) Render(board *domain.Board) string {
	columns := make([]string, 0, len(board.Columns))
	for _, c := range board.Columns {
		columns = append(columns, r.renderColumn(board.Grouping, c))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")
	if n := len(board.Excluded); n > 0 {
		b.WriteString(r.warning.Render(fmt.Sprintf("%d ticket(s) not shown in this view", n)))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Terminal) renderColumn(grouping domain.Grouping, c domain.Column) string {
	title := c.Title
	if icon := columnIcon(grouping, c); icon != "" {
		title = icon + " " + title
	}
	header := r.header.Render(truncate(title, r.columnWidth-6)) + " " + r.count.Render(fmt.Sprintf("%d", c.Count()))

	rows := []string{header}
	for _, t := range c.Tickets {
		rows = append(rows, r.renderCard(t))
	}

	return lipgloss.NewStyle().
		Width(r.columnWidth).
		MarginRight(1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (r *Terminal) renderCard(t domain.Ticket) string {
	inner := r.columnWidth - 4
	lines := []string{
		r.cardID.Render(t.ID),
		lipgloss.NewStyle().Width(inner).Render(t.Title),
	}
	if len(t.Tags) > 0 {
		lines = append(lines, r.tags.Render(truncate(strings.Join(t.Tags, ", "), inner)))
	}
	return r.card.Render(strings.Join(lines, "\n"))
}

// WriteTerminal renders the board and writes it to w.
func WriteTerminal(w io.Writer, board *domain.Board) error {
	if _, err := io.WriteString(w, NewTerminal().Render(board)); err != nil {
		return fmt.Errorf("write terminal board: %w", err)
	}
	return nil
}

// truncate shortens s to at most width cells, marking the cut with "…".
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)+"…") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
