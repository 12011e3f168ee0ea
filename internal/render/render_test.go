package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forsitet/kanban-board/internal/domain"
)

func prio(v int) *int {
	return &v
}

func statusBoard() *domain.Board {
	return &domain.Board{
		Grouping: domain.GroupByStatus,
		Ordering: domain.OrderByTitle,
		Columns: []domain.Column{
			{
				Key: "backlog", Title: "Backlog", Status: domain.StatusBacklog,
				Tickets: []domain.Ticket{
					{ID: "CAM-4", Title: "Implement <email> notification", Status: "Backlog", Priority: prio(0), UserID: "usr-1", Tags: []string{"Feature Request", "Email"}},
				},
			},
			{Key: "todo", Title: "Todo", Status: domain.StatusTodo, Tickets: []domain.Ticket{}},
		},
		Excluded: []domain.Exclusion{{TicketID: "CAM-3", Reason: domain.ReasonUnknownStatus, Value: "Archived"}},
	}
}

func TestHTML_StatusBoard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, statusBoard()))
	page := buf.String()

	assert.Contains(t, page, `<option value="status" selected>Status</option>`)
	assert.Contains(t, page, `<option value="title" selected>Title</option>`)
	assert.Contains(t, page, `<span class="title">Backlog</span>`)
	assert.Contains(t, page, `<span class="count">1</span>`)
	assert.Contains(t, page, `<span class="count">0</span>`)
	assert.Contains(t, page, `id="ticket-CAM-4"`)
	assert.Contains(t, page, "Implement &lt;email&gt; notification")
	assert.Contains(t, page, "Feature Request, Email")
	assert.Contains(t, page, "https://i.pravatar.cc/150?u=usr-1")
	assert.NotContains(t, page, "CAM-3")
	assert.NotContains(t, page, "error-message\">")
}

func TestHTML_UserBoard(t *testing.T) {
	board := &domain.Board{
		Grouping: domain.GroupByUser,
		Ordering: domain.OrderByPriority,
		Columns: []domain.Column{
			{
				Key: "usr-2", Title: "Yogesh", User: &domain.User{ID: "usr-2", Name: "Yogesh", Available: true},
				Tickets: []domain.Ticket{{ID: "CAM-2", Title: "Add multi-language support"}},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, board))
	page := buf.String()

	assert.Contains(t, page, `<option value="user" selected>User</option>`)
	assert.Contains(t, page, `alt="Yogesh"`)
	assert.Contains(t, page, "https://i.pravatar.cc/150?u=usr-2")
	assert.NotContains(t, page, `class="ticket-tag"`)
}

func TestHTMLError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTMLError(&buf, domain.LoadFailedMessage))
	page := buf.String()

	assert.Contains(t, page, `<div class="error-message">Failed to load data. Please try again later.</div>`)
	assert.NotContains(t, page, "kanban-board\"")
	assert.NotContains(t, page, "<select")
}

func TestColumnIcon(t *testing.T) {
	assert.Equal(t, "●", columnIcon(domain.GroupByStatus, domain.Column{Status: domain.StatusDone}))
	assert.Equal(t, "‼", columnIcon(domain.GroupByPriority, domain.Column{Priority: domain.PriorityUrgent}))
	assert.Equal(t, "", columnIcon(domain.GroupByUser, domain.Column{}))
}

func TestAvatarURL(t *testing.T) {
	assert.Equal(t, "https://i.pravatar.cc/150?u=usr-1", AvatarURL("usr-1"))
	assert.Equal(t, "https://i.pravatar.cc/150?u=a+b%26c", AvatarURL("a b&c"))
}

func TestTerminal_Render(t *testing.T) {
	out := NewTerminal().Render(statusBoard())

	assert.Contains(t, out, "Backlog")
	assert.Contains(t, out, "Todo")
	assert.Contains(t, out, "CAM-4")
	assert.Contains(t, out, "1 ticket(s) not shown in this view")

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 2*(terminalColumnWidth+1)+len("1 ticket(s) not shown in this view"))
	}
}

func TestWriteTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTerminal(&buf, statusBoard()))
	assert.Contains(t, buf.String(), "CAM-4")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "abc", truncate("abc", 0))
}
