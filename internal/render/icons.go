package render

import (
	"net/url"

	"github.com/forsitet/kanban-board/internal/domain"
)

const avatarBaseURL = "https://i.pravatar.cc/150"

// statusIcon returns a single glyph for a status column header.
func statusIcon(s domain.Status) string {
	switch s {
	case domain.StatusBacklog:
		return "◌"
	case domain.StatusTodo:
		return "○"
	case domain.StatusInProgress:
		return "◐"
	case domain.StatusDone:
		return "●"
	case domain.StatusCanceled:
		return "⊘"
	}
	return ""
}

func priorityIcon(p domain.Priority) string {
	switch p {
	case domain.PriorityUrgent:
		return "‼"
	case domain.PriorityHigh:
		return "▮▮▮"
	case domain.PriorityMedium:
		return "▮▮▯"
	case domain.PriorityLow:
		return "▮▯▯"
	case domain.PriorityNone:
		return "…"
	}
	return ""
}

// columnIcon picks the header icon for a column of the given grouping.
// User columns use an avatar instead and get no glyph.
func columnIcon(grouping domain.Grouping, c domain.Column) string {
	switch grouping {
	case domain.GroupByStatus:
		return statusIcon(c.Status)
	case domain.GroupByPriority:
		return priorityIcon(c.Priority)
	}
	return ""
}

// AvatarURL returns the generated avatar for a user id.
func AvatarURL(userID string) string {
	return avatarBaseURL + "?u=" + url.QueryEscape(userID)
}
