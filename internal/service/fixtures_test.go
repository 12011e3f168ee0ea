package service

import "github.com/forsitet/kanban-board/internal/domain"

func prio(v int) *int {
	return &v
}

func ticketIDs(tickets []domain.Ticket) []string {
	ids := make([]string, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID)
	}
	return ids
}

func columnCounts(columns []domain.Column) map[string]int {
	counts := make(map[string]int, len(columns))
	for _, c := range columns {
		counts[c.Title] = c.Count()
	}
	return counts
}

func fixtureUsers() []domain.User {
	return []domain.User{
		{ID: "usr-1", Name: "Anoop Sharma", Available: false},
		{ID: "usr-2", Name: "Yogesh", Available: true},
		{ID: "usr-3", Name: "Shankar Kumar", Available: true},
	}
}

// fixtureTickets holds five tickets, one of them with an unknown status
// and one assigned to a user missing from fixtureUsers.
func fixtureTickets() []domain.Ticket {
	return []domain.Ticket{
		{ID: "CAM-1", Title: "Update user profile page UI", Status: "Todo", Priority: prio(4), UserID: "usr-1", Tags: []string{"Feature request"}},
		{ID: "CAM-2", Title: "Add multi-language support", Status: "In progress", Priority: prio(3), UserID: "usr-2", Tags: []string{"Feature Request"}},
		{ID: "CAM-3", Title: "Optimize database queries", Status: "Archived", Priority: prio(1), UserID: "usr-2", Tags: []string{"Feature Request"}},
		{ID: "CAM-4", Title: "implement email notification", Status: "Backlog", Priority: prio(0), UserID: "usr-9", Tags: []string{"Feature Request"}},
		{ID: "CAM-5", Title: "Enhance search functionality", Status: "todo", Priority: prio(0), UserID: "usr-3", Tags: nil},
	}
}
