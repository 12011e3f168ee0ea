package service

import (
	"strconv"

	"github.com/forsitet/kanban-board/internal/domain"
)

// GroupByStatus buckets tickets into the five status columns. Tickets
// with an unknown status are left out and reported.
func GroupByStatus(tickets []domain.Ticket) ([]domain.Column, []domain.Exclusion) {
	columns := make([]domain.Column, len(domain.Statuses))
	index := make(map[domain.Status]int, len(domain.Statuses))
	for i, s := range domain.Statuses {
		columns[i] = domain.Column{
			Key:     string(s),
			Title:   s.Label(),
			Status:  s,
			Tickets: []domain.Ticket{},
		}
		index[s] = i
	}

	var excluded []domain.Exclusion
	for _, t := range tickets {
		status, ok := domain.NormalizeStatus(t.Status)
		if !ok {
			excluded = append(excluded, domain.Exclusion{
				TicketID: t.ID,
				Reason:   domain.ReasonUnknownStatus,
				Value:    t.Status,
			})
			continue
		}
		i := index[status]
		columns[i].Tickets = append(columns[i].Tickets, t)
	}

	return columns, excluded
}

// GroupByPriority buckets tickets from Urgent down to No Priority.
// Missing or out-of-range priorities are left out and reported.
func GroupByPriority(tickets []domain.Ticket) ([]domain.Column, []domain.Exclusion) {
	columns := make([]domain.Column, len(domain.Priorities))
	index := make(map[domain.Priority]int, len(domain.Priorities))
	for i, p := range domain.Priorities {
		columns[i] = domain.Column{
			Key:      strconv.Itoa(int(p)),
			Title:    p.Label(),
			Priority: p,
			Tickets:  []domain.Ticket{},
		}
		index[p] = i
	}

	var excluded []domain.Exclusion
	for _, t := range tickets {
		if t.Priority == nil {
			excluded = append(excluded, domain.Exclusion{
				TicketID: t.ID,
				Reason:   domain.ReasonUnknownPriority,
			})
			continue
		}

		p := domain.Priority(*t.Priority)
		if !p.Valid() {
			excluded = append(excluded, domain.Exclusion{
				TicketID: t.ID,
				Reason:   domain.ReasonUnknownPriority,
				Value:    strconv.Itoa(*t.Priority),
			})
			continue
		}
		i := index[p]
		columns[i].Tickets = append(columns[i].Tickets, t)
	}

	return columns, excluded
}

// GroupByUser builds one column per user in payload order. A repeated
// user id keeps its first position and name. Tickets assigned to an
// unknown user are left out and reported.
func GroupByUser(tickets []domain.Ticket, users []domain.User) ([]domain.Column, []domain.Exclusion) {
	columns := make([]domain.Column, 0, len(users))
	index := make(map[string]int, len(users))
	for _, u := range users {
		if _, dup := index[u.ID]; dup {
			continue
		}
		user := u
		index[u.ID] = len(columns)
		columns = append(columns, domain.Column{
			Key:     u.ID,
			Title:   u.Name,
			User:    &user,
			Tickets: []domain.Ticket{},
		})
	}

	var excluded []domain.Exclusion
	for _, t := range tickets {
		i, ok := index[t.UserID]
		if !ok {
			excluded = append(excluded, domain.Exclusion{
				TicketID: t.ID,
				Reason:   domain.ReasonUnknownUser,
				Value:    t.UserID,
			})
			continue
		}
		columns[i].Tickets = append(columns[i].Tickets, t)
	}

	return columns, excluded
}

// DuplicateUserIDs returns ids that appear more than once in users.
func DuplicateUserIDs(users []domain.User) []string {
	seen := make(map[string]bool, len(users))
	var dups []string
	for _, u := range users {
		if seen[u.ID] {
			dups = append(dups, u.ID)
			continue
		}
		seen[u.ID] = true
	}
	return dups
}
