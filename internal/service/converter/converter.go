package converter

import (
	"github.com/forsitet/kanban-board/api/openapi"
	"github.com/forsitet/kanban-board/internal/domain"
)

func BoardToOpenAPI(b *domain.Board) openapi.Board {
	if b == nil {
		return openapi.Board{}
	}

	columns := make([]openapi.Column, 0, len(b.Columns))
	for i := range b.Columns {
		columns = append(columns, ColumnToOpenAPI(&b.Columns[i]))
	}

	excluded := make([]openapi.Exclusion, 0, len(b.Excluded))
	for _, ex := range b.Excluded {
		excluded = append(excluded, openapi.Exclusion{
			TicketId: ex.TicketID,
			Reason:   openapi.ExclusionReason(ex.Reason),
			Value:    ex.Value,
		})
	}

	return openapi.Board{
		LoadId:    b.LoadID,
		FetchedAt: b.FetchedAt.UTC(),
		Grouping:  openapi.Grouping(b.Grouping),
		Ordering:  openapi.Ordering(b.Ordering),
		Columns:   columns,
		Excluded:  excluded,
	}
}

func ColumnToOpenAPI(c *domain.Column) openapi.Column {
	if c == nil {
		return openapi.Column{}
	}

	tickets := make([]openapi.Ticket, 0, len(c.Tickets))
	for i := range c.Tickets {
		tickets = append(tickets, TicketToOpenAPI(&c.Tickets[i]))
	}

	var user *openapi.User
	if c.User != nil {
		u := UserToOpenAPI(c.User)
		user = &u
	}

	return openapi.Column{
		Key:     c.Key,
		Title:   c.Title,
		Count:   c.Count(),
		User:    user,
		Tickets: tickets,
	}
}

func TicketToOpenAPI(t *domain.Ticket) openapi.Ticket {
	if t == nil {
		return openapi.Ticket{}
	}

	var priority *int
	if t.Priority != nil {
		v := *t.Priority
		priority = &v
	}

	tags := append([]string{}, t.Tags...)

	return openapi.Ticket{
		Id:       t.ID,
		Title:    t.Title,
		Status:   t.Status,
		Priority: priority,
		UserId:   t.UserID,
		Tag:      tags,
	}
}

func UserToOpenAPI(u *domain.User) openapi.User {
	if u == nil {
		return openapi.User{}
	}

	return openapi.User{
		Id:        u.ID,
		Name:      u.Name,
		Available: u.Available,
	}
}
