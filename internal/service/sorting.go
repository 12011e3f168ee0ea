package service

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/forsitet/kanban-board/internal/domain"
)

// SortWithin returns a stably sorted copy of tickets. The input slice is
// not modified. An unknown ordering keeps the input order.
func SortWithin(tickets []domain.Ticket, ordering domain.Ordering) []domain.Ticket {
	sorted := slices.Clone(tickets)
	if sorted == nil {
		sorted = []domain.Ticket{}
	}

	switch ordering {
	case domain.OrderByPriority:
		slices.SortStableFunc(sorted, func(a, b domain.Ticket) int {
			return cmp.Compare(b.PriorityOrZero(), a.PriorityOrZero())
		})
	case domain.OrderByTitle:
		// Collators keep internal buffers and are not safe for concurrent use.
		c := collate.New(language.English)
		slices.SortStableFunc(sorted, func(a, b domain.Ticket) int {
			return c.CompareString(a.Title, b.Title)
		})
	}

	return sorted
}
