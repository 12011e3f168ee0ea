package mocks

import (
	"context"
	"sync"

	"github.com/forsitet/kanban-board/internal/domain"
)

type MockTicketSource struct {
	mu sync.Mutex

	FetchTickets []domain.Ticket
	FetchUsers   []domain.User
	FetchErr     error
	Calls        int
}

func (m *MockTicketSource) Fetch(ctx context.Context) ([]domain.Ticket, []domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if m.FetchErr != nil {
		return nil, nil, m.FetchErr
	}
	return m.FetchTickets, m.FetchUsers, nil
}

// SetResult swaps the data returned by subsequent Fetch calls.
func (m *MockTicketSource) SetResult(tickets []domain.Ticket, users []domain.User, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FetchTickets = tickets
	m.FetchUsers = users
	m.FetchErr = err
}
