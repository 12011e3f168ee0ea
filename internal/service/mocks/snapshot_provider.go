package mocks

import (
	"github.com/forsitet/kanban-board/internal/domain"
)

type MockSnapshotProvider struct {
	SnapshotResult *domain.Snapshot
	SnapshotErr    error
}

func (m *MockSnapshotProvider) Snapshot() (*domain.Snapshot, error) {
	return m.SnapshotResult, m.SnapshotErr
}
