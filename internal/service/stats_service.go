package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/forsitet/kanban-board/internal/domain"
)

type SnapshotProvider interface {
	Snapshot() (*domain.Snapshot, error)
}

// TicketStats counts tickets of the current snapshot along every grouping.
// Keys are status labels, priority labels and user ids.
type TicketStats struct {
	LoadID     string
	Total      int
	ByStatus   map[string]int64
	ByPriority map[string]int64
	ByUser     map[string]int64
	Excluded   map[domain.ExclusionReason]int64
}

type StatsService struct {
	snapshots SnapshotProvider
}

func NewStatsService(snapshots SnapshotProvider) *StatsService {
	return &StatsService{snapshots: snapshots}
}

func (s *StatsService) GetTicketStats(ctx context.Context) (*TicketStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get ticket stats: %w", err)
	}

	snapshot, err := s.snapshots.Snapshot()
	if err != nil {
		return nil, err
	}

	stats := &TicketStats{
		LoadID:     snapshot.LoadID,
		Total:      len(snapshot.Tickets),
		ByStatus:   make(map[string]int64),
		ByPriority: make(map[string]int64),
		ByUser:     make(map[string]int64),
		Excluded:   make(map[domain.ExclusionReason]int64),
	}

	collect := func(columns []domain.Column, excluded []domain.Exclusion, into map[string]int64, key func(domain.Column) string) {
		for _, c := range columns {
			into[key(c)] = int64(c.Count())
		}
		for _, ex := range excluded {
			stats.Excluded[ex.Reason]++
		}
	}

	columns, excluded := GroupByStatus(snapshot.Tickets)
	collect(columns, excluded, stats.ByStatus, func(c domain.Column) string { return c.Title })

	columns, excluded = GroupByPriority(snapshot.Tickets)
	collect(columns, excluded, stats.ByPriority, func(c domain.Column) string { return strconv.Itoa(int(c.Priority)) })

	columns, excluded = GroupByUser(snapshot.Tickets, snapshot.Users)
	collect(columns, excluded, stats.ByUser, func(c domain.Column) string { return c.Key })

	return stats, nil
}
