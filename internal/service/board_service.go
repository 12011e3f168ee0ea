package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/forsitet/kanban-board/internal/domain"
)

// TicketSource fetches the full ticket and user lists in one call.
type TicketSource interface {
	Fetch(ctx context.Context) ([]domain.Ticket, []domain.User, error)
}

type BoardService struct {
	source  TicketSource
	logger  *slog.Logger
	nowFunc func() time.Time
	loads   singleflight.Group

	mu       sync.RWMutex
	snapshot *domain.Snapshot
	loadErr  error
}

func NewBoardService(source TicketSource, logger *slog.Logger, nowFunc func() time.Time) *BoardService {
	if nowFunc == nil {
		nowFunc = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BoardService{
		source:  source,
		logger:  logger,
		nowFunc: nowFunc,
	}
}

// Load fetches tickets and users and replaces the current state. A failed
// fetch drops the previous snapshot so nothing stale is rendered.
// Concurrent callers share a single fetch. The fetch is detached from the
// caller's cancellation and bounded by the source timeout, so a client that
// goes away cannot wipe the board for everyone else.
func (s *BoardService) Load(ctx context.Context) (*domain.Snapshot, error) {
	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := s.loads.Do("load", func() (any, error) {
		return s.load(fetchCtx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Snapshot), nil
}

func (s *BoardService) load(ctx context.Context) (*domain.Snapshot, error) {
	tickets, users, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error("error fetching data", "error", err)
		loadErr := domain.WrapDomainError(domain.ErrorCodeLoadFailed, domain.LoadFailedMessage, err)

		s.mu.Lock()
		s.snapshot = nil
		s.loadErr = loadErr
		s.mu.Unlock()

		return nil, loadErr
	}

	for _, id := range DuplicateUserIDs(users) {
		s.logger.Warn("duplicate user id in payload", "user_id", id)
	}

	snapshot := &domain.Snapshot{
		LoadID:    uuid.NewString(),
		FetchedAt: s.nowFunc(),
		Tickets:   tickets,
		Users:     users,
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.loadErr = nil
	s.mu.Unlock()

	s.logger.Info("board data loaded",
		"load_id", snapshot.LoadID,
		"tickets", len(tickets),
		"users", len(users),
	)

	return snapshot, nil
}

// Snapshot returns the current snapshot or the error state.
func (s *BoardService) Snapshot() (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.snapshot == nil {
		return nil, domain.NewDomainError(domain.ErrorCodeNotLoaded, "board data not loaded yet")
	}
	return s.snapshot, nil
}

// Loaded reports whether a load has been attempted, successful or not.
func (s *BoardService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot != nil || s.loadErr != nil
}

// BoardOrLoad behaves like Board but performs the first fetch when no load
// has been attempted yet.
func (s *BoardService) BoardOrLoad(ctx context.Context, grouping domain.Grouping, ordering domain.Ordering) (*domain.Board, error) {
	if !s.Loaded() {
		if _, err := s.Load(ctx); err != nil {
			return nil, err
		}
	}
	return s.Board(ctx, grouping, ordering)
}

// Board groups the current snapshot and sorts every column.
func (s *BoardService) Board(ctx context.Context, grouping domain.Grouping, ordering domain.Ordering) (*domain.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("build board: %w", err)
	}

	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	board, err := BuildBoard(snapshot, grouping, ordering)
	if err != nil {
		return nil, err
	}

	for _, ex := range board.Excluded {
		s.logger.Warn("ticket excluded from board",
			"ticket_id", ex.TicketID,
			"reason", string(ex.Reason),
			"value", ex.Value,
			"grouping", string(grouping),
		)
	}

	return board, nil
}

// BuildBoard is the pure grouping and sorting pipeline behind Board.
func BuildBoard(snapshot *domain.Snapshot, grouping domain.Grouping, ordering domain.Ordering) (*domain.Board, error) {
	if snapshot == nil {
		return nil, errors.New("build board: nil snapshot")
	}

	var (
		columns  []domain.Column
		excluded []domain.Exclusion
	)
	switch grouping {
	case domain.GroupByStatus:
		columns, excluded = GroupByStatus(snapshot.Tickets)
	case domain.GroupByUser:
		columns, excluded = GroupByUser(snapshot.Tickets, snapshot.Users)
	case domain.GroupByPriority:
		columns, excluded = GroupByPriority(snapshot.Tickets)
	default:
		return nil, domain.NewDomainError(domain.ErrorCodeInvalidArgument, "unknown grouping: "+string(grouping))
	}

	switch ordering {
	case domain.OrderByPriority, domain.OrderByTitle:
	default:
		return nil, domain.NewDomainError(domain.ErrorCodeInvalidArgument, "unknown ordering: "+string(ordering))
	}

	for i := range columns {
		columns[i].Tickets = SortWithin(columns[i].Tickets, ordering)
	}

	return &domain.Board{
		LoadID:    snapshot.LoadID,
		FetchedAt: snapshot.FetchedAt,
		Grouping:  grouping,
		Ordering:  ordering,
		Columns:   columns,
		Excluded:  excluded,
	}, nil
}
