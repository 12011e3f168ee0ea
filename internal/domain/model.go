package domain

import (
	"strings"
	"time"
)

type User struct {
	ID        string
	Name      string
	Available bool
}

type Ticket struct {
	ID     string
	Title  string
	Status string
	// Priority is nil when the remote payload omitted it.
	Priority *int
	UserID   string
	Tags     []string
}

// PriorityOrZero returns the ticket priority, treating a missing value as 0.
func (t Ticket) PriorityOrZero() int {
	if t.Priority == nil {
		return 0
	}
	return *t.Priority
}

type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in progress"
	StatusDone       Status = "done"
	StatusCanceled   Status = "canceled"
)

// Statuses lists the status columns in board order.
var Statuses = []Status{
	StatusBacklog,
	StatusTodo,
	StatusInProgress,
	StatusDone,
	StatusCanceled,
}

func (s Status) Label() string {
	switch s {
	case StatusBacklog:
		return "Backlog"
	case StatusTodo:
		return "Todo"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	case StatusCanceled:
		return "Canceled"
	}
	return string(s)
}

// NormalizeStatus maps a raw status onto a known Status, ignoring case.
func NormalizeStatus(raw string) (Status, bool) {
	s := Status(strings.ToLower(raw))
	for _, known := range Statuses {
		if s == known {
			return s, true
		}
	}
	return "", false
}

type Priority int

const (
	PriorityNone   Priority = 0
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
	PriorityUrgent Priority = 4
)

// Priorities lists the priority columns in board order.
var Priorities = []Priority{
	PriorityUrgent,
	PriorityHigh,
	PriorityMedium,
	PriorityLow,
	PriorityNone,
}

func (p Priority) Valid() bool {
	return p >= PriorityNone && p <= PriorityUrgent
}

func (p Priority) Label() string {
	switch p {
	case PriorityUrgent:
		return "Urgent"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	case PriorityNone:
		return "No Priority"
	}
	return "Unknown"
}

// Snapshot is the result of one successful fetch. It is never mutated;
// a reload replaces it.
type Snapshot struct {
	LoadID    string
	FetchedAt time.Time
	Tickets   []Ticket
	Users     []User
}

type Grouping string

const (
	GroupByStatus   Grouping = "status"
	GroupByUser     Grouping = "user"
	GroupByPriority Grouping = "priority"
)

type Ordering string

const (
	OrderByPriority Ordering = "priority"
	OrderByTitle    Ordering = "title"
)

func ParseGrouping(raw string) (Grouping, error) {
	switch g := Grouping(strings.ToLower(strings.TrimSpace(raw))); g {
	case GroupByStatus, GroupByUser, GroupByPriority:
		return g, nil
	}
	return "", NewDomainError(ErrorCodeInvalidArgument, "unknown grouping: "+raw)
}

func ParseOrdering(raw string) (Ordering, error) {
	switch o := Ordering(strings.ToLower(strings.TrimSpace(raw))); o {
	case OrderByPriority, OrderByTitle:
		return o, nil
	}
	return "", NewDomainError(ErrorCodeInvalidArgument, "unknown ordering: "+raw)
}

// Column is one bucket of the board. Exactly one of Status, Priority or
// User identifies it, depending on the board grouping.
type Column struct {
	Key      string
	Title    string
	Status   Status
	Priority Priority
	User     *User
	Tickets  []Ticket
}

func (c Column) Count() int {
	return len(c.Tickets)
}

type ExclusionReason string

const (
	ReasonUnknownStatus   ExclusionReason = "unknown_status"
	ReasonUnknownPriority ExclusionReason = "unknown_priority"
	ReasonUnknownUser     ExclusionReason = "unknown_user"
)

// Exclusion records a ticket that could not be placed in any column.
type Exclusion struct {
	TicketID string
	Reason   ExclusionReason
	Value    string
}

type Board struct {
	LoadID    string
	FetchedAt time.Time
	Grouping  Grouping
	Ordering  Ordering
	Columns   []Column
	Excluded  []Exclusion
}

// TicketCount returns the number of tickets placed in columns.
func (b Board) TicketCount() int {
	n := 0
	for _, c := range b.Columns {
		n += c.Count()
	}
	return n
}
