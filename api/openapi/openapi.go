// Package openapi holds the HTTP API description and the wire types that
// mirror its schemas.
package openapi

import (
	_ "embed"
	"time"
)

//go:embed openapi.yml
var Spec []byte

type Grouping string

const (
	GroupingStatus   Grouping = "status"
	GroupingUser     Grouping = "user"
	GroupingPriority Grouping = "priority"
)

type Ordering string

const (
	OrderingPriority Ordering = "priority"
	OrderingTitle    Ordering = "title"
)

type Ticket struct {
	Id       string   `json:"id"`
	Title    string   `json:"title"`
	Status   string   `json:"status"`
	Priority *int     `json:"priority"`
	UserId   string   `json:"userId"`
	Tag      []string `json:"tag"`
}

type User struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

type Column struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Count   int      `json:"count"`
	User    *User    `json:"user,omitempty"`
	Tickets []Ticket `json:"tickets"`
}

type ExclusionReason string

type Exclusion struct {
	TicketId string          `json:"ticket_id"`
	Reason   ExclusionReason `json:"reason"`
	Value    string          `json:"value,omitempty"`
}

type Board struct {
	LoadId    string      `json:"load_id"`
	FetchedAt time.Time   `json:"fetched_at"`
	Grouping  Grouping    `json:"grouping"`
	Ordering  Ordering    `json:"ordering"`
	Columns   []Column    `json:"columns"`
	Excluded  []Exclusion `json:"excluded"`
}
