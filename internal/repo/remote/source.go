package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/forsitet/kanban-board/internal/domain"
)

// maxBodySize caps the payload read from the remote API.
const maxBodySize = 10 << 20

var ErrUnexpectedStructure = errors.New("unexpected response structure: missing tickets or users")

type ticketDTO struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Tag      []string `json:"tag"`
	UserID   string   `json:"userId"`
	Status   string   `json:"status"`
	Priority *int     `json:"priority"`
}

type userDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

type payload struct {
	Tickets *[]ticketDTO `json:"tickets"`
	Users   *[]userDTO   `json:"users"`
}

type Source struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

func NewSource(url string, timeout time.Duration, logger *slog.Logger) *Source {
	return NewSourceWithClient(url, &http.Client{Timeout: timeout}, logger)
}

func NewSourceWithClient(url string, client *http.Client, logger *slog.Logger) *Source {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		url:    url,
		client: client,
		logger: logger,
	}
}

// Fetch issues a single GET and decodes tickets and users. Any failure is
// returned as is; there is no retry.
func (s *Source) Fetch(ctx context.Context) ([]domain.Ticket, []domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("get %s: %w", s.url, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Debug("error closing response body", "error", err)
		}
	}()

	s.logger.Debug("remote api responded",
		"url", s.url,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, fmt.Errorf("network response was not ok, status: %d", resp.StatusCode)
	}

	var p payload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&p); err != nil {
		return nil, nil, fmt.Errorf("decode response body: %w", err)
	}

	if p.Tickets == nil || p.Users == nil {
		return nil, nil, ErrUnexpectedStructure
	}

	tickets := make([]domain.Ticket, 0, len(*p.Tickets))
	for _, t := range *p.Tickets {
		tickets = append(tickets, ticketFromDTO(t))
	}

	users := make([]domain.User, 0, len(*p.Users))
	for _, u := range *p.Users {
		users = append(users, domain.User{
			ID:        u.ID,
			Name:      u.Name,
			Available: u.Available,
		})
	}

	return tickets, users, nil
}

func ticketFromDTO(t ticketDTO) domain.Ticket {
	var priority *int
	if t.Priority != nil {
		v := *t.Priority
		priority = &v
	}
	return domain.Ticket{
		ID:       t.ID,
		Title:    t.Title,
		Status:   t.Status,
		Priority: priority,
		UserID:   t.UserID,
		Tags:     append([]string(nil), t.Tag...),
	}
}
