package http

import (
	"net/http"
	"sort"

	"github.com/forsitet/kanban-board/internal/domain"
)

type bucketCountDTO struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type ticketStatsResponse struct {
	LoadID     string           `json:"load_id"`
	Total      int              `json:"total"`
	ByStatus   []bucketCountDTO `json:"by_status"`
	ByPriority []bucketCountDTO `json:"by_priority"`
	ByUser     []bucketCountDTO `json:"by_user"`
	Excluded   []bucketCountDTO `json:"excluded"`
}

func sortedCounts(m map[string]int64) []bucketCountDTO {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]bucketCountDTO, 0, len(keys))
	for _, k := range keys {
		out = append(out, bucketCountDTO{Key: k, Count: m[k]})
	}
	return out
}

func (s *Server) HandleStatsTickets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := s.app.Stats.GetTicketStats(ctx)
	if err != nil {
		s.handleError(w, err)
		return
	}

	byStatus := make([]bucketCountDTO, 0, len(domain.Statuses))
	for _, st := range domain.Statuses {
		byStatus = append(byStatus, bucketCountDTO{Key: st.Label(), Count: stats.ByStatus[st.Label()]})
	}

	excluded := make(map[string]int64, len(stats.Excluded))
	for reason, n := range stats.Excluded {
		excluded[string(reason)] = n
	}

	resp := ticketStatsResponse{
		LoadID:     stats.LoadID,
		Total:      stats.Total,
		ByStatus:   byStatus,
		ByPriority: sortedCounts(stats.ByPriority),
		ByUser:     sortedCounts(stats.ByUser),
		Excluded:   sortedCounts(excluded),
	}

	s.writeJSON(w, http.StatusOK, resp)
}
