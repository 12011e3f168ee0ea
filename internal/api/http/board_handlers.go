package http

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/forsitet/kanban-board/internal/domain"
	"github.com/forsitet/kanban-board/internal/render"
	"github.com/forsitet/kanban-board/internal/service/converter"
)

type viewParams struct {
	Group *string
	Order *string
}

func bindViewParams(query url.Values) (viewParams, error) {
	var p viewParams
	if err := runtime.BindQueryParameter("form", true, false, "group", query, &p.Group); err != nil {
		return viewParams{}, domain.NewDomainError(domain.ErrorCodeInvalidArgument, "invalid group parameter")
	}
	if err := runtime.BindQueryParameter("form", true, false, "order", query, &p.Order); err != nil {
		return viewParams{}, domain.NewDomainError(domain.ErrorCodeInvalidArgument, "invalid order parameter")
	}
	return p, nil
}

// view resolves the requested grouping and ordering. With strict unset,
// unknown values silently fall back to the defaults.
func (s *Server) view(p viewParams, strict bool) (domain.Grouping, domain.Ordering, error) {
	grouping, ordering := s.defaults.Grouping, s.defaults.Ordering

	if p.Group != nil && *p.Group != "" {
		g, err := domain.ParseGrouping(*p.Group)
		switch {
		case err == nil:
			grouping = g
		case strict:
			return "", "", err
		default:
			s.logger.Debug("ignoring unknown grouping", "group", *p.Group)
		}
	}

	if p.Order != nil && *p.Order != "" {
		o, err := domain.ParseOrdering(*p.Order)
		switch {
		case err == nil:
			ordering = o
		case strict:
			return "", "", err
		default:
			s.logger.Debug("ignoring unknown ordering", "order", *p.Order)
		}
	}

	return grouping, ordering, nil
}

func (s *Server) HandleBoardPage(w http.ResponseWriter, r *http.Request) {
	p, err := bindViewParams(r.URL.Query())
	if err != nil {
		p = viewParams{}
	}
	grouping, ordering, _ := s.view(p, false)

	var buf bytes.Buffer
	status := http.StatusOK

	board, err := s.app.Board.BoardOrLoad(r.Context(), grouping, ordering)
	if err != nil {
		var message string
		status, _, message = errorStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("unexpected error", "error", err)
		}
		err = render.HTMLError(&buf, message)
	} else {
		err = render.HTML(&buf, board)
	}
	if err != nil {
		s.logger.Error("failed to render board page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Debug("error writing board page", "error", err)
	}
}

func (s *Server) HandleBoardGet(w http.ResponseWriter, r *http.Request) {
	p, err := bindViewParams(r.URL.Query())
	if err != nil {
		s.handleError(w, err)
		return
	}

	grouping, ordering, err := s.view(p, true)
	if err != nil {
		s.handleError(w, err)
		return
	}

	board, err := s.app.Board.BoardOrLoad(r.Context(), grouping, ordering)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, converter.BoardToOpenAPI(board))
}

func (s *Server) HandleReload(w http.ResponseWriter, r *http.Request) {
	if _, err := s.app.Board.Load(r.Context()); err != nil {
		s.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
