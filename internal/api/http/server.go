package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/forsitet/kanban-board/api/openapi"
	"github.com/forsitet/kanban-board/internal/domain"
	"github.com/forsitet/kanban-board/internal/service"
)

// BoardDefaults are used when a request does not pick a view.
type BoardDefaults struct {
	Grouping domain.Grouping
	Ordering domain.Ordering
}

type Server struct {
	app      *service.App
	logger   *slog.Logger
	defaults BoardDefaults
}

func NewServer(app *service.App, logger *slog.Logger, defaults BoardDefaults) *Server {
	if defaults.Grouping == "" {
		defaults.Grouping = domain.GroupByStatus
	}
	if defaults.Ordering == "" {
		defaults.Ordering = domain.OrderByPriority
	}
	return &Server{
		app:      app,
		logger:   logger,
		defaults: defaults,
	}
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode JSON response", "error", err)
	}
}

func (s *Server) writeDomainError(w http.ResponseWriter, status int, code domain.ErrorCode, message string) {
	resp := errorResponse{
		Error: apiError{
			Code:    string(code),
			Message: message,
		},
	}
	s.writeJSON(w, status, resp)
}

// errorStatus maps an error to the HTTP status and the message that is
// safe to show to the user.
func errorStatus(err error) (int, domain.ErrorCode, string) {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		return http.StatusInternalServerError, domain.ErrorCodeInternal, "internal server error"
	}

	switch de.Code {
	case domain.ErrorCodeInvalidArgument:
		return http.StatusBadRequest, de.Code, de.Message
	case domain.ErrorCodeLoadFailed, domain.ErrorCodeNotLoaded:
		return http.StatusServiceUnavailable, domain.ErrorCodeLoadFailed, domain.LoadFailedMessage
	}
	return http.StatusInternalServerError, domain.ErrorCodeInternal, "internal server error"
}

func (s *Server) handleError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	status, code, message := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("unexpected error", "error", err)
	}
	s.writeDomainError(w, status, code, message)
}

func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (s *Server) ServeOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	if _, err := w.Write(openapi.Spec); err != nil {
		s.logger.Error("failed to write openapi spec", "error", err)
	}
}

func (s *Server) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	const html = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>Swagger UI - Kanban Board</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
    <script src="https://unpkg.com/swagger-ui-dist/swagger-ui-standalone-preset.js"></script>
    <script>
      window.onload = function() {
        window.ui = SwaggerUIBundle({
          url: '/openapi.yaml',
          dom_id: '#swagger-ui',
          presets: [
            SwaggerUIBundle.presets.apis,
            SwaggerUIStandalonePreset
          ],
          layout: 'StandaloneLayout'
        });
      };
    </script>
  </body>
</html>`

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(html)); err != nil {
		s.logger.Error("failed to write swagger ui html", "error", err)
	}
}
