package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(server *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggingMiddleware(server.logger))
	r.Use(server.RecoveryMiddleware)

	r.Get("/", server.HandleBoardPage)
	r.Get("/healthz", server.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/board", server.HandleBoardGet)
		r.Post("/reload", server.HandleReload)
		r.Get("/stats", server.HandleStatsTickets)
	})

	r.Get("/openapi.yaml", server.ServeOpenAPISpec)
	r.Get("/swagger", server.SwaggerUI)

	return r
}
