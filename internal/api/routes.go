package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/mmr/history", s.handleMMRHistory)
		r.Get("/overlay/state", s.handleOverlayState)
		r.Get("/replays", s.handleReplays)
		r.Get("/replays/{id}", s.handleReplayDetail)
		r.Get("/stats", s.handleStats)
		r.Get("/stats/matchups", s.handleMatchupStats)
		r.Get("/tags", s.handleListTags)
		r.Post("/tags", s.handleCreateTag)
		r.Post("/tags/close", s.handleCloseTag)
		r.Delete("/tags", s.handleDeleteTags)
		r.Get("/export", s.handleExport)
	})

	r.Get("/overlays/mmr-graph", s.handleOverlayPage)
	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	return r
}
