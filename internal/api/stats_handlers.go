package api

import (
	"net/http"
	"strconv"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	filter := replayFilterFromQuery(r)
	filter.Limit = 0
	filter.Offset = 0

	stats, err := s.Stats.GetSummary(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, stats)
}

func (s *Server) handleMatchupStats(w http.ResponseWriter, r *http.Request) {
	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}

	stats, err := s.Stats.GetMatchupStats(r.Context(), days)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"matchups": stats})
}
