package api

import (
	"net/http"
	"strconv"

	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
)

// handleMMRHistory returns the MMR history feed consumed by the overlay:
// points oldest first, replays without an MMR reading excluded, plus the
// session tags. This is also the endpoint a remote overlay instance polls.
func (s *Server) handleMMRHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	limit := s.HistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Warn("invalid limit parameter: %s", v)
		} else {
			limit = n
		}
	}

	history, err := s.History.GetHistory(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, history)
}

// handleOverlayState returns the poller's last computed chart state.
func (s *Server) handleOverlayState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.Overlay.State())
}
