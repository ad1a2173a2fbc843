package api

import (
	"encoding/json"
	"net/http"

	"github.com/YairShachar/sc2-replay-analyzer/internal/db"
	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/overlay"
	"github.com/YairShachar/sc2-replay-analyzer/internal/services"
)

type Server struct {
	DB      *db.DB
	History services.HistoryService
	Replays services.ReplayService
	Stats   services.StatsService
	Tags    services.TagService
	Overlay *overlay.Poller

	HistoryLimit    int
	PollIntervalSec int
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
