package api

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
)

func replayFilterFromQuery(r *http.Request) models.ReplayFilter {
	q := r.URL.Query()
	filter := models.ReplayFilter{
		Matchup: q.Get("matchup"),
		Result:  q.Get("result"),
		MapName: q.Get("map"),
	}
	if v := q.Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Days = n
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Offset = n
		}
	}
	return filter
}

func (s *Server) handleReplays(w http.ResponseWriter, r *http.Request) {
	filter := replayFilterFromQuery(r)

	replays, err := s.Replays.ListReplays(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"replays": replays,
		"count":   len(replays),
	})
}

func (s *Server) handleReplayDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	replay, err := s.Replays.GetReplay(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, replay)
}

// handleExport streams the filtered replays as CSV.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	filter := replayFilterFromQuery(r)

	replays, err := s.Replays.ListReplays(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	filename := fmt.Sprintf("replays-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	cw := csv.NewWriter(w)
	header := []string{
		"played_at", "map", "matchup", "result", "game_length_sec",
		"player_mmr", "opponent_mmr", "player_apm",
		"workers_6m", "workers_8m", "workers_10m", "army_supply_8m",
	}
	if err := cw.Write(header); err != nil {
		log.Error("failed to write csv header: %v", err)
		return
	}

	for _, rep := range replays {
		row := []string{
			rep.PlayedAt.UTC().Format(time.RFC3339),
			rep.MapName,
			rep.Matchup,
			rep.Result,
			strconv.Itoa(rep.GameLengthSec),
			formatIntPtr(rep.PlayerMMR),
			formatIntPtr(rep.OpponentMMR),
			strconv.Itoa(rep.PlayerAPM),
			strconv.Itoa(rep.Workers6m),
			strconv.Itoa(rep.Workers8m),
			strconv.Itoa(rep.Workers10m),
			strconv.Itoa(rep.ArmySupply8m),
		}
		if err := cw.Write(row); err != nil {
			log.Error("failed to write csv row: %v", err)
			return
		}
	}
	cw.Flush()

	log.Debug("exported %d replays", len(replays))
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
