package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
)

//go:embed web/*.html
var webFS embed.FS

var overlayTemplate = template.Must(template.ParseFS(webFS, "web/mmr_graph.html"))

// handleOverlayPage serves the MMR graph page meant to be loaded as a
// browser source in streaming software. The page polls the overlay state
// endpoint and redraws itself.
func (s *Server) handleOverlayPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	pollMs := s.PollIntervalSec * 1000
	if pollMs <= 0 {
		pollMs = 10000
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := overlayTemplate.Execute(w, map[string]any{
		"PollIntervalMs": pollMs,
	})
	if err != nil {
		log.Error("failed to render overlay page: %v", err)
	}
}
