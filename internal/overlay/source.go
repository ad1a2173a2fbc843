package overlay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
	"github.com/YairShachar/sc2-replay-analyzer/internal/services"
)

// serviceSource reads the history straight from the local database.
type serviceSource struct {
	history services.HistoryService
	limit   int
}

func NewServiceSource(history services.HistoryService, limit int) Source {
	return &serviceSource{history: history, limit: limit}
}

func (s *serviceSource) Fetch(ctx context.Context) (*models.MMRHistory, error) {
	return s.history.GetHistory(ctx, s.limit)
}

// HTTPSource fetches the history from another analyzer instance, for
// running the overlay on a machine other than the one with the replays.
type HTTPSource struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger
}

func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     logger.Default().WithPrefix("upstream"),
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) (*models.MMRHistory, error) {
	url := s.baseURL + "/api/v1/mmr/history"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, string(body))
	}

	var history models.MMRHistory
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		return nil, fmt.Errorf("decoding upstream response: %w", err)
	}

	s.log.Debug("fetched %d points from %s", len(history.Data), url)
	return &history, nil
}
