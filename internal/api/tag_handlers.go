package api

import (
	"encoding/json"
	"net/http"

	"github.com/YairShachar/sc2-replay-analyzer/internal/errors"
)

type createTagRequest struct {
	Label     string `json:"label"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type closeTagRequest struct {
	Label   string `json:"label"`
	EndDate string `json:"end_date"`
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.Tags.ListTags(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"tags": tags})
}

func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	tag, err := s.Tags.CreateTag(r.Context(), req.Label, req.Type, req.StartDate, req.EndDate)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, tag)
}

// handleCloseTag sets the end date on an open-ended tag, turning an
// ongoing tag into a range.
func (s *Server) handleCloseTag(w http.ResponseWriter, r *http.Request) {
	var req closeTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	if err := s.Tags.CloseTag(r.Context(), req.Label, req.EndDate); err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"closed": true})
}

// handleDeleteTags removes tags on a start date, optionally narrowed to
// a single label via the label query parameter.
func (s *Server) handleDeleteTags(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	label := r.URL.Query().Get("label")
	if startDate == "" {
		handleError(w, r, errors.NewBadRequestError("start_date is required"))
		return
	}

	deleted, err := s.Tags.DeleteTags(r.Context(), startDate, label)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"deleted": deleted})
}
