package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/improve"
	"github.com/jonathan/resume-builder/internal/types"
)

// improveRequest asks the AI collaborator to rewrite one section of the
// supplied resume. EntryID selects the entry for experience and project
// sections and is ignored for the summary.
type improveRequest struct {
	Section string             `json:"section"`
	EntryID string             `json:"entry_id,omitempty"`
	Context types.ResumeRecord `json:"context"`
}

type improveResponse struct {
	ImprovedText string `json:"improved_text"`
}

// handleImprove rewrites a resume section with the AI collaborator.
func (s *Server) handleImprove(w http.ResponseWriter, r *http.Request) {
	if s.improver == nil {
		writeError(w, http.StatusServiceUnavailable, "AI improvement is not configured")
		return
	}

	var req improveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var improved string
	var err error
	switch req.Section {
	case "summary":
		improved, err = s.improver.Summary(r.Context(), &req.Context)
	case "experience", "project":
		var entryID uuid.UUID
		entryID, err = uuid.Parse(req.EntryID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid entry ID")
			return
		}
		var bullets []string
		if req.Section == "experience" {
			bullets, err = s.improver.ExperienceBullets(r.Context(), &req.Context, entryID)
		} else {
			bullets, err = s.improver.ProjectBullets(r.Context(), &req.Context, entryID)
		}
		improved = strings.Join(bullets, "\n")
	default:
		writeError(w, http.StatusBadRequest, "Unknown section: "+req.Section)
		return
	}

	if err != nil {
		status, detail := improveErrorStatus(err)
		writeError(w, status, detail)
		return
	}

	writeJSON(w, http.StatusOK, improveResponse{ImprovedText: improved})
}

// improveErrorStatus maps improve service failures to HTTP statuses.
func improveErrorStatus(err error) (int, string) {
	var empty *improve.EmptySectionError
	if errors.As(err, &empty) {
		return http.StatusUnprocessableEntity, empty.Error()
	}
	var notFound *improve.EntryNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, notFound.Error()
	}
	return http.StatusInternalServerError, "Failed to improve section"
}
