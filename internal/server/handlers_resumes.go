package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxResumeBody caps incoming resume payloads at 1 MiB.
const maxResumeBody = 1 << 20

// readResumePayload reads, schema-validates, and decodes a resume body.
func readResumePayload(w http.ResponseWriter, r *http.Request) (*types.ResumeRecord, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxResumeBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body")
		return nil, false
	}

	if err := schemas.ValidateResume(body); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusUnprocessableEntity, ve.Error())
		} else {
			writeError(w, http.StatusBadRequest, "Invalid request body")
		}
		return nil, false
	}

	var rec types.ResumeRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return &rec, true
}

// requestUserID resolves the authenticated user, writing a 401 on failure.
func requestUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, UserMessage(http.StatusUnauthorized))
		return uuid.Nil, false
	}
	return userID, true
}

// pathResumeID parses the {id} path segment, writing a 400 on failure.
func pathResumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid resume ID")
		return uuid.Nil, false
	}
	return resumeID, true
}

// handleListResumes returns summaries of the user's resumes.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	summaries, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}
	if summaries == nil {
		summaries = []types.ResumeSummary{}
	}

	writeJSON(w, http.StatusOK, summaries)
}

// handleCreateResume stores a new resume for the user.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	rec, ok := readResumePayload(w, r)
	if !ok {
		return
	}

	stored, err := s.db.CreateResume(r.Context(), userID, *rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create resume")
		return
	}

	writeJSON(w, http.StatusCreated, stored)
}

// handleGetResume returns one resume by ID.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	resumeID, ok := pathResumeID(w, r)
	if !ok {
		return
	}

	rec, err := s.db.GetResume(r.Context(), userID, resumeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get resume")
		return
	}
	if rec == nil {
		notFound := &ErrResumeNotFound{ResumeID: resumeID}
		writeError(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// handleUpdateResume replaces a resume's content.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	resumeID, ok := pathResumeID(w, r)
	if !ok {
		return
	}

	rec, ok := readResumePayload(w, r)
	if !ok {
		return
	}
	rec.ID = resumeID

	stored, err := s.db.UpdateResume(r.Context(), userID, *rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update resume")
		return
	}
	if stored == nil {
		notFound := &ErrResumeNotFound{ResumeID: resumeID}
		writeError(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

// handleDeleteResume removes a resume.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	resumeID, ok := pathResumeID(w, r)
	if !ok {
		return
	}

	found, err := s.db.DeleteResume(r.Context(), userID, resumeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete resume")
		return
	}
	if !found {
		notFound := &ErrResumeNotFound{ResumeID: resumeID}
		writeError(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Resume deleted"})
}
