package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/render"
)

// handleExportResume renders a stored resume to PDF and serves it as a
// download. The template query parameter picks the layout; unknown values
// fall back to the default template inside the renderer.
func (s *Server) handleExportResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	resumeID, ok := pathResumeID(w, r)
	if !ok {
		return
	}

	templateID := r.URL.Query().Get("template")
	if templateID == "" {
		templateID = render.DefaultTemplateID
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

	doc, err := s.exporter.Export(r.Context(), *rec, templateID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export resume")
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}
