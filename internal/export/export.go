// Package export turns a resume record into a downloadable PDF document by
// rendering the template to HTML and printing it through headless Chrome.
package export

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/types"
)

// PDFRenderer prints an HTML document to PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Document is a finished export: the PDF bytes plus the download filename.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Exporter runs the export pipeline for one resume at a time.
type Exporter struct {
	renderer PDFRenderer
}

// NewExporter creates an Exporter backed by the given PDF renderer.
func NewExporter(renderer PDFRenderer) *Exporter {
	return &Exporter{renderer: renderer}
}

// Export renders the record with the given template in export mode and prints
// it to a single-page PDF. The record itself is left untouched; export-mode
// truncation only affects the generated document.
func (e *Exporter) Export(ctx context.Context, rec types.ResumeRecord, templateID string) (*Document, error) {
	tree := render.Render(rec, templateID, render.ModeExport)

	html, err := render.HTML(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, &RenderError{Message: "failed to print document", Cause: err}
	}

	return &Document{
		Filename:    render.SanitizeTitle(rec.Title) + ".pdf",
		ContentType: "application/pdf",
		Data:        pdf,
	}, nil
}
