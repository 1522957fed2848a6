package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromedpRenderer prints HTML to PDF with a headless Chrome instance. A new
// browser context is created per call so a crashed render cannot poison later
// ones.
type ChromedpRenderer struct {
	// ChromePath overrides the browser binary; empty uses chromedp's lookup.
	ChromePath string
	// Timeout bounds a single render, browser startup included.
	Timeout time.Duration
}

// NewChromedpRenderer creates a renderer honoring the CHROME_PATH environment
// variable.
func NewChromedpRenderer() *ChromedpRenderer {
	return &ChromedpRenderer{
		ChromePath: os.Getenv("CHROME_PATH"),
		Timeout:    60 * time.Second,
	}
}

// A4 paper size in inches (210mm x 297mm).
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// RenderHTMLToPDF implements PDFRenderer.
func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(cctx, timeout)
	defer cancelRun()

	// Chrome reads the document from disk; a data: URL would break relative
	// references like photo URLs resolved against the page.
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
