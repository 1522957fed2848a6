package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	exportTemplates []string
	exportOutDir    string
	exportTimeout   time.Duration
)

var exportCmd = &cobra.Command{
	Use:   "export <resume.json>",
	Short: "Render a resume file to PDF",
	Long:  `Render a resume JSON file to one or more PDF files, one per requested template.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringSliceVar(&exportTemplates, "template", []string{render.DefaultTemplateID},
		fmt.Sprintf("Templates to render (%s)", strings.Join(render.TemplateIDs(), ", ")))
	exportCmd.Flags().StringVar(&exportOutDir, "out", ".", "Output directory")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", 60*time.Second, "Per-template render timeout")
	rootCmd.AddCommand(exportCmd)
}

// loadResumeFile reads, schema-validates, and decodes a resume JSON file.
func loadResumeFile(path string) (*types.ResumeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := schemas.ValidateResume(data); err != nil {
		return nil, fmt.Errorf("invalid resume file %s: %w", path, err)
	}

	var rec types.ResumeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &rec, nil
}

// exportFilename names the output file for one template.
func exportFilename(rec *types.ResumeRecord, templateID string) string {
	return render.SanitizeTitle(rec.Title) + "_" + templateID + ".pdf"
}

func runExport(cmd *cobra.Command, args []string) error {
	for _, id := range exportTemplates {
		if _, ok := render.Lookup(id); !ok {
			return fmt.Errorf("unknown template %q (available: %s)", id, strings.Join(render.TemplateIDs(), ", "))
		}
	}

	rec, err := loadResumeFile(args[0])
	if err != nil {
		return err
	}

	if err := os.MkdirAll(exportOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	renderer := export.NewChromedpRenderer()
	renderer.Timeout = exportTimeout
	exporter := export.NewExporter(renderer)

	// One headless Chrome tab per template
	g, ctx := errgroup.WithContext(cmd.Context())
	for _, templateID := range exportTemplates {
		g.Go(func() error {
			doc, err := exporter.Export(ctx, *rec, templateID)
			if err != nil {
				return fmt.Errorf("failed to export %s: %w", templateID, err)
			}

			outPath := filepath.Join(exportOutDir, exportFilename(rec, templateID))
			if err := os.WriteFile(outPath, doc.Data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			fmt.Printf("Wrote %s (%d bytes)\n", outPath, len(doc.Data))
			return nil
		})
	}
	return g.Wait()
}
