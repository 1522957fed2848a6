package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func writeTempResume(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadResumeFile(t *testing.T) {
	path := writeTempResume(t, `{
		"title": "Backend Resume",
		"summary": "Engineer.",
		"skills": ["Go"]
	}`)

	rec, err := loadResumeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend Resume", rec.Title)
	assert.Equal(t, []string{"Go"}, rec.Skills)
}

func TestLoadResumeFile_SchemaViolation(t *testing.T) {
	path := writeTempResume(t, `{"title": "t", "skills": "not an array"}`)

	_, err := loadResumeFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid resume file")
}

func TestLoadResumeFile_Missing(t *testing.T) {
	_, err := loadResumeFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestExportFilename(t *testing.T) {
	rec := &types.ResumeRecord{Title: "Backend Resume"}
	assert.Equal(t, "Backend_Resume_classic.pdf", exportFilename(rec, "classic"))

	rec.Title = ""
	assert.Equal(t, "resume_modern.pdf", exportFilename(rec, "modern"))
}
