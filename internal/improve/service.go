package improve

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// Service rewrites resume sections through an LLM client. It never mutates
// the record it is given; callers apply the returned text themselves, so a
// failed call leaves the record untouched.
type Service struct {
	client Client
}

// NewService creates an improve service backed by the given client.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// Summary returns a rewritten professional summary for the record.
func (s *Service) Summary(ctx context.Context, rec *types.ResumeRecord) (string, error) {
	if strings.TrimSpace(rec.Summary) == "" {
		return "", &EmptySectionError{Section: "summary"}
	}

	text, err := s.client.GenerateContent(ctx, buildSummaryPrompt(rec))
	if err != nil {
		return "", fmt.Errorf("failed to improve summary: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &EmptySectionError{Section: "summary"}
	}
	return text, nil
}

// ExperienceBullets returns rewritten description bullets for the experience
// entry with the given ID.
func (s *Service) ExperienceBullets(ctx context.Context, rec *types.ResumeRecord, entryID uuid.UUID) ([]string, error) {
	var entry *types.ExperienceEntry
	for i := range rec.Experience {
		if rec.Experience[i].ID == entryID {
			entry = &rec.Experience[i]
			break
		}
	}
	if entry == nil {
		return nil, &EntryNotFoundError{Section: "experience", ID: entryID}
	}

	bullets := entry.Description.NonBlank()
	if len(bullets) == 0 {
		return nil, &EmptySectionError{Section: "experience"}
	}

	heading := strings.TrimSpace(entry.Title + " at " + entry.Company)
	return s.bullets(ctx, heading, bullets, rec.JobDescription)
}

// ProjectBullets returns rewritten description bullets for the project entry
// with the given ID.
func (s *Service) ProjectBullets(ctx context.Context, rec *types.ResumeRecord, entryID uuid.UUID) ([]string, error) {
	var entry *types.ProjectEntry
	for i := range rec.Projects {
		if rec.Projects[i].ID == entryID {
			entry = &rec.Projects[i]
			break
		}
	}
	if entry == nil {
		return nil, &EntryNotFoundError{Section: "project", ID: entryID}
	}

	bullets := entry.Description.NonBlank()
	if len(bullets) == 0 {
		return nil, &EmptySectionError{Section: "project"}
	}

	return s.bullets(ctx, entry.Name, bullets, rec.JobDescription)
}

func (s *Service) bullets(ctx context.Context, heading string, bullets []string, jobDescription string) ([]string, error) {
	text, err := s.client.GenerateContent(ctx, buildBulletPrompt(heading, bullets, jobDescription))
	if err != nil {
		return nil, fmt.Errorf("failed to improve bullets: %w", err)
	}

	parsed := ParseBulletLines(text)
	if len(parsed) == 0 {
		return nil, fmt.Errorf("model returned no usable bullet lines")
	}
	return parsed, nil
}
