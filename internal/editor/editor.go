// Package editor owns the live-editable copy of a resume record. Every field
// maps to one mutation method, repeatable sections enforce their minimum
// entry counts, and AI-improve calls run asynchronously with per-entry busy
// tracking.
package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

var (
	// ErrLastEntry is returned when removal would drop a repeatable section
	// below its minimum of one entry.
	ErrLastEntry = errors.New("section must keep at least one entry")
	// ErrEntryNotFound is returned when no entry carries the given ID.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrClosed is returned when the editor has been closed.
	ErrClosed = errors.New("editor is closed")
)

// summaryKey marks the summary's slot in the busy map, which is otherwise
// keyed by entry ID.
var summaryKey = uuid.Nil

// Improver rewrites resume sections out of process. The editor snapshots the
// record before calling it, so implementations only ever see a copy.
type Improver interface {
	Summary(ctx context.Context, rec *types.ResumeRecord) (string, error)
	ExperienceBullets(ctx context.Context, rec *types.ResumeRecord, entryID uuid.UUID) ([]string, error)
	ProjectBullets(ctx context.Context, rec *types.ResumeRecord, entryID uuid.UUID) ([]string, error)
}

// Editor serializes all mutations of one in-memory record. Remote improve
// calls run outside the lock; only the snapshot and the apply step hold it,
// so concurrent improves for different entries proceed independently.
type Editor struct {
	mu       sync.Mutex
	rec      types.ResumeRecord
	busy     map[uuid.UUID]bool
	closed   bool
	improver Improver
}

// New creates an editor around an empty record. Sections that must never be
// empty start with one blank placeholder entry each.
func New(improver Improver) *Editor {
	return FromRecord(types.ResumeRecord{}, improver)
}

// FromRecord creates an editor around an existing record, topping up the
// minimum-one sections with a placeholder entry where the stored record has
// none.
func FromRecord(rec types.ResumeRecord, improver Improver) *Editor {
	rec = rec.Clone()
	if len(rec.Experience) == 0 {
		rec.Experience = []types.ExperienceEntry{{ID: uuid.New()}}
	}
	if len(rec.Education) == 0 {
		rec.Education = []types.EducationEntry{{ID: uuid.New()}}
	}
	if len(rec.Projects) == 0 {
		rec.Projects = []types.ProjectEntry{{ID: uuid.New()}}
	}
	if len(rec.Certifications) == 0 {
		rec.Certifications = []types.CertificationEntry{{ID: uuid.New()}}
	}
	return &Editor{
		rec:      rec,
		busy:     make(map[uuid.UUID]bool),
		improver: improver,
	}
}

// Record returns a deep copy of the current record, placeholder entries
// included. Use Normalized for the persistable/renderable form.
func (e *Editor) Record() types.ResumeRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rec.Clone()
}

// Normalized returns the canonical form of the current record with blank
// placeholder entries filtered out.
func (e *Editor) Normalized() types.ResumeRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rec.Normalize()
}

// Busy reports whether an improve call is pending for the given entry ID
// (uuid.Nil for the summary).
func (e *Editor) Busy(entryID uuid.UUID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy[entryID]
}

// Close marks the editor as gone. Pending improve calls finish but their
// results are discarded instead of mutating state.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}

// SetTitle replaces the resume title.
func (e *Editor) SetTitle(title string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rec.Title = title
}

// SetSummary replaces the professional summary.
func (e *Editor) SetSummary(summary string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rec.Summary = summary
}

// SetJobDescription replaces the AI-improve job description context.
func (e *Editor) SetJobDescription(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rec.JobDescription = text
}

// UpdatePersonalInfo applies a mutation to the contact header.
func (e *Editor) UpdatePersonalInfo(mutate func(*types.PersonalInfo)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	mutate(&e.rec.PersonalInfo)
}

// SetPhoto stores a committed photo reference and enables it. Cropping
// happens before commit; the editor only sees the final raster reference.
func (e *Editor) SetPhoto(url string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rec.PersonalInfo.PhotoURL = url
	e.rec.PersonalInfo.ShowPhoto = true
}

// RemovePhoto discards the stored photo.
func (e *Editor) RemovePhoto() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rec.PersonalInfo.PhotoURL = ""
	e.rec.PersonalInfo.ShowPhoto = false
}

// SetShowPhoto toggles photo visibility without discarding the stored photo.
func (e *Editor) SetShowPhoto(show bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rec.PersonalInfo.ShowPhoto = show
}
