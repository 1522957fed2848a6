package editor

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// AI-improve orchestration. The flow per call: snapshot the record and mark
// the entry busy under the lock, call the improver unlocked, then re-lock to
// apply the result. Failures leave the section content untouched, and a
// re-trigger while a call for the same entry is pending is a silent no-op.

// ImproveSummary rewrites the summary through the improver.
func (e *Editor) ImproveSummary(ctx context.Context) error {
	rec, started, err := e.beginImprove(summaryKey)
	if err != nil || !started {
		return err
	}

	text, err := e.improver.Summary(ctx, &rec)
	if err != nil {
		_ = e.finishImprove(summaryKey, nil)
		return err
	}
	return e.finishImprove(summaryKey, func() error {
		e.rec.Summary = text
		return nil
	})
}

// ImproveExperience rewrites the description bullets of one experience entry.
func (e *Editor) ImproveExperience(ctx context.Context, entryID uuid.UUID) error {
	rec, started, err := e.beginImprove(entryID)
	if err != nil || !started {
		return err
	}

	bullets, err := e.improver.ExperienceBullets(ctx, &rec, entryID)
	if err != nil {
		_ = e.finishImprove(entryID, nil)
		return err
	}
	return e.finishImprove(entryID, func() error {
		for i := range e.rec.Experience {
			if e.rec.Experience[i].ID == entryID {
				e.rec.Experience[i].Description = types.BulletList(bullets)
				return nil
			}
		}
		// entry was removed while the call was in flight
		return ErrEntryNotFound
	})
}

// ImproveProject rewrites the description bullets of one project entry.
func (e *Editor) ImproveProject(ctx context.Context, entryID uuid.UUID) error {
	rec, started, err := e.beginImprove(entryID)
	if err != nil || !started {
		return err
	}

	bullets, err := e.improver.ProjectBullets(ctx, &rec, entryID)
	if err != nil {
		_ = e.finishImprove(entryID, nil)
		return err
	}
	return e.finishImprove(entryID, func() error {
		for i := range e.rec.Projects {
			if e.rec.Projects[i].ID == entryID {
				e.rec.Projects[i].Description = types.BulletList(bullets)
				return nil
			}
		}
		return ErrEntryNotFound
	})
}

// beginImprove snapshots the record and claims the busy flag. started is
// false when a call for the same key is already pending.
func (e *Editor) beginImprove(key uuid.UUID) (rec types.ResumeRecord, started bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return rec, false, ErrClosed
	}
	if e.busy[key] {
		return rec, false, nil
	}
	e.busy[key] = true
	return e.rec.Clone(), true, nil
}

// finishImprove releases the busy flag and, when the editor is still open,
// applies the result. A closed editor discards the result.
func (e *Editor) finishImprove(key uuid.UUID, apply func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.busy, key)
	if e.closed {
		return ErrClosed
	}
	if apply == nil {
		return nil
	}
	return apply()
}
