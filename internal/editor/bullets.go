package editor

import (
	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// Bullet-line editing for experience and project descriptions. Lines are
// addressed by index within their entry; entries by stable ID.

// AddExperienceBullet appends a blank bullet line to an experience entry.
func (e *Editor) AddExperienceBullet(id uuid.UUID) error {
	return e.UpdateExperience(id, func(exp *types.ExperienceEntry) {
		exp.Description = append(exp.Description, "")
	})
}

// SetExperienceBullet replaces one bullet line of an experience entry.
func (e *Editor) SetExperienceBullet(id uuid.UUID, i int, text string) error {
	return e.updateExperienceBullets(id, func(lines types.BulletList) (types.BulletList, error) {
		if i < 0 || i >= len(lines) {
			return lines, ErrEntryNotFound
		}
		lines[i] = text
		return lines, nil
	})
}

// RemoveExperienceBullet deletes one bullet line of an experience entry.
func (e *Editor) RemoveExperienceBullet(id uuid.UUID, i int) error {
	return e.updateExperienceBullets(id, func(lines types.BulletList) (types.BulletList, error) {
		if i < 0 || i >= len(lines) {
			return lines, ErrEntryNotFound
		}
		return append(lines[:i], lines[i+1:]...), nil
	})
}

func (e *Editor) updateExperienceBullets(id uuid.UUID, mutate func(types.BulletList) (types.BulletList, error)) error {
	var innerErr error
	err := e.UpdateExperience(id, func(exp *types.ExperienceEntry) {
		exp.Description, innerErr = mutate(exp.Description)
	})
	if err != nil {
		return err
	}
	return innerErr
}

// AddProjectBullet appends a blank bullet line to a project entry.
func (e *Editor) AddProjectBullet(id uuid.UUID) error {
	return e.UpdateProject(id, func(proj *types.ProjectEntry) {
		proj.Description = append(proj.Description, "")
	})
}

// SetProjectBullet replaces one bullet line of a project entry.
func (e *Editor) SetProjectBullet(id uuid.UUID, i int, text string) error {
	return e.updateProjectBullets(id, func(lines types.BulletList) (types.BulletList, error) {
		if i < 0 || i >= len(lines) {
			return lines, ErrEntryNotFound
		}
		lines[i] = text
		return lines, nil
	})
}

// RemoveProjectBullet deletes one bullet line of a project entry.
func (e *Editor) RemoveProjectBullet(id uuid.UUID, i int) error {
	return e.updateProjectBullets(id, func(lines types.BulletList) (types.BulletList, error) {
		if i < 0 || i >= len(lines) {
			return lines, ErrEntryNotFound
		}
		return append(lines[:i], lines[i+1:]...), nil
	})
}

func (e *Editor) updateProjectBullets(id uuid.UUID, mutate func(types.BulletList) (types.BulletList, error)) error {
	var innerErr error
	err := e.UpdateProject(id, func(proj *types.ProjectEntry) {
		proj.Description, innerErr = mutate(proj.Description)
	})
	if err != nil {
		return err
	}
	return innerErr
}
