package editor

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// Repeatable entry sections. Add returns the new entry's ID so callers can
// key further edits; Remove refuses to drop below one remaining entry.

// AddExperience appends a blank experience entry.
func (e *Editor) AddExperience() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := uuid.New()
	e.rec.Experience = append(e.rec.Experience, types.ExperienceEntry{ID: id})
	return id
}

// RemoveExperience deletes the entry with the given ID.
func (e *Editor) RemoveExperience(id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.rec.Experience) <= 1 {
		return ErrLastEntry
	}
	for i := range e.rec.Experience {
		if e.rec.Experience[i].ID == id {
			e.rec.Experience = append(e.rec.Experience[:i], e.rec.Experience[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// UpdateExperience applies a mutation to the entry with the given ID.
func (e *Editor) UpdateExperience(id uuid.UUID, mutate func(*types.ExperienceEntry)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.rec.Experience {
		if e.rec.Experience[i].ID == id {
			mutate(&e.rec.Experience[i])
			return nil
		}
	}
	return ErrEntryNotFound
}

// AddEducation appends a blank education entry.
func (e *Editor) AddEducation() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := uuid.New()
	e.rec.Education = append(e.rec.Education, types.EducationEntry{ID: id})
	return id
}

// RemoveEducation deletes the entry with the given ID.
func (e *Editor) RemoveEducation(id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.rec.Education) <= 1 {
		return ErrLastEntry
	}
	for i := range e.rec.Education {
		if e.rec.Education[i].ID == id {
			e.rec.Education = append(e.rec.Education[:i], e.rec.Education[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// UpdateEducation applies a mutation to the entry with the given ID.
func (e *Editor) UpdateEducation(id uuid.UUID, mutate func(*types.EducationEntry)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.rec.Education {
		if e.rec.Education[i].ID == id {
			mutate(&e.rec.Education[i])
			return nil
		}
	}
	return ErrEntryNotFound
}

// AddProject appends a blank project entry.
func (e *Editor) AddProject() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := uuid.New()
	e.rec.Projects = append(e.rec.Projects, types.ProjectEntry{ID: id})
	return id
}

// RemoveProject deletes the entry with the given ID.
func (e *Editor) RemoveProject(id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.rec.Projects) <= 1 {
		return ErrLastEntry
	}
	for i := range e.rec.Projects {
		if e.rec.Projects[i].ID == id {
			e.rec.Projects = append(e.rec.Projects[:i], e.rec.Projects[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// UpdateProject applies a mutation to the entry with the given ID.
func (e *Editor) UpdateProject(id uuid.UUID, mutate func(*types.ProjectEntry)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.rec.Projects {
		if e.rec.Projects[i].ID == id {
			mutate(&e.rec.Projects[i])
			return nil
		}
	}
	return ErrEntryNotFound
}

// AddCertification appends a blank certification entry.
func (e *Editor) AddCertification() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := uuid.New()
	e.rec.Certifications = append(e.rec.Certifications, types.CertificationEntry{ID: id})
	return id
}

// RemoveCertification deletes the entry with the given ID.
func (e *Editor) RemoveCertification(id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.rec.Certifications) <= 1 {
		return ErrLastEntry
	}
	for i := range e.rec.Certifications {
		if e.rec.Certifications[i].ID == id {
			e.rec.Certifications = append(e.rec.Certifications[:i], e.rec.Certifications[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// UpdateCertification applies a mutation to the entry with the given ID.
func (e *Editor) UpdateCertification(id uuid.UUID, mutate func(*types.CertificationEntry)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.rec.Certifications {
		if e.rec.Certifications[i].ID == id {
			mutate(&e.rec.Certifications[i])
			return nil
		}
	}
	return ErrEntryNotFound
}

// Plain string-list sections. These may reach zero entries.

// AddSkill appends a skill, ignoring blanks and case-insensitive duplicates.
func (e *Editor) AddSkill(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, existing := range e.rec.Skills {
		if strings.EqualFold(existing, skill) {
			return
		}
	}
	e.rec.Skills = append(e.rec.Skills, skill)
}

// RemoveSkill deletes the skill at the given index.
func (e *Editor) RemoveSkill(i int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	var err error
	e.rec.Skills, err = removeAt(e.rec.Skills, i)
	return err
}

// AddAchievement appends an achievement line.
func (e *Editor) AddAchievement(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rec.Achievements = append(e.rec.Achievements, text)
}

// SetAchievement replaces the achievement at the given index.
func (e *Editor) SetAchievement(i int, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i < 0 || i >= len(e.rec.Achievements) {
		return ErrEntryNotFound
	}
	e.rec.Achievements[i] = text
	return nil
}

// RemoveAchievement deletes the achievement at the given index.
func (e *Editor) RemoveAchievement(i int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	var err error
	e.rec.Achievements, err = removeAt(e.rec.Achievements, i)
	return err
}

// AddExtraCurricular appends an extra-curricular line.
func (e *Editor) AddExtraCurricular(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rec.ExtraCurricular = append(e.rec.ExtraCurricular, text)
}

// SetExtraCurricular replaces the extra-curricular line at the given index.
func (e *Editor) SetExtraCurricular(i int, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i < 0 || i >= len(e.rec.ExtraCurricular) {
		return ErrEntryNotFound
	}
	e.rec.ExtraCurricular[i] = text
	return nil
}

// RemoveExtraCurricular deletes the extra-curricular line at the given index.
func (e *Editor) RemoveExtraCurricular(i int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	var err error
	e.rec.ExtraCurricular, err = removeAt(e.rec.ExtraCurricular, i)
	return err
}

func removeAt(items []string, i int) ([]string, error) {
	if i < 0 || i >= len(items) {
		return items, ErrEntryNotFound
	}
	return append(items[:i], items[i+1:]...), nil
}
