package types

import (
	"strings"

	"github.com/google/uuid"
)

// Normalize converts a raw or partially filled record into canonical form,
// applied before render and before persistence:
//
//   - repeatable entries without a stable ID get one assigned
//   - current entries have their end date suppressed ("Present" at render)
//   - blank bullet lines are dropped; entries left without qualifying
//     content are filtered out
//   - zero-value dates (absent or malformed input) collapse to nil
//   - blank skills/achievements/extra-curricular items are dropped
//   - surrounding whitespace is trimmed on free-text list items
//
// The input is not mutated; the full untruncated data entered in the editing
// surface stays there until the caller chooses to normalize.
func (r ResumeRecord) Normalize() ResumeRecord {
	out := r

	out.Experience = nil
	for _, exp := range r.Experience {
		if !exp.Qualifies() {
			continue
		}
		e := exp
		ensureID(&e.ID)
		e.Description = BulletList(trimEach(e.Description.NonBlank()))
		e.StartDate = presentDate(e.StartDate)
		e.EndDate = presentDate(e.EndDate)
		if e.Current {
			e.EndDate = nil
		}
		out.Experience = append(out.Experience, e)
	}

	out.Education = nil
	for _, edu := range r.Education {
		if !edu.Qualifies() {
			continue
		}
		e := edu
		ensureID(&e.ID)
		e.StartDate = presentDate(e.StartDate)
		e.EndDate = presentDate(e.EndDate)
		if e.Current {
			e.EndDate = nil
		}
		out.Education = append(out.Education, e)
	}

	out.Projects = nil
	for _, proj := range r.Projects {
		if !proj.Qualifies() {
			continue
		}
		p := proj
		ensureID(&p.ID)
		p.Description = BulletList(trimEach(p.Description.NonBlank()))
		p.Technologies = dropBlank(p.Technologies)
		out.Projects = append(out.Projects, p)
	}

	out.Certifications = nil
	for _, cert := range r.Certifications {
		if !cert.Qualifies() {
			continue
		}
		c := cert
		ensureID(&c.ID)
		c.Date = presentDate(c.Date)
		out.Certifications = append(out.Certifications, c)
	}

	out.Skills = dropBlank(r.Skills)
	out.Achievements = dropBlank(r.Achievements)
	out.ExtraCurricular = dropBlank(r.ExtraCurricular)

	return out
}

// HasSummary reports whether the record carries a renderable summary.
func (r *ResumeRecord) HasSummary() bool {
	return strings.TrimSpace(r.Summary) != ""
}

// HasVisiblePhoto reports whether a photo is both stored and enabled. The
// render layout branches structurally on this, so both conditions matter.
func (r *ResumeRecord) HasVisiblePhoto() bool {
	return r.PersonalInfo.ShowPhoto && r.PersonalInfo.PhotoURL != ""
}

// presentDate collapses zero-value dates (such as malformed input treated as
// absent on unmarshal) to nil so downstream code has one absence form.
func presentDate(d *YearMonth) *YearMonth {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func trimEach(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.TrimSpace(item))
	}
	return out
}

func dropBlank(items []string) []string {
	var out []string
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
