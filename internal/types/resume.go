// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResumeRecord is the canonical in-memory representation of one resume,
// independent of any template.
type ResumeRecord struct {
	ID           uuid.UUID    `json:"id,omitempty"`
	Title        string       `json:"title"`
	PersonalInfo PersonalInfo `json:"personal_info"`
	Summary      string       `json:"summary,omitempty"`
	// JobDescription is free text used only as AI-improve context. It is never rendered.
	JobDescription  string               `json:"job_description,omitempty"`
	Experience      []ExperienceEntry    `json:"experience,omitempty"`
	Education       []EducationEntry     `json:"education,omitempty"`
	Projects        []ProjectEntry       `json:"projects,omitempty"`
	Skills          []string             `json:"skills,omitempty"`
	Certifications  []CertificationEntry `json:"certifications,omitempty"`
	Achievements    []string             `json:"achievements,omitempty"`
	ExtraCurricular []string             `json:"extra_curricular,omitempty"`
	CreatedAt       time.Time            `json:"created_at,omitempty"`
	UpdatedAt       time.Time            `json:"updated_at,omitempty"`
}

// PersonalInfo holds the contact header of a resume. PhotoURL and ShowPhoto
// are independent: a photo can be stored but hidden from render.
type PersonalInfo struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	ShowPhoto bool   `json:"show_photo,omitempty"`
}

// ExperienceEntry represents one work experience item.
type ExperienceEntry struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title,omitempty"`
	Company     string     `json:"company,omitempty"`
	StartDate   *YearMonth `json:"start_date,omitempty"`
	EndDate     *YearMonth `json:"end_date,omitempty"`
	Current     bool       `json:"current,omitempty"`
	Description BulletList `json:"description,omitempty"`
}

// Qualifies reports whether the entry has enough content to be rendered.
func (e *ExperienceEntry) Qualifies() bool {
	return strings.TrimSpace(e.Company) != "" || strings.TrimSpace(e.Title) != ""
}

// EducationEntry represents one education item.
type EducationEntry struct {
	ID          uuid.UUID  `json:"id"`
	Degree      string     `json:"degree,omitempty"`
	Institution string     `json:"institution,omitempty"`
	StartDate   *YearMonth `json:"start_date,omitempty"`
	EndDate     *YearMonth `json:"end_date,omitempty"`
	Current     bool       `json:"current,omitempty"`
	Score       string     `json:"score,omitempty"`
}

// Qualifies reports whether the entry has enough content to be rendered.
func (e *EducationEntry) Qualifies() bool {
	return strings.TrimSpace(e.Institution) != "" || strings.TrimSpace(e.Degree) != ""
}

// ProjectEntry represents one project item.
type ProjectEntry struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name,omitempty"`
	Description  BulletList `json:"description,omitempty"`
	Technologies []string   `json:"technologies,omitempty"`
	Link         string     `json:"link,omitempty"`
}

// Qualifies reports whether the entry has enough content to be rendered.
func (p *ProjectEntry) Qualifies() bool {
	return strings.TrimSpace(p.Name) != ""
}

// CertificationEntry represents one certification item.
type CertificationEntry struct {
	ID     uuid.UUID  `json:"id"`
	Title  string     `json:"title,omitempty"`
	Issuer string     `json:"issuer,omitempty"`
	Date   *YearMonth `json:"date,omitempty"`
}

// Qualifies reports whether the entry has enough content to be rendered.
func (c *CertificationEntry) Qualifies() bool {
	return strings.TrimSpace(c.Title) != ""
}

// BulletList is an ordered sequence of bullet lines. Older clients stored
// project descriptions as a single string; that legacy shape is accepted on
// unmarshal and normalized into a one-element list.
type BulletList []string

// UnmarshalJSON implements json.Unmarshaler, accepting both a JSON array of
// strings and a bare string (legacy input).
func (b *BulletList) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err == nil {
		*b = lines
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*b = nil
		return nil
	}
	*b = BulletList{single}
	return nil
}

// NonBlank returns the bullet lines with blank entries removed.
func (b BulletList) NonBlank() []string {
	var out []string
	for _, line := range b {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// ResumeSummary is a lightweight view of a resume for listing.
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}
