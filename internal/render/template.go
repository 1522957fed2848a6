// Package render provides the template rendering engine: a pure mapping from
// a canonical resume record and a template ID onto a structured visual tree,
// consumed identically by the on-screen preview renderer and the paginated
// export renderer.
package render

// Mode selects the rendering medium. Screen output is continuous-scroll;
// export output targets a single fixed-size page and applies the template's
// truncation limits.
type Mode string

// Rendering modes.
const (
	ModeScreen Mode = "screen"
	ModeExport Mode = "export"
)

// SectionKind identifies one of the optional resume sections.
type SectionKind string

// Section kinds.
const (
	SectionSummary         SectionKind = "summary"
	SectionExperience      SectionKind = "experience"
	SectionProjects        SectionKind = "projects"
	SectionEducation       SectionKind = "education"
	SectionSkills          SectionKind = "skills"
	SectionCertifications  SectionKind = "certifications"
	SectionAchievements    SectionKind = "achievements"
	SectionExtraCurricular SectionKind = "extra_curricular"
)

// Limits caps how many items a constrained layout shows in export mode.
// Zero means unlimited. Truncation only affects what a template displays;
// the underlying record always keeps the full data.
type Limits struct {
	ExperienceBullets int
	Projects          int
	ProjectBullets    int
	Technologies      int
	Certifications    int
	Achievements      int
	ExtraCurricular   int
}

// Template is a named set of layout, ordering and truncation rules. Section
// order is part of the template's identity: reordering sections is a template
// change, not a data change. One descriptor drives both the screen preview
// and the paginated export, so the two can never drift apart.
type Template struct {
	ID         string
	Name       string
	Sidebar    bool // two-column layout with a contact/skills sidebar
	ShowsPhoto bool

	// SidebarSections lists sections pulled into the sidebar (sidebar
	// layouts only); Sections is the main-column order.
	SidebarSections []SectionKind
	Sections        []SectionKind

	Headings     map[SectionKind]string
	ExportLimits Limits
}

// Heading returns the template's heading for a section kind.
func (t *Template) Heading(kind SectionKind) string {
	return t.Headings[kind]
}

// DefaultTemplateID is used when a caller passes an unknown template ID.
// Rendering must never fail, so lookup falls back rather than erroring.
const DefaultTemplateID = "classic"

var templates = map[string]*Template{
	"classic": {
		ID:         "classic",
		Name:       "Classic",
		ShowsPhoto: true,
		Sections: []SectionKind{
			SectionSummary,
			SectionExperience,
			SectionProjects,
			SectionEducation,
			SectionSkills,
			SectionCertifications,
			SectionAchievements,
			SectionExtraCurricular,
		},
		Headings: map[SectionKind]string{
			SectionSummary:         "Professional Summary",
			SectionExperience:      "Work Experience",
			SectionProjects:        "Projects",
			SectionEducation:       "Education",
			SectionSkills:          "Skills",
			SectionCertifications:  "Certifications",
			SectionAchievements:    "Achievements",
			SectionExtraCurricular: "Extra Curricular Activities",
		},
		ExportLimits: Limits{
			ExperienceBullets: 4,
			Projects:          3,
			ProjectBullets:    3,
			Certifications:    4,
			Achievements:      4,
			ExtraCurricular:   3,
		},
	},
	"modern": {
		ID:         "modern",
		Name:       "Modern",
		Sidebar:    true,
		ShowsPhoto: true,
		SidebarSections: []SectionKind{
			SectionSkills,
			SectionCertifications,
		},
		Sections: []SectionKind{
			SectionSummary,
			SectionExperience,
			SectionProjects,
			SectionEducation,
			SectionAchievements,
			SectionExtraCurricular,
		},
		Headings: map[SectionKind]string{
			SectionSummary:         "Profile",
			SectionExperience:      "Experience",
			SectionProjects:        "Projects",
			SectionEducation:       "Education",
			SectionSkills:          "Skills",
			SectionCertifications:  "Certifications",
			SectionAchievements:    "Achievements",
			SectionExtraCurricular: "Extra Curricular",
		},
		ExportLimits: Limits{
			ExperienceBullets: 3,
			Projects:          2,
			ProjectBullets:    2,
			Technologies:      4,
			Certifications:    4,
			Achievements:      3,
			ExtraCurricular:   2,
		},
	},
	// ats is a plain single-column machine-readable layout: no photo, no
	// sidebar, no truncation.
	"ats": {
		ID:   "ats",
		Name: "ATS",
		Sections: []SectionKind{
			SectionSummary,
			SectionSkills,
			SectionExperience,
			SectionProjects,
			SectionEducation,
			SectionCertifications,
			SectionAchievements,
			SectionExtraCurricular,
		},
		Headings: map[SectionKind]string{
			SectionSummary:         "Professional Summary",
			SectionSkills:          "Technical Skills",
			SectionExperience:      "Professional Experience",
			SectionProjects:        "Projects",
			SectionEducation:       "Education",
			SectionCertifications:  "Certifications",
			SectionAchievements:    "Achievements",
			SectionExtraCurricular: "Extracurricular Activities",
		},
	},
}

// Lookup returns the template descriptor for an ID. Unknown IDs fall back to
// the default template; ok reports whether the ID matched exactly.
func Lookup(id string) (t *Template, ok bool) {
	if t, ok := templates[id]; ok {
		return t, true
	}
	return templates[DefaultTemplateID], false
}

// TemplateIDs returns the known template IDs in stable order.
func TemplateIDs() []string {
	return []string{"classic", "modern", "ats"}
}
