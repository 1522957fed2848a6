package render

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Placeholder text used when a required display field is absent. The record
// is user-entered and may be partially filled at any time, so every field
// access is defensive: absence renders as omission or a neutral placeholder,
// never as a failure.
const (
	PlaceholderName        = "Your Name"
	PlaceholderPosition    = "Position"
	PlaceholderCompany     = "Company"
	PlaceholderDegree      = "Degree"
	PlaceholderInstitution = "Institution"
)

// PresentLabel replaces the end date of a current experience/education entry.
const PresentLabel = "Present"

var urlPrefix = regexp.MustCompile(`^https?://(www\.)?`)

// CleanURL strips the scheme and a leading "www." for display. The stored
// link keeps its original value and remains the click target.
func CleanURL(u string) string {
	return urlPrefix.ReplaceAllString(u, "")
}

// FormatDateRange renders "<start> - <end|Present>". A missing start or end
// renders as an empty segment rather than omitting the dash, so a range with
// only one side still reads as a range.
func FormatDateRange(start, end *types.YearMonth, current bool) string {
	endLabel := end.Display()
	if current {
		endLabel = PresentLabel
	}
	return start.Display() + " - " + endLabel
}

// Render maps a canonical record onto the visual tree for the given template
// and mode. It is pure and total: it never fails, whatever the record holds.
// Unknown template IDs fall back to the default template.
func Render(rec types.ResumeRecord, templateID string, mode Mode) *Tree {
	tpl, _ := Lookup(templateID)
	rec = rec.Normalize()

	limits := Limits{}
	if mode == ModeExport {
		limits = tpl.ExportLimits
	}

	tree := &Tree{
		TemplateID: tpl.ID,
		Mode:       mode,
		Sidebar:    tpl.Sidebar,
		Header:     buildHeader(&rec, tpl),
	}

	for _, kind := range tpl.SidebarSections {
		if sec, ok := buildSection(&rec, tpl, kind, limits); ok {
			tree.SidebarSections = append(tree.SidebarSections, sec)
		}
	}
	for _, kind := range tpl.Sections {
		if sec, ok := buildSection(&rec, tpl, kind, limits); ok {
			tree.Sections = append(tree.Sections, sec)
		}
	}
	return tree
}

func buildHeader(rec *types.ResumeRecord, tpl *Template) Header {
	info := rec.PersonalInfo

	h := Header{Name: info.Name}
	if h.Name == "" {
		h.Name = PlaceholderName
	}
	if tpl.ShowsPhoto && rec.HasVisiblePhoto() {
		h.HasPhoto = true
		h.PhotoURL = info.PhotoURL
	}

	if info.Email != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: ContactEmail, Label: info.Email, Href: "mailto:" + info.Email})
	}
	if info.Phone != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: ContactPhone, Label: info.Phone})
	}
	if info.Address != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: ContactAddress, Label: info.Address})
	}
	if info.LinkedIn != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: ContactLinkedIn, Label: CleanURL(info.LinkedIn), Href: info.LinkedIn})
	}
	if info.GitHub != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: ContactGitHub, Label: CleanURL(info.GitHub), Href: info.GitHub})
	}
	if info.Portfolio != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: ContactPortfolio, Label: CleanURL(info.Portfolio), Href: info.Portfolio})
	}
	return h
}

// buildSection returns the rendered section for a kind, or ok=false when the
// section has no qualifying entry and is omitted from the output entirely.
func buildSection(rec *types.ResumeRecord, tpl *Template, kind SectionKind, limits Limits) (Section, bool) {
	sec := Section{Kind: kind, Heading: tpl.Heading(kind)}

	switch kind {
	case SectionSummary:
		if !rec.HasSummary() {
			return sec, false
		}
		sec.Paragraph = rec.Summary

	case SectionExperience:
		for _, exp := range rec.Experience {
			sec.Entries = append(sec.Entries, experienceEntry(exp, limits))
		}

	case SectionProjects:
		for _, proj := range capProjects(rec.Projects, limits.Projects) {
			sec.Entries = append(sec.Entries, projectEntry(proj, limits))
		}

	case SectionEducation:
		for _, edu := range rec.Education {
			sec.Entries = append(sec.Entries, educationEntry(edu))
		}

	case SectionSkills:
		sec.Items = rec.Skills

	case SectionCertifications:
		certs := rec.Certifications
		if limits.Certifications > 0 && len(certs) > limits.Certifications {
			certs = certs[:limits.Certifications]
		}
		for _, cert := range certs {
			sec.Entries = append(sec.Entries, Entry{
				Title:     cert.Title,
				Subtitle:  cert.Issuer,
				DateLabel: cert.Date.Display(),
			})
		}

	case SectionAchievements:
		sec.Items = capItems(rec.Achievements, limits.Achievements)

	case SectionExtraCurricular:
		sec.Items = capItems(rec.ExtraCurricular, limits.ExtraCurricular)
	}

	if sec.Paragraph == "" && len(sec.Items) == 0 && len(sec.Entries) == 0 {
		return sec, false
	}
	return sec, true
}

func experienceEntry(exp types.ExperienceEntry, limits Limits) Entry {
	e := Entry{
		Title:    exp.Title,
		Subtitle: exp.Company,
		Bullets:  capItems(exp.Description, limits.ExperienceBullets),
	}
	if e.Title == "" {
		e.Title = PlaceholderPosition
	}
	if e.Subtitle == "" {
		e.Subtitle = PlaceholderCompany
	}
	if exp.StartDate != nil || exp.EndDate != nil || exp.Current {
		e.DateLabel = FormatDateRange(exp.StartDate, exp.EndDate, exp.Current)
	}
	return e
}

func educationEntry(edu types.EducationEntry) Entry {
	e := Entry{
		Title:    edu.Degree,
		Subtitle: edu.Institution,
		Score:    edu.Score,
	}
	if e.Title == "" {
		e.Title = PlaceholderDegree
	}
	if e.Subtitle == "" {
		e.Subtitle = PlaceholderInstitution
	}
	if edu.StartDate != nil || edu.EndDate != nil || edu.Current {
		e.DateLabel = FormatDateRange(edu.StartDate, edu.EndDate, edu.Current)
	}
	return e
}

func projectEntry(proj types.ProjectEntry, limits Limits) Entry {
	return Entry{
		Title:   proj.Name,
		Link:    proj.Link,
		Bullets: capItems(proj.Description, limits.ProjectBullets),
		Tags:    capItems(proj.Technologies, limits.Technologies),
	}
}

func capProjects(projects []types.ProjectEntry, limit int) []types.ProjectEntry {
	if limit > 0 && len(projects) > limit {
		return projects[:limit]
	}
	return projects
}

func capItems(items []string, limit int) []string {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// SanitizeTitle makes a resume title safe for use as a download filename,
// falling back to "resume" when the title is blank.
func SanitizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "resume"
	}
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "resume"
	}
	return b.String()
}
