package render

// Tree is the structured, template-specific output of the rendering engine.
// It is medium-neutral: the screen renderer turns it into scrollable HTML,
// the export pipeline into a fixed-page document. Either way the structure
// is identical, so preview and export cannot diverge.
type Tree struct {
	TemplateID string
	Mode       Mode
	Sidebar    bool
	Header     Header

	// SidebarSections is populated only for sidebar layouts.
	SidebarSections []Section
	Sections        []Section
}

// Header carries the contact block. When the photo is hidden the layout
// shifts to a no-photo arrangement; this is a structural branch, not a
// visual hide, so HasPhoto gates whether PhotoURL appears at all.
type Header struct {
	Name     string
	HasPhoto bool
	PhotoURL string
	Contacts []Contact
}

// ContactKind identifies a contact line in the header or sidebar.
type ContactKind string

// Contact kinds.
const (
	ContactEmail     ContactKind = "email"
	ContactPhone     ContactKind = "phone"
	ContactAddress   ContactKind = "address"
	ContactLinkedIn  ContactKind = "linkedin"
	ContactGitHub    ContactKind = "github"
	ContactPortfolio ContactKind = "portfolio"
)

// Contact is one contact line. Label is the readable form (scheme and
// leading "www." stripped); Href keeps the original stored value and is
// what becomes the click target.
type Contact struct {
	Kind  ContactKind
	Label string
	Href  string
}

// Section is one rendered resume section. Exactly one of Paragraph, Items
// or Entries is populated depending on the section kind.
type Section struct {
	Kind      SectionKind
	Heading   string
	Paragraph string
	Items     []string
	Entries   []Entry
}

// Entry is one dated item within a section: a job, a degree, a project or a
// certification. Fields not applicable to the entry's section are empty.
type Entry struct {
	Title     string
	Subtitle  string
	Score     string
	DateLabel string
	Bullets   []string
	Tags      []string
	Link      string
}

// Section returns the section of the given kind, searching the sidebar as
// well, or nil when the section was omitted.
func (t *Tree) Section(kind SectionKind) *Section {
	for i := range t.SidebarSections {
		if t.SidebarSections[i].Kind == kind {
			return &t.SidebarSections[i]
		}
	}
	for i := range t.Sections {
		if t.Sections[i].Kind == kind {
			return &t.Sections[i]
		}
	}
	return nil
}
