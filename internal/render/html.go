package render

import (
	"html/template"
	"strings"
)

// HTML renders a tree into a self-contained document. The same markup backs
// the on-screen preview and the paginated export; only the stylesheet's page
// rules differ between modes.
func HTML(tree *Tree) (string, error) {
	var b strings.Builder
	if err := docTemplate.Execute(&b, tree); err != nil {
		return "", &TemplateError{Message: "failed to execute document template", Cause: err}
	}
	return b.String(), nil
}

var docTemplate = template.Must(template.New("resume").Parse(documentHTML))

const documentHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Header.Name}}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: Georgia, 'Times New Roman', serif; font-size: 10.5pt; color: #1f2937; line-height: 1.45; }
  .page { max-width: 8.27in; margin: 0 auto; padding: 0.55in 0.6in; background: #fff; }
  header.identity { display: flex; align-items: center; gap: 18px; border-bottom: 2px solid #1f2937; padding-bottom: 10px; margin-bottom: 14px; }
  header.identity img { width: 78px; height: 78px; border-radius: 50%; object-fit: cover; }
  h1 { font-size: 20pt; letter-spacing: 0.5px; }
  ul.contacts { list-style: none; margin-top: 4px; font-size: 9pt; color: #4b5563; }
  ul.contacts li { display: inline; }
  ul.contacts li + li::before { content: " \2022 "; color: #9ca3af; }
  ul.contacts a { color: inherit; text-decoration: none; }
  .columns { display: flex; gap: 24px; }
  .sidebar { width: 30%; }
  .main { flex: 1; }
  section { margin-bottom: 12px; }
  h2 { font-size: 11pt; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #d1d5db; margin-bottom: 6px; padding-bottom: 2px; }
  .entry { margin-bottom: 8px; }
  .entry-head { display: flex; justify-content: space-between; align-items: baseline; }
  .entry-title { font-weight: bold; }
  .entry-sub { font-style: italic; color: #374151; }
  .entry-date { font-size: 9pt; color: #6b7280; white-space: nowrap; }
  .entry ul { margin: 3px 0 0 18px; }
  .tags { font-size: 9pt; color: #4b5563; margin-top: 2px; }
  .items { margin-left: 18px; }
  {{if eq .Mode "export"}}
  @page { size: A4; margin: 0; }
  body { width: 8.27in; }
  .page { box-shadow: none; }
  {{else}}
  body { background: #e5e7eb; }
  .page { min-height: 11.69in; margin: 16px auto; box-shadow: 0 1px 6px rgba(0,0,0,0.25); }
  {{end}}
</style>
</head>
<body>
<div class="page">
  <header class="identity">
    {{if .Header.HasPhoto}}<img src="{{.Header.PhotoURL}}" alt="">{{end}}
    <div>
      <h1>{{.Header.Name}}</h1>
      <ul class="contacts">
        {{range .Header.Contacts}}
        <li>{{if .Href}}<a href="{{.Href}}">{{.Label}}</a>{{else}}{{.Label}}{{end}}</li>
        {{end}}
      </ul>
    </div>
  </header>
  {{if .Sidebar}}
  <div class="columns">
    <aside class="sidebar">
      {{range .SidebarSections}}{{template "section" .}}{{end}}
    </aside>
    <div class="main">
      {{range .Sections}}{{template "section" .}}{{end}}
    </div>
  </div>
  {{else}}
  {{range .Sections}}{{template "section" .}}{{end}}
  {{end}}
</div>
</body>
</html>
{{define "section"}}
<section class="sec-{{.Kind}}">
  <h2>{{.Heading}}</h2>
  {{if .Paragraph}}<p>{{.Paragraph}}</p>{{end}}
  {{if .Items}}
  <ul class="items">
    {{range .Items}}<li>{{.}}</li>{{end}}
  </ul>
  {{end}}
  {{range .Entries}}
  <div class="entry">
    <div class="entry-head">
      <span>
        <span class="entry-title">{{if .Link}}<a href="{{.Link}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}</span>
        {{if .Subtitle}}<span class="entry-sub">&ndash; {{.Subtitle}}</span>{{end}}
        {{if .Score}}<span class="entry-sub">({{.Score}})</span>{{end}}
      </span>
      {{if .DateLabel}}<span class="entry-date">{{.DateLabel}}</span>{{end}}
    </div>
    {{if .Bullets}}
    <ul>
      {{range .Bullets}}<li>{{.}}</li>{{end}}
    </ul>
    {{end}}
    {{if .Tags}}<div class="tags">{{range $i, $t := .Tags}}{{if $i}} &middot; {{end}}{{$t}}{{end}}</div>{{end}}
  </div>
  {{end}}
</section>
{{end}}`
