package preview

import "html/template"

// layouts holds the three page layouts plus the shared section-body
// templates. Parsed once; html/template handles contextual escaping of all
// user-supplied text.
var layouts = template.Must(template.New("preview").Parse(layoutText))

const layoutText = `
{{define "classic"}}<div class="resume resume-classic">
  <header class="head">
    <h1{{if not .ATS}} style="color: {{.Accent}}"{{end}}>{{.Name}}</h1>
    <div class="subtitle">{{.Title}}</div>
    <div class="contact-line">{{.Contact}}</div>
  </header>
{{range .Sections}}  <section class="sec" data-section="{{.ID}}">
    <h2>{{.Title}}</h2>
    {{.Body}}
  </section>
{{end}}</div>{{end}}

{{define "modern"}}<div class="resume resume-modern">
  <header class="head">
    <h1{{if not .ATS}} style="color: {{.Accent}}"{{end}}>{{.Name}}</h1>
    <span class="pill">{{.Title}}</span>
    <div class="contact-line">{{.Contact}}</div>
  </header>
  <div class="columns">
    <div class="main">
{{range .Sections}}      <section class="sec" data-section="{{.ID}}">
        <h2>{{.Title}}</h2>
        {{.Body}}
      </section>
{{end}}    </div>
    <aside class="side">
{{range .Aside}}      <section class="sec" data-section="{{.ID}}">
        <h2>{{.Title}}</h2>
        {{.Body}}
      </section>
{{end}}    </aside>
  </div>
</div>{{end}}

{{define "minimal"}}<div class="resume resume-minimal">
  <header class="head">
    <h1{{if not .ATS}} style="color: {{.Accent}}"{{end}}>{{.Name}}</h1>
    <div class="subtitle">{{.Title}}</div>
    {{if not .ATS}}<div class="rule" style="background: {{.Accent}}"></div>
    {{end}}<div class="contact-line">{{.Contact}}</div>
  </header>
{{range .Sections}}  <section class="sec" data-section="{{.ID}}">
    {{.Body}}
  </section>
{{end}}</div>{{end}}

{{define "summary"}}<p class="summary">{{.}}</p>{{end}}

{{define "experience"}}<div class="entries">
{{range .}}    <div class="entry">
      <div class="entry-head">{{.Heading}}</div>
      {{if .Meta}}<div class="entry-meta">{{.Meta}}</div>
      {{end}}{{if .Bullets}}<ul>
{{range .Bullets}}        <li>{{.}}</li>
{{end}}      </ul>
      {{end}}</div>
{{end}}  </div>{{end}}

{{define "education"}}<div class="entries">
{{range .}}    <div class="entry">
      <div class="entry-head">{{.School}}</div>
      {{if .Meta}}<div class="entry-meta">{{.Meta}}</div>
      {{end}}</div>
{{end}}  </div>{{end}}

{{define "chips"}}<div class="chips">
{{$c := .}}{{range .Items}}    <span class="chip"{{if not $c.Plain}} style="border-color: {{$c.Accent}}; color: {{$c.Accent}}"{{end}}>{{.}}</span>
{{end}}  </div>{{end}}

{{define "contact"}}<div class="contact">
    <div class="contact-title"{{if not .ATS}} style="color: {{.Accent}}"{{end}}>Contact</div>
    <div>{{.Email}}</div>
    {{if .Phone}}<div>{{.Phone}}</div>
    {{end}}{{if .Link}}<div>{{.Link}}</div>
    {{end}}{{if .Address}}<div>{{.Address}}</div>
    {{end}}</div>{{end}}
`
