package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"github.com/jonathan/resume-booster/internal/types"
)

// PortfolioHTML renders the portfolio as a single self-contained HTML
// page. All text is escaped; images are inline data URIs so the file has
// no external references.
func PortfolioHTML(state types.PortfolioState) (string, error) {
	var buf bytes.Buffer
	if err := portfolioPage.Execute(&buf, portfolioView{state}); err != nil {
		return "", fmt.Errorf("failed to render portfolio page: %w", err)
	}
	return buf.String(), nil
}

// PortfolioHTMLFilename derives a download name from the portfolio.
func PortfolioHTMLFilename(state types.PortfolioState) string {
	name := strings.TrimSpace(state.Name)
	if name == "" {
		name = "portfolio"
	}
	return name + ".html"
}

// PortfolioJSX renders the portfolio as a standalone React component with
// the state embedded as a literal, matching the page layout of
// PortfolioHTML.
func PortfolioJSX(state types.PortfolioState) (string, error) {
	data, err := json.MarshalIndent(state, "  ", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode portfolio state: %w", err)
	}
	var buf bytes.Buffer
	if err := portfolioComponent.Execute(&buf, string(data)); err != nil {
		return "", fmt.Errorf("failed to render portfolio component: %w", err)
	}
	return buf.String(), nil
}

type portfolioView struct {
	types.PortfolioState
}

// Title falls back to a generic page title when the portfolio is unnamed.
func (v portfolioView) Title() string {
	if v.Name != "" {
		return v.Name
	}
	return "Portfolio"
}

// Avatar returns the avatar as a safe URL, or empty when it is not an
// inline image. Only data URIs are allowed through; anything else would
// make the exported file reach out to the network.
func (v portfolioView) Avatar() template.URL {
	return imageDataURL(v.AvatarDataURL)
}

// Image is the project-cover counterpart of Avatar.
func (portfolioView) Image(p types.Project) template.URL {
	return imageDataURL(p.ImageDataURL)
}

func imageDataURL(s string) template.URL {
	if strings.HasPrefix(s, "data:image/") {
		return template.URL(s)
	}
	return ""
}

var portfolioPage = template.Must(template.New("portfolio").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>{{.Title}}</title>
<style>
:root{--fg:#0f172a;--muted:#475569}
body{font-family:ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Inter,Arial;margin:0;padding:24px;color:var(--fg)}
.header{background:linear-gradient(90deg,#6366f1,#8b5cf6);color:#fff;border-radius:12px;padding:16px}
.row{display:flex;gap:12px;align-items:center}
.avatar{height:64px;width:64px;border-radius:9999px;overflow:hidden;background:#ffffff22}
.avatar img{height:100%;width:100%;object-fit:cover}
.section{margin-top:20px}
.chip{display:inline-block;border:1px solid #e5e7eb;border-radius:999px;padding:4px 10px;margin:4px 6px 0 0;font-size:12px}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(220px,1fr));gap:12px}
.card{border:1px solid #e5e7eb;border-radius:10px;padding:12px}
.cover{width:100%;height:140px;object-fit:cover;border-radius:8px;margin-bottom:8px}
small{color:var(--muted)}
</style>
</head>
<body>
  <header class="header">
    <div class="row">
      <div class="avatar">{{with .Avatar}}<img src="{{.}}" alt="Avatar"/>{{end}}</div>
      <div>
        <h2 style="margin:0">{{.Name}}</h2>
        <div>{{.Role}}</div>
        <small>{{.Email}}</small>
      </div>
    </div>
  </header>
  {{if .About}}<section class="section"><h3>About</h3><p>{{.About}}</p></section>{{end}}
  {{if .Skills}}<section class="section"><h3>Skills</h3><div>{{range .Skills}}<span class="chip">{{.}}</span> {{end}}</div></section>{{end}}
  {{if .Projects}}<section class="section"><h3>Projects</h3><div class="grid">{{range .Projects}}
    <article class="card">
      {{with $.Image .}}<img src="{{.}}" alt="Project" class="cover"/>{{end}}
      <h4>{{.Title}}</h4>
      <p>{{.Description}}</p>
    </article>
  {{end}}</div></section>{{end}}
</body>
</html>
`))

// The component source is full of literal {{ }} pairs, so the template
// uses shell-style delimiters for its one insertion point.
var portfolioComponent = texttemplate.Must(texttemplate.New("component").Delims("<<", ">>").Parse(`import React from 'react';
export default function Portfolio() {
  const data = <<.>>;
  return (
    <div style={{ fontFamily: 'ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Inter,Arial', color: '#0f172a' }}>
      <header style={{ background: 'linear-gradient(90deg,#6366f1,#8b5cf6)', color: '#fff', borderRadius: 12, padding: 16 }}>
        <div style={{ display: 'flex', gap: 12, alignItems: 'center' }}>
          <div style={{ height: 64, width: 64, borderRadius: 9999, overflow: 'hidden', background: '#ffffff22' }}>
            {data.avatarDataUrl ? <img src={data.avatarDataUrl} alt="Avatar" style={{ height: '100%', width: '100%', objectFit: 'cover' }} /> : null}
          </div>
          <div>
            <h2 style={{ margin: 0 }}>{data.name}</h2>
            <div>{data.role}</div>
            <small style={{ color: '#475569' }}>{data.email}</small>
          </div>
        </div>
      </header>

      {data.about ? (
        <section style={{ marginTop: 20 }}>
          <h3>About</h3>
          <p>{data.about}</p>
        </section>
      ) : null}

      {data.skills?.length ? (
        <section style={{ marginTop: 20 }}>
          <h3>Skills</h3>
          <div>
            {data.skills.map((s, i) => (
              <span key={i} style={{ display: 'inline-block', border: '1px solid #e5e7eb', borderRadius: 999, padding: '4px 10px', margin: '4px 6px 0 0', fontSize: 12 }}>{s}</span>
            ))}
          </div>
        </section>
      ) : null}

      {data.projects?.length ? (
        <section style={{ marginTop: 20 }}>
          <h3>Projects</h3>
          <div style={{ display: 'grid', gridTemplateColumns: 'repeat(auto-fit,minmax(220px,1fr))', gap: 12 }}>
            {data.projects.map((p) => (
              <article key={p.id} style={{ border: '1px solid #e5e7eb', borderRadius: 10, padding: 12 }}>
                {p.imageDataUrl ? (<img src={p.imageDataUrl} alt="Project" style={{ width: '100%', height: 140, objectFit: 'cover', borderRadius: 8, marginBottom: 8 }} />) : null}
                <h4>{p.title}</h4>
                <p style={{ color: '#475569' }}>{p.description}</p>
              </article>
            ))}
          </div>
        </section>
      ) : null}
    </div>
  );
}
`))
