// Package preview renders the live document preview for a resume. Render is
// a pure function: identical inputs always produce identical markup.
package preview

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-booster/internal/types"
)

// Options carries the presentation knobs that do not change data semantics.
type Options struct {
	// Accent is a CSS color applied to headings and skill chips.
	Accent string
	// ATS forces a plain black-on-white rendering with no accent styling,
	// approximating what an applicant tracking system parses.
	ATS bool
}

// DefaultAccent is used when the caller passes no accent color.
const DefaultAccent = "#4f46e5"

// DefaultOrder is the canonical section order.
var DefaultOrder = []string{"summary", "experience", "education", "skills", "interests", "contact"}

// Render maps a resume plus template selection to an HTML fragment. Unknown
// section ids in order render nothing. Empty fields render neutral
// placeholder text so the preview always shows a complete-looking document.
func Render(data types.ResumeData, tmpl types.TemplateID, order []string, opts Options) (string, error) {
	if opts.Accent == "" {
		opts.Accent = DefaultAccent
	}
	if opts.ATS {
		opts.Accent = "#000000"
	}
	if len(order) == 0 {
		order = DefaultOrder
	}

	page := pageData{
		Name:    orPlaceholder(data.FullName(), "Your Name"),
		Title:   orPlaceholder(data.Profile.Profession, "Professional Title"),
		Contact: data.ContactLine(),
		Accent:  opts.Accent,
		ATS:     opts.ATS,
	}

	for _, id := range order {
		sec, ok, err := buildSection(id, data, opts)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		page.Sections = append(page.Sections, sec)
	}

	// The modern layout pulls skills into a sidebar.
	if tmpl.OrDefault() == types.TemplateModern {
		main := page.Sections[:0]
		for _, sec := range page.Sections {
			if sec.ID == "skills" {
				page.Aside = append(page.Aside, sec)
				continue
			}
			main = append(main, sec)
		}
		page.Sections = main
	}

	var out strings.Builder
	if err := layouts.ExecuteTemplate(&out, string(tmpl.OrDefault()), page); err != nil {
		return "", fmt.Errorf("failed to render %s layout: %w", tmpl.OrDefault(), err)
	}
	return out.String(), nil
}

type pageData struct {
	Name     string
	Title    string
	Contact  string
	Accent   string
	ATS      bool
	Sections []section
	Aside    []section
}

type section struct {
	ID    string
	Title string
	Body  template.HTML
}

type experienceEntry struct {
	Heading string
	Meta    string
	Bullets []string
}

type educationEntry struct {
	School string
	Meta   string
}

type contactInfo struct {
	Accent  string
	ATS     bool
	Email   string
	Phone   string
	Link    string
	Address string
}

type chips struct {
	Accent string
	Plain  bool
	Items  []string
}

// buildSection renders one named section body. The bool result is false for
// unknown section ids.
func buildSection(id string, data types.ResumeData, opts Options) (section, bool, error) {
	var (
		body interface{}
		name string
	)

	switch id {
	case "summary":
		name = "summary"
		body = orPlaceholder(data.Summary, "Write a concise, impactful summary of 2-3 sentences.")
	case "experience":
		name = "experience"
		body = experienceEntries(data)
	case "education":
		name = "education"
		body = educationEntries(data)
	case "skills":
		name = "chips"
		items := skillNames(data)
		if len(items) == 0 {
			items = []string{"Add your top skills"}
		}
		body = chips{Accent: opts.Accent, Plain: opts.ATS, Items: items}
	case "interests":
		// Interest chips are plain in every layout.
		name = "chips"
		items := data.Interests
		if len(items) == 0 {
			items = []string{"Add a few interests"}
		}
		body = chips{Plain: true, Items: items}
	case "contact":
		name = "contact"
		body = contactInfo{
			Accent:  opts.Accent,
			ATS:     opts.ATS,
			Email:   orPlaceholder(data.Profile.Email, "you@example.com"),
			Phone:   data.Profile.Phone,
			Link:    firstNonEmpty(data.Media.Website, data.Media.LinkedIn),
			Address: data.Profile.Address,
		}
	default:
		return section{}, false, nil
	}

	var out strings.Builder
	if err := layouts.ExecuteTemplate(&out, name, body); err != nil {
		return section{}, false, fmt.Errorf("failed to render %s section: %w", id, err)
	}
	return section{ID: id, Title: sectionTitle(id), Body: template.HTML(out.String())}, true, nil
}

func experienceEntries(data types.ResumeData) []experienceEntry {
	if len(data.Experience) == 0 {
		return []experienceEntry{{
			Heading: "Job Title — Employer",
			Meta:    "Start – End  •  City, State",
			Bullets: []string{"Describe your impact with measurable results."},
		}}
	}
	entries := make([]experienceEntry, 0, len(data.Experience))
	for _, e := range data.Experience {
		end := e.EndDate
		if e.Current {
			end = "Present"
		}
		entries = append(entries, experienceEntry{
			Heading: types.JoinNonEmpty(" — ", e.JobTitle, e.Employer),
			Meta: types.JoinNonEmpty("  •  ",
				types.JoinNonEmpty(" – ", e.StartDate, end),
				types.JoinNonEmpty(", ", e.City, e.State)),
			Bullets: types.SplitLines(e.Responsibilities),
		})
	}
	return entries
}

func educationEntries(data types.ResumeData) []educationEntry {
	if len(data.Education) == 0 {
		return []educationEntry{{
			School: "School Name",
			Meta:   "Degree, Field of Study  •  Start – End",
		}}
	}
	entries := make([]educationEntry, 0, len(data.Education))
	for _, ed := range data.Education {
		end := ed.EndDate
		if ed.Current {
			end = "Present"
		}
		entries = append(entries, educationEntry{
			School: ed.School,
			Meta: types.JoinNonEmpty("  •  ",
				types.JoinNonEmpty(", ", ed.Degree, ed.FieldOfStudy),
				types.JoinNonEmpty(" – ", ed.StartDate, end)),
		})
	}
	return entries
}

func skillNames(data types.ResumeData) []string {
	named := data.NamedSkills()
	out := make([]string, 0, len(named))
	for _, s := range named {
		out = append(out, s.Name)
	}
	return out
}

func sectionTitle(id string) string {
	switch id {
	case "summary":
		return "Summary"
	case "experience":
		return "Experience"
	case "education":
		return "Education"
	case "skills":
		return "Skills"
	case "interests":
		return "Interests"
	case "contact":
		return "Contact"
	default:
		return id
	}
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
