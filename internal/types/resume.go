// Package types provides type definitions for the resume and portfolio state
// trees shared across the booster system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/google/uuid"
)

// SkillLevel is the closed set of proficiency levels a skill can carry.
type SkillLevel string

// Skill proficiency levels.
const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// Valid reports whether the level is one of the known values.
func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	default:
		return false
	}
}

// Profile holds the flat personal fields of a resume. All fields are
// free-text; nothing is rejected at entry.
type Profile struct {
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName"`
	LastName       string `json:"lastName"`
	Gender         string `json:"gender"`
	DOB            string `json:"dob"`
	MaritalStatus  string `json:"maritalStatus"`
	Profession     string `json:"profession"`
	Address        string `json:"address"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passportNumber"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}

// ExperienceItem is one entry in the experience list. The ID is an opaque
// client token used only for list identity and in-place updates.
type ExperienceItem struct {
	ID               string `json:"id"`
	JobTitle         string `json:"jobTitle"`
	Employer         string `json:"employer"`
	City             string `json:"city"`
	State            string `json:"state"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Current          bool   `json:"current"`
	Responsibilities string `json:"responsibilities"`
}

// EducationItem is one entry in the education list.
type EducationItem struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	City         string `json:"city"`
	State        string `json:"state"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Current      bool   `json:"current"`
}

// SkillItem is a named skill with a proficiency level.
type SkillItem struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// Media holds the photo data URI and social/portfolio links.
type Media struct {
	PhotoDataURL string `json:"photoDataUrl"`
	Facebook     string `json:"facebook"`
	Twitter      string `json:"twitter"`
	LinkedIn     string `json:"linkedin"`
	Website      string `json:"website"`
}

// ResumeData is the full resume state tree. It is a plain serializable
// tree: no cycles, no shared ownership. JSON field names match the blobs
// the original web client wrote, so share links and saved state round-trip.
type ResumeData struct {
	Profile    Profile          `json:"profile"`
	Experience []ExperienceItem `json:"experience"`
	Education  []EducationItem  `json:"education"`
	Skills     []SkillItem      `json:"skills"`
	Summary    string           `json:"summary"`
	Interests  []string         `json:"interests"`
	Media      Media            `json:"media"`
}

// DefaultResume returns the empty resume template used on first load and
// after an explicit reset.
func DefaultResume() ResumeData {
	return ResumeData{
		Experience: []ExperienceItem{},
		Education:  []EducationItem{},
		Skills:     []SkillItem{},
		Interests:  []string{},
	}
}

// NewID generates an opaque list-item id. The ids have no external meaning;
// uniqueness within a list is all callers rely on.
func NewID() string {
	return uuid.New().String()
}

// FullName joins the non-empty name parts with spaces.
func (r ResumeData) FullName() string {
	return JoinNonEmpty(" ", r.Profile.FirstName, r.Profile.MiddleName, r.Profile.LastName)
}

// ContactLine joins email, phone and the preferred link with the separator
// the document templates use.
func (r ResumeData) ContactLine() string {
	link := r.Media.Website
	if link == "" {
		link = r.Media.LinkedIn
	}
	return JoinNonEmpty("  •  ", r.Profile.Email, r.Profile.Phone, link)
}

// NamedSkills returns the skills that have a non-empty name, in order.
func (r ResumeData) NamedSkills() []SkillItem {
	out := make([]SkillItem, 0, len(r.Skills))
	for _, s := range r.Skills {
		if s.Name != "" {
			out = append(out, s)
		}
	}
	return out
}

// Bullets returns every non-blank responsibility line across all
// experience entries, in order.
func (r ResumeData) Bullets() []string {
	var out []string
	for _, e := range r.Experience {
		out = append(out, SplitLines(e.Responsibilities)...)
	}
	return out
}

// SplitLines splits a multi-line field into trimmed, non-blank lines.
func SplitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// JoinNonEmpty joins the non-empty parts with sep.
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
