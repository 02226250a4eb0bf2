// Package builder exposes the form-editor mutation operations over the
// resume and portfolio state trees. No operation fails: invalid input is
// accepted as-is and only flagged later by the strength meter, and removal
// of an unknown id is a no-op.
package builder

import (
	"strings"

	"github.com/jonathan/resume-booster/internal/types"
)

// Resume wraps a ResumeData tree with in-place mutation operations.
type Resume struct {
	Data types.ResumeData
}

// NewResume returns a builder over the empty resume template.
func NewResume() *Resume {
	return &Resume{Data: types.DefaultResume()}
}

// Reset replaces the state with the empty template.
func (b *Resume) Reset() {
	b.Data = types.DefaultResume()
}

// AddExperience appends an empty experience entry and returns its id.
func (b *Resume) AddExperience() string {
	item := types.ExperienceItem{ID: types.NewID()}
	b.Data.Experience = append(b.Data.Experience, item)
	return item.ID
}

// RemoveExperience filters out the entry with the given id, preserving the
// relative order of the rest.
func (b *Resume) RemoveExperience(id string) {
	kept := b.Data.Experience[:0]
	for _, e := range b.Data.Experience {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	b.Data.Experience = kept
}

// UpdateExperience applies fn to the entry with the given id, if present.
func (b *Resume) UpdateExperience(id string, fn func(*types.ExperienceItem)) {
	for i := range b.Data.Experience {
		if b.Data.Experience[i].ID == id {
			fn(&b.Data.Experience[i])
			return
		}
	}
}

// AddEducation appends an empty education entry and returns its id.
func (b *Resume) AddEducation() string {
	item := types.EducationItem{ID: types.NewID()}
	b.Data.Education = append(b.Data.Education, item)
	return item.ID
}

// RemoveEducation filters out the entry with the given id.
func (b *Resume) RemoveEducation(id string) {
	kept := b.Data.Education[:0]
	for _, e := range b.Data.Education {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	b.Data.Education = kept
}

// UpdateEducation applies fn to the entry with the given id, if present.
func (b *Resume) UpdateEducation(id string, fn func(*types.EducationItem)) {
	for i := range b.Data.Education {
		if b.Data.Education[i].ID == id {
			fn(&b.Data.Education[i])
			return
		}
	}
}

// AddSkill appends a named skill and returns its id. Unknown levels fall
// back to Beginner so the enum stays closed.
func (b *Resume) AddSkill(name string, level types.SkillLevel) string {
	if !level.Valid() {
		level = types.LevelBeginner
	}
	item := types.SkillItem{ID: types.NewID(), Name: name, Level: level}
	b.Data.Skills = append(b.Data.Skills, item)
	return item.ID
}

// RemoveSkill filters out the skill with the given id.
func (b *Resume) RemoveSkill(id string) {
	kept := b.Data.Skills[:0]
	for _, s := range b.Data.Skills {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	b.Data.Skills = kept
}

// SetSummary replaces the summary text.
func (b *Resume) SetSummary(s string) {
	b.Data.Summary = s
}

// SetMedia replaces the photo and link fields wholesale.
func (b *Resume) SetMedia(m types.Media) {
	b.Data.Media = m
}

// AddInterest inserts a trimmed tag, deduplicating on insert. Blank input
// is ignored.
func (b *Resume) AddInterest(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	for _, existing := range b.Data.Interests {
		if existing == tag {
			return
		}
	}
	b.Data.Interests = append(b.Data.Interests, tag)
}

// RemoveInterest removes the tag if present.
func (b *Resume) RemoveInterest(tag string) {
	kept := b.Data.Interests[:0]
	for _, t := range b.Data.Interests {
		if t != tag {
			kept = append(kept, t)
		}
	}
	b.Data.Interests = kept
}
