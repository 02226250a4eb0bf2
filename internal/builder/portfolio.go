package builder

import (
	"strings"

	"github.com/jonathan/resume-booster/internal/types"
)

// Portfolio wraps a PortfolioState tree with the portfolio builder's
// mutation operations.
type Portfolio struct {
	State types.PortfolioState
}

// NewPortfolio returns a builder over the empty portfolio template.
func NewPortfolio() *Portfolio {
	return &Portfolio{State: types.DefaultPortfolio()}
}

// Reset replaces the state with the empty template.
func (b *Portfolio) Reset() {
	b.State = types.DefaultPortfolio()
}

// SetTemplate switches the layout; unknown keys keep the current template.
func (b *Portfolio) SetTemplate(t types.TemplateID) {
	if t.Valid() {
		b.State.Template = t
	}
}

// AddSkill inserts a trimmed skill tag with set semantics.
func (b *Portfolio) AddSkill(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}
	for _, existing := range b.State.Skills {
		if existing == skill {
			return
		}
	}
	b.State.Skills = append(b.State.Skills, skill)
}

// RemoveSkill removes the tag if present.
func (b *Portfolio) RemoveSkill(skill string) {
	kept := b.State.Skills[:0]
	for _, s := range b.State.Skills {
		if s != skill {
			kept = append(kept, s)
		}
	}
	b.State.Skills = kept
}

// RenameSkill replaces old with the trimmed new value; renaming to blank
// removes the tag, matching the inline-edit blur behavior.
func (b *Portfolio) RenameSkill(old, updated string) {
	updated = strings.TrimSpace(updated)
	if updated == "" {
		b.RemoveSkill(old)
		return
	}
	for i, s := range b.State.Skills {
		if s == old {
			b.State.Skills[i] = updated
		}
	}
}

// AddProject appends an empty project card and returns its id.
func (b *Portfolio) AddProject() string {
	p := types.Project{ID: types.NewID()}
	b.State.Projects = append(b.State.Projects, p)
	return p.ID
}

// RemoveProject filters out the project with the given id.
func (b *Portfolio) RemoveProject(id string) {
	kept := b.State.Projects[:0]
	for _, p := range b.State.Projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	b.State.Projects = kept
}

// UpdateProject applies fn to the project with the given id, if present.
func (b *Portfolio) UpdateProject(id string, fn func(*types.Project)) {
	for i := range b.State.Projects {
		if b.State.Projects[i].ID == id {
			fn(&b.State.Projects[i])
			return
		}
	}
}

// MoveProject moves the dragged project to the position of the one it was
// dropped on, shifting the rest. Unknown ids and self-drops are no-ops.
func (b *Portfolio) MoveProject(dragID, overID string) {
	if dragID == overID {
		return
	}
	from, to := -1, -1
	for i, p := range b.State.Projects {
		switch p.ID {
		case dragID:
			from = i
		case overID:
			to = i
		}
	}
	if from < 0 || to < 0 {
		return
	}
	item := b.State.Projects[from]
	rest := append(b.State.Projects[:from], b.State.Projects[from+1:]...)
	b.State.Projects = append(rest[:to], append([]types.Project{item}, rest[to:]...)...)
}
