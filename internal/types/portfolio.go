package types

// TemplateID is the closed set of template layouts. The layouts differ in
// section placement only, never in data semantics.
type TemplateID string

// Template layouts.
const (
	TemplateClassic TemplateID = "classic"
	TemplateModern  TemplateID = "modern"
	TemplateMinimal TemplateID = "minimal"
)

// Valid reports whether the template id is one of the known layouts.
func (t TemplateID) Valid() bool {
	switch t {
	case TemplateClassic, TemplateModern, TemplateMinimal:
		return true
	default:
		return false
	}
}

// OrDefault returns the template id, falling back to classic for unknown
// values so stale saved state keeps rendering.
func (t TemplateID) OrDefault() TemplateID {
	if t.Valid() {
		return t
	}
	return TemplateClassic
}

// Project is one portfolio project card.
type Project struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageDataURL string `json:"imageDataUrl"`
}

// PortfolioState is the full portfolio builder state tree. Structurally a
// sibling of ResumeData with an independent lifecycle and storage key.
type PortfolioState struct {
	Name          string     `json:"name"`
	Role          string     `json:"role"`
	About         string     `json:"about"`
	Email         string     `json:"email"`
	AvatarDataURL string     `json:"avatarDataUrl"`
	Skills        []string   `json:"skills"`
	Projects      []Project  `json:"projects"`
	Template      TemplateID `json:"template"`
}

// DefaultPortfolio returns the empty portfolio template.
func DefaultPortfolio() PortfolioState {
	return PortfolioState{
		Skills:   []string{},
		Projects: []Project{},
		Template: TemplateClassic,
	}
}
