package server

import "net/http"

// ExportItem is one entry in the export hub catalog.
type ExportItem struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Preview *string `json:"preview"`
}

// PitchItem is one saved pitch snippet in the catalog.
type PitchItem struct {
	ID      string `json:"id"`
	Snippet string `json:"snippet"`
}

// ExportHubResponse is the static demo catalog the export hub shows.
type ExportHubResponse struct {
	Resumes    []ExportItem `json:"resumes"`
	Pitches    []PitchItem  `json:"pitches"`
	Portfolios []ExportItem `json:"portfolios"`
}

// handleExportHub serves the demo catalog. The content is fixed; real
// documents come from the export endpoints.
func (s *Server) handleExportHub(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, ExportHubResponse{
		Resumes: []ExportItem{
			{ID: "r1", Title: "Resume v1"},
			{ID: "r2", Title: "Resume v2"},
			{ID: "r3", Title: "Resume v3"},
		},
		Pitches: []PitchItem{
			{ID: "p1", Snippet: "Problem: Long application cycles. Solution: AI-assisted summaries. Impact: 30% faster replies."},
			{ID: "p2", Snippet: "Problem: Low engagement. Solution: Interactive demos. Impact: +45% conversions."},
			{ID: "p3", Snippet: "Problem: Complex onboarding. Solution: Guided flows. Impact: -50% time-to-value."},
		},
		Portfolios: []ExportItem{
			{ID: "pf1", Title: "Portfolio v1"},
			{ID: "pf2", Title: "Portfolio v2"},
			{ID: "pf3", Title: "Portfolio v3"},
		},
	})
}
