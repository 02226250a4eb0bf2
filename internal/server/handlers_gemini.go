package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jonathan/resume-booster/internal/llm"
)

type refineRequest struct {
	Idea string `json:"idea"`
}

type compileRequest struct {
	Refined   string `json:"refined"`
	Note      string `json:"note"`
	VisualURL string `json:"visualUrl"`
}

// handleGeminiRefine turns a rough idea into a pitch-ready description.
// The error contract matches what the web client expects: 400 for a blank
// idea, 500 with {"error": ...} for any upstream failure.
func (s *Server) handleGeminiRefine(w http.ResponseWriter, r *http.Request) {
	var req refineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	idea := strings.TrimSpace(req.Idea)
	if idea == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'idea' in request body")
		return
	}

	s.generate(w, r, llm.RefinePrompt(idea))
}

// handleGeminiCompile expands a refined summary into a markdown deck
// outline.
func (s *Server) handleGeminiCompile(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	refined := strings.TrimSpace(req.Refined)
	if refined == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'refined' summary in request body")
		return
	}

	s.generate(w, r, llm.CompilePrompt(refined, req.Note, req.VisualURL))
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request, prompt string) {
	if s.llm == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Missing GEMINI_API_KEY in environment")
		return
	}

	text, err := s.llm.GenerateText(r.Context(), prompt)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
}
