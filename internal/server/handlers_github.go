package server

import (
	"net/http"
)

type githubImportRequest struct {
	Username string `json:"username" validate:"required"`
}

// handleGithubImport suggests resume content from a public GitHub
// profile.
func (s *Server) handleGithubImport(w http.ResponseWriter, r *http.Request) {
	var req githubImportRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.importer.Fetch(r.Context(), req.Username)
	if err != nil {
		upstream := &ErrUpstream{Service: "github", Err: err}
		s.errorResponse(w, HTTPStatus(upstream), "Failed to fetch GitHub data.")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
