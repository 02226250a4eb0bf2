package server

import (
	"net/http"
)

type assistantRequest struct {
	Text string `json:"text" validate:"required"`
}

// handleAssistantMessage appends a user message to the transcript and
// returns the rule-matched reply.
func (s *Server) handleAssistantMessage(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	reply, ok := s.transcript.Send(req.Text)
	if !ok {
		err := &ErrValidation{Field: "text", Message: "must not be blank"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, reply)
}
