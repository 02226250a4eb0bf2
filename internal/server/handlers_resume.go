package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/resume-booster/internal/export"
	"github.com/jonathan/resume-booster/internal/preview"
	"github.com/jonathan/resume-booster/internal/strength"
	"github.com/jonathan/resume-booster/internal/types"
)

type resumeRequest struct {
	Resume *types.ResumeData `json:"resume" validate:"required"`
}

type previewRequest struct {
	Resume   *types.ResumeData `json:"resume" validate:"required"`
	Template string            `json:"template"`
	Order    []string          `json:"order"`
	Accent   string            `json:"accent"`
	ATS      bool              `json:"ats"`
}

type shareRequest struct {
	Resume  *types.ResumeData `json:"resume" validate:"required"`
	PageURL string            `json:"pageUrl" validate:"required,url"`
}

// handleResumeScore evaluates resume strength.
func (s *Server) handleResumeScore(w http.ResponseWriter, r *http.Request) {
	var req resumeRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, strength.Evaluate(*req.Resume))
}

// handleResumePreview renders the resume preview fragment as HTML.
func (s *Server) handleResumePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	html, err := preview.Render(*req.Resume, types.TemplateID(req.Template).OrDefault(), req.Order, preview.Options{
		Accent: req.Accent,
		ATS:    req.ATS,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// handleResumeExportDOCX streams the resume as a .docx attachment.
func (s *Server) handleResumeExportDOCX(w http.ResponseWriter, r *http.Request) {
	var req resumeRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var buf bytes.Buffer
	if err := export.WriteDOCX(&buf, *req.Resume); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.DOCXFilename(*req.Resume)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleResumeExportPDF prints the preview through a headless browser.
// Without a browser on the host the endpoint degrades to 503 so clients
// can fall back to the HTML or DOCX export.
func (s *Server) handleResumeExportPDF(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if !s.browserAvailable() {
		err := &ErrBrowserUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	fragment, err := preview.Render(*req.Resume, types.TemplateID(req.Template).OrDefault(), req.Order, preview.Options{
		Accent: req.Accent,
		ATS:    req.ATS,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	pdf, err := s.printPDF(r.Context(), export.PrintableDocument(req.Resume.FullName(), fragment), s.printTimeout)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := strings.TrimSuffix(export.DOCXFilename(*req.Resume), ".docx") + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// handleResumeShare builds a share link carrying the full resume state.
func (s *Server) handleResumeShare(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	link, err := export.MakeShareURL(req.PageURL, *req.Resume)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"url": link})
}

// handleResumeShareDecode decodes the `r` share parameter. Corrupt input
// is not an error: the response carries the default state and valid=false.
func (s *Server) handleResumeShareDecode(w http.ResponseWriter, r *http.Request) {
	data, ok := export.DecodeResume(r.URL.Query().Get(export.ResumeParam))
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume": data,
		"valid":  ok,
	})
}
