package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/resume-booster/internal/export"
	"github.com/jonathan/resume-booster/internal/types"
)

type portfolioRequest struct {
	State *types.PortfolioState `json:"state" validate:"required"`
}

type portfolioShareRequest struct {
	State   *types.PortfolioState `json:"state" validate:"required"`
	PageURL string                `json:"pageUrl" validate:"required,url"`
}

// handlePortfolioExportHTML streams the portfolio as a self-contained
// HTML attachment.
func (s *Server) handlePortfolioExportHTML(w http.ResponseWriter, r *http.Request) {
	var req portfolioRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	page, err := export.PortfolioHTML(*req.State)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.PortfolioHTMLFilename(*req.State)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

// handlePortfolioExportJSX streams the portfolio as a React component.
func (s *Server) handlePortfolioExportJSX(w http.ResponseWriter, r *http.Request) {
	var req portfolioRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	src, err := export.PortfolioJSX(*req.State)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := strings.TrimSuffix(export.PortfolioHTMLFilename(*req.State), ".html") + ".jsx"
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(src))
}

// handlePortfolioShare builds a share link with the state in the fragment.
func (s *Server) handlePortfolioShare(w http.ResponseWriter, r *http.Request) {
	var req portfolioShareRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	link, err := export.PortfolioShareURL(req.PageURL, *req.State)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"url": link})
}

// handlePortfolioShareDecode decodes the `p` share parameter, degrading
// to the default state on corrupt input.
func (s *Server) handlePortfolioShareDecode(w http.ResponseWriter, r *http.Request) {
	state, ok := export.DecodePortfolio(r.URL.Query().Get(export.PortfolioFragment))
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"state": state,
		"valid": ok,
	})
}
