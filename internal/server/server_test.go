package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-booster/internal/assistant"
	"github.com/jonathan/resume-booster/internal/githubimport"
	"github.com/jonathan/resume-booster/internal/llm"
	"github.com/jonathan/resume-booster/internal/server/ratelimit"
	"github.com/jonathan/resume-booster/internal/store"
)

// fakeLLM returns canned output or a canned error.
type fakeLLM struct {
	text string
	err  error
	// last prompt seen, for assertions
	prompt string
}

func (f *fakeLLM) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeLLM) Close() error { return nil }

var _ llm.Client = (*fakeLLM)(nil)

// newTestServer builds a server with in-memory state, rate limiting off,
// and a stubbed-out browser.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		validate:         validator.New(),
		importer:         &githubimport.Importer{},
		store:            store.NewMemStore(),
		rateLimiter:      ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
		browserAvailable: func() bool { return false },
		printPDF: func(context.Context, string, time.Duration) ([]byte, error) {
			return []byte("%PDF-fake"), nil
		},
		printTimeout: time.Second,
	}
	s.transcript = assistant.NewTranscript(s.store)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func (s *Server) testHandler() http.Handler {
	return s.withRateLimit(s.withLogging(s.withCORS(s.routes())))
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.testHandler(), http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.testHandler(), http.MethodOptions, "/api/resume/score", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit_TooManyRequests(t *testing.T) {
	s := newTestServer(t)
	s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Hour,
	})
	t.Cleanup(s.rateLimiter.Stop)
	h := s.testHandler()

	for i := 0; i < 2; i++ {
		rec := doJSON(t, h, http.MethodGet, "/api/exports", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, h, http.MethodGet, "/api/exports", "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate_limit_exceeded")
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimit_HealthIsUnlimited(t *testing.T) {
	s := newTestServer(t)
	s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
	})
	t.Cleanup(s.rateLimiter.Stop)
	h := s.testHandler()

	for i := 0; i < 10; i++ {
		rec := doJSON(t, h, http.MethodGet, "/api/health", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{}))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(&ErrUpstream{}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&ErrBrowserUnavailable{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
