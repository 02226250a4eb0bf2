package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-booster/internal/githubimport"
)

func TestGithubImport_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/octocat", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"email":"octo@example.com","bio":"Builds things."}`))
	})
	mux.HandleFunc("GET /users/octocat/repos", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"language":"Go"}]`))
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	s := newTestServer(t)
	s.importer = &githubimport.Importer{BaseURL: upstream.URL, HTTPClient: upstream.Client()}

	rec := doJSON(t, s.testHandler(), http.MethodPost, "/api/github/import", `{"username":"octocat"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "octo@example.com")
	assert.Contains(t, rec.Body.String(), "Builds things.")
	assert.Contains(t, rec.Body.String(), `"Go"`)
}

func TestGithubImport_MissingUsername(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.testHandler(), http.MethodPost, "/api/github/import", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGithubImport_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	t.Cleanup(upstream.Close)

	s := newTestServer(t)
	s.importer = &githubimport.Importer{BaseURL: upstream.URL, HTTPClient: upstream.Client()}

	rec := doJSON(t, s.testHandler(), http.MethodPost, "/api/github/import", `{"username":"ghost"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch GitHub data.")
}
