package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiRefine_Success(t *testing.T) {
	s := newTestServer(t)
	fake := &fakeLLM{text: "A refined pitch."}
	s.llm = fake

	rec := doJSON(t, s.testHandler(), http.MethodPost, "/api/gemini/refine", `{"idea":"dog walking app"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"text":"A refined pitch."}`, rec.Body.String())
	assert.Contains(t, fake.prompt, "dog walking app")
	assert.Contains(t, fake.prompt, "startup coach")
}

func TestGeminiRefine_BlankIdea(t *testing.T) {
	s := newTestServer(t)
	s.llm = &fakeLLM{text: "unused"}

	for _, body := range []string{`{}`, `{"idea":"   "}`} {
		rec := doJSON(t, s.testHandler(), http.MethodPost, "/api/gemini/refine", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Contains(t, rec.Body.String(), "Missing 'idea'")
	}
}

func TestGeminiRefine_UpstreamFailure(t *testing.T) {
	s := newTestServer(t)
	s.llm = &fakeLLM{err: fmt.Errorf("no candidates in response")}

	rec := doJSON(t, s.testHandler(), http.MethodPost, "/api/gemini/refine", `{"idea":"x"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "no candidates in response")
}

func TestGeminiRefine_MissingAPIKey(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.testHandler(), http.MethodPost, "/api/gemini/refine", `{"idea":"x"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing GEMINI_API_KEY")
}

func TestGeminiCompile_Success(t *testing.T) {
	s := newTestServer(t)
	fake := &fakeLLM{text: "# Title Slide\n..."}
	s.llm = fake

	rec := doJSON(t, s.testHandler(), http.MethodPost, "/api/gemini/compile",
		`{"refined":"A marketplace.","note":"short","visualUrl":"https://example.com/v.png"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, fake.prompt, `"""A marketplace."""`)
	assert.Contains(t, fake.prompt, "Additional instructions: short")
	assert.Contains(t, fake.prompt, "https://example.com/v.png")
}

func TestGeminiCompile_MissingRefined(t *testing.T) {
	s := newTestServer(t)
	s.llm = &fakeLLM{text: "unused"}

	rec := doJSON(t, s.testHandler(), http.MethodPost, "/api/gemini/compile", `{"note":"hi"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing 'refined'")
}

func TestGeminiRefine_InvalidJSON(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.testHandler(), http.MethodPost, "/api/gemini/refine", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
