package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHub_Catalog(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.testHandler(), http.MethodGet, "/api/exports", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var hub ExportHubResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hub))

	require.Len(t, hub.Resumes, 3)
	assert.Equal(t, "r1", hub.Resumes[0].ID)
	assert.Equal(t, "Resume v1", hub.Resumes[0].Title)
	assert.Nil(t, hub.Resumes[0].Preview)

	require.Len(t, hub.Pitches, 3)
	assert.Contains(t, hub.Pitches[0].Snippet, "Long application cycles")

	require.Len(t, hub.Portfolios, 3)
	assert.Equal(t, "pf3", hub.Portfolios[2].ID)
}
