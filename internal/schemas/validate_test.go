package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-booster/internal/types"
)

func TestValidResume_AcceptsMarshaledDefault(t *testing.T) {
	doc, err := json.Marshal(types.DefaultResume())
	require.NoError(t, err)
	assert.True(t, ValidResume(doc))
}

func TestValidResume_AcceptsPopulated(t *testing.T) {
	data := types.DefaultResume()
	data.Profile.FirstName = "Ada"
	data.Experience = []types.ExperienceItem{{ID: "e1", JobTitle: "Engineer", Current: true}}
	data.Skills = []types.SkillItem{{ID: "s1", Name: "Go", Level: types.LevelExpert}}
	doc, err := json.Marshal(data)
	require.NoError(t, err)
	assert.True(t, ValidResume(doc))
}

func TestValidResume_RejectsWrongShapes(t *testing.T) {
	assert.False(t, ValidResume([]byte(`{"profile": "nope"}`)))
	assert.False(t, ValidResume([]byte(`[]`)))
	assert.False(t, ValidResume([]byte(`{"profile":{},"experience":"x","education":[],"skills":[],"summary":"","interests":[],"media":{}}`)))
}

func TestValidResume_RejectsInvalidJSON(t *testing.T) {
	assert.False(t, ValidResume([]byte("{not json")))
}

func TestValidResume_RejectsUnknownSkillLevel(t *testing.T) {
	doc := []byte(`{"profile":{},"experience":[],"education":[],"skills":[{"id":"s1","name":"Go","level":"Guru"}],"summary":"","interests":[],"media":{}}`)
	assert.False(t, ValidResume(doc))
}

func TestValidPortfolio_AcceptsMarshaledDefault(t *testing.T) {
	doc, err := json.Marshal(types.DefaultPortfolio())
	require.NoError(t, err)
	assert.True(t, ValidPortfolio(doc))
}

func TestValidPortfolio_RejectsWrongShapes(t *testing.T) {
	assert.False(t, ValidPortfolio([]byte(`{"name":1}`)))
	assert.False(t, ValidPortfolio([]byte(`"just a string"`)))
}
