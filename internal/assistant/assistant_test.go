package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-booster/internal/store"
)

func TestReply_ResumeIntent(t *testing.T) {
	for _, q := range []string{"how do I write my resume?", "ATS tips", "add EDUCATION"} {
		msg := Reply(q)
		assert.Contains(t, msg.Content, "Resume Builder", "query %q", q)
		require.NotEmpty(t, msg.Suggested)
		assert.Equal(t, "/resume", msg.Suggested[0].Target)
	}
}

func TestReply_FirstMatchWins(t *testing.T) {
	// "resume" outranks "export" because the rules are ordered.
	msg := Reply("export my resume")
	assert.Contains(t, msg.Content, "Resume Builder")
}

func TestReply_OtherIntents(t *testing.T) {
	assert.Contains(t, Reply("show me your portfolio templates").Content, "Portfolio Creator")
	assert.Contains(t, Reply("I have a startup idea").Content, "Pitch Generator")
	assert.Contains(t, Reply("where do I download a pdf").Content, "Export Hub")
	assert.Contains(t, Reply("what is your mission").Content, "Learn More")
	assert.Contains(t, Reply("can I sign in").Content, "sign in")
}

func TestReply_FallbackGuidance(t *testing.T) {
	msg := Reply("hello there")
	assert.Contains(t, msg.Content, "help you get started")
	assert.Len(t, msg.Suggested, 4)
}

func TestReply_AlwaysAssistantRoleWithID(t *testing.T) {
	msg := Reply("anything")
	assert.Equal(t, RoleAssistant, msg.Role)
	assert.NotEmpty(t, msg.ID)
}

func TestTranscript_SeedsWelcome(t *testing.T) {
	tr := NewTranscript(store.NewMemStore())

	msgs := tr.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Content, "guide you around")
}

func TestTranscript_SendAppendsAndPersists(t *testing.T) {
	s := store.NewMemStore()
	tr := NewTranscript(s)

	reply, ok := tr.Send("how do I export?")
	require.True(t, ok)
	assert.Contains(t, reply.Content, "Export Hub")

	msgs := tr.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Equal(t, "how do I export?", msgs[1].Content)
	assert.Equal(t, reply.ID, msgs[2].ID)
}

func TestTranscript_IgnoresBlankInput(t *testing.T) {
	tr := NewTranscript(store.NewMemStore())
	_, ok := tr.Send("   ")
	assert.False(t, ok)
	assert.Len(t, tr.Messages(), 1)
}

func TestTranscript_Reset(t *testing.T) {
	tr := NewTranscript(store.NewMemStore())
	_, _ = tr.Send("resume help")
	tr.Reset()
	assert.Len(t, tr.Messages(), 1)
}
