package assistant

import (
	"strings"

	"github.com/jonathan/resume-booster/internal/store"
	"github.com/jonathan/resume-booster/internal/types"
)

// Transcript persists a chat history through a Store. A fresh or corrupt
// transcript starts over with the welcome message.
type Transcript struct {
	store store.Store
}

// NewTranscript wraps a store.
func NewTranscript(s store.Store) *Transcript {
	return &Transcript{store: s}
}

// Messages loads the saved history, seeding the welcome message when
// nothing usable is stored.
func (t *Transcript) Messages() []Message {
	var msgs []Message
	if !t.store.Load(store.KeyAssistant, &msgs) || len(msgs) == 0 {
		msgs = []Message{Welcome()}
		t.store.Save(store.KeyAssistant, msgs)
	}
	return msgs
}

// Send records the user message, appends the rule-based reply, and
// persists both. Blank input is ignored and returns the reply as false.
func (t *Transcript) Send(text string) (Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, false
	}

	msgs := t.Messages()
	msgs = append(msgs, Message{ID: types.NewID(), Role: RoleUser, Content: text})
	reply := Reply(text)
	msgs = append(msgs, reply)
	t.store.Save(store.KeyAssistant, msgs)
	return reply, true
}

// Reset clears the history.
func (t *Transcript) Reset() {
	t.store.Reset(store.KeyAssistant)
}
