// Package store provides the persistence shim behind the builders. The
// application core depends on the Store port, never on a concrete storage
// API, so tests substitute an in-memory fake. Persistence is best-effort by
// contract: Load never fails loudly and Save errors are swallowed.
package store

// Storage keys. Each key holds one JSON-serialized blob matching the
// corresponding in-memory shape.
const (
	KeyResume       = "resumeBuilder.data"
	KeyPortfolio    = "portfolioBuilder.state"
	KeyAssistant    = "assistant-chat-v1"
	KeyAssistantPos = "assistant-pos-v1"
)

// Store is the persistence port.
type Store interface {
	// Load unmarshals the blob stored under key into v. It returns false,
	// leaving v untouched, when there is no saved state or the blob cannot
	// be read or parsed. It never returns an error.
	Load(key string, v any) bool
	// Save marshals v under key. Failures are swallowed; persistence must
	// never become a user-visible failure.
	Save(key string, v any)
	// Reset removes the blob stored under key.
	Reset(key string)
}
