package runner

import "github.com/google/uuid"

// Session identifies one REPL invocation for log correlation and the
// startup banner. Rulang programs are stateless across process
// restarts (there is no durable session store to resume from, unlike
// a long-running server's db binding), so a Session carries nothing
// but an ID.
type Session struct {
	ID string
}

// NewSession mints a fresh session ID.
func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}
