package store

import (
	"time"

	"github.com/dhabedank/daybyday/internal/core"
)

// SessionCheckpoint is the lightweight overwrite-in-place copy of a live
// session, distinct from the append-only project history. Reloading it
// after a restart reconstructs the same tab, draft, and transcript.
type SessionCheckpoint struct {
	Tab        core.Tab           `json:"tab"`
	Draft      *core.Project      `json:"draft,omitempty"`
	Transcript []core.ChatMessage `json:"transcript,omitempty"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// SessionStore persists one checkpoint blob per user.
type SessionStore struct {
	blobs Blob
}

// NewSessionStore wraps a blob collaborator.
func NewSessionStore(blobs Blob) *SessionStore {
	return &SessionStore{blobs: blobs}
}

func sessionKey(user string) string {
	return "session-" + user
}

// Load returns the user's checkpoint, or false when none exists.
func (s *SessionStore) Load(user string) (SessionCheckpoint, bool) {
	var cp SessionCheckpoint
	if !s.blobs.Read(sessionKey(user), &cp) {
		return SessionCheckpoint{}, false
	}
	return cp, true
}

// Save overwrites the user's checkpoint.
func (s *SessionStore) Save(user string, cp SessionCheckpoint) error {
	cp.UpdatedAt = time.Now().UTC()
	return s.blobs.Write(sessionKey(user), cp)
}
