// Package session holds the per-user live editing state: the current tab,
// the project draft being edited, and the chat transcript. It is an
// explicit per-user object, never a process-wide singleton; every mutation
// is checkpointed to durable storage immediately so a restart reconstructs
// the same state.
package session

import (
	"time"

	"github.com/dhabedank/daybyday/internal/core"
	"github.com/dhabedank/daybyday/internal/store"
)

// TranscriptLimit bounds the chat transcript; oldest messages drop first.
const TranscriptLimit = 50

// Session is the live state for one user.
type Session struct {
	User       string
	Tab        core.Tab
	Draft      *core.Project
	Transcript []core.ChatMessage
}

// Manager couples a Session with its checkpoint store. All mutations go
// through Update so no change can escape persistence.
type Manager struct {
	store *store.SessionStore
	s     Session
}

// Load restores the user's session from its checkpoint, or starts a fresh
// one on the home tab.
func Load(st *store.SessionStore, user string) *Manager {
	m := &Manager{
		store: st,
		s:     Session{User: user, Tab: core.TabHome},
	}
	if cp, ok := st.Load(user); ok {
		m.s.Tab = cp.Tab
		m.s.Draft = cp.Draft
		m.s.Transcript = cp.Transcript
	}
	// A checkpoint written by an older build may carry an unknown tab.
	if !core.ValidTab(string(m.s.Tab)) {
		m.s.Tab = core.TabHome
	}
	return m
}

// Session returns the live state. Mutate it only via Update.
func (m *Manager) Session() *Session {
	return &m.s
}

// Update applies fn to the session and checkpoints the result.
func (m *Manager) Update(fn func(*Session)) error {
	fn(&m.s)
	return m.checkpoint()
}

// SetTab switches the current tab.
func (m *Manager) SetTab(tab core.Tab) error {
	return m.Update(func(s *Session) { s.Tab = tab })
}

// SetDraft replaces the live draft.
func (m *Manager) SetDraft(p *core.Project) error {
	return m.Update(func(s *Session) { s.Draft = p })
}

// AppendMessage adds a chat message, trimming the transcript to its bound.
func (m *Manager) AppendMessage(role core.Role, text string) error {
	return m.Update(func(s *Session) {
		s.Transcript = append(s.Transcript, core.ChatMessage{
			Role: role,
			Text: text,
			Time: time.Now().UTC(),
		})
		if len(s.Transcript) > TranscriptLimit {
			s.Transcript = s.Transcript[len(s.Transcript)-TranscriptLimit:]
		}
	})
}

func (m *Manager) checkpoint() error {
	return m.store.Save(m.s.User, store.SessionCheckpoint{
		Tab:        m.s.Tab,
		Draft:      m.s.Draft,
		Transcript: m.s.Transcript,
	})
}
