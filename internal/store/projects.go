package store

import (
	"fmt"

	"github.com/dhabedank/daybyday/internal/core"
)

// projectHistory is one user's append-only list of project snapshots.
// Every explicit save appends a full copy; nothing is ever rewritten.
type projectHistory struct {
	Snapshots []core.Project `json:"snapshots"`
}

// ProjectStore owns the persisted plan history, one blob per user.
type ProjectStore struct {
	blobs Blob
}

// NewProjectStore wraps a blob collaborator.
func NewProjectStore(blobs Blob) *ProjectStore {
	return &ProjectStore{blobs: blobs}
}

func projectsKey(user string) string {
	return "projects-" + user
}

// Append saves a full snapshot of the project to the user's history.
func (s *ProjectStore) Append(user string, p core.Project) error {
	var h projectHistory
	s.blobs.Read(projectsKey(user), &h)
	h.Snapshots = append(h.Snapshots, p)
	return s.blobs.Write(projectsKey(user), h)
}

// LoadLatest returns the most recently saved snapshot for the user.
func (s *ProjectStore) LoadLatest(user string) (core.Project, bool) {
	var h projectHistory
	s.blobs.Read(projectsKey(user), &h)
	if len(h.Snapshots) == 0 {
		return core.Project{}, false
	}
	return h.Snapshots[len(h.Snapshots)-1], true
}

// LatestByTitle returns the most recent snapshot with the given title.
func (s *ProjectStore) LatestByTitle(user, title string) (core.Project, bool) {
	var h projectHistory
	s.blobs.Read(projectsKey(user), &h)
	for i := len(h.Snapshots) - 1; i >= 0; i-- {
		if h.Snapshots[i].Title == title {
			return h.Snapshots[i], true
		}
	}
	return core.Project{}, false
}

// Titles lists the distinct plan titles in the user's history, most
// recently saved first.
func (s *ProjectStore) Titles(user string) []string {
	var h projectHistory
	s.blobs.Read(projectsKey(user), &h)

	seen := map[string]bool{}
	var titles []string
	for i := len(h.Snapshots) - 1; i >= 0; i-- {
		t := h.Snapshots[i].Title
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		titles = append(titles, t)
	}
	return titles
}

// Delete removes every snapshot with the given title from the user's
// history. Returns an error if the title is unknown.
func (s *ProjectStore) Delete(user, title string) error {
	var h projectHistory
	s.blobs.Read(projectsKey(user), &h)

	kept := h.Snapshots[:0]
	removed := 0
	for _, p := range h.Snapshots {
		if p.Title == title {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	if removed == 0 {
		return fmt.Errorf("no plan named %q", title)
	}
	h.Snapshots = kept
	return s.blobs.Write(projectsKey(user), h)
}
