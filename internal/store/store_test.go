package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhabedank/daybyday/internal/core"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs := newTestStore(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := fs.Write("sample", payload{Name: "a", Count: 3}); err != nil {
		t.Fatal(err)
	}

	var got payload
	if !fs.Read("sample", &got) {
		t.Fatal("Read returned false for an existing blob")
	}
	if got.Name != "a" || got.Count != 3 {
		t.Errorf("got %+v", got)
	}
}

func TestFileStoreMissingKeyLeavesDefault(t *testing.T) {
	fs := newTestStore(t)

	got := map[string]int{"preset": 1}
	if fs.Read("nothing-here", &got) {
		t.Error("Read returned true for a missing blob")
	}
	if got["preset"] != 1 {
		t.Error("caller's default was disturbed by a missing read")
	}
}

func TestFileStoreCorruptBlobLeavesDefault(t *testing.T) {
	fs := newTestStore(t)

	if err := os.WriteFile(filepath.Join(fs.Dir(), "bad.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	got := 42
	if fs.Read("bad", &got) {
		t.Error("Read returned true for corrupt JSON")
	}
	if got != 42 {
		t.Error("caller's default was disturbed by a corrupt read")
	}
}

func TestFileStoreStrayTempFileIgnored(t *testing.T) {
	fs := newTestStore(t)

	if err := fs.Write("counter", 7); err != nil {
		t.Fatal(err)
	}
	// A crash between write and rename leaves a garbage .tmp next to the
	// blob; the committed value must be unaffected.
	tmp := filepath.Join(fs.Dir(), "counter.json.tmp")
	if err := os.WriteFile(tmp, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	var got int
	if !fs.Read("counter", &got) {
		t.Fatal("Read returned false for an intact blob")
	}
	if got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

func TestFileStoreOverwriteReplacesWhole(t *testing.T) {
	fs := newTestStore(t)

	if err := fs.Write("k", map[string]int{"a": 1, "b": 2}); err != nil {
		t.Fatal(err)
	}
	if err := fs.Write("k", map[string]int{"c": 3}); err != nil {
		t.Fatal(err)
	}

	got := map[string]int{}
	fs.Read("k", &got)
	if len(got) != 1 || got["c"] != 3 {
		t.Errorf("got %v, want only the second write's content", got)
	}
}

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"projects-alice", "projects-alice"},
		{"projects-a b/c", "projects-a_b_c"},
		{"über.user", "_ber.user"},
	}
	for _, tt := range tests {
		if got := sanitizeKey(tt.in); got != tt.want {
			t.Errorf("sanitizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProjectHistoryAppendOnly(t *testing.T) {
	fs := newTestStore(t)
	ps := NewProjectStore(fs)

	first := *core.NewProject("plan one", "")
	second := *core.NewProject("plan two", "")
	if err := ps.Append("alice", first); err != nil {
		t.Fatal(err)
	}
	if err := ps.Append("alice", second); err != nil {
		t.Fatal(err)
	}

	latest, ok := ps.LoadLatest("alice")
	if !ok || latest.Title != "plan two" {
		t.Errorf("LoadLatest = %q, %v; want plan two", latest.Title, ok)
	}

	// Earlier snapshots stay reachable by title.
	byTitle, ok := ps.LatestByTitle("alice", "plan one")
	if !ok || byTitle.Title != "plan one" {
		t.Errorf("LatestByTitle = %q, %v; want plan one", byTitle.Title, ok)
	}

	titles := ps.Titles("alice")
	if len(titles) != 2 || titles[0] != "plan two" || titles[1] != "plan one" {
		t.Errorf("Titles = %v, want most recent first", titles)
	}
}

func TestProjectHistoryPerUser(t *testing.T) {
	fs := newTestStore(t)
	ps := NewProjectStore(fs)

	if err := ps.Append("alice", *core.NewProject("alice plan", "")); err != nil {
		t.Fatal(err)
	}
	if _, ok := ps.LoadLatest("bob"); ok {
		t.Error("bob sees alice's history")
	}
}

func TestProjectDelete(t *testing.T) {
	fs := newTestStore(t)
	ps := NewProjectStore(fs)

	ps.Append("alice", *core.NewProject("keep", ""))
	ps.Append("alice", *core.NewProject("drop", ""))

	if err := ps.Delete("alice", "drop"); err != nil {
		t.Fatal(err)
	}
	if _, ok := ps.LatestByTitle("alice", "drop"); ok {
		t.Error("deleted plan is still reachable")
	}
	if _, ok := ps.LatestByTitle("alice", "keep"); !ok {
		t.Error("surviving plan disappeared")
	}

	if err := ps.Delete("alice", "never existed"); err == nil {
		t.Error("deleting an unknown title did not error")
	}
}

func TestSessionCheckpointRoundTrip(t *testing.T) {
	fs := newTestStore(t)
	ss := NewSessionStore(fs)

	if _, ok := ss.Load("alice"); ok {
		t.Error("Load returned true before any save")
	}

	draft := core.NewProject("draft plan", "")
	err := ss.Save("alice", SessionCheckpoint{
		Tab:        core.TabPlanner,
		Draft:      draft,
		Transcript: []core.ChatMessage{{Role: core.RoleUser, Text: "hi", Time: time.Now().UTC()}},
	})
	if err != nil {
		t.Fatal(err)
	}

	cp, ok := ss.Load("alice")
	if !ok {
		t.Fatal("Load returned false after save")
	}
	if cp.Tab != core.TabPlanner {
		t.Errorf("Tab = %q, want planner", cp.Tab)
	}
	if cp.Draft == nil || cp.Draft.Title != "draft plan" {
		t.Error("draft did not survive the round trip")
	}
	if len(cp.Transcript) != 1 || cp.Transcript[0].Text != "hi" {
		t.Error("transcript did not survive the round trip")
	}
	if cp.UpdatedAt.IsZero() {
		t.Error("Save did not stamp UpdatedAt")
	}
}

func TestFeedNewestFirst(t *testing.T) {
	fs := newTestStore(t)
	feed := NewFeedStore(fs)

	if _, err := feed.Post("alice", "first", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := feed.Post("bob", "second", []string{"a", "b", "c", "d"}); err != nil {
		t.Fatal(err)
	}

	entries := feed.List(0)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Text != "second" || entries[1].Text != "first" {
		t.Error("entries not newest first")
	}
	if len(entries[0].Suggestions) != 3 {
		t.Errorf("got %d suggestions, want the cap of 3", len(entries[0].Suggestions))
	}
	if entries[0].ID == "" || entries[0].ID == entries[1].ID {
		t.Error("entries need distinct non-empty IDs")
	}

	if got := feed.List(1); len(got) != 1 || got[0].Text != "second" {
		t.Errorf("List(1) = %v, want just the newest", got)
	}
}

func TestUserEnsureIdempotent(t *testing.T) {
	fs := newTestStore(t)
	us := NewUserStore(fs)

	a, err := us.Ensure("alice")
	if err != nil {
		t.Fatal(err)
	}
	again, err := us.Ensure("alice")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != again.ID {
		t.Error("Ensure minted a second ID for the same name")
	}

	if _, err := us.Ensure("bob"); err != nil {
		t.Fatal(err)
	}
	if got := len(us.List()); got != 2 {
		t.Errorf("List = %d users, want 2", got)
	}
}
