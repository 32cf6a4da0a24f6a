package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/dhabedank/daybyday/internal/core"
)

// feedSuggestionsMax caps how many AI follow-ups a post keeps.
const feedSuggestionsMax = 3

const feedKey = "feed"

// FeedStore owns the global append-only feed, newest first.
type FeedStore struct {
	blobs Blob
}

// NewFeedStore wraps a blob collaborator.
func NewFeedStore(blobs Blob) *FeedStore {
	return &FeedStore{blobs: blobs}
}

// Post prepends a new entry and returns it.
func (s *FeedStore) Post(user, text string, suggestions []string) (core.FeedEntry, error) {
	if len(suggestions) > feedSuggestionsMax {
		suggestions = suggestions[:feedSuggestionsMax]
	}
	entry := core.FeedEntry{
		ID:          uuid.NewString(),
		User:        user,
		Text:        text,
		Time:        time.Now().UTC(),
		Suggestions: suggestions,
	}

	var entries []core.FeedEntry
	s.blobs.Read(feedKey, &entries)
	entries = append([]core.FeedEntry{entry}, entries...)
	if err := s.blobs.Write(feedKey, entries); err != nil {
		return core.FeedEntry{}, err
	}
	return entry, nil
}

// List returns up to limit entries, newest first. limit <= 0 means all.
func (s *FeedStore) List(limit int) []core.FeedEntry {
	var entries []core.FeedEntry
	s.blobs.Read(feedKey, &entries)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
