package store

import (
	"time"

	"github.com/google/uuid"
)

const usersKey = "users"

// User is an identity record. There are no passwords here; credential
// handling belongs to whatever fronts the app.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// UserStore owns the users-by-name registry.
type UserStore struct {
	blobs Blob
}

// NewUserStore wraps a blob collaborator.
func NewUserStore(blobs Blob) *UserStore {
	return &UserStore{blobs: blobs}
}

// Ensure returns the record for name, creating it on first use.
func (s *UserStore) Ensure(name string) (User, error) {
	users := map[string]User{}
	s.blobs.Read(usersKey, &users)

	if u, ok := users[name]; ok {
		return u, nil
	}
	u := User{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	users[name] = u
	if err := s.blobs.Write(usersKey, users); err != nil {
		return User{}, err
	}
	return u, nil
}

// List returns all known users.
func (s *UserStore) List() []User {
	users := map[string]User{}
	s.blobs.Read(usersKey, &users)

	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, u)
	}
	return out
}
