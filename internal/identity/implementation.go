// internal/identity/implementation.go
package identity

import (
	"context"
	"strings"
)

// service implements the Service interface over the seeded directory. The
// slice is never mutated after construction, so reads need no locking.
type service struct {
	users []User
}

// NewService creates a directory service over the given users.
func NewService(seed []User) Service {
	s := &service{users: make([]User, len(seed))}
	copy(s.users, seed)
	return s
}

func (s *service) All(ctx context.Context) []User {
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *service) Get(ctx context.Context, id string) (User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// ByEmail looks up a user by email address, case-insensitively.
func (s *service) ByEmail(ctx context.Context, email string) (User, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return User{}, false
}
