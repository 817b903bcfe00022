// internal/identity/service.go
package identity

import "context"

// Service defines the interface for the user directory.
type Service interface {
	All(ctx context.Context) []User
	Get(ctx context.Context, id string) (User, bool)
	ByEmail(ctx context.Context, email string) (User, bool)
}
