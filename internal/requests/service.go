// internal/requests/service.go
package requests

import "context"

// Service defines the interface for the request ledger and lifecycle.
type Service interface {
	All(ctx context.Context) []BookRequest
	ByUser(ctx context.Context, userID string) []BookRequest
	Create(ctx context.Context, fields NewRequest) BookRequest
	Transition(ctx context.Context, id string, target Status, adminComments string) bool
	Stats(ctx context.Context) Stats
}
