// internal/catalog/service.go
package catalog

import "context"

// Service defines the interface for the catalog service.
type Service interface {
	All(ctx context.Context) []Book
	Get(ctx context.Context, id string) (Book, bool)
	Add(ctx context.Context, fields NewBook) Book
	Update(ctx context.Context, id string, patch Patch) bool
	Remove(ctx context.Context, id string) bool
	Categories(ctx context.Context) []string
	Search(ctx context.Context, query, category string) []Book
	Available(ctx context.Context) []Book
	Random(ctx context.Context, n int) []Book

	// AdjustAvailable applies delta to a book's available-copy count in a
	// single critical section. A negative delta is applied only while the
	// count stays above zero; a positive delta is applied without clamping
	// to totalCopies. Returns false when the book is missing or a decrement
	// would go below zero. Reserved for the request lifecycle.
	AdjustAvailable(ctx context.Context, id string, delta int) bool
}
