// internal/catalog/implementation.go
package catalog

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// service implements the Service interface with an in-memory store.
// Records are held in insertion order; the mutex keeps multi-step
// read-modify-write operations atomic under concurrent HTTP handlers.
type service struct {
	mu    sync.RWMutex
	books []Book
}

// NewService creates a catalog service seeded with the given books.
func NewService(seed []Book) Service {
	s := &service{books: make([]Book, len(seed))}
	copy(s.books, seed)
	return s
}

// All returns every book in the catalog.
func (s *service) All(ctx context.Context) []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

// Get retrieves a book by id. Not-found is a normal outcome reported via the
// second return value.
func (s *service) Get(ctx context.Context, id string) (Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.books[i], true
	}
	return Book{}, false
}

// Add appends a new book with a generated id and returns the stored record.
// Numeric ranges are not validated here; that is the caller's responsibility.
func (s *service) Add(ctx context.Context, fields NewBook) Book {
	book := Book{
		ID:              uuid.New().String(),
		Title:           fields.Title,
		Author:          fields.Author,
		ISBN:            fields.ISBN,
		Category:        fields.Category,
		Description:     fields.Description,
		ImageURL:        fields.ImageURL,
		TotalCopies:     fields.TotalCopies,
		AvailableCopies: fields.AvailableCopies,
		Publisher:       fields.Publisher,
		PublishedYear:   fields.PublishedYear,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = append(s.books, book)
	return book
}

// Update merges non-nil patch fields into the stored record. Returns false
// when the id is not found.
func (s *service) Update(ctx context.Context, id string, patch Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	b := &s.books[i]
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Author != nil {
		b.Author = *patch.Author
	}
	if patch.ISBN != nil {
		b.ISBN = *patch.ISBN
	}
	if patch.Category != nil {
		b.Category = *patch.Category
	}
	if patch.Description != nil {
		b.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		b.ImageURL = *patch.ImageURL
	}
	if patch.TotalCopies != nil {
		b.TotalCopies = *patch.TotalCopies
	}
	if patch.AvailableCopies != nil {
		b.AvailableCopies = *patch.AvailableCopies
	}
	if patch.Publisher != nil {
		b.Publisher = *patch.Publisher
	}
	if patch.PublishedYear != nil {
		b.PublishedYear = *patch.PublishedYear
	}
	return true
}

// Remove deletes a book. Open requests referencing the book keep their
// snapshot fields and dangling bookId; there is no cascade.
func (s *service) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	return true
}

// Categories returns the distinct non-empty category strings present in the
// catalog, in first-seen order.
func (s *service) Categories(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.books))
	var out []string
	for _, b := range s.books {
		if b.Category == "" {
			continue
		}
		if _, ok := seen[b.Category]; ok {
			continue
		}
		seen[b.Category] = struct{}{}
		out = append(out, b.Category)
	}
	return out
}

// Search finds books matching a case-insensitive substring query against
// title, author, and category. An empty query matches everything. When a
// category is given it is an exact-match additional filter; books without a
// category never match a category filter.
func (s *service) Search(ctx context.Context, query, category string) []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []Book
	for _, b := range s.books {
		matchesQuery := q == "" ||
			strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			(b.Category != "" && strings.Contains(strings.ToLower(b.Category), q))

		matchesCategory := category == "" || b.Category == category

		if matchesQuery && matchesCategory {
			out = append(out, b)
		}
	}
	return out
}

// Available returns the books with at least one copy not on loan.
func (s *service) Available(ctx context.Context) []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Book
	for _, b := range s.books {
		if b.AvailableCopies > 0 {
			out = append(out, b)
		}
	}
	return out
}

// Random returns up to n books in random order, for the front end's featured
// shelf.
func (s *service) Random(ctx context.Context, n int) []Book {
	s.mu.RLock()
	shuffled := make([]Book, len(s.books))
	copy(shuffled, s.books)
	s.mu.RUnlock()

	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}

// AdjustAvailable applies delta to availableCopies under the store lock, so
// a concurrent approval cannot decrement past zero between a read and a
// write. Increments are deliberately not clamped to totalCopies; see the
// lifecycle notes in internal/requests.
func (s *service) AdjustAvailable(ctx context.Context, id string, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	if delta < 0 && s.books[i].AvailableCopies+delta < 0 {
		return false
	}
	s.books[i].AvailableCopies += delta
	return true
}

// indexOf must be called with the lock held.
func (s *service) indexOf(id string) int {
	for i := range s.books {
		if s.books[i].ID == id {
			return i
		}
	}
	return -1
}
