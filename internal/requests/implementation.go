// internal/requests/implementation.go
package requests

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"bookdesk/internal/catalog"
)

// service implements the Service interface. It owns the request ledger and
// orchestrates inventory side effects through the injected catalog service;
// it holds no catalog state itself. Requests are never deleted.
type service struct {
	mu       sync.RWMutex
	requests []BookRequest

	catalog     catalog.Service
	tracer      trace.Tracer
	transitions metric.Int64Counter
}

// NewService creates a request service seeded with the given requests.
func NewService(cat catalog.Service, seed []BookRequest) Service {
	transitions, _ := otel.Meter("bookdesk/requests").Int64Counter(
		"bookdesk.request.transitions",
		metric.WithDescription("Number of request status transitions applied"),
	)
	s := &service{
		requests:    make([]BookRequest, len(seed)),
		catalog:     cat,
		tracer:      otel.Tracer("bookdesk/requests"),
		transitions: transitions,
	}
	copy(s.requests, seed)
	return s
}

// All returns every request in the ledger.
func (s *service) All(ctx context.Context) []BookRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]BookRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// ByUser returns the requests submitted by the given user.
func (s *service) ByUser(ctx context.Context, userID string) []BookRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []BookRequest
	for _, r := range s.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// Create appends a new pending request with a fresh id and request date.
// There is no capacity or duplicate check; creation never fails.
func (s *service) Create(ctx context.Context, fields NewRequest) BookRequest {
	req := BookRequest{
		ID:                 uuid.New().String(),
		UserID:             fields.UserID,
		UserName:           fields.UserName,
		UserEmail:          fields.UserEmail,
		BookID:             fields.BookID,
		BookTitle:          fields.BookTitle,
		BookAuthor:         fields.BookAuthor,
		RequestDate:        time.Now().UTC(),
		ExpectedReturnDate: fields.ExpectedReturnDate,
		Status:             StatusPending,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return req
}

// Transition applies a status change to a request and its inventory side
// effects. The target is applied as given; legality of the step is the admin
// surface's responsibility, which only offers the legal next action per
// status. Returns false, with no mutation anywhere, when the id is unknown.
//
// Inventory effects: approved decrements the book's available copies when
// the book exists and has copies left, otherwise the transition still
// succeeds with no inventory change. returned increments without clamping to
// totalCopies, so a request returned twice inflates the count; the admin
// surface offers the return action only once per request. rejected and
// dispatched touch no inventory.
func (s *service) Transition(ctx context.Context, id string, target Status, adminComments string) bool {
	ctx, span := s.tracer.Start(ctx, "requests.transition",
		trace.WithAttributes(
			attribute.String("request.id", id),
			attribute.String("request.target", string(target)),
		),
	)
	defer span.End()

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		span.SetAttributes(attribute.Bool("request.found", false))
		return false
	}

	req := &s.requests[i]
	req.Status = target
	if adminComments != "" {
		req.AdminComments = adminComments
	}
	now := time.Now().UTC()
	switch target {
	case StatusDispatched:
		req.DispatchDate = &now
	case StatusReturned:
		req.ReturnDate = &now
	}
	bookID := req.BookID
	s.mu.Unlock()

	switch target {
	case StatusApproved:
		s.catalog.AdjustAvailable(ctx, bookID, -1)
	case StatusReturned:
		s.catalog.AdjustAvailable(ctx, bookID, +1)
	}

	s.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("request.target", string(target)),
	))
	return true
}

// Stats counts requests by status for the admin dashboard.
func (s *service) Stats(ctx context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{Total: len(s.requests)}
	for _, r := range s.requests {
		switch r.Status {
		case StatusPending:
			stats.Pending++
		case StatusApproved:
			stats.Approved++
		case StatusDispatched:
			stats.Dispatched++
		case StatusReturned:
			stats.Returned++
		}
	}
	return stats
}

// indexOf must be called with the lock held.
func (s *service) indexOf(id string) int {
	for i := range s.requests {
		if s.requests[i].ID == id {
			return i
		}
	}
	return -1
}
