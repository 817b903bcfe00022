// tests/integration/main_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookdesk/internal/catalog"
	"bookdesk/internal/identity"
	"bookdesk/internal/requests"
	"bookdesk/internal/seed"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	data, err := seed.Load()
	require.NoError(t, err)

	catalogSvc := catalog.NewService(data.Books)
	requestSvc := requests.NewService(catalogSvc, data.Requests)
	identitySvc := identity.NewService(data.Users)

	r := chi.NewRouter()
	catalog.NewHandler(catalogSvc).Register(r)
	requests.NewHandler(requestSvc).Register(r)
	identity.NewHandler(identitySvc).Register(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any, out any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestBorrowFlow(t *testing.T) {
	srv := newTestServer(t)

	// Add a fresh book so the flow does not depend on seed contents.
	var book catalog.Book
	resp := postJSON(t, srv.URL+"/books", map[string]any{
		"title":           "Pride and Prejudice",
		"author":          "Jane Austen",
		"isbn":            "9780141439518",
		"category":        "Fiction",
		"totalCopies":     5,
		"availableCopies": 5,
	}, &book)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Look the requester up in the directory.
	var user identity.User
	resp = getJSON(t, srv.URL+"/users/lookup?email=jordan.lee@bookdesk.example", &user)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Submit a borrow request.
	var req requests.BookRequest
	resp = postJSON(t, srv.URL+"/requests", map[string]any{
		"userId":             user.ID,
		"userName":           user.Name,
		"userEmail":          user.Email,
		"bookId":             book.ID,
		"bookTitle":          book.Title,
		"bookAuthor":         book.Author,
		"expectedReturnDate": "2026-10-01",
	}, &req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, requests.StatusPending, req.Status)

	// Approve: one copy goes on loan.
	resp = postJSON(t, srv.URL+"/requests/"+req.ID+"/status", map[string]any{
		"status": "approved", "adminComments": "enjoy",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated catalog.Book
	getJSON(t, srv.URL+"/books/"+book.ID, &updated)
	assert.Equal(t, 4, updated.AvailableCopies)

	// Dispatch: timestamp set, inventory untouched.
	resp = postJSON(t, srv.URL+"/requests/"+req.ID+"/status", map[string]any{"status": "dispatched"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var mine []requests.BookRequest
	getJSON(t, srv.URL+"/requests/user/"+user.ID, &mine)
	var current requests.BookRequest
	for _, r := range mine {
		if r.ID == req.ID {
			current = r
		}
	}
	require.Equal(t, requests.StatusDispatched, current.Status)
	assert.NotNil(t, current.DispatchDate)
	getJSON(t, srv.URL+"/books/"+book.ID, &updated)
	assert.Equal(t, 4, updated.AvailableCopies)

	// Return: copy comes back.
	resp = postJSON(t, srv.URL+"/requests/"+req.ID+"/status", map[string]any{"status": "returned"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	getJSON(t, srv.URL+"/books/"+book.ID, &updated)
	assert.Equal(t, 5, updated.AvailableCopies)
}

func TestTransitionUnknownRequest(t *testing.T) {
	srv := newTestServer(t)

	var before []catalog.Book
	getJSON(t, srv.URL+"/books", &before)

	resp := postJSON(t, srv.URL+"/requests/nonexistent-id/status", map[string]any{"status": "approved"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var after []catalog.Book
	getJSON(t, srv.URL+"/books", &after)
	assert.Equal(t, before, after, "nothing anywhere is altered")
}

func TestApproveBookWithNoCopies(t *testing.T) {
	srv := newTestServer(t)

	var book catalog.Book
	postJSON(t, srv.URL+"/books", map[string]any{
		"title": "Scarce", "author": "Nobody", "totalCopies": 1, "availableCopies": 0,
	}, &book)

	var req requests.BookRequest
	postJSON(t, srv.URL+"/requests", map[string]any{
		"userId": "u2", "bookId": book.ID, "bookTitle": book.Title,
	}, &req)

	resp := postJSON(t, srv.URL+"/requests/"+req.ID+"/status", map[string]any{"status": "approved"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "transition still reports success")

	var updated catalog.Book
	getJSON(t, srv.URL+"/books/"+book.ID, &updated)
	assert.Equal(t, 0, updated.AvailableCopies)
}

func TestAdminQueueIsNewestFirst(t *testing.T) {
	srv := newTestServer(t)

	for i := 0; i < 3; i++ {
		postJSON(t, srv.URL+"/requests", map[string]any{
			"userId": "u2", "bookId": "1", "bookTitle": fmt.Sprintf("Book %d", i),
		}, nil)
	}

	var queue []requests.BookRequest
	getJSON(t, srv.URL+"/requests", &queue)
	require.GreaterOrEqual(t, len(queue), 3)
	for i := 1; i < len(queue); i++ {
		assert.False(t, queue[i-1].RequestDate.Before(queue[i].RequestDate),
			"queue sorted by request date, newest first")
	}
}

func TestSearchAndCategories(t *testing.T) {
	srv := newTestServer(t)

	var hits []catalog.Book
	resp := getJSON(t, srv.URL+"/books/search?q=clean", &hits)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Clean Code", hits[0].Title)

	var cats []string
	getJSON(t, srv.URL+"/books/categories", &cats)
	assert.Contains(t, cats, "Technology")
}
