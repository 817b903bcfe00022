// internal/requests/domain.go
package requests

import "time"

// Status of a borrow request. The admin surface only offers the legal next
// action per status: pending -> approved/rejected, approved -> dispatched,
// dispatched -> returned; rejected and returned are terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusDispatched Status = "dispatched"
	StatusReturned   Status = "returned"
)

// BookRequest is an employee's ask to borrow one copy of one book. The
// requester and book fields are snapshots taken at creation time: they keep
// their historical values even if the user or book record is later edited or
// deleted.
type BookRequest struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	UserName           string     `json:"userName"`
	UserEmail          string     `json:"userEmail"`
	BookID             string     `json:"bookId"`
	BookTitle          string     `json:"bookTitle"`
	BookAuthor         string     `json:"bookAuthor"`
	RequestDate        time.Time  `json:"requestDate"`
	ExpectedReturnDate string     `json:"expectedReturnDate"`
	Status             Status     `json:"status"`
	AdminComments      string     `json:"adminComments,omitempty"`
	DispatchDate       *time.Time `json:"dispatchDate,omitempty"`
	ReturnDate         *time.Time `json:"returnDate,omitempty"`
}

// NewRequest carries the requester identity and book snapshot for Create.
// The expected return date is validated by the submitting form, not here.
type NewRequest struct {
	UserID             string `json:"userId"`
	UserName           string `json:"userName"`
	UserEmail          string `json:"userEmail"`
	BookID             string `json:"bookId"`
	BookTitle          string `json:"bookTitle"`
	BookAuthor         string `json:"bookAuthor"`
	ExpectedReturnDate string `json:"expectedReturnDate"`
}

// Stats are the per-status request counts shown on the admin dashboard.
// Rejected requests are not tallied separately; the dashboard derives them
// from the total when it needs them.
type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Approved   int `json:"approved"`
	Dispatched int `json:"dispatched"`
	Returned   int `json:"returned"`
}
