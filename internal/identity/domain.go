// internal/identity/domain.go
package identity

// User is an employee or administrator known to the library desk. The
// directory is read-only and seeded at startup; credential verification is
// handled elsewhere, callers are trusted to supply the acting user.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
}

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)
