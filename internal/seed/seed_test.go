// internal/seed/seed_test.go
package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookdesk/internal/requests"
)

func TestLoad(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, data.Books)
	assert.NotEmpty(t, data.Users)
	assert.NotEmpty(t, data.Requests)

	for _, b := range data.Books {
		assert.GreaterOrEqual(t, b.AvailableCopies, 0, "book %s", b.ID)
		assert.LessOrEqual(t, b.AvailableCopies, b.TotalCopies, "book %s", b.ID)
	}

	// Optional fields may be absent from the seed.
	var sawUncategorized bool
	for _, b := range data.Books {
		if b.Category == "" {
			sawUncategorized = true
		}
	}
	assert.True(t, sawUncategorized, "seed exercises the missing-category path")

	for _, r := range data.Requests {
		switch r.Status {
		case requests.StatusDispatched:
			assert.NotNil(t, r.DispatchDate, "request %s", r.ID)
		case requests.StatusReturned:
			assert.NotNil(t, r.DispatchDate, "request %s", r.ID)
			assert.NotNil(t, r.ReturnDate, "request %s", r.ID)
		}
		assert.False(t, r.RequestDate.IsZero(), "request %s", r.ID)
	}
}
