// internal/seed/seed.go
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"bookdesk/internal/catalog"
	"bookdesk/internal/identity"
	"bookdesk/internal/requests"
)

//go:embed books.json users.json requests.json
var files embed.FS

// Data is the demo dataset loaded once at process start.
type Data struct {
	Books    []catalog.Book
	Users    []identity.User
	Requests []requests.BookRequest
}

// Load decodes the embedded seed files. Optional book fields (publisher,
// publishedYear, imageUrl, category) may be absent.
func Load() (Data, error) {
	var d Data
	if err := decode("books.json", &d.Books); err != nil {
		return Data{}, err
	}
	if err := decode("users.json", &d.Users); err != nil {
		return Data{}, err
	}
	if err := decode("requests.json", &d.Requests); err != nil {
		return Data{}, err
	}
	return d, nil
}

func decode(name string, v any) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode seed file %s: %w", name, err)
	}
	return nil
}
