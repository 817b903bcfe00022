// internal/catalog/domain.go
package catalog

// Book represents a title in the employee library catalog. JSON tags use the
// camelCase shapes the browser front end already consumes.
type Book struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	Category        string `json:"category,omitempty"`
	Description     string `json:"description"`
	ImageURL        string `json:"imageUrl,omitempty"`
	TotalCopies     int    `json:"totalCopies"`
	AvailableCopies int    `json:"availableCopies"`
	Publisher       string `json:"publisher,omitempty"`
	PublishedYear   int    `json:"publishedYear,omitempty"`
}

// NewBook carries the fields for adding a book. The store assigns the id.
type NewBook struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	ImageURL        string `json:"imageUrl"`
	TotalCopies     int    `json:"totalCopies"`
	AvailableCopies int    `json:"availableCopies"`
	Publisher       string `json:"publisher"`
	PublishedYear   int    `json:"publishedYear"`
}

// Patch is a partial update of a book. Nil fields are left unchanged. The
// store performs no cross-field validation on patches; only the request
// lifecycle's inventory adjustments are guaranteed to keep copy counts
// consistent.
type Patch struct {
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	ISBN            *string `json:"isbn"`
	Category        *string `json:"category"`
	Description     *string `json:"description"`
	ImageURL        *string `json:"imageUrl"`
	TotalCopies     *int    `json:"totalCopies"`
	AvailableCopies *int    `json:"availableCopies"`
	Publisher       *string `json:"publisher"`
	PublishedYear   *int    `json:"publishedYear"`
}
