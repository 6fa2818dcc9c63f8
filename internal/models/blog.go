package models

// Blog represents a blog post. Image holds the relative path of the
// uploaded file, served back as a static asset under the same path.
type Blog struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	DateAdded   Date   `json:"date_added"`
	DateUpdated Date   `json:"date_updated"`
}
