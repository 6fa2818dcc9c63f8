package models

// MetaTag represents a page metadata entry managed from the admin UI.
type MetaTag struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	SelectedValue string `json:"selected_value"`
	DateAdded     Date   `json:"date_added"`
	DateUpdated   Date   `json:"date_updated"`
}
