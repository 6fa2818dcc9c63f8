package services

import (
	"context"
	"database/sql"

	"github.com/wisbaq/webfolio-be/internal/models"
)

// MetaTagServiceProvider defines the interface for meta tag services.
type MetaTagServiceProvider interface {
	GetAllMetaTags(ctx context.Context) ([]models.MetaTag, error)
	GetMetaTagByID(ctx context.Context, id int64) (models.MetaTag, error)
	CreateMetaTag(ctx context.Context, title, description, selectedValue string) (models.MetaTag, error)
	UpdateMetaTag(ctx context.Context, id int64, title, description string) (models.MetaTag, error)
	DeleteMetaTag(ctx context.Context, id int64) error
}

// MetaTagService provides CRUD over meta tags.
type MetaTagService struct {
	db *sql.DB
}

// NewMetaTagService creates a new MetaTagService.
func NewMetaTagService(db *sql.DB) *MetaTagService {
	return &MetaTagService{db: db}
}

func scanMetaTag(scanner interface{ Scan(...interface{}) error }) (models.MetaTag, error) {
	var t models.MetaTag
	err := scanner.Scan(&t.ID, &t.Title, &t.Description, &t.SelectedValue, &t.DateAdded, &t.DateUpdated)
	return t, err
}

// GetAllMetaTags retrieves all meta tags, in store order.
func (s *MetaTagService) GetAllMetaTags(ctx context.Context) ([]models.MetaTag, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, description, selected_value, date_added, date_updated FROM meta_tags")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []models.MetaTag{}
	for rows.Next() {
		t, err := scanMetaTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// GetMetaTagByID retrieves a single meta tag by its ID.
func (s *MetaTagService) GetMetaTagByID(ctx context.Context, id int64) (models.MetaTag, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, title, description, selected_value, date_added, date_updated FROM meta_tags WHERE id = ?", id)
	t, err := scanMetaTag(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.MetaTag{}, models.ErrNotFound
		}
		return models.MetaTag{}, err
	}
	return t, nil
}

// CreateMetaTag inserts a new tag with today's date for both timestamps.
func (s *MetaTagService) CreateMetaTag(ctx context.Context, title, description, selectedValue string) (models.MetaTag, error) {
	today := models.Today()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO meta_tags (title, description, selected_value, date_added, date_updated) VALUES (?, ?, ?, ?, ?)",
		title, description, selectedValue, today, today,
	)
	if err != nil {
		return models.MetaTag{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.MetaTag{}, err
	}
	return models.MetaTag{
		ID:            id,
		Title:         title,
		Description:   description,
		SelectedValue: selectedValue,
		DateAdded:     today,
		DateUpdated:   today,
	}, nil
}

// UpdateMetaTag rewrites a tag's title and description and refreshes
// date_updated, then returns the updated row. Returns
// models.ErrNotFound when no row matched.
func (s *MetaTagService) UpdateMetaTag(ctx context.Context, id int64, title, description string) (models.MetaTag, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE meta_tags SET title = ?, description = ?, date_updated = ? WHERE id = ?",
		title, description, models.Today(), id,
	)
	if err != nil {
		return models.MetaTag{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.MetaTag{}, err
	}
	if affected == 0 {
		return models.MetaTag{}, models.ErrNotFound
	}
	return s.GetMetaTagByID(ctx, id)
}

// DeleteMetaTag removes a tag row.
func (s *MetaTagService) DeleteMetaTag(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM meta_tags WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}
