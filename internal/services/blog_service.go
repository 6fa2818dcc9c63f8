package services

import (
	"context"
	"database/sql"

	"github.com/wisbaq/webfolio-be/internal/models"
)

// BlogServiceProvider defines the interface for blog services.
type BlogServiceProvider interface {
	GetAllBlogs(ctx context.Context) ([]models.Blog, error)
	GetBlogByID(ctx context.Context, id int64) (models.Blog, error)
	CreateBlog(ctx context.Context, title, description, image string) (models.Blog, error)
	UpdateBlog(ctx context.Context, id int64, title, description, image string) error
	DeleteBlog(ctx context.Context, id int64) error
}

// BlogService provides CRUD over blog posts.
type BlogService struct {
	db *sql.DB
}

// NewBlogService creates a new BlogService.
func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{db: db}
}

// scanBlog is a helper to scan a blog from a row or rows object.
func scanBlog(scanner interface{ Scan(...interface{}) error }) (models.Blog, error) {
	var b models.Blog
	err := scanner.Scan(&b.ID, &b.Title, &b.Description, &b.Image, &b.DateAdded, &b.DateUpdated)
	return b, err
}

// GetAllBlogs retrieves all blog posts, in store order.
func (s *BlogService) GetAllBlogs(ctx context.Context) ([]models.Blog, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, description, image, date_added, date_updated FROM web_blogs")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

// GetBlogByID retrieves a single blog post by its ID.
func (s *BlogService) GetBlogByID(ctx context.Context, id int64) (models.Blog, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, title, description, image, date_added, date_updated FROM web_blogs WHERE id = ?", id)
	b, err := scanBlog(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Blog{}, models.ErrNotFound
		}
		return models.Blog{}, err
	}
	return b, nil
}

// CreateBlog inserts a new post with today's date for both timestamps.
// image is the path reference produced by the upload store.
func (s *BlogService) CreateBlog(ctx context.Context, title, description, image string) (models.Blog, error) {
	today := models.Today()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO web_blogs (title, description, image, date_added, date_updated) VALUES (?, ?, ?, ?, ?)",
		title, description, image, today, today,
	)
	if err != nil {
		return models.Blog{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Blog{}, err
	}
	return models.Blog{
		ID:          id,
		Title:       title,
		Description: description,
		Image:       image,
		DateAdded:   today,
		DateUpdated: today,
	}, nil
}

// UpdateBlog rewrites a post's title, description and image reference
// and refreshes date_updated. date_added is never touched. Returns
// models.ErrNotFound when no row matched.
func (s *BlogService) UpdateBlog(ctx context.Context, id int64, title, description, image string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE web_blogs SET title = ?, description = ?, image = ?, date_updated = ? WHERE id = ?",
		title, description, image, models.Today(), id,
	)
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

// DeleteBlog removes a post row. The uploaded file is left on disk.
func (s *BlogService) DeleteBlog(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM web_blogs WHERE id = ?", id)
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
