package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wisbaq/webfolio-be/internal/models"
	"github.com/wisbaq/webfolio-be/internal/services"
)

func TestBlogService_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewBlogService(db)
	ctx := context.Background()

	created, err := svc.CreateBlog(ctx, "First Post", "A description", "uploads/1-photo.jpg")
	if err != nil {
		t.Fatalf("CreateBlog: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected blog ID to be set")
	}
	if created.DateAdded != models.Today() || created.DateUpdated != models.Today() {
		t.Fatalf("expected both dates to be today, got %s / %s", created.DateAdded, created.DateUpdated)
	}

	got, err := svc.GetBlogByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetBlogByID: %v", err)
	}
	if got.Title != "First Post" || got.Description != "A description" || got.Image != "uploads/1-photo.jpg" {
		t.Fatalf("unexpected blog returned: %+v", got)
	}
}

func TestBlogService_GetMissing(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewBlogService(db)

	_, err := svc.GetBlogByID(context.Background(), 9999)
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBlogService_Update(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewBlogService(db)
	ctx := context.Background()

	created, err := svc.CreateBlog(ctx, "Old", "old desc", "uploads/1-a.jpg")
	if err != nil {
		t.Fatalf("CreateBlog: %v", err)
	}

	// Age the row so the date refresh is observable.
	if _, err := db.Exec("UPDATE web_blogs SET date_added = ?, date_updated = ? WHERE id = ?",
		"2020-01-01", "2020-01-01", created.ID); err != nil {
		t.Fatalf("age row: %v", err)
	}

	if err := svc.UpdateBlog(ctx, created.ID, "New", "new desc", "uploads/2-b.jpg"); err != nil {
		t.Fatalf("UpdateBlog: %v", err)
	}

	got, err := svc.GetBlogByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetBlogByID: %v", err)
	}
	if got.Title != "New" || got.Description != "new desc" || got.Image != "uploads/2-b.jpg" {
		t.Fatalf("unexpected blog after update: %+v", got)
	}
	if got.DateAdded != "2020-01-01" {
		t.Fatalf("date_added must not change on update, got %s", got.DateAdded)
	}
	if got.DateUpdated != models.Today() {
		t.Fatalf("expected date_updated to be today, got %s", got.DateUpdated)
	}
}

func TestBlogService_UpdateMissing(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewBlogService(db)

	err := svc.UpdateBlog(context.Background(), 9999, "t", "d", "i")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBlogService_Delete(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewBlogService(db)
	ctx := context.Background()

	created, err := svc.CreateBlog(ctx, "Doomed", "d", "uploads/1-x.jpg")
	if err != nil {
		t.Fatalf("CreateBlog: %v", err)
	}

	if err := svc.DeleteBlog(ctx, created.ID); err != nil {
		t.Fatalf("DeleteBlog: %v", err)
	}
	if _, err := svc.GetBlogByID(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected blog to be gone, got %v", err)
	}

	// Deleting again is NotFound and leaves the table untouched.
	if err := svc.DeleteBlog(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestBlogService_GetAll(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewBlogService(db)
	ctx := context.Background()

	all, err := svc.GetAllBlogs(ctx)
	if err != nil {
		t.Fatalf("GetAllBlogs: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty list, got %d rows", len(all))
	}

	for _, title := range []string{"one", "two", "three"} {
		if _, err := svc.CreateBlog(ctx, title, "d", "uploads/1-x.jpg"); err != nil {
			t.Fatalf("CreateBlog %s: %v", title, err)
		}
	}

	all, err = svc.GetAllBlogs(ctx)
	if err != nil {
		t.Fatalf("GetAllBlogs: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(all))
	}
}
