package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wisbaq/webfolio-be/internal/models"
	"github.com/wisbaq/webfolio-be/internal/services"
)

func TestMetaTagService_CreateThenUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMetaTagService(db)
	ctx := context.Background()

	created, err := svc.CreateMetaTag(ctx, "Home", "d", "home")
	if err != nil {
		t.Fatalf("CreateMetaTag: %v", err)
	}
	if created.DateAdded != models.Today() || created.DateUpdated != models.Today() {
		t.Fatalf("expected both dates to be today, got %s / %s", created.DateAdded, created.DateUpdated)
	}

	// Age the row so the date refresh is observable.
	if _, err := db.Exec("UPDATE meta_tags SET date_added = ?, date_updated = ? WHERE id = ?",
		"2020-01-01", "2020-01-01", created.ID); err != nil {
		t.Fatalf("age row: %v", err)
	}

	updated, err := svc.UpdateMetaTag(ctx, created.ID, "Home2", "d2")
	if err != nil {
		t.Fatalf("UpdateMetaTag: %v", err)
	}
	if updated.Title != "Home2" || updated.Description != "d2" {
		t.Fatalf("unexpected tag after update: %+v", updated)
	}
	if updated.SelectedValue != "home" {
		t.Fatalf("selected_value must not change on update, got %s", updated.SelectedValue)
	}
	if updated.DateAdded != "2020-01-01" {
		t.Fatalf("date_added must not change on update, got %s", updated.DateAdded)
	}
	if updated.DateUpdated != models.Today() {
		t.Fatalf("expected date_updated to be today, got %s", updated.DateUpdated)
	}
}

func TestMetaTagService_GetMissing(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMetaTagService(db)

	if _, err := svc.GetMetaTagByID(context.Background(), 9999); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMetaTagService_UpdateMissing(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMetaTagService(db)

	if _, err := svc.UpdateMetaTag(context.Background(), 9999, "t", "d"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMetaTagService_DeleteMissingKeepsRows(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMetaTagService(db)
	ctx := context.Background()

	if _, err := svc.CreateMetaTag(ctx, "Keep", "d", "keep"); err != nil {
		t.Fatalf("CreateMetaTag: %v", err)
	}

	if err := svc.DeleteMetaTag(ctx, 9999); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM meta_tags").Scan(&count); err != nil {
		t.Fatalf("count tags: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected row count unchanged at 1, got %d", count)
	}
}

func TestMetaTagService_Delete(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMetaTagService(db)
	ctx := context.Background()

	created, err := svc.CreateMetaTag(ctx, "Doomed", "d", "doomed")
	if err != nil {
		t.Fatalf("CreateMetaTag: %v", err)
	}
	if err := svc.DeleteMetaTag(ctx, created.ID); err != nil {
		t.Fatalf("DeleteMetaTag: %v", err)
	}
	if _, err := svc.GetMetaTagByID(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected tag to be gone, got %v", err)
	}
}
