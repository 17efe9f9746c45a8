package rpc

import (
	"testing"
	"time"

	"github.com/gunlinux/gunlinux.ru/internal/db"
)

func TestPostServiceUpdatePreservesCreatedOn_Integration(t *testing.T) {
	_, ctx, services := withTx(t)

	createdOn := db.BaseTime.Add(-10 * 24 * time.Hour)
	publishedOn := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

	updated, err := services.posts.Update(ctx, PostUpdateRequest{
		ID:          1,
		PageTitle:   "Why vim, revisited",
		Alias:       "why-vim",
		Content:     "## Still vim\n\nNothing changed.",
		PublishedOn: &publishedOn,
	})
	if err != nil {
		t.Fatalf("update post: %v", err)
	}
	if !updated.CreatedOn.Equal(createdOn) {
		t.Fatalf("creation timestamp not preserved: got %v, want %v", updated.CreatedOn, createdOn)
	}

	got, err := services.posts.ByID(ctx, IDRequest{ID: 1})
	if err != nil {
		t.Fatalf("read back post: %v", err)
	}
	if !got.CreatedOn.Equal(createdOn) {
		t.Fatalf("stored creation timestamp changed: got %v, want %v", got.CreatedOn, createdOn)
	}
	if got.PageTitle != "Why vim, revisited" {
		t.Fatalf("title not updated: %q", got.PageTitle)
	}
}

func TestPostServiceUpdateMissing_Integration(t *testing.T) {
	_, ctx, services := withTx(t)

	_, err := services.posts.Update(ctx, PostUpdateRequest{
		ID:        999,
		PageTitle: "ghost",
		Alias:     "ghost",
	})
	if err == nil {
		t.Fatal("expected an error for a missing post")
	}
}
