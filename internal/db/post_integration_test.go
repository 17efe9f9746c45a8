package db

import (
	"errors"
	"testing"
	"time"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

func TestPostRepoPublished_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	posts, err := repos.posts.Published(ctx)
	if err != nil {
		t.Fatalf("query published posts: %v", err)
	}

	if len(posts) != 2 {
		t.Fatalf("expected 2 published posts, got %d", len(posts))
	}

	for i := range posts {
		if posts[i].PublishedOn == nil {
			t.Fatalf("post %q has no published timestamp", posts[i].Alias)
		}
		if posts[i].CategoryID != nil {
			t.Fatalf("post %q belongs to a category, must not be in the feed", posts[i].Alias)
		}
	}

	for i := 0; i < len(posts)-1; i++ {
		if posts[i].PublishedOn.Before(*posts[i+1].PublishedOn) {
			t.Fatalf("posts not sorted by publishedon desc at %d", i)
		}
	}

	if posts[0].Alias != "why-vim" {
		t.Fatalf("expected newest post first, got %q", posts[0].Alias)
	}
}

func TestPostRepoByAlias_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	post, err := repos.posts.ByAlias(ctx, "rack-notes")
	if err != nil {
		t.Fatalf("get post by alias: %v", err)
	}
	if post == nil {
		t.Fatal("expected post, got nil")
	}
	if post.PageTitle != "Rack notes" {
		t.Fatalf("unexpected title %q", post.PageTitle)
	}
	if post.CategoryID == nil {
		t.Fatal("expected category id to be set")
	}

	missing, err := repos.posts.ByAlias(ctx, "no-such-alias")
	if err != nil {
		t.Fatalf("lookup of missing alias must not error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing alias, got %+v", missing)
	}
}

func TestPostRepoPages_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	pages, err := repos.posts.Pages(ctx, []int{3})
	if err != nil {
		t.Fatalf("query pages: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if pages[0].Alias != "about" {
		t.Fatalf("unexpected page %q", pages[0].Alias)
	}

	none, err := repos.posts.Pages(ctx, nil)
	if err != nil {
		t.Fatalf("query pages with empty allow-list: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("empty allow-list must yield no pages, got %d", len(none))
	}
}

func TestPostRepoByTagID_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	posts, err := repos.posts.ByTagID(ctx, 2)
	if err != nil {
		t.Fatalf("query posts by tag: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts for tag, got %d", len(posts))
	}
	if posts[0].Alias != "go-after-generics" || posts[1].Alias != "rack-notes" {
		t.Fatalf("unexpected posts %q, %q", posts[0].Alias, posts[1].Alias)
	}
}

func TestPostRepoWithRelations_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	post, err := repos.posts.WithRelations(ctx, 3)
	if err != nil {
		t.Fatalf("get post with relations: %v", err)
	}
	if post == nil {
		t.Fatal("expected post, got nil")
	}
	if post.Category == nil || post.Category.Title != "Music" {
		t.Fatalf("category not loaded: %+v", post.Category)
	}
	if post.User == nil || post.User.Name != "admin" {
		t.Fatalf("author not loaded: %+v", post.User)
	}
	if len(post.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(post.Tags))
	}

	missing, err := repos.posts.WithRelations(ctx, 99999)
	if err != nil {
		t.Fatalf("lookup of missing id must not error: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing id")
	}
}

func TestPostRepoCreate_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	draft := &domain.Post{
		PageTitle: "New draft",
		Alias:     "new-draft",
		Content:   "body",
	}

	created, err := repos.posts.Create(ctx, draft)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if created.CreatedOn.IsZero() {
		t.Fatal("expected createdon to default to now")
	}
	if created.PublishedOn != nil {
		t.Fatal("new post must start as a draft")
	}

	got, err := repos.posts.ByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("read back created post: %v", err)
	}
	if got == nil || got.PageTitle != "New draft" {
		t.Fatalf("created post not readable: %+v", got)
	}
}

func TestPostRepoUpdate_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	published := BaseTime
	post := &domain.Post{
		ID:          4,
		PageTitle:   "Finished draft",
		Alias:       "unfinished-draft",
		Content:     "done",
		CreatedOn:   BaseTime,
		PublishedOn: &published,
	}

	if _, err := repos.posts.Update(ctx, post); err != nil {
		t.Fatalf("update post: %v", err)
	}

	got, err := repos.posts.ByID(ctx, 4)
	if err != nil {
		t.Fatalf("read back updated post: %v", err)
	}
	if got.PageTitle != "Finished draft" {
		t.Fatalf("title not updated: %q", got.PageTitle)
	}
	if got.PublishedOn == nil || !got.PublishedOn.Equal(published) {
		t.Fatalf("publishedon not updated: %v", got.PublishedOn)
	}

	// a nil optional clears the stored value
	post.PublishedOn = nil
	if _, err := repos.posts.Update(ctx, post); err != nil {
		t.Fatalf("update post back to draft: %v", err)
	}
	got, err = repos.posts.ByID(ctx, 4)
	if err != nil {
		t.Fatalf("read back post: %v", err)
	}
	if got.PublishedOn != nil {
		t.Fatalf("expected publishedon cleared, got %v", got.PublishedOn)
	}
}

func TestPostRepoUpdateMissing_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	_, err := repos.posts.Update(ctx, &domain.Post{
		ID:        99999,
		PageTitle: "ghost",
		Alias:     "ghost",
		CreatedOn: time.Now(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepoDelete_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	deleted, err := repos.posts.Delete(ctx, 4)
	if err != nil {
		t.Fatalf("delete post: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete of existing post to report true")
	}

	deleted, err = repos.posts.Delete(ctx, 4)
	if err != nil {
		t.Fatalf("repeat delete must not error: %v", err)
	}
	if deleted {
		t.Fatal("expected repeat delete to report false")
	}
}

func TestPostRepoTagAssociations_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	if err := repos.posts.AddTag(ctx, 1, 2); err != nil {
		t.Fatalf("add tag: %v", err)
	}
	// attaching the same tag again is a no-op
	if err := repos.posts.AddTag(ctx, 1, 2); err != nil {
		t.Fatalf("repeat add tag must not error: %v", err)
	}

	tags, err := repos.tags.ByPostID(ctx, 1)
	if err != nil {
		t.Fatalf("query tags of post: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags after attach, got %d", len(tags))
	}

	removed, err := repos.posts.RemoveTag(ctx, 1, 2)
	if err != nil {
		t.Fatalf("remove tag: %v", err)
	}
	if !removed {
		t.Fatal("expected removal of existing association to report true")
	}

	removed, err = repos.posts.RemoveTag(ctx, 1, 2)
	if err != nil {
		t.Fatalf("repeat remove must not error: %v", err)
	}
	if removed {
		t.Fatal("expected repeat removal to report false")
	}
}
