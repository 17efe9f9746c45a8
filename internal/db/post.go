package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

// PostRepo implements domain.PostRepository on top of go-pg.
type PostRepo struct {
	db pg.DBI
}

func NewPostRepo(db pg.DBI) *PostRepo {
	return &PostRepo{db: db}
}

func (r *PostRepo) ByID(ctx context.Context, id int) (*domain.Post, error) {
	rec := &Post{ID: id}
	err := r.db.ModelContext(ctx, rec).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	post := rec.toDomain()
	return &post, nil
}

func (r *PostRepo) ByAlias(ctx context.Context, alias string) (*domain.Post, error) {
	rec := &Post{}
	err := r.db.ModelContext(ctx, rec).
		Where(`"t"."alias" = ?`, alias).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by alias: %w", err)
	}

	post := rec.toDomain()
	return &post, nil
}

func (r *PostRepo) All(ctx context.Context) ([]domain.Post, error) {
	var recs []Post
	err := r.db.ModelContext(ctx, &recs).
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return newPosts(recs), nil
}

// Published returns posts with a published timestamp and no category,
// newest first. A post in a category is a page and stays out of the feed.
func (r *PostRepo) Published(ctx context.Context) ([]domain.Post, error) {
	var recs []Post
	err := r.db.ModelContext(ctx, &recs).
		Where(`"t"."publishedon" IS NOT NULL`).
		Where(`"t"."category_id" IS NULL`).
		OrderExpr(`"t"."publishedon" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query published posts: %w", err)
	}

	return newPosts(recs), nil
}

func (r *PostRepo) Pages(ctx context.Context, categoryIDs []int) ([]domain.Post, error) {
	if len(categoryIDs) == 0 {
		return []domain.Post{}, nil
	}

	var recs []Post
	err := r.db.ModelContext(ctx, &recs).
		Where(`"t"."category_id" IN (?)`, pg.In(categoryIDs)).
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query page posts: %w", err)
	}

	return newPosts(recs), nil
}

func (r *PostRepo) ByTagID(ctx context.Context, tagID int) ([]domain.Post, error) {
	var recs []Post
	err := r.db.ModelContext(ctx, &recs).
		Join(`JOIN "posts_tags" AS "pt" ON "pt"."post_id" = "t"."id"`).
		Where(`"pt"."tag_id" = ?`, tagID).
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts by tag: %w", err)
	}

	return newPosts(recs), nil
}

// WithRelations loads a post with its category, author and tags eagerly.
func (r *PostRepo) WithRelations(ctx context.Context, id int) (*domain.Post, error) {
	rec := &Post{ID: id}
	err := r.db.ModelContext(ctx, rec).
		Relation("Category").
		Relation("User").
		Relation("Tags").
		WherePK().
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post with relations: %w", err)
	}

	post := rec.toDomain()
	return &post, nil
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if post.CreatedOn.IsZero() {
		post.CreatedOn = time.Now()
	}

	rec := newPostRecord(post)
	if _, err := r.db.ModelContext(ctx, rec).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	post.ID = rec.ID
	return post, nil
}

func (r *PostRepo) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	rec := newPostRecord(post)
	res, err := r.db.ModelContext(ctx, rec).WherePK().Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, fmt.Errorf("update post %d: %w", post.ID, domain.ErrNotFound)
	}

	return post, nil
}

func (r *PostRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *PostRepo) AddTag(ctx context.Context, postID, tagID int) error {
	rec := &PostTag{PostID: postID, TagID: tagID}
	_, err := r.db.ModelContext(ctx, rec).
		OnConflict("DO NOTHING").
		Insert()
	if err != nil {
		return fmt.Errorf("failed to tag post: %w", err)
	}

	return nil
}

func (r *PostRepo) RemoveTag(ctx context.Context, postID, tagID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*PostTag)(nil)).
		Where(`"pt"."post_id" = ?`, postID).
		Where(`"pt"."tag_id" = ?`, tagID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to untag post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func newPosts(recs []Post) []domain.Post {
	posts := make([]domain.Post, len(recs))
	for i := range recs {
		posts[i] = recs[i].toDomain()
	}
	return posts
}
