package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

// TagRepo implements domain.TagRepository.
type TagRepo struct {
	db pg.DBI
}

func NewTagRepo(db pg.DBI) *TagRepo {
	return &TagRepo{db: db}
}

func (r *TagRepo) ByID(ctx context.Context, id int) (*domain.Tag, error) {
	rec := &Tag{ID: id}
	err := r.db.ModelContext(ctx, rec).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag by id: %w", err)
	}

	tag := rec.toDomain()
	return &tag, nil
}

func (r *TagRepo) ByAlias(ctx context.Context, alias string) (*domain.Tag, error) {
	rec := &Tag{}
	err := r.db.ModelContext(ctx, rec).
		Where(`"t"."alias" = ?`, alias).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag by alias: %w", err)
	}

	tag := rec.toDomain()
	return &tag, nil
}

func (r *TagRepo) All(ctx context.Context) ([]domain.Tag, error) {
	var recs []Tag
	err := r.db.ModelContext(ctx, &recs).
		OrderExpr(`"t"."title" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return newTags(recs), nil
}

func (r *TagRepo) ByPostID(ctx context.Context, postID int) ([]domain.Tag, error) {
	var recs []Tag
	err := r.db.ModelContext(ctx, &recs).
		Join(`JOIN "posts_tags" AS "pt" ON "pt"."tag_id" = "t"."id"`).
		Where(`"pt"."post_id" = ?`, postID).
		OrderExpr(`"t"."title" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tags by post: %w", err)
	}

	return newTags(recs), nil
}

// WithPosts returns tags with their posts flattened one level deep.
func (r *TagRepo) WithPosts(ctx context.Context) ([]domain.Tag, error) {
	var recs []Tag
	err := r.db.ModelContext(ctx, &recs).
		Relation("Posts").
		OrderExpr(`"t"."title" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tags with posts: %w", err)
	}

	return newTags(recs), nil
}

func (r *TagRepo) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	rec := newTagRecord(tag)
	if _, err := r.db.ModelContext(ctx, rec).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert tag: %w", err)
	}

	tag.ID = rec.ID
	return tag, nil
}

func (r *TagRepo) Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	rec := newTagRecord(tag)
	res, err := r.db.ModelContext(ctx, rec).WherePK().Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, fmt.Errorf("update tag %d: %w", tag.ID, domain.ErrNotFound)
	}

	return tag, nil
}

func (r *TagRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Tag)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete tag: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func newTags(recs []Tag) []domain.Tag {
	tags := make([]domain.Tag, len(recs))
	for i := range recs {
		tags[i] = recs[i].toDomain()
	}
	return tags
}
