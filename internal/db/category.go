package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

// CategoryRepo implements domain.CategoryRepository.
type CategoryRepo struct {
	db pg.DBI
}

func NewCategoryRepo(db pg.DBI) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) ByID(ctx context.Context, id int) (*domain.Category, error) {
	rec := &Category{ID: id}
	err := r.db.ModelContext(ctx, rec).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	category := rec.toDomain()
	return &category, nil
}

func (r *CategoryRepo) ByAlias(ctx context.Context, alias string) (*domain.Category, error) {
	rec := &Category{}
	err := r.db.ModelContext(ctx, rec).
		Where(`"t"."alias" = ?`, alias).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by alias: %w", err)
	}

	category := rec.toDomain()
	return &category, nil
}

func (r *CategoryRepo) All(ctx context.Context) ([]domain.Category, error) {
	var recs []Category
	err := r.db.ModelContext(ctx, &recs).
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return newCategories(recs), nil
}

// WithPosts returns categories with their posts flattened one level deep.
func (r *CategoryRepo) WithPosts(ctx context.Context) ([]domain.Category, error) {
	var recs []Category
	err := r.db.ModelContext(ctx, &recs).
		Relation("Posts").
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories with posts: %w", err)
	}

	return newCategories(recs), nil
}

func (r *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	rec := newCategoryRecord(category)
	if _, err := r.db.ModelContext(ctx, rec).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	category.ID = rec.ID
	return category, nil
}

func (r *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	rec := newCategoryRecord(category)
	res, err := r.db.ModelContext(ctx, rec).WherePK().Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, fmt.Errorf("update category %d: %w", category.ID, domain.ErrNotFound)
	}

	return category, nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func newCategories(recs []Category) []domain.Category {
	categories := make([]domain.Category, len(recs))
	for i := range recs {
		categories[i] = recs[i].toDomain()
	}
	return categories
}
