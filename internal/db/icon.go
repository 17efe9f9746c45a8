package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

// IconRepo implements domain.IconRepository.
type IconRepo struct {
	db pg.DBI
}

func NewIconRepo(db pg.DBI) *IconRepo {
	return &IconRepo{db: db}
}

func (r *IconRepo) ByID(ctx context.Context, id int) (*domain.Icon, error) {
	rec := &Icon{ID: id}
	err := r.db.ModelContext(ctx, rec).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get icon by id: %w", err)
	}

	icon := rec.toDomain()
	return &icon, nil
}

func (r *IconRepo) ByTitle(ctx context.Context, title string) (*domain.Icon, error) {
	rec := &Icon{}
	err := r.db.ModelContext(ctx, rec).
		Where(`"t"."title" = ?`, title).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get icon by title: %w", err)
	}

	icon := rec.toDomain()
	return &icon, nil
}

func (r *IconRepo) ByURL(ctx context.Context, url string) (*domain.Icon, error) {
	rec := &Icon{}
	err := r.db.ModelContext(ctx, rec).
		Where(`"t"."url" = ?`, url).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get icon by url: %w", err)
	}

	icon := rec.toDomain()
	return &icon, nil
}

func (r *IconRepo) All(ctx context.Context) ([]domain.Icon, error) {
	var recs []Icon
	err := r.db.ModelContext(ctx, &recs).
		OrderExpr(`"t"."title" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query icons: %w", err)
	}

	icons := make([]domain.Icon, len(recs))
	for i := range recs {
		icons[i] = recs[i].toDomain()
	}
	return icons, nil
}

func (r *IconRepo) Create(ctx context.Context, icon *domain.Icon) (*domain.Icon, error) {
	rec := newIconRecord(icon)
	if _, err := r.db.ModelContext(ctx, rec).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert icon: %w", err)
	}

	icon.ID = rec.ID
	return icon, nil
}

func (r *IconRepo) Update(ctx context.Context, icon *domain.Icon) (*domain.Icon, error) {
	rec := newIconRecord(icon)
	res, err := r.db.ModelContext(ctx, rec).WherePK().Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update icon: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, fmt.Errorf("update icon %d: %w", icon.ID, domain.ErrNotFound)
	}

	return icon, nil
}

func (r *IconRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Icon)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete icon: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
