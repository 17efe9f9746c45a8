package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

// UserRepo implements domain.UserRepository. The record-shaped fetches
// (RecordByID, RecordByName) exist solely for the auth adapter, which must
// hand the session middleware a persistence-shaped object.
type UserRepo struct {
	db pg.DBI
}

func NewUserRepo(db pg.DBI) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) ByID(ctx context.Context, id int) (*domain.User, error) {
	rec, err := r.RecordByID(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}

	user := rec.toDomain()
	return &user, nil
}

func (r *UserRepo) ByName(ctx context.Context, name string) (*domain.User, error) {
	rec, err := r.RecordByName(ctx, name)
	if err != nil || rec == nil {
		return nil, err
	}

	user := rec.toDomain()
	return &user, nil
}

func (r *UserRepo) All(ctx context.Context) ([]domain.User, error) {
	var recs []User
	err := r.db.ModelContext(ctx, &recs).
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	return newUsers(recs), nil
}

// WithPosts returns users with their posts flattened one level deep.
func (r *UserRepo) WithPosts(ctx context.Context) ([]domain.User, error) {
	var recs []User
	err := r.db.ModelContext(ctx, &recs).
		Relation("Posts").
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query users with posts: %w", err)
	}

	return newUsers(recs), nil
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.CreatedOn.IsZero() {
		user.CreatedOn = time.Now()
	}

	rec := newUserRecord(user)
	if user.Password != "" {
		if err := rec.SetPassword(user.Password); err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}
	if _, err := r.db.ModelContext(ctx, rec).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	user.ID = rec.ID
	return user, nil
}

func (r *UserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	rec := newUserRecord(user)
	q := r.db.ModelContext(ctx, rec).WherePK()
	if user.Password == "" {
		// no inbound password keeps the stored hash
		q = q.ExcludeColumn("password")
	} else if err := rec.SetPassword(user.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	res, err := q.Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, fmt.Errorf("update user %d: %w", user.ID, domain.ErrNotFound)
	}

	return user, nil
}

func (r *UserRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*User)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// Authenticate verifies the password against the stored hash. An unknown
// name and a wrong password are indistinguishable: both return nil.
func (r *UserRepo) Authenticate(ctx context.Context, name, password string) (*domain.User, error) {
	rec, err := r.RecordByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.CheckPassword(password) {
		return nil, nil
	}

	user := rec.toDomain()
	return &user, nil
}

func (r *UserRepo) RecordByID(ctx context.Context, id int) (*User, error) {
	rec := &User{ID: id}
	err := r.db.ModelContext(ctx, rec).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return rec, nil
}

func (r *UserRepo) RecordByName(ctx context.Context, name string) (*User, error) {
	rec := &User{}
	err := r.db.ModelContext(ctx, rec).
		Where(`"t"."name" = ?`, name).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by name: %w", err)
	}

	return rec, nil
}

func newUsers(recs []User) []domain.User {
	users := make([]domain.User, len(recs))
	for i := range recs {
		users[i] = recs[i].toDomain()
	}
	return users
}
