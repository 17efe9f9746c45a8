package domain

import (
	"context"
	"errors"
)

// ErrNotFound signals a mutation against an id that does not exist.
// Lookup misses are not errors and come back as a nil entity instead.
var ErrNotFound = errors.New("not found")

// Repository is the capability set every entity repository implements.
//
// Create assigns the allocated id onto the caller's entity and returns the
// same object. Update replaces the whole stored record, nil optionals
// included, and fails with ErrNotFound for a missing id. Delete reports
// false for a missing id and reserves errors for backend failure.
type Repository[T any, ID comparable] interface {
	ByID(ctx context.Context, id ID) (*T, error)
	All(ctx context.Context) ([]T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, entity *T) (*T, error)
	Delete(ctx context.Context, id ID) (bool, error)
}

type PostRepository interface {
	Repository[Post, int]
	ByAlias(ctx context.Context, alias string) (*Post, error)
	// Published returns posts with a published timestamp and no category,
	// newest first. Posts in a category are pages, not blog entries.
	Published(ctx context.Context) ([]Post, error)
	// Pages returns posts whose category id is in the allow-list.
	Pages(ctx context.Context, categoryIDs []int) ([]Post, error)
	ByTagID(ctx context.Context, tagID int) ([]Post, error)
	// WithRelations loads a post together with its category, author and
	// tags, each flattened one level deep.
	WithRelations(ctx context.Context, id int) (*Post, error)
	AddTag(ctx context.Context, postID, tagID int) error
	RemoveTag(ctx context.Context, postID, tagID int) (bool, error)
}

type CategoryRepository interface {
	Repository[Category, int]
	ByAlias(ctx context.Context, alias string) (*Category, error)
	WithPosts(ctx context.Context) ([]Category, error)
}

type TagRepository interface {
	Repository[Tag, int]
	ByAlias(ctx context.Context, alias string) (*Tag, error)
	ByPostID(ctx context.Context, postID int) ([]Tag, error)
	WithPosts(ctx context.Context) ([]Tag, error)
}

type UserRepository interface {
	Repository[User, int]
	ByName(ctx context.Context, name string) (*User, error)
	// Authenticate returns nil for a wrong password and for an unknown
	// name alike; the two failures are indistinguishable to the caller.
	Authenticate(ctx context.Context, name, password string) (*User, error)
	WithPosts(ctx context.Context) ([]User, error)
}

type IconRepository interface {
	Repository[Icon, int]
	ByTitle(ctx context.Context, title string) (*Icon, error)
	ByURL(ctx context.Context, url string) (*Icon, error)
}
