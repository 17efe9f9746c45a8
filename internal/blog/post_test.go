package blog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

func TestPostServiceReadsPassThrough(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	want := []domain.Post{
		{ID: 1, PageTitle: "first", Alias: "first", PublishedOn: &now},
		{ID: 2, PageTitle: "second", Alias: "second", PublishedOn: &now},
	}

	repo := &mockPostRepository{
		publishedFunc: func(ctx context.Context) ([]domain.Post, error) {
			return want, nil
		},
		byAliasFunc: func(ctx context.Context, alias string) (*domain.Post, error) {
			if alias == "first" {
				return &want[0], nil
			}
			return nil, nil
		},
	}
	service := NewPostService(repo, noOpLogger())

	posts, err := service.PublishedPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, posts)

	post, err := service.PostByAlias(ctx, "first")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, 1, post.ID)

	// a miss is not an error
	missing, err := service.PostByAlias(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostServiceCreateWrapsFailure(t *testing.T) {
	ctx := context.Background()
	repoErr := errors.New("insert failed")

	repo := &mockPostRepository{
		createFunc: func(ctx context.Context, post *domain.Post) (*domain.Post, error) {
			return nil, repoErr
		},
	}
	service := NewPostService(repo, noOpLogger())

	_, err := service.Create(ctx, &domain.Post{PageTitle: "x", Alias: "x"})
	require.Error(t, err)

	var createErr *CreateError
	require.ErrorAs(t, err, &createErr)
	assert.Equal(t, "post", createErr.Entity)
	assert.ErrorIs(t, err, repoErr)
}

func TestPostServiceUpdateKeepsNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mockPostRepository{
		updateFunc: func(ctx context.Context, post *domain.Post) (*domain.Post, error) {
			return nil, domain.ErrNotFound
		},
	}
	service := NewPostService(repo, noOpLogger())

	_, err := service.Update(ctx, &domain.Post{ID: 42})
	require.Error(t, err)

	var updateErr *UpdateError
	require.ErrorAs(t, err, &updateErr)
	// the sentinel survives the wrapping so callers can map it to 404
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, IsNotFound(err))
}

func TestPostServiceDelete(t *testing.T) {
	ctx := context.Background()

	repo := &mockPostRepository{
		deleteFunc: func(ctx context.Context, id int) (bool, error) {
			return id == 1, nil
		},
	}
	service := NewPostService(repo, noOpLogger())

	deleted, err := service.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = service.Delete(ctx, 2)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPostServiceDeleteWrapsFailure(t *testing.T) {
	ctx := context.Background()
	repoErr := errors.New("connection lost")

	repo := &mockPostRepository{
		deleteFunc: func(ctx context.Context, id int) (bool, error) {
			return false, repoErr
		},
	}
	service := NewPostService(repo, noOpLogger())

	_, err := service.Delete(ctx, 1)
	var deleteErr *DeleteError
	require.ErrorAs(t, err, &deleteErr)
	assert.Equal(t, "post", deleteErr.Entity)
}

func TestPostServiceTagOperations(t *testing.T) {
	ctx := context.Background()
	repoErr := errors.New("fk violation")

	repo := &mockPostRepository{
		addTagFunc: func(ctx context.Context, postID, tagID int) error {
			if tagID == 99 {
				return repoErr
			}
			return nil
		},
		removeTagFunc: func(ctx context.Context, postID, tagID int) (bool, error) {
			return tagID == 1, nil
		},
	}
	service := NewPostService(repo, noOpLogger())

	require.NoError(t, service.AddTag(ctx, 1, 1))

	err := service.AddTag(ctx, 1, 99)
	var updateErr *UpdateError
	require.ErrorAs(t, err, &updateErr)

	removed, err := service.RemoveTag(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = service.RemoveTag(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, removed)
}
