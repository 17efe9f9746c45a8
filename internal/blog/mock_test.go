package blog

import (
	"context"
	"io"
	"log/slog"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// mockPostRepository is a manual stub implementation of domain.PostRepository
type mockPostRepository struct {
	byIDFunc          func(ctx context.Context, id int) (*domain.Post, error)
	byAliasFunc       func(ctx context.Context, alias string) (*domain.Post, error)
	allFunc           func(ctx context.Context) ([]domain.Post, error)
	publishedFunc     func(ctx context.Context) ([]domain.Post, error)
	pagesFunc         func(ctx context.Context, categoryIDs []int) ([]domain.Post, error)
	byTagIDFunc       func(ctx context.Context, tagID int) ([]domain.Post, error)
	withRelationsFunc func(ctx context.Context, id int) (*domain.Post, error)
	createFunc        func(ctx context.Context, post *domain.Post) (*domain.Post, error)
	updateFunc        func(ctx context.Context, post *domain.Post) (*domain.Post, error)
	deleteFunc        func(ctx context.Context, id int) (bool, error)
	addTagFunc        func(ctx context.Context, postID, tagID int) error
	removeTagFunc     func(ctx context.Context, postID, tagID int) (bool, error)
}

func (m *mockPostRepository) ByID(ctx context.Context, id int) (*domain.Post, error) {
	if m.byIDFunc != nil {
		return m.byIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepository) ByAlias(ctx context.Context, alias string) (*domain.Post, error) {
	if m.byAliasFunc != nil {
		return m.byAliasFunc(ctx, alias)
	}
	return nil, nil
}

func (m *mockPostRepository) All(ctx context.Context) ([]domain.Post, error) {
	if m.allFunc != nil {
		return m.allFunc(ctx)
	}
	return nil, nil
}

func (m *mockPostRepository) Published(ctx context.Context) ([]domain.Post, error) {
	if m.publishedFunc != nil {
		return m.publishedFunc(ctx)
	}
	return nil, nil
}

func (m *mockPostRepository) Pages(ctx context.Context, categoryIDs []int) ([]domain.Post, error) {
	if m.pagesFunc != nil {
		return m.pagesFunc(ctx, categoryIDs)
	}
	return nil, nil
}

func (m *mockPostRepository) ByTagID(ctx context.Context, tagID int) ([]domain.Post, error) {
	if m.byTagIDFunc != nil {
		return m.byTagIDFunc(ctx, tagID)
	}
	return nil, nil
}

func (m *mockPostRepository) WithRelations(ctx context.Context, id int) (*domain.Post, error) {
	if m.withRelationsFunc != nil {
		return m.withRelationsFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, post)
	}
	return post, nil
}

func (m *mockPostRepository) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, post)
	}
	return post, nil
}

func (m *mockPostRepository) Delete(ctx context.Context, id int) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false, nil
}

func (m *mockPostRepository) AddTag(ctx context.Context, postID, tagID int) error {
	if m.addTagFunc != nil {
		return m.addTagFunc(ctx, postID, tagID)
	}
	return nil
}

func (m *mockPostRepository) RemoveTag(ctx context.Context, postID, tagID int) (bool, error) {
	if m.removeTagFunc != nil {
		return m.removeTagFunc(ctx, postID, tagID)
	}
	return false, nil
}

// mockUserRepository is a manual stub implementation of domain.UserRepository
type mockUserRepository struct {
	byIDFunc         func(ctx context.Context, id int) (*domain.User, error)
	byNameFunc       func(ctx context.Context, name string) (*domain.User, error)
	allFunc          func(ctx context.Context) ([]domain.User, error)
	withPostsFunc    func(ctx context.Context) ([]domain.User, error)
	createFunc       func(ctx context.Context, user *domain.User) (*domain.User, error)
	updateFunc       func(ctx context.Context, user *domain.User) (*domain.User, error)
	deleteFunc       func(ctx context.Context, id int) (bool, error)
	authenticateFunc func(ctx context.Context, name, password string) (*domain.User, error)
}

func (m *mockUserRepository) ByID(ctx context.Context, id int) (*domain.User, error) {
	if m.byIDFunc != nil {
		return m.byIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) ByName(ctx context.Context, name string) (*domain.User, error) {
	if m.byNameFunc != nil {
		return m.byNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockUserRepository) All(ctx context.Context) ([]domain.User, error) {
	if m.allFunc != nil {
		return m.allFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) WithPosts(ctx context.Context) ([]domain.User, error) {
	if m.withPostsFunc != nil {
		return m.withPostsFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id int) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false, nil
}

func (m *mockUserRepository) Authenticate(ctx context.Context, name, password string) (*domain.User, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, name, password)
	}
	return nil, nil
}
