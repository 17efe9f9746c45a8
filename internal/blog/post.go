package blog

import (
	"context"
	"log/slog"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

// PostService wraps the post repository. Reads pass through; writes
// translate repository failures into typed service errors.
type PostService struct {
	repo domain.PostRepository
	log  *slog.Logger
}

func NewPostService(repo domain.PostRepository, log *slog.Logger) *PostService {
	return &PostService{
		repo: repo,
		log:  log,
	}
}

func (s *PostService) PostByID(ctx context.Context, id int) (*domain.Post, error) {
	return s.repo.ByID(ctx, id)
}

func (s *PostService) PostByAlias(ctx context.Context, alias string) (*domain.Post, error) {
	return s.repo.ByAlias(ctx, alias)
}

func (s *PostService) Posts(ctx context.Context) ([]domain.Post, error) {
	return s.repo.All(ctx)
}

func (s *PostService) PublishedPosts(ctx context.Context) ([]domain.Post, error) {
	return s.repo.Published(ctx)
}

func (s *PostService) PagePosts(ctx context.Context, categoryIDs []int) ([]domain.Post, error) {
	return s.repo.Pages(ctx, categoryIDs)
}

func (s *PostService) PostsByTag(ctx context.Context, tagID int) ([]domain.Post, error) {
	return s.repo.ByTagID(ctx, tagID)
}

func (s *PostService) PostWithRelations(ctx context.Context, id int) (*domain.Post, error) {
	return s.repo.WithRelations(ctx, id)
}

func (s *PostService) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.log.Error("failed to create post", "alias", post.Alias, "error", err)
		return nil, &CreateError{Entity: "post", Err: err}
	}

	return created, nil
}

func (s *PostService) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		s.log.Error("failed to update post", "id", post.ID, "error", err)
		return nil, &UpdateError{Entity: "post", Err: err}
	}

	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete post", "id", id, "error", err)
		return false, &DeleteError{Entity: "post", Err: err}
	}

	return deleted, nil
}

func (s *PostService) AddTag(ctx context.Context, postID, tagID int) error {
	if err := s.repo.AddTag(ctx, postID, tagID); err != nil {
		s.log.Error("failed to tag post", "postId", postID, "tagId", tagID, "error", err)
		return &UpdateError{Entity: "post", Err: err}
	}

	return nil
}

func (s *PostService) RemoveTag(ctx context.Context, postID, tagID int) (bool, error) {
	removed, err := s.repo.RemoveTag(ctx, postID, tagID)
	if err != nil {
		s.log.Error("failed to untag post", "postId", postID, "tagId", tagID, "error", err)
		return false, &UpdateError{Entity: "post", Err: err}
	}

	return removed, nil
}
