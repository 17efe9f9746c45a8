package blog

import (
	"context"
	"log/slog"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

type TagService struct {
	repo domain.TagRepository
	log  *slog.Logger
}

func NewTagService(repo domain.TagRepository, log *slog.Logger) *TagService {
	return &TagService{
		repo: repo,
		log:  log,
	}
}

func (s *TagService) TagByID(ctx context.Context, id int) (*domain.Tag, error) {
	return s.repo.ByID(ctx, id)
}

func (s *TagService) TagByAlias(ctx context.Context, alias string) (*domain.Tag, error) {
	return s.repo.ByAlias(ctx, alias)
}

func (s *TagService) Tags(ctx context.Context) ([]domain.Tag, error) {
	return s.repo.All(ctx)
}

func (s *TagService) TagsByPost(ctx context.Context, postID int) ([]domain.Tag, error) {
	return s.repo.ByPostID(ctx, postID)
}

func (s *TagService) TagsWithPosts(ctx context.Context) ([]domain.Tag, error) {
	return s.repo.WithPosts(ctx)
}

func (s *TagService) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	created, err := s.repo.Create(ctx, tag)
	if err != nil {
		s.log.Error("failed to create tag", "alias", tag.Alias, "error", err)
		return nil, &CreateError{Entity: "tag", Err: err}
	}

	return created, nil
}

func (s *TagService) Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	updated, err := s.repo.Update(ctx, tag)
	if err != nil {
		s.log.Error("failed to update tag", "id", tag.ID, "error", err)
		return nil, &UpdateError{Entity: "tag", Err: err}
	}

	return updated, nil
}

func (s *TagService) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete tag", "id", id, "error", err)
		return false, &DeleteError{Entity: "tag", Err: err}
	}

	return deleted, nil
}
