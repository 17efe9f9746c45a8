package blog

import (
	"context"
	"log/slog"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

type CategoryService struct {
	repo domain.CategoryRepository
	log  *slog.Logger
}

func NewCategoryService(repo domain.CategoryRepository, log *slog.Logger) *CategoryService {
	return &CategoryService{
		repo: repo,
		log:  log,
	}
}

func (s *CategoryService) CategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	return s.repo.ByID(ctx, id)
}

func (s *CategoryService) CategoryByAlias(ctx context.Context, alias string) (*domain.Category, error) {
	return s.repo.ByAlias(ctx, alias)
}

func (s *CategoryService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.All(ctx)
}

func (s *CategoryService) CategoriesWithPosts(ctx context.Context) ([]domain.Category, error) {
	return s.repo.WithPosts(ctx)
}

func (s *CategoryService) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	created, err := s.repo.Create(ctx, category)
	if err != nil {
		s.log.Error("failed to create category", "alias", category.Alias, "error", err)
		return nil, &CreateError{Entity: "category", Err: err}
	}

	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	updated, err := s.repo.Update(ctx, category)
	if err != nil {
		s.log.Error("failed to update category", "id", category.ID, "error", err)
		return nil, &UpdateError{Entity: "category", Err: err}
	}

	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete category", "id", id, "error", err)
		return false, &DeleteError{Entity: "category", Err: err}
	}

	return deleted, nil
}
