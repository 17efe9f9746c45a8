package blog

import (
	"context"
	"log/slog"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

type IconService struct {
	repo domain.IconRepository
	log  *slog.Logger
}

func NewIconService(repo domain.IconRepository, log *slog.Logger) *IconService {
	return &IconService{
		repo: repo,
		log:  log,
	}
}

func (s *IconService) IconByID(ctx context.Context, id int) (*domain.Icon, error) {
	return s.repo.ByID(ctx, id)
}

func (s *IconService) IconByTitle(ctx context.Context, title string) (*domain.Icon, error) {
	return s.repo.ByTitle(ctx, title)
}

func (s *IconService) IconByURL(ctx context.Context, url string) (*domain.Icon, error) {
	return s.repo.ByURL(ctx, url)
}

func (s *IconService) Icons(ctx context.Context) ([]domain.Icon, error) {
	return s.repo.All(ctx)
}

func (s *IconService) Create(ctx context.Context, icon *domain.Icon) (*domain.Icon, error) {
	created, err := s.repo.Create(ctx, icon)
	if err != nil {
		s.log.Error("failed to create icon", "title", icon.Title, "error", err)
		return nil, &CreateError{Entity: "icon", Err: err}
	}

	return created, nil
}

func (s *IconService) Update(ctx context.Context, icon *domain.Icon) (*domain.Icon, error) {
	updated, err := s.repo.Update(ctx, icon)
	if err != nil {
		s.log.Error("failed to update icon", "id", icon.ID, "error", err)
		return nil, &UpdateError{Entity: "icon", Err: err}
	}

	return updated, nil
}

func (s *IconService) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete icon", "id", id, "error", err)
		return false, &DeleteError{Entity: "icon", Err: err}
	}

	return deleted, nil
}
