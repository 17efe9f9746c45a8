package blog

import (
	"context"
	"log/slog"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

type UserService struct {
	repo domain.UserRepository
	log  *slog.Logger
}

func NewUserService(repo domain.UserRepository, log *slog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

func (s *UserService) UserByID(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.ByID(ctx, id)
}

func (s *UserService) UserByName(ctx context.Context, name string) (*domain.User, error) {
	return s.repo.ByName(ctx, name)
}

func (s *UserService) Users(ctx context.Context) ([]domain.User, error) {
	return s.repo.All(ctx)
}

func (s *UserService) UsersWithPosts(ctx context.Context) ([]domain.User, error) {
	return s.repo.WithPosts(ctx)
}

func (s *UserService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.log.Error("failed to create user", "name", user.Name, "error", err)
		return nil, &CreateError{Entity: "user", Err: err}
	}

	return created, nil
}

func (s *UserService) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		s.log.Error("failed to update user", "id", user.ID, "error", err)
		return nil, &UpdateError{Entity: "user", Err: err}
	}

	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete user", "id", id, "error", err)
		return false, &DeleteError{Entity: "user", Err: err}
	}

	return deleted, nil
}

// Authenticate returns the user for correct credentials and nil for both a
// wrong password and an unknown name. It never surfaces which one failed.
func (s *UserService) Authenticate(ctx context.Context, name, password string) (*domain.User, error) {
	return s.repo.Authenticate(ctx, name, password)
}
