package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/gunlinux/gunlinux.ru/internal/blog"
)

// UserService provides RPC methods for managing users. Passwords are
// accepted in plain form and hashed by the storage layer; they are
// never returned.
type UserService struct {
	zenrpc.Service
	users *blog.UserService
}

func NewUserService(users *blog.UserService) *UserService {
	return &UserService{users: users}
}

// List retrieves all users sorted by ID.
//
//zenrpc:return list of users
//zenrpc:500 internal server error
func (s *UserService) List(ctx context.Context) ([]User, error) {
	users, err := s.users.Users(ctx)
	if err != nil {
		return nil, err
	}

	return NewUsers(users), nil
}

// ByID retrieves a single user by ID.
//
//zenrpc:id user numeric ID
//zenrpc:return user
//zenrpc:400 id must be positive
//zenrpc:404 user not found
//zenrpc:500 internal server error
func (s *UserService) ByID(ctx context.Context, req IDRequest) (*User, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	user, err := s.users.UserByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, zenrpc.NewStringError(404, "user not found")
	}

	out := NewUser(*user)
	return &out, nil
}

// Add creates a user and returns it with the assigned ID.
//
//zenrpc:return created user
//zenrpc:400 name already taken
//zenrpc:500 internal server error
func (s *UserService) Add(ctx context.Context, req UserAddRequest) (*User, error) {
	existing, err := s.users.UserByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, zenrpc.NewStringError(400, "name already taken")
	}

	created, err := s.users.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}

	out := NewUser(*created)
	return &out, nil
}

// Update replaces a user by ID. A supplied password is rehashed; an empty
// one keeps the stored hash. The creation timestamp is carried over from
// the stored user.
//
//zenrpc:return updated user
//zenrpc:400 id must be positive
//zenrpc:404 user not found
//zenrpc:500 internal server error
func (s *UserService) Update(ctx context.Context, req UserUpdateRequest) (*User, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	existing, err := s.users.UserByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, zenrpc.NewStringError(404, "user not found")
	}

	model := req.ToModel()
	model.CreatedOn = existing.CreatedOn

	updated, err := s.users.Update(ctx, model)
	if err != nil {
		if blog.IsNotFound(err) {
			return nil, zenrpc.NewStringError(404, "user not found")
		}
		return nil, err
	}

	out := NewUser(*updated)
	return &out, nil
}

// Delete removes a user by ID.
//
//zenrpc:id user numeric ID
//zenrpc:return true when the user existed
//zenrpc:400 id must be positive
//zenrpc:500 internal server error
func (s *UserService) Delete(ctx context.Context, req IDRequest) (bool, error) {
	if req.ID <= 0 {
		return false, zenrpc.NewStringError(400, "id must be positive")
	}

	return s.users.Delete(ctx, req.ID)
}
