package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/gunlinux/gunlinux.ru/internal/blog"
)

// CategoryService provides RPC methods for managing categories.
type CategoryService struct {
	zenrpc.Service
	categories *blog.CategoryService
}

func NewCategoryService(categories *blog.CategoryService) *CategoryService {
	return &CategoryService{categories: categories}
}

// List retrieves all categories sorted by ID.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	categories, err := s.categories.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return NewCategories(categories), nil
}

// ByID retrieves a single category by ID.
//
//zenrpc:id category numeric ID
//zenrpc:return category
//zenrpc:400 id must be positive
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *CategoryService) ByID(ctx context.Context, req IDRequest) (*Category, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	category, err := s.categories.CategoryByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if category == nil {
		return nil, zenrpc.NewStringError(404, "category not found")
	}

	out := NewCategory(*category)
	return &out, nil
}

// Add creates a category and returns it with the assigned ID.
//
//zenrpc:return created category
//zenrpc:500 internal server error
func (s *CategoryService) Add(ctx context.Context, req CategoryAddRequest) (*Category, error) {
	created, err := s.categories.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}

	out := NewCategory(*created)
	return &out, nil
}

// Update replaces a category by ID. An empty template clears the stored value.
//
//zenrpc:return updated category
//zenrpc:400 id must be positive
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *CategoryService) Update(ctx context.Context, req CategoryUpdateRequest) (*Category, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	updated, err := s.categories.Update(ctx, req.ToModel())
	if err != nil {
		if blog.IsNotFound(err) {
			return nil, zenrpc.NewStringError(404, "category not found")
		}
		return nil, err
	}

	out := NewCategory(*updated)
	return &out, nil
}

// Delete removes a category by ID.
//
//zenrpc:id category numeric ID
//zenrpc:return true when the category existed
//zenrpc:400 id must be positive
//zenrpc:500 internal server error
func (s *CategoryService) Delete(ctx context.Context, req IDRequest) (bool, error) {
	if req.ID <= 0 {
		return false, zenrpc.NewStringError(400, "id must be positive")
	}

	return s.categories.Delete(ctx, req.ID)
}
