package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/gunlinux/gunlinux.ru/internal/blog"
)

// IconService provides RPC methods for managing footer icons.
type IconService struct {
	zenrpc.Service
	icons *blog.IconService
}

func NewIconService(icons *blog.IconService) *IconService {
	return &IconService{icons: icons}
}

// List retrieves all icons sorted by title.
//
//zenrpc:return list of icons
//zenrpc:500 internal server error
func (s *IconService) List(ctx context.Context) ([]Icon, error) {
	icons, err := s.icons.Icons(ctx)
	if err != nil {
		return nil, err
	}

	return NewIcons(icons), nil
}

// ByID retrieves a single icon by ID.
//
//zenrpc:id icon numeric ID
//zenrpc:return icon
//zenrpc:400 id must be positive
//zenrpc:404 icon not found
//zenrpc:500 internal server error
func (s *IconService) ByID(ctx context.Context, req IDRequest) (*Icon, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	icon, err := s.icons.IconByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if icon == nil {
		return nil, zenrpc.NewStringError(404, "icon not found")
	}

	out := NewIcon(*icon)
	return &out, nil
}

// Add creates an icon and returns it with the assigned ID.
//
//zenrpc:return created icon
//zenrpc:500 internal server error
func (s *IconService) Add(ctx context.Context, req IconAddRequest) (*Icon, error) {
	created, err := s.icons.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}

	out := NewIcon(*created)
	return &out, nil
}

// Update replaces an icon by ID.
//
//zenrpc:return updated icon
//zenrpc:400 id must be positive
//zenrpc:404 icon not found
//zenrpc:500 internal server error
func (s *IconService) Update(ctx context.Context, req IconUpdateRequest) (*Icon, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	updated, err := s.icons.Update(ctx, req.ToModel())
	if err != nil {
		if blog.IsNotFound(err) {
			return nil, zenrpc.NewStringError(404, "icon not found")
		}
		return nil, err
	}

	out := NewIcon(*updated)
	return &out, nil
}

// Delete removes an icon by ID.
//
//zenrpc:id icon numeric ID
//zenrpc:return true when the icon existed
//zenrpc:400 id must be positive
//zenrpc:500 internal server error
func (s *IconService) Delete(ctx context.Context, req IDRequest) (bool, error) {
	if req.ID <= 0 {
		return false, zenrpc.NewStringError(400, "id must be positive")
	}

	return s.icons.Delete(ctx, req.ID)
}
