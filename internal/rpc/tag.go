package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/gunlinux/gunlinux.ru/internal/blog"
)

// TagService provides RPC methods for managing tags.
type TagService struct {
	zenrpc.Service
	tags *blog.TagService
}

func NewTagService(tags *blog.TagService) *TagService {
	return &TagService{tags: tags}
}

// List retrieves all tags sorted by title.
//
//zenrpc:return list of tags
//zenrpc:500 internal server error
func (s *TagService) List(ctx context.Context) ([]Tag, error) {
	tags, err := s.tags.Tags(ctx)
	if err != nil {
		return nil, err
	}

	return NewTags(tags), nil
}

// ByID retrieves a single tag by ID.
//
//zenrpc:id tag numeric ID
//zenrpc:return tag
//zenrpc:400 id must be positive
//zenrpc:404 tag not found
//zenrpc:500 internal server error
func (s *TagService) ByID(ctx context.Context, req IDRequest) (*Tag, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	tag, err := s.tags.TagByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if tag == nil {
		return nil, zenrpc.NewStringError(404, "tag not found")
	}

	out := NewTag(*tag)
	return &out, nil
}

// Add creates a tag and returns it with the assigned ID.
//
//zenrpc:return created tag
//zenrpc:500 internal server error
func (s *TagService) Add(ctx context.Context, req TagAddRequest) (*Tag, error) {
	created, err := s.tags.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}

	out := NewTag(*created)
	return &out, nil
}

// Update replaces a tag by ID.
//
//zenrpc:return updated tag
//zenrpc:400 id must be positive
//zenrpc:404 tag not found
//zenrpc:500 internal server error
func (s *TagService) Update(ctx context.Context, req TagUpdateRequest) (*Tag, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	updated, err := s.tags.Update(ctx, req.ToModel())
	if err != nil {
		if blog.IsNotFound(err) {
			return nil, zenrpc.NewStringError(404, "tag not found")
		}
		return nil, err
	}

	out := NewTag(*updated)
	return &out, nil
}

// Delete removes a tag by ID, detaching it from all posts.
//
//zenrpc:id tag numeric ID
//zenrpc:return true when the tag existed
//zenrpc:400 id must be positive
//zenrpc:500 internal server error
func (s *TagService) Delete(ctx context.Context, req IDRequest) (bool, error) {
	if req.ID <= 0 {
		return false, zenrpc.NewStringError(400, "id must be positive")
	}

	return s.tags.Delete(ctx, req.ID)
}
