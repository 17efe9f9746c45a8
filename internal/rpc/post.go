package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/gunlinux/gunlinux.ru/internal/blog"
)

//go:generate zenrpc

// PostService provides RPC methods for managing posts.
type PostService struct {
	zenrpc.Service
	posts *blog.PostService
}

func NewPostService(posts *blog.PostService) *PostService {
	return &PostService{posts: posts}
}

// List retrieves all posts, drafts included, sorted by ID.
//
//zenrpc:return list of post summaries
//zenrpc:500 internal server error
func (s *PostService) List(ctx context.Context) ([]PostSummary, error) {
	posts, err := s.posts.Posts(ctx)
	if err != nil {
		return nil, err
	}

	return NewPostSummaries(posts), nil
}

// ByID retrieves a single post by ID with full content, category and tags.
//
//zenrpc:id post numeric ID
//zenrpc:return post with full content
//zenrpc:400 id must be positive
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *PostService) ByID(ctx context.Context, req IDRequest) (*Post, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	post, err := s.posts.PostWithRelations(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if post == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}

	out := NewPost(*post)
	return &out, nil
}

// Add creates a post and returns it with the assigned ID.
//
//zenrpc:return created post
//zenrpc:500 internal server error
func (s *PostService) Add(ctx context.Context, req PostAddRequest) (*Post, error) {
	created, err := s.posts.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}

	out := NewPost(*created)
	return &out, nil
}

// Update replaces a post by ID. Empty optional fields clear the stored
// values; the creation timestamp is carried over from the stored post.
//
//zenrpc:return updated post
//zenrpc:400 id must be positive
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *PostService) Update(ctx context.Context, req PostUpdateRequest) (*Post, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	existing, err := s.posts.PostByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}

	model := req.ToModel()
	model.CreatedOn = existing.CreatedOn

	updated, err := s.posts.Update(ctx, model)
	if err != nil {
		if blog.IsNotFound(err) {
			return nil, zenrpc.NewStringError(404, "post not found")
		}
		return nil, err
	}

	out := NewPost(*updated)
	return &out, nil
}

// Delete removes a post by ID.
//
//zenrpc:id post numeric ID
//zenrpc:return true when the post existed
//zenrpc:400 id must be positive
//zenrpc:500 internal server error
func (s *PostService) Delete(ctx context.Context, req IDRequest) (bool, error) {
	if req.ID <= 0 {
		return false, zenrpc.NewStringError(400, "id must be positive")
	}

	return s.posts.Delete(ctx, req.ID)
}

// TagPost attaches a tag to a post. Attaching an already attached tag is a no-op.
//
//zenrpc:500 internal server error
func (s *PostService) TagPost(ctx context.Context, req PostTagRequest) error {
	return s.posts.AddTag(ctx, req.PostID, req.TagID)
}

// UntagPost detaches a tag from a post.
//
//zenrpc:return true when the association existed
//zenrpc:500 internal server error
func (s *PostService) UntagPost(ctx context.Context, req PostTagRequest) (bool, error) {
	return s.posts.RemoveTag(ctx, req.PostID, req.TagID)
}
