package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"socialposts/internal/core/attachments"
)

type postService struct {
	repo  Repository
	store attachments.Store
}

// NewPostService creates a new post service.
// store can be nil when attachment uploads are not needed (e.g., in tests).
func NewPostService(repo Repository, store attachments.Store) Service {
	return &postService{
		repo:  repo,
		store: store,
	}
}

// CreatePost creates a new post
// Flow:
// 1. Validate title and content
// 2. If an attachment was uploaded, persist it and record the reference
// 3. Insert the post with likes=0 and an empty comment thread
//
// If the insert fails after the attachment was stored, the blob is left
// behind; the store performs no garbage collection of orphans.
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	post := &Post{
		Title:    strings.TrimSpace(req.Title),
		Content:  strings.TrimSpace(req.Content),
		Comments: []Comment{},
	}

	if req.Attachment != nil {
		if s.store == nil {
			return nil, fmt.Errorf("attachment uploaded but no attachment store configured")
		}
		ref, err := s.store.Save(ctx, req.Attachment.Data, req.Attachment.OriginalName, req.Attachment.FieldName)
		if err != nil {
			return nil, fmt.Errorf("failed to store attachment: %w", err)
		}
		post.AttachmentRef = &ref
	}

	if err := s.repo.Create(ctx, post); err != nil {
		if post.AttachmentRef != nil {
			slog.Warn("[POST-CREATE] post insert failed, attachment left orphaned",
				"attachmentRef", *post.AttachmentRef)
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// ListPosts returns every stored post
func (s *postService) ListPosts(ctx context.Context) ([]*Post, error) {
	return s.repo.List(ctx)
}

// GetPost retrieves a single post by id
func (s *postService) GetPost(ctx context.Context, id string) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// LikePost increments the post's like counter by exactly one.
// The repository performs the increment atomically, so concurrent likes
// on the same post are never lost.
func (s *postService) LikePost(ctx context.Context, id string) (*Post, error) {
	return s.repo.IncrementLikes(ctx, id)
}

// CommentOnPost appends a comment to the end of the post's thread.
// Comment text is deliberately not validated: an empty text is accepted
// and stored as-is.
func (s *postService) CommentOnPost(ctx context.Context, id, text string) (*Post, error) {
	return s.repo.AddComment(ctx, id, text)
}

// validateCreateRequest checks the required fields of a create request
func validateCreateRequest(req CreatePostRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return NewValidationError("content", "content is required")
	}
	return nil
}
