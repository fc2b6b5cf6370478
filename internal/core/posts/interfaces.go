package posts

import "context"

// Service defines the business logic interface for posts.
// Validates input, stores attachments, and delegates to the Repository.
type Service interface {
	// CreatePost validates the request, persists any uploaded attachment,
	// and creates the post. Returns a ValidationError when title or
	// content is empty after trimming.
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// ListPosts returns every stored post with comments attached
	ListPosts(ctx context.Context) ([]*Post, error)

	// GetPost retrieves a single post by id
	GetPost(ctx context.Context, id string) (*Post, error)

	// LikePost increments the post's like counter by exactly one
	LikePost(ctx context.Context, id string) (*Post, error)

	// CommentOnPost appends a comment to the end of the post's thread.
	// Empty text is accepted and stored as-is.
	CommentOnPost(ctx context.Context, id, text string) (*Post, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post and assigns its identifier
	Create(ctx context.Context, post *Post) error

	// List returns all posts in the order the store yields them
	List(ctx context.Context) ([]*Post, error)

	// GetByID retrieves a post by id, returning ErrNotFound if unknown
	GetByID(ctx context.Context, id string) (*Post, error)

	// IncrementLikes adds exactly 1 to the post's like counter as an
	// atomic read-modify-write; concurrent increments are never lost.
	// Returns the updated post or ErrNotFound.
	IncrementLikes(ctx context.Context, id string) (*Post, error)

	// AddComment appends a comment to the post's thread; concurrent
	// appends must all survive. Returns the updated post or ErrNotFound.
	AddComment(ctx context.Context, id, text string) (*Post, error)
}
