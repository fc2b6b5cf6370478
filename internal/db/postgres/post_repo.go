package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"socialposts/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table.
// Assigns a fresh identifier and initializes likes to 0.
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	post.ID = uuid.New().String()

	query := `
		INSERT INTO posts (id, title, content, attachment_ref, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING likes, created_at
	`

	var attachmentRef sql.NullString
	if post.AttachmentRef != nil {
		attachmentRef.String = *post.AttachmentRef
		attachmentRef.Valid = true
	}

	err := r.db.QueryRowContext(
		ctx, query,
		post.ID, post.Title, post.Content, attachmentRef,
	).Scan(&post.Likes, &post.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	if post.Comments == nil {
		post.Comments = []posts.Comment{}
	}

	return nil
}

// List returns all posts with their comment threads attached.
// Posts come back in creation order; that matches what the store has
// always yielded but is not part of the contract.
func (r *postgresPostRepo) List(ctx context.Context) ([]*posts.Post, error) {
	query := `
		SELECT id, title, content, attachment_ref, likes, created_at
		FROM posts
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var result []*posts.Post
	byID := make(map[string]*posts.Post)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
		byID[post.ID] = post
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	if len(result) == 0 {
		return []*posts.Post{}, nil
	}

	// Attach comment threads in one pass, in arrival order
	commentRows, err := r.db.QueryContext(ctx, `
		SELECT post_id, text
		FROM comments
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var postID, text string
		if err := commentRows.Scan(&postID, &text); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		if post, ok := byID[postID]; ok {
			post.Comments = append(post.Comments, posts.Comment{Text: text})
		}
	}
	if err := commentRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}

// GetByID retrieves a post and its comments by id
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		// Identifiers are always UUIDs, so a malformed id cannot match
		return nil, posts.ErrNotFound
	}

	query := `
		SELECT id, title, content, attachment_ref, likes, created_at
		FROM posts
		WHERE id = $1
	`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	if err := r.loadComments(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// IncrementLikes adds exactly 1 to the post's like counter.
// The increment runs inside the UPDATE itself, so concurrent likes on
// the same post serialize in the database and none are lost.
func (r *postgresPostRepo) IncrementLikes(ctx context.Context, id string) (*posts.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, posts.ErrNotFound
	}

	query := `
		UPDATE posts
		SET likes = likes + 1
		WHERE id = $1
		RETURNING id, title, content, attachment_ref, likes, created_at
	`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to increment likes: %w", err)
	}

	if err := r.loadComments(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// AddComment appends a comment to the post's thread.
// Each comment is an independent INSERT keyed by a serial id, so
// concurrent appends on the same post all survive in arrival order.
func (r *postgresPostRepo) AddComment(ctx context.Context, id, text string) (*posts.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, posts.ErrNotFound
	}

	query := `
		INSERT INTO comments (post_id, text, created_at)
		VALUES ($1, $2, NOW())
	`

	if _, err := r.db.ExecContext(ctx, query, id, text); err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return nil, posts.ErrNotFound
		}
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return r.GetByID(ctx, id)
}

// loadComments attaches the post's comment thread in arrival order
func (r *postgresPostRepo) loadComments(ctx context.Context, post *posts.Post) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT text
		FROM comments
		WHERE post_id = $1
		ORDER BY id
	`, post.ID)
	if err != nil {
		return fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	post.Comments = []posts.Comment{}
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return fmt.Errorf("failed to scan comment: %w", err)
		}
		post.Comments = append(post.Comments, posts.Comment{Text: text})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating comments: %w", err)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanPost scans a posts row into a Post
func scanPost(row scanner) (*posts.Post, error) {
	var post posts.Post
	var attachmentRef sql.NullString

	err := row.Scan(
		&post.ID, &post.Title, &post.Content,
		&attachmentRef, &post.Likes, &post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if attachmentRef.Valid {
		post.AttachmentRef = &attachmentRef.String
	}
	post.Comments = []posts.Comment{}

	return &post, nil
}
