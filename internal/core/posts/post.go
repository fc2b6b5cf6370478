package posts

import (
	"time"
)

// Post represents a stored post with its embedded comment thread.
// AttachmentRef names a blob held by the attachment store; it is set at
// creation and never changes afterwards (there is no update operation).
type Post struct {
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	AttachmentRef *string   `json:"attachmentRef,omitempty" db:"attachment_ref"`
	ID            string    `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Content       string    `json:"content" db:"content"`
	Comments      []Comment `json:"comments"`
	Likes         int       `json:"likes" db:"likes"`
}

// Comment is a text entry owned by its parent post. Comments have no
// independent lifecycle: they are appended to a post's thread and live
// with it.
type Comment struct {
	Text string `json:"text"`
}

// CreatePostRequest represents input for creating a new post.
// Attachment is nil when the client sent no file.
type CreatePostRequest struct {
	Attachment *AttachmentUpload
	Title      string
	Content    string
}

// AttachmentUpload is an uploaded file as received at the API boundary,
// before the attachment store has assigned it a reference.
type AttachmentUpload struct {
	OriginalName string
	FieldName    string
	Data         []byte
}
