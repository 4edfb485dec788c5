package ports

import (
	"context"

	"github.com/lumina/blog-studio/internal/core/domain"
)

// ContentRepository persists the post and user collections.
type ContentRepository interface {
	// ListPosts returns posts newest first, seeding the demonstration post on first use.
	ListPosts(ctx context.Context) ([]domain.Post, error)
	// CreatePost prepends post. Field validation is the caller's job.
	CreatePost(ctx context.Context, post domain.Post) error
	// DeletePost removes the post with the given id; unknown ids are a no-op.
	DeletePost(ctx context.Context, id string) error
	// ListUsers returns stored users, or the bootstrap admin when none are stored.
	ListUsers(ctx context.Context) ([]domain.User, error)
	// RegisterUser appends user. Duplicate e-mails are the caller's job.
	RegisterUser(ctx context.Context, user domain.User) error
}

// SessionManager holds the single current-user snapshot.
type SessionManager interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	// SetCurrentUser stores a copy of user; nil clears the session.
	SetCurrentUser(ctx context.Context, user *domain.User) error
}

// CommentRepository persists per-post comment lists.
type CommentRepository interface {
	ListComments(ctx context.Context, postID string) ([]domain.Comment, error)
	AddComment(ctx context.Context, comment domain.Comment) error
	DeleteComments(ctx context.Context, postID string) error
}
