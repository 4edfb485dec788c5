package ports

import (
	"context"

	"github.com/lumina/blog-studio/internal/core/domain"
)

// ListPostsFilter carries the home page search parameters.
type ListPostsFilter struct {
	Query    string // optional: case-insensitive match on title or excerpt
	Category string // optional: empty or "All" = no filter
}

// ListPostsResult is returned by List. Featured is set only when no filter
// is active, in which case it is not repeated in Posts.
type ListPostsResult struct {
	Featured *domain.Post
	Posts    []domain.Post
}

// PublishPostInput carries everything the editor submits on publish.
type PublishPostInput struct {
	Title         string
	Content       string
	Author        string
	AuthorSocials *domain.AuthorSocials
	Category      string // empty = Artificial Intelligence
	CoverImage    string // empty = default placeholder
	Tags          []string
	Sources       []domain.Source
	// Actor is the authenticated user publishing the post.
	Actor *domain.User
}

// CategorySummary describes one category for the categories page.
type CategorySummary struct {
	Name        domain.Category
	Description string
	PostCount   int
}

// PostService defines use-case operations for posts and their comments.
type PostService interface {
	List(ctx context.Context, filter ListPostsFilter) (*ListPostsResult, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Render(ctx context.Context, id string) (string, error)
	Publish(ctx context.Context, input PublishPostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string, actor *domain.User) error
	Categories(ctx context.Context) ([]CategorySummary, error)
	Comments(ctx context.Context, postID string) ([]domain.Comment, error)
	AddComment(ctx context.Context, postID string, actor *domain.User, text string) (*domain.Comment, error)
}
