package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/lumina/blog-studio/internal/core/domain"
	"github.com/lumina/blog-studio/internal/core/ports"
)

// CommentRepository stores one JSON array of comments per post, newest first.
type CommentRepository struct {
	store ports.KeyValueStore
	ns    keyspace
	mu    sync.Mutex
}

func NewCommentRepository(store ports.KeyValueStore, namespace string) *CommentRepository {
	return &CommentRepository{store: store, ns: keyspace(namespace)}
}

func (r *CommentRepository) key(postID string) string {
	return r.ns.key(commentsPrefix + postID)
}

func (r *CommentRepository) ListComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(ctx, postID)
}

func (r *CommentRepository) list(ctx context.Context, postID string) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	if _, err := load(ctx, r.store, r.key(postID), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) AddComment(ctx context.Context, comment domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comments, err := r.list(ctx, comment.PostID)
	if err != nil {
		return err
	}
	return save(ctx, r.store, r.key(comment.PostID), append([]domain.Comment{comment}, comments...))
}

func (r *CommentRepository) DeleteComments(ctx context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, r.key(postID)); err != nil {
		return fmt.Errorf("delete comments for %s: %w", postID, err)
	}
	return nil
}
