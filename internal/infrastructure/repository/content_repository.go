package repository

import (
	"context"
	"sync"

	"github.com/lumina/blog-studio/internal/core/domain"
	"github.com/lumina/blog-studio/internal/core/ports"
)

// Options configures a ContentRepository.
type Options struct {
	// Namespace prefixes every key; empty keeps the bare key names.
	Namespace string
	// BootstrapAdmin is returned by ListUsers while no users are stored.
	BootstrapAdmin domain.User
}

// ContentRepository stores posts and users as two JSON arrays.
type ContentRepository struct {
	store ports.KeyValueStore
	ns    keyspace
	admin domain.User

	// mu serializes read-modify-write cycles within this process.
	mu sync.Mutex
}

func NewContentRepository(store ports.KeyValueStore, opts Options) *ContentRepository {
	admin := opts.BootstrapAdmin
	if admin.Role == "" {
		admin.Role = domain.RoleAdmin
	}
	return &ContentRepository{store: store, ns: keyspace(opts.Namespace), admin: admin}
}

func (r *ContentRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listPosts(ctx)
}

// listPosts must be called with r.mu held.
func (r *ContentRepository) listPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	found, err := load(ctx, r.store, r.ns.key(postsKey), &posts)
	if err != nil {
		return nil, err
	}
	if !found {
		posts = seedPosts()
		if err := save(ctx, r.store, r.ns.key(postsKey), posts); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

func (r *ContentRepository) CreatePost(ctx context.Context, post domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.listPosts(ctx)
	if err != nil {
		return err
	}
	updated := make([]domain.Post, 0, len(posts)+1)
	updated = append(updated, post)
	updated = append(updated, posts...)
	return save(ctx, r.store, r.ns.key(postsKey), updated)
}

func (r *ContentRepository) DeletePost(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.listPosts(ctx)
	if err != nil {
		return err
	}
	updated := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			updated = append(updated, p)
		}
	}
	return save(ctx, r.store, r.ns.key(postsKey), updated)
}

func (r *ContentRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listUsers(ctx)
}

// listUsers must be called with r.mu held.
func (r *ContentRepository) listUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	found, err := load(ctx, r.store, r.ns.key(usersKey), &users)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.User{r.admin}, nil
	}
	return users, nil
}

func (r *ContentRepository) RegisterUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.listUsers(ctx)
	if err != nil {
		return err
	}
	return save(ctx, r.store, r.ns.key(usersKey), append(users, user))
}
