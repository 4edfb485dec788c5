package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/lumina/blog-studio/internal/core/domain"
	"github.com/lumina/blog-studio/internal/infrastructure/memory"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var bootstrapAdmin = domain.User{
	ID:    BootstrapAdminID,
	Name:  "Admin",
	Email: "admin@lumina.blog",
	Role:  domain.RoleAdmin,
}

func newRepo() (*ContentRepository, *memory.Store) {
	store := memory.NewStore()
	return NewContentRepository(store, Options{BootstrapAdmin: bootstrapAdmin}), store
}

type failingStore struct{ err error }

func (s failingStore) Get(context.Context, string) (string, bool, error) { return "", false, s.err }
func (s failingStore) Set(context.Context, string, string) error         { return s.err }
func (s failingStore) Delete(context.Context, string) error              { return s.err }

func postIDs(posts []domain.Post) []string {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

// ---------------------------------------------------------------------------
// Posts
// ---------------------------------------------------------------------------

func TestContentRepository_ListPosts_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepo()

	posts, err := repo.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "1" {
		t.Fatalf("expected single seeded post, got %v", postIDs(posts))
	}

	raw, found, _ := store.Get(ctx, postsKey)
	if !found {
		t.Fatalf("expected seeded collection to be persisted")
	}
	var stored []domain.Post
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("stored value is not a post array: %v", err)
	}
	if len(stored) != 1 || stored[0].Title != posts[0].Title {
		t.Fatalf("unexpected stored collection: %+v", stored)
	}
}

func TestContentRepository_ListPosts_EmptyArrayIsNotReseeded(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepo()
	_ = store.Set(ctx, postsKey, "[]")

	posts, err := repo.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty collection, got %v", postIDs(posts))
	}
}

func TestContentRepository_CreatePost_Prepends(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()

	if err := repo.CreatePost(ctx, domain.Post{ID: "a"}); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if err := repo.CreatePost(ctx, domain.Post{ID: "b"}); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	posts, _ := repo.ListPosts(ctx)
	got := postIDs(posts)
	want := []string{"b", "a", "1"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestContentRepository_DeletePost_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()
	_ = repo.CreatePost(ctx, domain.Post{ID: "p"})

	if err := repo.DeletePost(ctx, "p"); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	after, _ := repo.ListPosts(ctx)
	for _, p := range after {
		if p.ID == "p" {
			t.Fatalf("post still present after delete")
		}
	}

	if err := repo.DeletePost(ctx, "p"); err != nil {
		t.Fatalf("repeated DeletePost should be a no-op, got %v", err)
	}
	again, _ := repo.ListPosts(ctx)
	if len(again) != len(after) {
		t.Fatalf("collection changed on repeated delete: %v vs %v", postIDs(again), postIDs(after))
	}
}

func TestContentRepository_CorruptCollection(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepo()
	_ = store.Set(ctx, postsKey, "{not json")

	if _, err := repo.ListPosts(ctx); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestContentRepository_StoreFailure(t *testing.T) {
	boom := errors.New("boom")
	repo := NewContentRepository(failingStore{err: boom}, Options{})

	if _, err := repo.ListPosts(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if err := repo.CreatePost(context.Background(), domain.Post{ID: "x"}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestContentRepository_Namespace(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := NewContentRepository(store, Options{Namespace: "tenant"})

	_, _ = repo.ListPosts(ctx)

	if _, found, _ := store.Get(ctx, "tenant:"+postsKey); !found {
		t.Fatalf("expected namespaced key")
	}
	if _, found, _ := store.Get(ctx, postsKey); found {
		t.Fatalf("bare key should not be written")
	}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func TestContentRepository_ListUsers_BootstrapNotPersisted(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepo()

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 1 || users[0].Role != domain.RoleAdmin {
		t.Fatalf("expected bootstrap admin, got %+v", users)
	}
	if _, found, _ := store.Get(ctx, usersKey); found {
		t.Fatalf("bootstrap admin must not be persisted by ListUsers")
	}
}

func TestContentRepository_RegisterUser_Appends(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()

	if err := repo.RegisterUser(ctx, domain.User{ID: "u1", Email: "a@x.com", Role: domain.RoleUser}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	// Duplicates are the caller's responsibility.
	if err := repo.RegisterUser(ctx, domain.User{ID: "u2", Email: "a@x.com", Role: domain.RoleUser}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	users, _ := repo.ListUsers(ctx)
	if len(users) != 3 {
		t.Fatalf("expected admin + 2 users, got %+v", users)
	}
	if users[0].ID != BootstrapAdminID || users[1].ID != "u1" || users[2].ID != "u2" {
		t.Fatalf("unexpected order: %+v", users)
	}
}

func TestNewContentRepository_DefaultsAdminRole(t *testing.T) {
	repo := NewContentRepository(memory.NewStore(), Options{BootstrapAdmin: domain.User{ID: "root"}})

	users, _ := repo.ListUsers(context.Background())
	if !users[0].IsAdmin() {
		t.Fatalf("bootstrap user must be an admin, got role %q", users[0].Role)
	}
}
