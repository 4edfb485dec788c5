package repository

import (
	"context"
	"testing"

	"github.com/lumina/blog-studio/internal/core/domain"
	"github.com/lumina/blog-studio/internal/infrastructure/memory"
)

func TestSessionManager_EmptyByDefault(t *testing.T) {
	sm := NewSessionManager(memory.NewStore(), "")

	u, err := sm.CurrentUser(context.Background())
	if err != nil || u != nil {
		t.Fatalf("expected no session, got %+v err=%v", u, err)
	}
}

func TestSessionManager_StoresByValue(t *testing.T) {
	ctx := context.Background()
	sm := NewSessionManager(memory.NewStore(), "")

	user := &domain.User{ID: "u1", Name: "Alice", Email: "a@x.com", Role: domain.RoleUser}
	if err := sm.SetCurrentUser(ctx, user); err != nil {
		t.Fatalf("SetCurrentUser: %v", err)
	}
	user.Name = "Mallory"
	user.Role = domain.RoleAdmin

	got, err := sm.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if got.Name != "Alice" || got.Role != domain.RoleUser {
		t.Fatalf("session aliased caller struct: %+v", got)
	}

	got.Name = "Eve"
	again, _ := sm.CurrentUser(ctx)
	if again.Name != "Alice" {
		t.Fatalf("returned snapshot aliased stored session: %+v", again)
	}
}

func TestSessionManager_NilClearsKey(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	sm := NewSessionManager(store, "")

	_ = sm.SetCurrentUser(ctx, &domain.User{ID: "u1"})
	if err := sm.SetCurrentUser(ctx, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, found, _ := store.Get(ctx, currentUserKey); found {
		t.Fatalf("session key should be removed")
	}
	if u, _ := sm.CurrentUser(ctx); u != nil {
		t.Fatalf("expected no session, got %+v", u)
	}
}
