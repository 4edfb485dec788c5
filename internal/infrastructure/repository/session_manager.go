package repository

import (
	"context"
	"fmt"

	"github.com/lumina/blog-studio/internal/core/domain"
	"github.com/lumina/blog-studio/internal/core/ports"
)

// SessionManager keeps the current user as a serialized snapshot, so it
// never aliases the caller's struct and survives later edits to the user
// collection.
type SessionManager struct {
	store ports.KeyValueStore
	ns    keyspace
}

func NewSessionManager(store ports.KeyValueStore, namespace string) *SessionManager {
	return &SessionManager{store: store, ns: keyspace(namespace)}
}

func (s *SessionManager) CurrentUser(ctx context.Context) (*domain.User, error) {
	var u domain.User
	found, err := load(ctx, s.store, s.ns.key(currentUserKey), &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

func (s *SessionManager) SetCurrentUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		if err := s.store.Delete(ctx, s.ns.key(currentUserKey)); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		return nil
	}
	return save(ctx, s.store, s.ns.key(currentUserKey), user)
}
