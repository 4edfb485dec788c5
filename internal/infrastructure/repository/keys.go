// Package repository implements the content, session and comment
// repositories on top of any ports.KeyValueStore. Each collection lives
// under one key as a JSON array and is rewritten in full on every mutation.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lumina/blog-studio/internal/core/ports"
)

const (
	postsKey       = "lumina_blog_posts"
	usersKey       = "lumina_blog_users"
	currentUserKey = "lumina_current_user"
	commentsPrefix = "lumina_blog_comments:"
)

// keyspace prefixes every key with an optional namespace.
type keyspace string

func (ns keyspace) key(k string) string {
	if ns == "" {
		return k
	}
	return string(ns) + ":" + k
}

// load decodes the JSON value under key into dst. found is false when the
// key is absent, in which case dst is untouched.
func load(ctx context.Context, store ports.KeyValueStore, key string, dst any) (bool, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func save(ctx context.Context, store ports.KeyValueStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
