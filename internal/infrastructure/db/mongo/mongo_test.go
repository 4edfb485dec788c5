package mongo

import (
	"context"
	"testing"
	"time"
)

func TestClientOptions(t *testing.T) {
	opts := clientOptions(Config{URI: "mongodb://db:27017", Database: "lumina_blog"})

	if opts.AppName == nil || *opts.AppName != appName {
		t.Fatalf("expected app name %q, got %v", appName, opts.AppName)
	}
	if opts.ServerSelectionTimeout == nil || *opts.ServerSelectionTimeout != connectTimeout {
		t.Fatalf("expected default selection timeout %s, got %v", connectTimeout, opts.ServerSelectionTimeout)
	}
	if len(opts.Hosts) != 1 || opts.Hosts[0] != "db:27017" {
		t.Fatalf("unexpected hosts: %v", opts.Hosts)
	}

	custom := clientOptions(Config{URI: "mongodb://db:27017", Timeout: 2 * time.Second})
	if *custom.ServerSelectionTimeout != 2*time.Second {
		t.Fatalf("expected explicit timeout to win, got %v", *custom.ServerSelectionTimeout)
	}
}

func TestConnect_RequiresDatabase(t *testing.T) {
	if _, _, err := Connect(context.Background(), Config{URI: "mongodb://db:27017"}); err == nil {
		t.Fatal("expected an error without a database name")
	}
}
