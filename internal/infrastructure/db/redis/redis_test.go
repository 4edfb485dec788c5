package redis

import (
	"testing"
	"time"
)

func TestClientOptions(t *testing.T) {
	opts := clientOptions(Config{Addr: "cache:6379", Password: "pw", DB: 2})

	if opts.Addr != "cache:6379" || opts.Password != "pw" || opts.DB != 2 {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.ClientName != clientName {
		t.Fatalf("expected client name %q, got %q", clientName, opts.ClientName)
	}
	if opts.DialTimeout != pingTimeout {
		t.Fatalf("expected default dial timeout %s, got %s", pingTimeout, opts.DialTimeout)
	}

	if got := clientOptions(Config{Timeout: time.Second}).DialTimeout; got != time.Second {
		t.Fatalf("expected explicit timeout to win, got %s", got)
	}
}
