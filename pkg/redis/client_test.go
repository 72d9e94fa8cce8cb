package redis

import (
	"testing"

	"github.com/stockroomhq/stockroom-backend/pkg/config"
)

func TestBuildKeyHelpers(t *testing.T) {
	c := &Client{}

	if got := c.IdempotencyKey("products", "abc-123"); got != "sr:idempotency:products:abc-123" {
		t.Fatalf("unexpected idempotency key: %q", got)
	}
	if got := c.IdempotencyKey("products", ""); got != "sr:idempotency:products" {
		t.Fatalf("expected empty parts to be skipped, got %q", got)
	}
	if got := c.LockKey("low_stock_scan"); got != "sr:lock:low_stock_scan" {
		t.Fatalf("unexpected lock key: %q", got)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error when url and address are both empty")
	}

	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://localhost:6379/2", PoolSize: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" {
		t.Fatalf("unexpected addr: %q", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("unexpected db: %d", opts.DB)
	}
	if opts.PoolSize != 7 {
		t.Fatalf("expected pool size fallback, got %d", opts.PoolSize)
	}

	opts, err = optionsFromConfig(config.RedisConfig{Address: "cache:6379", Password: "secret", DB: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "cache:6379" || opts.Password != "secret" || opts.DB != 1 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}
