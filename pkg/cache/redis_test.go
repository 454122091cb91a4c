package cache

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/product-catalog/pkg/config"
)

// newTestConfig returns a config pointing to REDIS_URL env var, falling back to localhost.
func newTestConfig(url string) *config.Config {
	return &config.Config{
		RedisURL: url,
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("not-a-valid-url"))
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("redis://localhost:19999"))
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

// Integration tests — skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	t.Run("NewRedisClient_Success", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck
	})

	t.Run("Ping_Success", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		if err := rc.Ping(context.Background()); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("Close_Idempotent", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := rc.Close(); err != nil {
			t.Fatalf("first Close failed: %v", err)
		}
	})

	t.Run("Client_NotNil", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		if rc.Client() == nil {
			t.Fatal("expected non-nil underlying client")
		}
	})

	t.Run("ProductCache_RoundTrip", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		pc := NewProductCache(rc)
		id := uuid.New()
		want := &CachedProduct{ID: id, Name: "keyboard", Price: 79.99, Stock: 12}
		if err := pc.Set(context.Background(), want); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := pc.Get(context.Background(), id)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got == nil || got.Name != "keyboard" || got.Stock != 12 {
			t.Fatalf("unexpected cached product: %+v", got)
		}
		if err := pc.Delete(context.Background(), id); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
	})

	t.Run("LowStockAlerts_ArmOnceThenClear", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		alerts := NewLowStockAlerts(rc)
		id := uuid.New()

		armed, err := alerts.Arm(context.Background(), id, 3)
		if err != nil {
			t.Fatalf("Arm failed: %v", err)
		}
		if !armed {
			t.Fatal("expected first Arm to report newly armed")
		}
		again, err := alerts.Arm(context.Background(), id, 2)
		if err != nil {
			t.Fatalf("second Arm failed: %v", err)
		}
		if again {
			t.Fatal("expected second Arm to be a no-op")
		}
		if err := alerts.Clear(context.Background(), id); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		active, err := alerts.Active(context.Background(), id)
		if err != nil {
			t.Fatalf("Active failed: %v", err)
		}
		if active {
			t.Fatal("expected alert to be cleared")
		}
	})
}
