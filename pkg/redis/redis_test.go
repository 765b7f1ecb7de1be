package redis

import (
	"testing"

	"github.com/songbird/backend/pkg/config"
)

func TestNewClient_Disabled(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{
			Enabled: false,
		},
	}

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.Enabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{
			Enabled: false,
		},
	}

	client, _ := New(cfg)
	limiter := NewRateLimiter(client, "test")

	// When Redis is disabled, all requests should be allowed
	limit := WrappedRecomputeLimit("u1")
	allowed, remaining, err := limiter.Allow(nil, limit)
	if err != nil {
		t.Fatalf("Allow() error = %v", err)
	}
	if !allowed {
		t.Error("Expected request to be allowed when Redis disabled")
	}
	if remaining != limit.Limit {
		t.Errorf("Expected remaining = %d, got %d", limit.Limit, remaining)
	}
}

func TestCache_Disabled(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{
			Enabled: false,
		},
	}

	client, _ := New(cfg)
	cache := NewCache(client, "test")

	// When Redis is disabled, cache operations should be no-ops
	var result string
	found, err := cache.Get(nil, "key", &result)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Expected cache miss when Redis disabled")
	}
}

func TestCacheKeys(t *testing.T) {
	tests := []struct {
		name     string
		fn       func() string
		expected string
	}{
		{
			name:     "LeaderboardKey",
			fn:       func() string { return LeaderboardKey("2024-06-01") },
			expected: "leaderboard:2024-06-01",
		},
		{
			name:     "StreakKey",
			fn:       func() string { return StreakKey("u123") },
			expected: "streak:u123",
		},
		{
			name:     "WrappedKey",
			fn:       func() string { return WrappedKey("u123", 2024) },
			expected: "wrapped:u123:2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWrappedRecomputeLimit(t *testing.T) {
	limit := WrappedRecomputeLimit("u123")
	if limit.Key != "wrapped:u123" {
		t.Errorf("got key %q, want wrapped:u123", limit.Key)
	}
	if limit.Limit <= 0 {
		t.Error("Expected positive limit")
	}
}
