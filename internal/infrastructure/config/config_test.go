package config

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("SUPABASE_URL", "https://xyz.supabase.co")
		t.Setenv("SUPABASE_ANON_KEY", "anon")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "5000" {
			t.Errorf("got port %q, want 5000", cfg.Port)
		}
		if cfg.Env != "development" || !cfg.IsDevelopment() {
			t.Errorf("got env %q, want development", cfg.Env)
		}
		if cfg.RateLimitPerMinute != 120 {
			t.Errorf("got rate limit %d, want 120", cfg.RateLimitPerMinute)
		}
	})

	t.Run("explicit values override", func(t *testing.T) {
		t.Setenv("SUPABASE_URL", "https://xyz.supabase.co")
		t.Setenv("SUPABASE_ANON_KEY", "anon")
		t.Setenv("PORT", "8080")
		t.Setenv("ENV", "production")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "30")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" || cfg.IsDevelopment() {
			t.Errorf("got %+v", cfg)
		}
		if cfg.Redis.Addr != "localhost:6379" {
			t.Errorf("got redis addr %q", cfg.Redis.Addr)
		}
		if cfg.RateLimitPerMinute != 30 {
			t.Errorf("got rate limit %d, want 30", cfg.RateLimitPerMinute)
		}
	})

	t.Run("platform URL is required", func(t *testing.T) {
		t.Setenv("SUPABASE_URL", "")
		t.Setenv("SUPABASE_ANON_KEY", "anon")

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "SUPABASE_URL") {
			t.Fatalf("got err %v, want SUPABASE_URL requirement", err)
		}
	})

	t.Run("anon key is required", func(t *testing.T) {
		t.Setenv("SUPABASE_URL", "https://xyz.supabase.co")
		t.Setenv("SUPABASE_ANON_KEY", "")

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "SUPABASE_ANON_KEY") {
			t.Fatalf("got err %v, want SUPABASE_ANON_KEY requirement", err)
		}
	})
}
