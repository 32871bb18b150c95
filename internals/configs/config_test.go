package configs

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("fails without JWT_SECRET", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		if err == nil {
			t.Fatal("Load() should fail without JWT_SECRET")
		}
		if err.Error() != "JWT_SECRET is required" {
			t.Errorf("Load() error = %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("PORT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.JWTSecret != "test-secret" || JWTSecret != "test-secret" {
			t.Errorf("JWTSecret = %q / %q", cfg.JWTSecret, JWTSecret)
		}
		if cfg.AdminScopeCacheTTL != 5*time.Minute {
			t.Errorf("AdminScopeCacheTTL = %v, want 5m", cfg.AdminScopeCacheTTL)
		}
		if cfg.ReconcileCron != "@every 6h" {
			t.Errorf("ReconcileCron = %q", cfg.ReconcileCron)
		}
		if cfg.RedisEnabled() {
			t.Error("redis should be disabled without REDIS_HOST")
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("PORT", "9999")
		t.Setenv("REDIS_HOST", "cache")
		t.Setenv("CORS_ORIGINS", " https://a.dz , ,https://b.dz")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Port != "9999" {
			t.Errorf("Port = %v, want 9999", cfg.Port)
		}
		if !cfg.RedisEnabled() || cfg.RedisAddr() != "cache:6379" {
			t.Errorf("RedisAddr = %q", cfg.RedisAddr())
		}
		if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.dz" {
			t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
		}
	})

	t.Run("invalid cache ttl", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("ADMIN_SCOPE_CACHE_TTL", "soon")
		if _, err := Load(); err == nil {
			t.Error("Load() should reject an invalid duration")
		}
	})
}
