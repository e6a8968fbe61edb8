package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.SessionTTL != 24 {
		t.Errorf("SessionTTL = %d, want 24", cfg.SessionTTL)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q, want localhost:6379", cfg.Redis.Addr)
	}
	if cfg.Redis.Password != "" {
		t.Errorf("Redis.Password = %q, want empty default", cfg.Redis.Password)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SESSION_TTL_H", "48")
	t.Setenv("DATABASE_URL", "postgres://app:pw@db:5432/wq")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_PASSWORD", "redis-pw")
	t.Setenv("REDIS_DB", "2")

	cfg := Load()

	if cfg.Port != "9090" || cfg.SessionTTL != 48 {
		t.Errorf("unexpected server config: %+v", cfg)
	}
	if cfg.Postgres.DSN != "postgres://app:pw@db:5432/wq" {
		t.Errorf("Postgres.DSN = %q", cfg.Postgres.DSN)
	}
	if cfg.Redis.Addr != "cache:6379" || cfg.Redis.Password != "redis-pw" || cfg.Redis.DB != 2 {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
}
