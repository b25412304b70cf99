package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/srivastava-utkarsh/car-loan-planner/internal/cache"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address == "" {
		t.Fatalf("expected default address, got empty")
	}
	if cfg.BodySizeBytes() <= 0 {
		t.Fatalf("expected positive default max body size, got %d", cfg.BodySizeBytes())
	}
	if cfg.Cache.Backend != cache.BackendMemory {
		t.Fatalf("expected default cache backend %q, got %q", cache.BackendMemory, cfg.Cache.Backend)
	}
	if cfg.CacheTTL() != constants.DefaultCacheTTLSeconds*time.Second {
		t.Fatalf("expected default cache TTL, got %s", cfg.CacheTTL())
	}
	if cfg.Logging.Level != "" || cfg.Logging.Format != "" || cfg.Logging.OutputFile != "" {
		t.Fatalf("expected empty logging defaults, got %+v", cfg.Logging)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server-config.yaml")

	contents := []byte(`address: 127.0.0.1:9000
maxBodySize: 2M
cache:
  backend: redis
  address: redis.internal:6380
  ttl: 10m
logging:
  level: debug
  format: console
  outputFile: /tmp/server.log
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.BodySizeBytes() != 2*1024*1024 {
		t.Fatalf("expected max body size override, got %d", cfg.BodySizeBytes())
	}
	if cfg.Cache.Backend != cache.BackendRedis {
		t.Fatalf("expected redis cache backend, got %s", cfg.Cache.Backend)
	}
	if cfg.Cache.Address != "redis.internal:6380" {
		t.Fatalf("expected redis address override, got %s", cfg.Cache.Address)
	}
	if cfg.CacheTTL() != 10*time.Minute {
		t.Fatalf("expected cache TTL 10m, got %s", cfg.CacheTTL())
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected logging format console, got %s", cfg.Logging.Format)
	}
	if cfg.Logging.OutputFile != "/tmp/server.log" {
		t.Fatalf("expected logging outputFile /tmp/server.log, got %s", cfg.Logging.OutputFile)
	}
}

func TestLoadConfigRedisDefaultsAddress(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server-config.yaml")

	contents := []byte(`cache:
  backend: Redis
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Cache.Backend != cache.BackendRedis {
		t.Fatalf("expected backend normalized to redis, got %s", cfg.Cache.Backend)
	}
	if cfg.Cache.Address != cache.DefaultRedisAddress {
		t.Fatalf("expected default redis address, got %s", cfg.Cache.Address)
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server-config.yaml")

	if err := os.WriteFile(path, []byte("cache:\n  backend: memcached\n"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unsupported cache backend but got nil")
	}
}

func TestLoadConfigRejectsBadTTL(t *testing.T) {
	dir := t.TempDir()

	for name, ttl := range map[string]string{
		"malformed": "soon",
		"negative":  "-5s",
	} {
		path := filepath.Join(dir, name+".yaml")
		if err := os.WriteFile(path, []byte("cache:\n  ttl: "+ttl+"\n"), 0600); err != nil {
			t.Fatalf("failed to write temp config: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("expected error for cache ttl %q but got nil", ttl)
		}
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CAR_LOAN_PLANNER_ADDR", "0.0.0.0:7000")
	t.Setenv("CAR_LOAN_PLANNER_CACHE_BACKEND", "redis")
	t.Setenv("CAR_LOAN_PLANNER_REDIS_ADDR", "redis.env:6379")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "0.0.0.0:7000" {
		t.Fatalf("expected env address override, got %s", cfg.Address)
	}
	if cfg.Cache.Backend != cache.BackendRedis {
		t.Fatalf("expected env backend override, got %s", cfg.Cache.Backend)
	}
	if cfg.Cache.Address != "redis.env:6379" {
		t.Fatalf("expected env redis address override, got %s", cfg.Cache.Address)
	}
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(path, []byte("address: [unclosed"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid YAML but got nil")
	}
}

func TestBuildCache(t *testing.T) {
	mem := CacheConfig{Backend: cache.BackendMemory}
	if mem.BuildCache() == nil {
		t.Fatal("expected memory backend to build a cache")
	}

	none := CacheConfig{Backend: cache.BackendNone}
	if none.BuildCache() != nil {
		t.Fatal("expected none backend to build no cache")
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":          constants.DefaultMaxBodySizeBytes,
		"1024":      1024,
		"512b":      512,
		"256K":      256 * 1024,
		"1m":        1024 * 1024,
		"3MB":       3 * 1024 * 1024,
		"2G":        2 * 1024 * 1024 * 1024,
		"  4096   ": 4096,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		if err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", input, err)
		}
		if got != expected {
			t.Fatalf("ParseSize(%q) = %d, expected %d", input, got, expected)
		}
	}

	if _, err := ParseSize("1TB"); err == nil {
		t.Fatal("expected error for unsupported unit")
	}
	if _, err := ParseSize("abc"); err == nil {
		t.Fatal("expected error for invalid number")
	}
}
