package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/joho/godotenv"
	"github.com/srivastava-utkarsh/car-loan-planner/internal/cache"
	"github.com/srivastava-utkarsh/car-loan-planner/internal/config"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address       string               `yaml:"address"`
	MaxBodySize   string               `yaml:"maxBodySize"`
	Cache         CacheConfig          `yaml:"cache"`
	Logging       config.LoggingConfig `yaml:"logging"`
	bodySizeBytes int64
}

// CacheConfig selects where evaluation responses are stored between requests.
type CacheConfig struct {
	Backend string `yaml:"backend"` // memory, redis, or none
	Address string `yaml:"address"` // redis only
	TTL     string `yaml:"ttl"`
	ttl     time.Duration
}

// LoadConfig loads the server configuration from YAML. If the file does not
// exist, defaults are returned without error. Environment variables override
// the file; a .env file is loaded first when present.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:       constants.DefaultServerAddress,
		MaxBodySize:   fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes),
		Logging:       config.LoggingConfig{},
		bodySizeBytes: constants.DefaultMaxBodySizeBytes,
	}
	cfg.Cache = CacheConfig{Backend: cache.BackendMemory}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read server config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse server config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides layers environment variables over the file values for
// deployments that configure through the environment only.
func (c *Config) applyEnvOverrides() {
	_ = godotenv.Load()

	if addr := os.Getenv("CAR_LOAN_PLANNER_ADDR"); addr != "" {
		c.Address = addr
	}
	if backend := os.Getenv("CAR_LOAN_PLANNER_CACHE_BACKEND"); backend != "" {
		c.Cache.Backend = backend
	}
	if addr := os.Getenv("CAR_LOAN_PLANNER_REDIS_ADDR"); addr != "" {
		c.Cache.Address = addr
	}
}

// BodySizeBytes returns the configured request body limit in bytes.
func (c *Config) BodySizeBytes() int64 {
	return c.bodySizeBytes
}

// SetBodySizeBytes overrides the configured request body limit.
func (c *Config) SetBodySizeBytes(size int64) {
	if size > 0 {
		c.bodySizeBytes = size
		c.MaxBodySize = fmt.Sprintf("%d", size)
	}
}

// CacheTTL returns how long cached evaluations stay valid.
func (c *Config) CacheTTL() time.Duration {
	return c.Cache.ttl
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}

	sizeStr := strings.TrimSpace(c.MaxBodySize)
	if sizeStr == "" {
		c.bodySizeBytes = constants.DefaultMaxBodySizeBytes
		c.MaxBodySize = fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes)
	} else {
		bytes, err := ParseSize(sizeStr)
		if err != nil {
			return err
		}
		if bytes <= 0 {
			bytes = constants.DefaultMaxBodySizeBytes
		}
		c.bodySizeBytes = bytes
	}

	return c.Cache.normalize()
}

func (c *CacheConfig) normalize() error {
	backend := strings.ToLower(strings.TrimSpace(c.Backend))
	if backend == "" {
		backend = cache.BackendMemory
	}
	switch backend {
	case cache.BackendMemory, cache.BackendRedis, cache.BackendNone:
	default:
		return fmt.Errorf("unsupported cache backend %q", c.Backend)
	}
	c.Backend = backend

	if c.Backend == cache.BackendRedis && strings.TrimSpace(c.Address) == "" {
		c.Address = cache.DefaultRedisAddress
	}

	ttlStr := strings.TrimSpace(c.TTL)
	if ttlStr == "" {
		c.ttl = constants.DefaultCacheTTLSeconds * time.Second
		return nil
	}
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return fmt.Errorf("invalid cache ttl %q: %w", c.TTL, err)
	}
	if ttl < 0 {
		return fmt.Errorf("invalid cache ttl %q: must not be negative", c.TTL)
	}
	c.ttl = ttl
	return nil
}

// BuildCache constructs the configured cache backend. A backend of "none"
// returns nil so the server skips caching entirely.
func (c *CacheConfig) BuildCache() cache.Cache {
	switch c.Backend {
	case cache.BackendRedis:
		return cache.NewRedis(c.Address)
	case cache.BackendMemory:
		return cache.NewMemory()
	}
	return nil
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	if numPart == "" {
		return 0, fmt.Errorf("invalid size: %s", value)
	}

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	case "G", "GB":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
